package utils

import (
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger for debug messages. The TUI owns stdout, so everything goes
// to a rotating file instead.
var (
	isVerbose = false
	logWriter *lumberjack.Logger
	logger    = zerolog.Nop()
)

// Log writes a debug message to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	if isVerbose {
		logger.Debug().Msgf(text, args...)
	}
}

// LogError writes an error with context to the log file
func LogError(err error, text string, args ...interface{}) {
	if isVerbose {
		logger.Error().Err(err).Msgf(text, args...)
	}
}

// InitLogger initializes the logging system
func InitLogger(verbose bool, path string) {
	isVerbose = verbose
	if !verbose {
		return
	}

	if path == "" {
		path = "/tmp/lexcal.log"
	}

	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}

	logger = zerolog.New(logWriter).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	Log("Verbose logging enabled")
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logWriter != nil {
		logWriter.Close()
	}
}
