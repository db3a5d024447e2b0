package cli

import (
	"flag"

	"lexcal/pkg/api"
	"lexcal/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Event creation
	AddEvent  string
	CaseFlag  int
	DateFlag  string
	StartFlag string
	EndFlag   string
	TypeFlag  string

	// Export
	ExportFile string
	FormatFlag string

	// Agenda / reminders
	AgendaFlag bool
	RemindID   int
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Event creation
	flag.StringVar(&args.AddEvent, "add", "", "Add a new event with the given title")
	flag.IntVar(&args.CaseFlag, "case", 0, "Case id for the new event")
	flag.StringVar(&args.DateFlag, "date", "", "Date for the event (YYYY-MM-DD)")
	flag.StringVar(&args.StartFlag, "start", "", "Start time for the event (HH:MM)")
	flag.StringVar(&args.EndFlag, "end", "", "End time for the event (HH:MM)")
	flag.StringVar(&args.TypeFlag, "type", "", "Event type (meeting, deadline, hearing, court_date, filing, consultation, other)")

	// Export
	flag.StringVar(&args.ExportFile, "export", "", "Export events to file")
	flag.StringVar(&args.FormatFlag, "format", "json", "Export file format (json, txt)")

	// Agenda / reminders
	flag.BoolVar(&args.AgendaFlag, "agenda", false, "Print today's schedule and upcoming events")
	flag.IntVar(&args.RemindID, "remind", 0, "Send the reminder for the given event id")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(client *api.Client, args *Args) bool {
	if args.AddEvent != "" {
		commands.HandleAddEvent(client, commands.AddOptions{
			Title:  args.AddEvent,
			CaseID: args.CaseFlag,
			Date:   args.DateFlag,
			Start:  args.StartFlag,
			End:    args.EndFlag,
			Type:   args.TypeFlag,
		})
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(client, args.ExportFile, args.FormatFlag)
		return true
	}

	if args.AgendaFlag {
		commands.HandleAgendaCommand(client)
		return true
	}

	if args.RemindID != 0 {
		commands.HandleRemindCommand(client, args.RemindID)
		return true
	}

	// No CLI command was handled
	return false
}
