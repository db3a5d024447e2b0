package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"lexcal/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	// APIBaseURL is the root of the practice-management REST backend
	APIBaseURL string `mapstructure:"api_base_url"`

	// SessionFile is the .env-style file carrying the bearer token
	SessionFile string `mapstructure:"session_file"`

	// DefaultView is the calendar view on startup: month, week or day
	DefaultView string `mapstructure:"default_view"`

	StylesFile string            `mapstructure:"styles_file"`
	LogFile    string            `mapstructure:"log_file"`
	KeyMap     map[string]string `mapstructure:"keymap"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Calendar colors
	TodayBgColor   string `json:"today_bg_color"`
	EventDayColor  string `json:"event_day_color"`
	MutedTextColor string `json:"muted_text_color"`
}

// Load loads the application configuration from the specified path,
// writing a default config file on first run so every value is
// discoverable and editable.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	configDir := filepath.Join(homeDir, ".config", "lexcal")

	cfg := Config{
		APIBaseURL:  "http://localhost:5000/api",
		SessionFile: filepath.Join(configDir, "session.env"),
		DefaultView: "month",
		StylesFile:  filepath.Join(configDir, "styles.json"),
		LogFile:     filepath.Join(configDir, "lexcal.log"),
		KeyMap:      keymaps.GetDefaultKeyMappings(),
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("api_base_url", cfg.APIBaseURL)
	v.SetDefault("session_file", cfg.SessionFile)
	v.SetDefault("default_view", cfg.DefaultView)
	v.SetDefault("styles_file", cfg.StylesFile)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("keymap", cfg.KeyMap)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return cfg, Styles{}, err
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: write the defaults so they are discoverable
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return cfg, Styles{}, err
			}
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return cfg, Styles{}, err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, Styles{}, err
	}

	styles, err := loadStyles(cfg.StylesFile)
	if err != nil {
		return cfg, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return cfg, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		TodayBgColor:      "23",
		EventDayColor:     "205",
		MutedTextColor:    "243",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
