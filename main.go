package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lexcal/pkg/api"
	"lexcal/pkg/auth"
	"lexcal/pkg/cli"
	"lexcal/pkg/config"
	"lexcal/pkg/ui"
	"lexcal/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	utils.InitLogger(args.Verbose, cfg.LogFile)
	defer utils.CloseLogger()

	tokens := &auth.SessionFile{Path: cfg.SessionFile}
	client := api.NewClient(cfg.APIBaseURL, tokens, nil)

	// Headless commands run without the TUI
	if cli.HandleCommands(client, args) {
		return
	}

	// Best-effort identity for the status bar and the "my events"
	// filter; a missing or opaque token just leaves them blank.
	token, _ := tokens.Token()
	userName := auth.UserName(token)
	userID := auth.UserID(token)

	p := tea.NewProgram(ui.NewModel(client, cfg, styles, userName, userID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
