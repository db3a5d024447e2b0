package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexcal/pkg/api"
	"lexcal/pkg/calendar"
)

// HandleExportCommand processes -export commands
func HandleExportCommand(client *api.Client, filename, format string) {
	// Full unfiltered set, same as month view
	events, err := client.ListEvents(context.Background(), api.EventQuery{})
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch format {
	case "json":
		content, err = json.MarshalIndent(events, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling events to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		var lastDate string
		for _, e := range events {
			dateStr := e.StartTime.Format("02.01.2006")
			if dateStr != lastDate {
				lines = append(lines, fmt.Sprintf("\n%s:", dateStr))
				lastDate = dateStr
			}

			timeStr := calendar.FormatEventTime(e.StartTime.Time, e.EndTime.Time, e.AllDay)
			label := calendar.TypeStyle(e.EventType).Label
			lines = append(lines, fmt.Sprintf("- %s [%s] %s (%s)", timeStr, label, e.Title, e.CaseNumber))
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export format: %s\n", format)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d event(s) to %s\n", len(events), filename)
}
