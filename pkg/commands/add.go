package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"lexcal/pkg/api"
)

// AddOptions collects the -add flags
type AddOptions struct {
	Title  string
	CaseID int
	Date   string
	Start  string
	End    string
	Type   string
}

// HandleAddEvent processes the -add command
func HandleAddEvent(client *api.Client, opts AddOptions) {
	if opts.CaseID <= 0 {
		fmt.Println("A case id is required: -case N")
		os.Exit(1)
	}

	day := time.Now()
	if opts.Date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", opts.Date, time.Local)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
	}

	start := day
	if opts.Start != "" {
		clock, err := time.Parse("15:04", opts.Start)
		if err != nil {
			fmt.Printf("Error parsing start time: %v\n", err)
			os.Exit(1)
		}
		start = time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, day.Location())
	}

	data := api.NewCreateEventData(start)
	data.Title = opts.Title
	data.CaseID = opts.CaseID

	if opts.End != "" {
		clock, err := time.Parse("15:04", opts.End)
		if err != nil {
			fmt.Printf("Error parsing end time: %v\n", err)
			os.Exit(1)
		}
		data.EndTime = api.NewLocalTime(time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, day.Location()))
	}

	if opts.Type != "" {
		data.EventType = api.EventType(opts.Type)
	}

	created, err := client.CreateEvent(context.Background(), data)
	if err != nil {
		fmt.Printf("Error creating event: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Event %d created: %s\n", created.ID, created.Title)
}
