package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"lexcal/pkg/api"
	"lexcal/pkg/calendar"
)

// HandleAgendaCommand prints today's schedule and the upcoming list,
// suitable for a morning glance or piping into notes.
func HandleAgendaCommand(client *api.Client) {
	now := time.Now()
	query := api.BuildQuery(api.Filter{}, api.DayViewMode, now)

	events, err := client.ListEvents(context.Background(), query)
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Schedule for %s\n\n", now.Format("Monday, January 2, 2006"))

	// Filter to today then borrow the week projection's sort
	today := calendar.EventsInWeek(calendar.EventsOnDate(events, now), now)
	if len(today) == 0 {
		fmt.Println("No events scheduled for today.")
	}
	for _, e := range today {
		timeStr := calendar.FormatEventTime(e.StartTime.Time, e.EndTime.Time, e.AllDay)
		label := calendar.TypeStyle(e.EventType).Label
		fmt.Printf("  %s  [%s] %s", timeStr, label, e.Title)
		if e.CaseNumber != "" {
			fmt.Printf(" (%s)", e.CaseNumber)
		}
		if loc := e.DisplayLocation(); loc != "" {
			fmt.Printf("\n      %s", loc)
		}
		fmt.Println()
	}

	// Upcoming needs the full set, not just today's window
	all, err := client.ListEvents(context.Background(), api.EventQuery{})
	if err != nil {
		// Today's schedule already printed; skip the tail quietly
		return
	}

	upcoming := calendar.Upcoming(all, now, calendar.DefaultUpcomingLimit)
	if len(upcoming) == 0 {
		return
	}

	fmt.Println("\nUpcoming")
	for _, e := range upcoming {
		fmt.Printf("  %s  %s\n", e.StartTime.Format("Jan 2 3:04 PM"), e.Title)
	}
}
