// Package calendar computes the day/week/month projections and the
// derived view model over the in-memory event collection. Everything
// here is pure: the UI re-runs these on every collection change.
package calendar

import (
	"sort"
	"time"

	"lexcal/pkg/api"
)

// Day view renders fixed one-hour slots across this daytime window.
// Events starting outside it are simply not shown in day view.
const (
	DayViewStartHour = 8
	DayViewEndHour   = 19
)

// DefaultUpcomingLimit bounds the upcoming-events list
const DefaultUpcomingLimit = 5

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EventsOnDate returns the events whose start time falls on the same
// calendar day as date. Comparison is by local date components, not by
// range overlap with the end time.
func EventsOnDate(events []api.Event, date time.Time) []api.Event {
	var out []api.Event
	for _, e := range events {
		if SameDay(e.StartTime.Time, date) {
			out = append(out, e)
		}
	}
	return out
}

// EventsInWeek returns the events starting within the Sunday-start
// calendar week containing selected, sorted ascending by start time.
func EventsInWeek(events []api.Event, selected time.Time) []api.Event {
	weekStart, weekEnd := api.WeekBounds(selected)
	// weekEnd is midnight Saturday; the whole closing day is in range
	cutoff := weekEnd.AddDate(0, 0, 1)

	var out []api.Event
	for _, e := range events {
		start := e.StartTime.Time
		if !start.Before(weekStart) && start.Before(cutoff) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime.Time)
	})
	return out
}

// Upcoming returns up to limit scheduled events starting at or after
// now, soonest first. A non-positive limit falls back to the default.
func Upcoming(events []api.Event, now time.Time, limit int) []api.Event {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	var out []api.Event
	for _, e := range events {
		if e.Status != api.StatusScheduled {
			continue
		}
		if e.StartTime.Before(now) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime.Time)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// HourSlots partitions the non-all-day events of the selected date
// into one-hour buckets keyed by hour of day. Only hours within the
// day-view window appear; an event starting at 07:59 or 20:00 is
// dropped, matching the rendered grid.
func HourSlots(events []api.Event, date time.Time) map[int][]api.Event {
	slots := make(map[int][]api.Event)
	for _, e := range EventsOnDate(events, date) {
		if e.AllDay {
			continue
		}
		hour := e.StartTime.Hour()
		if hour < DayViewStartHour || hour > DayViewEndHour {
			continue
		}
		slots[hour] = append(slots[hour], e)
	}
	return slots
}

// AllDayEvents returns the all-day events of the selected date, which
// day view shows above the hour grid.
func AllDayEvents(events []api.Event, date time.Time) []api.Event {
	var out []api.Event
	for _, e := range EventsOnDate(events, date) {
		if e.AllDay {
			out = append(out, e)
		}
	}
	return out
}

// DaysWithEvents maps day-of-month to true for every day in the month
// of ref that has at least one event. Feeds the month grid highlights.
func DaysWithEvents(events []api.Event, ref time.Time) map[int]bool {
	days := make(map[int]bool)
	for _, e := range events {
		start := e.StartTime.Time
		if start.Year() == ref.Year() && start.Month() == ref.Month() {
			days[start.Day()] = true
		}
	}
	return days
}
