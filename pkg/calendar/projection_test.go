package calendar

import (
	"testing"
	"time"

	"lexcal/pkg/api"
)

func mkEvent(id int, start string, opts ...func(*api.Event)) api.Event {
	t, err := time.ParseInLocation("2006-01-02T15:04", start, time.Local)
	if err != nil {
		panic(err)
	}
	e := api.Event{
		ID:        id,
		Title:     "event",
		EventType: api.TypeMeeting,
		Status:    api.StatusScheduled,
		Priority:  api.PriorityMedium,
		StartTime: api.NewLocalTime(t),
		EndTime:   api.NewLocalTime(t.Add(time.Hour)),
		CaseID:    1,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func allDay(e *api.Event) { e.AllDay = true }

func withStatus(s api.EventStatus) func(*api.Event) {
	return func(e *api.Event) { e.Status = s }
}

func TestEventsOnDate(t *testing.T) {
	events := []api.Event{
		mkEvent(1, "2026-01-10T09:00"),
		mkEvent(2, "2026-01-11T09:00"),
		mkEvent(3, "2026-01-10T23:30"),
	}

	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)
	got := EventsOnDate(events, day)

	if len(got) != 2 {
		t.Fatalf("EventsOnDate() returned %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.ID == 2 {
			t.Errorf("EventsOnDate() included event from a different day")
		}
	}

	other := time.Date(2026, 1, 12, 0, 0, 0, 0, time.Local)
	if got := EventsOnDate(events, other); len(got) != 0 {
		t.Errorf("EventsOnDate() on empty day returned %d events, want 0", len(got))
	}
}

func TestEventsInWeek(t *testing.T) {
	// 2026-01-04 is a Sunday, 2026-01-10 the closing Saturday
	events := []api.Event{
		mkEvent(3, "2026-01-09T10:00"),
		mkEvent(1, "2026-01-04T08:00"),
		mkEvent(2, "2026-01-06T15:00"),
		mkEvent(4, "2026-01-11T09:00"), // next week
		mkEvent(5, "2026-01-03T09:00"), // previous week
	}

	selected := time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local)
	got := EventsInWeek(events, selected)

	if len(got) != 3 {
		t.Fatalf("EventsInWeek() returned %d events, want 3", len(got))
	}

	for i := 1; i < len(got); i++ {
		if got[i].StartTime.Before(got[i-1].StartTime.Time) {
			t.Errorf("EventsInWeek() not sorted ascending at index %d", i)
		}
	}

	// Appending out-of-week events must not change the result
	more := append(events, mkEvent(6, "2026-02-01T09:00"))
	if got2 := EventsInWeek(more, selected); len(got2) != len(got) {
		t.Errorf("out-of-week event changed the result: %d vs %d", len(got2), len(got))
	}
}

func TestEventsInWeekIncludesSaturday(t *testing.T) {
	events := []api.Event{
		mkEvent(1, "2026-01-10T22:00"), // Saturday evening
	}
	selected := time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
	if got := EventsInWeek(events, selected); len(got) != 1 {
		t.Errorf("EventsInWeek() dropped the closing Saturday, got %d events", len(got))
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)
	events := []api.Event{
		mkEvent(1, "2026-01-09T09:00"),                                 // past
		mkEvent(2, "2026-01-10T14:00"),                                 // soonest upcoming
		mkEvent(3, "2026-01-12T09:00", withStatus(api.StatusCompleted)), // wrong status
		mkEvent(4, "2026-01-15T09:00"),
		mkEvent(5, "2026-01-11T09:00"),
		mkEvent(6, "2026-01-16T09:00"),
		mkEvent(7, "2026-01-17T09:00"),
		mkEvent(8, "2026-01-18T09:00"),
	}

	got := Upcoming(events, now, 5)

	if len(got) > 5 {
		t.Fatalf("Upcoming() returned %d events, want at most 5", len(got))
	}
	for _, e := range got {
		if e.StartTime.Before(now) {
			t.Errorf("Upcoming() returned past event %d", e.ID)
		}
		if e.Status != api.StatusScheduled {
			t.Errorf("Upcoming() returned non-scheduled event %d", e.ID)
		}
	}
	if got[0].ID != 2 {
		t.Errorf("Upcoming()[0].ID = %d, want 2 (soonest first)", got[0].ID)
	}

	if got := Upcoming(events, now, 0); len(got) > DefaultUpcomingLimit {
		t.Errorf("Upcoming() with zero limit returned %d, want at most %d", len(got), DefaultUpcomingLimit)
	}
}

func TestHourSlots(t *testing.T) {
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)
	events := []api.Event{
		mkEvent(7, "2026-01-10T14:00"),
	}

	slots := HourSlots(events, date)

	if len(slots[14]) != 1 || slots[14][0].ID != 7 {
		t.Errorf("slot 14 = %v, want exactly event 7", slots[14])
	}
	if len(slots[9]) != 0 {
		t.Errorf("slot 9 has %d events, want 0", len(slots[9]))
	}
}

func TestHourSlotsWindowBounds(t *testing.T) {
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		start   string
		visible bool
	}{
		{"before window", "2026-01-10T07:59", false},
		{"window open", "2026-01-10T08:00", true},
		{"window close", "2026-01-10T19:45", true},
		{"after window", "2026-01-10T20:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := HourSlots([]api.Event{mkEvent(1, tt.start)}, date)
			total := 0
			for _, evs := range slots {
				total += len(evs)
			}
			if (total == 1) != tt.visible {
				t.Errorf("event at %s visible = %v, want %v", tt.start, total == 1, tt.visible)
			}
		})
	}
}

func TestHourSlotsSkipsAllDay(t *testing.T) {
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)
	events := []api.Event{
		mkEvent(1, "2026-01-10T09:00", allDay),
		mkEvent(2, "2026-01-10T09:00"),
	}

	slots := HourSlots(events, date)
	if len(slots[9]) != 1 || slots[9][0].ID != 2 {
		t.Errorf("slot 9 = %v, want only the timed event", slots[9])
	}

	if got := AllDayEvents(events, date); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("AllDayEvents() = %v, want only event 1", got)
	}
}

func TestDaysWithEvents(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	events := []api.Event{
		mkEvent(1, "2026-01-10T09:00"),
		mkEvent(2, "2026-01-10T15:00"),
		mkEvent(3, "2026-02-10T09:00"), // different month
	}

	days := DaysWithEvents(events, ref)
	if !days[10] {
		t.Errorf("day 10 not marked")
	}
	if len(days) != 1 {
		t.Errorf("DaysWithEvents() marked %d days, want 1", len(days))
	}
}
