package calendar

import (
	"regexp"
	"testing"
	"time"

	"lexcal/pkg/api"
)

func TestFormatEventTime(t *testing.T) {
	start := time.Date(2026, 1, 10, 14, 0, 0, 0, time.Local)
	end := time.Date(2026, 1, 10, 15, 30, 0, 0, time.Local)

	if got := FormatEventTime(start, end, true); got != AllDayLabel {
		t.Errorf("FormatEventTime(allDay) = %q, want %q", got, AllDayLabel)
	}

	got := FormatEventTime(start, end, false)
	if got != "2:00 PM - 3:30 PM" {
		t.Errorf("FormatEventTime() = %q, want %q", got, "2:00 PM - 3:30 PM")
	}

	pattern := regexp.MustCompile(`^\d{1,2}:\d{2} (AM|PM) - \d{1,2}:\d{2} (AM|PM)$`)
	if !pattern.MatchString(got) {
		t.Errorf("FormatEventTime() = %q, does not match 12-hour pattern", got)
	}
}

func TestTypeStyleExhaustive(t *testing.T) {
	for _, et := range api.EventTypes {
		info := TypeStyle(et)
		if info.Label == "" {
			t.Errorf("TypeStyle(%q) has empty label", et)
		}
		if info.Color == "" {
			t.Errorf("TypeStyle(%q) has empty color", et)
		}
	}

	// Unknown values fall back to the other entry
	if got := TypeStyle(api.EventType("arbitration")); got != TypeStyle(api.TypeOther) {
		t.Errorf("TypeStyle(unknown) = %v, want the other fallback", got)
	}
}

func TestPriorityColor(t *testing.T) {
	for _, p := range api.EventPriorities {
		if PriorityColor(p) == "" {
			t.Errorf("PriorityColor(%q) is empty", p)
		}
	}
	if got := PriorityColor(api.EventPriority("urgent")); got != PriorityColor(api.PriorityMedium) {
		t.Errorf("PriorityColor(unknown) = %q, want medium fallback", got)
	}
}

func TestStatusLabel(t *testing.T) {
	for _, s := range api.EventStatuses {
		if StatusLabel(s) == "" {
			t.Errorf("StatusLabel(%q) is empty", s)
		}
	}
	if got := StatusLabel(api.EventStatus("archived")); got != "archived" {
		t.Errorf("StatusLabel(unknown) = %q, want pass-through", got)
	}
}
