package api

import (
	"testing"
	"time"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		wantStart string
		wantEnd   string
	}{
		{"midweek", "2026-01-07", "2026-01-04", "2026-01-10"},
		{"on sunday", "2026-01-04", "2026-01-04", "2026-01-10"},
		{"on saturday", "2026-01-10", "2026-01-04", "2026-01-10"},
		{"month boundary", "2026-02-01", "2026-02-01", "2026-02-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := time.ParseInLocation("2006-01-02", tt.day, time.Local)
			start, end := WeekBounds(d.Add(13 * time.Hour))

			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("week start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("week end = %s, want %s", got, tt.wantEnd)
			}
			if start.Hour() != 0 || end.Hour() != 0 {
				t.Errorf("bounds not at midnight: %v %v", start, end)
			}
		})
	}
}

func TestBuildQueryWindows(t *testing.T) {
	selected := time.Date(2026, 1, 7, 15, 30, 0, 0, time.Local)

	q := BuildQuery(Filter{}, MonthViewMode, selected)
	if !q.StartDate.IsZero() || !q.EndDate.IsZero() {
		t.Errorf("month view set a date window: %v - %v", q.StartDate, q.EndDate)
	}

	q = BuildQuery(Filter{}, WeekViewMode, selected)
	if q.StartDate.Format("2006-01-02") != "2026-01-04" || q.EndDate.Format("2006-01-02") != "2026-01-10" {
		t.Errorf("week window = %v - %v, want Sun Jan 4 - Sat Jan 10", q.StartDate, q.EndDate)
	}

	q = BuildQuery(Filter{}, DayViewMode, selected)
	if q.StartDate.Format("2006-01-02") != "2026-01-07" || !q.StartDate.Equal(q.EndDate) {
		t.Errorf("day window = %v - %v, want the selected day twice", q.StartDate, q.EndDate)
	}
}

func TestBuildQueryCarriesFilter(t *testing.T) {
	f := Filter{
		Status:     StatusConfirmed,
		EventType:  TypeHearing,
		AssignedTo: 12,
		Search:     "deposition",
	}
	q := BuildQuery(f, MonthViewMode, time.Now())

	if q.Status != StatusConfirmed || q.EventType != TypeHearing || q.AssignedTo != 12 || q.Search != "deposition" {
		t.Errorf("filter not carried into query: %+v", q)
	}
}

func TestEventQueryValues(t *testing.T) {
	q := EventQuery{
		Status:    StatusScheduled,
		EventType: TypeHearing,
		Search:    "smith",
		StartDate: time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local),
	}
	v := q.Values()

	want := map[string]string{
		"status":     "scheduled",
		"event_type": "hearing",
		"search":     "smith",
		"start_date": "2026-01-04",
		"end_date":   "2026-01-10",
	}
	for key, val := range want {
		if got := v.Get(key); got != val {
			t.Errorf("param %s = %q, want %q", key, got, val)
		}
	}
	if v.Has("assigned_to_user_id") {
		t.Errorf("zero assignee emitted: %q", v.Get("assigned_to_user_id"))
	}
}

func TestEventQueryValuesOmitsEmpty(t *testing.T) {
	v := EventQuery{}.Values()
	if len(v) != 0 {
		t.Errorf("empty query produced params: %v", v)
	}
}
