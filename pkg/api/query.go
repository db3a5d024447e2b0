package api

import (
	"net/url"
	"strconv"
	"time"
)

// ViewMode selects the calendar projection and the date window sent to
// the store.
type ViewMode int

const (
	MonthViewMode ViewMode = iota // full set fetched, bucketed client-side
	WeekViewMode
	DayViewMode
)

func (v ViewMode) String() string {
	switch v {
	case WeekViewMode:
		return "week"
	case DayViewMode:
		return "day"
	default:
		return "month"
	}
}

// Filter is the ephemeral UI filter state. Empty fields mean "no
// filter" and are omitted from the request.
type Filter struct {
	Status     EventStatus
	EventType  EventType
	AssignedTo int
	Search     string
}

// EventQuery is the request the store client sends for a list call.
type EventQuery struct {
	Status     EventStatus
	EventType  EventType
	AssignedTo int
	Search     string

	// Zero times mean no date window
	StartDate time.Time
	EndDate   time.Time
}

const dateLayout = "2006-01-02"

// Values renders the query as request parameters
func (q EventQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.EventType != "" {
		v.Set("event_type", string(q.EventType))
	}
	if q.AssignedTo != 0 {
		v.Set("assigned_to_user_id", strconv.Itoa(q.AssignedTo))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if !q.StartDate.IsZero() {
		v.Set("start_date", q.StartDate.Format(dateLayout))
	}
	if !q.EndDate.IsZero() {
		v.Set("end_date", q.EndDate.Format(dateLayout))
	}
	return v
}

// BuildQuery translates the filter state, view mode, and selected date
// into the list request. Week view sends the Sunday-start calendar
// week; day view sends the single selected day. Month view sends no
// window at all: the backend never grew month filtering, so the full
// result set comes back and month bucketing happens client-side.
func BuildQuery(f Filter, view ViewMode, selected time.Time) EventQuery {
	q := EventQuery{
		Status:     f.Status,
		EventType:  f.EventType,
		AssignedTo: f.AssignedTo,
		Search:     f.Search,
	}

	switch view {
	case WeekViewMode:
		q.StartDate, q.EndDate = WeekBounds(selected)
	case DayViewMode:
		day := DayStart(selected)
		q.StartDate, q.EndDate = day, day
	}
	return q
}

// DayStart truncates a timestamp to midnight of its calendar day
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns midnight of the Sunday starting the week
// containing d and midnight of the closing Saturday.
func WeekBounds(d time.Time) (time.Time, time.Time) {
	start := DayStart(d).AddDate(0, 0, -int(d.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start, end
}
