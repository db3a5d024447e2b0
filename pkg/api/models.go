package api

import (
	"fmt"
	"strings"
	"time"
)

// EventType classifies a legal event
type EventType string

const (
	TypeMeeting      EventType = "meeting"
	TypeDeadline     EventType = "deadline"
	TypeHearing      EventType = "hearing"
	TypeCourtDate    EventType = "court_date"
	TypeFiling       EventType = "filing"
	TypeConsultation EventType = "consultation"
	TypeOther        EventType = "other"
)

// EventTypes lists every event type in display order
var EventTypes = []EventType{
	TypeMeeting,
	TypeDeadline,
	TypeHearing,
	TypeCourtDate,
	TypeFiling,
	TypeConsultation,
	TypeOther,
}

// EventStatus is the scheduling state of an event
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusConfirmed EventStatus = "confirmed"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
	StatusPostponed EventStatus = "postponed"
)

// EventStatuses lists every status in display order
var EventStatuses = []EventStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusPostponed,
}

// EventPriority is the urgency level of an event
type EventPriority string

const (
	PriorityLow    EventPriority = "low"
	PriorityMedium EventPriority = "medium"
	PriorityHigh   EventPriority = "high"
)

// EventPriorities lists every priority in display order
var EventPriorities = []EventPriority{PriorityLow, PriorityMedium, PriorityHigh}

// localTimeLayout is the wire format for timestamps. The backend is
// timezone-naive, so no zone designator is sent or expected.
const localTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a timezone-naive timestamp as used by the event store.
type LocalTime struct {
	time.Time
}

// NewLocalTime wraps a time.Time as a LocalTime
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t}
}

// UnmarshalJSON accepts the canonical layout plus minute-precision and
// RFC 3339 variants the backend has been seen to emit.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		lt.Time = time.Time{}
		return nil
	}

	layouts := []string{
		localTimeLayout,
		"2006-01-02T15:04",
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			lt.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON emits the canonical zone-less layout
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + lt.Format(localTimeLayout) + `"`), nil
}

// Event is a time-boxed legal event (hearing, deadline, meeting, ...)
// as returned by the store. The case/assignee display fields and the
// audit timestamps are owned by the store and read-only here.
type Event struct {
	ID int `json:"id"`

	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	EventType   EventType     `json:"event_type"`
	Status      EventStatus   `json:"status"`
	Priority    EventPriority `json:"priority"`

	StartTime LocalTime `json:"start_time"`
	EndTime   LocalTime `json:"end_time"`
	AllDay    bool      `json:"all_day"`

	CaseID     int    `json:"case_id"`
	CaseTitle  string `json:"case_title,omitempty"`
	CaseNumber string `json:"case_number,omitempty"`
	ClientName string `json:"client_name,omitempty"`

	AssignedToUserID int    `json:"assigned_to_user_id,omitempty"`
	AssignedToName   string `json:"assigned_to_name,omitempty"`

	Location    string `json:"location,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`
	Address     string `json:"address,omitempty"`

	ClientInvited   bool `json:"client_invited"`
	ClientConfirmed bool `json:"client_confirmed"`

	ReminderMinutesBefore int  `json:"reminder_minutes_before"`
	ReminderSent          bool `json:"reminder_sent"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern,omitempty"`

	DocumentID   int    `json:"document_id,omitempty"`
	DocumentName string `json:"document_name,omitempty"`

	CreatedAt LocalTime `json:"created_at,omitempty"`
	UpdatedAt LocalTime `json:"updated_at,omitempty"`
}

// DisplayLocation prefers the meeting link over the physical location
func (e Event) DisplayLocation() string {
	if e.MeetingLink != "" {
		return e.MeetingLink
	}
	if e.Location != "" {
		return e.Location
	}
	return e.Address
}

// CreateEventData is the mutable subset of an Event: everything except
// the id, the denormalized display fields, the audit timestamps, and
// reminder_sent. The same set is resent in full on update.
type CreateEventData struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	EventType   EventType     `json:"event_type"`
	Status      EventStatus   `json:"status"`
	Priority    EventPriority `json:"priority"`

	StartTime LocalTime `json:"start_time"`
	EndTime   LocalTime `json:"end_time"`
	AllDay    bool      `json:"all_day"`

	CaseID           int `json:"case_id"`
	AssignedToUserID int `json:"assigned_to_user_id,omitempty"`

	Location    string `json:"location,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`
	Address     string `json:"address,omitempty"`

	ClientInvited   bool `json:"client_invited"`
	ClientConfirmed bool `json:"client_confirmed"`

	ReminderMinutesBefore int `json:"reminder_minutes_before"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern,omitempty"`

	DocumentID int `json:"document_id,omitempty"`
}

// NewCreateEventData returns a draft with the documented defaults,
// starting at the selected date and running one hour.
func NewCreateEventData(selected time.Time) CreateEventData {
	return CreateEventData{
		EventType:             TypeMeeting,
		Status:                StatusScheduled,
		Priority:              PriorityMedium,
		StartTime:             NewLocalTime(selected),
		EndTime:               NewLocalTime(selected.Add(time.Hour)),
		AllDay:                false,
		ClientInvited:         false,
		ClientConfirmed:       false,
		ReminderMinutesBefore: 30,
		IsRecurring:           false,
	}
}

// MutableFields extracts the full updatable field set from an existing
// event, for the full-body resend that update performs.
func MutableFields(e Event) CreateEventData {
	return CreateEventData{
		Title:                 e.Title,
		Description:           e.Description,
		EventType:             e.EventType,
		Status:                e.Status,
		Priority:              e.Priority,
		StartTime:             e.StartTime,
		EndTime:               e.EndTime,
		AllDay:                e.AllDay,
		CaseID:                e.CaseID,
		AssignedToUserID:      e.AssignedToUserID,
		Location:              e.Location,
		MeetingLink:           e.MeetingLink,
		Address:               e.Address,
		ClientInvited:         e.ClientInvited,
		ClientConfirmed:       e.ClientConfirmed,
		ReminderMinutesBefore: e.ReminderMinutesBefore,
		IsRecurring:           e.IsRecurring,
		RecurrencePattern:     e.RecurrencePattern,
		DocumentID:            e.DocumentID,
	}
}

// CaseSummary is the slice of a case the calendar needs for the
// case-selection control and display denormalization.
type CaseSummary struct {
	ID         int    `json:"id"`
	CaseNumber string `json:"case_number"`
	Title      string `json:"title"`
	Client     string `json:"client"`
	AssignedTo string `json:"assignedTo"`
}
