package calendar

import (
	"fmt"
	"time"

	"lexcal/pkg/api"
)

// TypeInfo is the display mapping for an event type. Colors are ANSI
// 256 codes, resolved to lipgloss styles by the view layer.
type TypeInfo struct {
	Color string
	Label string
}

var typeInfo = map[api.EventType]TypeInfo{
	api.TypeMeeting:      {Color: "39", Label: "Meeting"},
	api.TypeDeadline:     {Color: "196", Label: "Deadline"},
	api.TypeHearing:      {Color: "208", Label: "Hearing"},
	api.TypeCourtDate:    {Color: "160", Label: "Court Date"},
	api.TypeFiling:       {Color: "135", Label: "Filing"},
	api.TypeConsultation: {Color: "42", Label: "Consultation"},
	api.TypeOther:        {Color: "245", Label: "Other"},
}

// TypeStyle returns the display mapping for an event type. Unknown
// values fall back to the "other" entry, so the function is total.
func TypeStyle(t api.EventType) TypeInfo {
	if info, ok := typeInfo[t]; ok {
		return info
	}
	return typeInfo[api.TypeOther]
}

var priorityColor = map[api.EventPriority]string{
	api.PriorityLow:    "70",
	api.PriorityMedium: "214",
	api.PriorityHigh:   "196",
}

// PriorityColor returns the ANSI color for a priority, defaulting to
// medium for anything unrecognized.
func PriorityColor(p api.EventPriority) string {
	if c, ok := priorityColor[p]; ok {
		return c
	}
	return priorityColor[api.PriorityMedium]
}

var statusLabel = map[api.EventStatus]string{
	api.StatusScheduled: "Scheduled",
	api.StatusConfirmed: "Confirmed",
	api.StatusCompleted: "Completed",
	api.StatusCancelled: "Cancelled",
	api.StatusPostponed: "Postponed",
}

// StatusLabel returns the display label for a status
func StatusLabel(s api.EventStatus) string {
	if l, ok := statusLabel[s]; ok {
		return l
	}
	return string(s)
}

// AllDayLabel is what FormatEventTime returns for all-day events
const AllDayLabel = "All Day"

// FormatEventTime renders an event's time window in 12-hour clock, or
// the all-day literal.
func FormatEventTime(start, end time.Time, allDay bool) string {
	if allDay {
		return AllDayLabel
	}
	return fmt.Sprintf("%s - %s", start.Format("3:04 PM"), end.Format("3:04 PM"))
}
