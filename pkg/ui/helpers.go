package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"lexcal/pkg/api"
	"lexcal/pkg/calendar"
)

// visibleEvents is the projection of the collection for the active
// view: the selected day's events in month and day view, the whole
// week in week view. Table cursor actions (edit, delete, detail)
// resolve against this slice.
func (m *Model) visibleEvents() []api.Event {
	switch m.viewMode {
	case api.WeekViewMode:
		return calendar.EventsInWeek(m.events, m.viewDate)

	case api.DayViewMode:
		// All-day events first, then the hour grid's contents in
		// order. Events outside the 08:00-19:00 window stay hidden
		// here, matching the rendered grid.
		out := calendar.AllDayEvents(m.events, m.viewDate)
		slots := calendar.HourSlots(m.events, m.viewDate)
		for hour := calendar.DayViewStartHour; hour <= calendar.DayViewEndHour; hour++ {
			out = append(out, slots[hour]...)
		}
		return out

	default:
		return calendar.EventsOnDate(m.events, m.selectedCalendarDate())
	}
}

// selectedCalendarDate is the date under the month grid cursor
func (m *Model) selectedCalendarDate() time.Time {
	if m.viewMode != api.MonthViewMode {
		return m.viewDate
	}
	return time.Date(m.calendarMonth.Year(), m.calendarMonth.Month(), m.calendarSelectedDay,
		0, 0, 0, 0, m.calendarMonth.Location())
}

// selectedEvent resolves the table cursor to an event, or nil
func (m *Model) selectedEvent() *api.Event {
	visible := m.visibleEvents()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return nil
	}
	ev := visible[idx]
	return &ev
}

// rebuildTable re-renders the table rows from the visible projection
func (m *Model) rebuildTable() {
	visible := m.visibleEvents()
	rows := make([]table.Row, 0, len(visible))

	for _, e := range visible {
		info := calendar.TypeStyle(e.EventType)
		typeTag := lipgloss.NewStyle().
			Foreground(lipgloss.Color(info.Color)).
			Render("[" + info.Label + "]")

		timeStr := calendar.FormatEventTime(e.StartTime.Time, e.EndTime.Time, e.AllDay)
		line := fmt.Sprintf("%s %s %s", timeStr, typeTag, e.Title)
		if e.CaseNumber != "" {
			line += lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.MutedTextColor)).
				Render(" (" + e.CaseNumber + ")")
		}
		if e.ReminderSent {
			line += " *"
		}
		rows = append(rows, table.Row{line})
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// stepPeriod moves the navigation date by one view-sized step
func (m *Model) stepPeriod(direction int) {
	switch m.viewMode {
	case api.DayViewMode:
		m.viewDate = m.viewDate.AddDate(0, 0, direction)
	case api.WeekViewMode:
		m.viewDate = m.viewDate.AddDate(0, 0, 7*direction)
	default:
		m.calendarMonth = m.calendarMonth.AddDate(0, direction, 0)
		m.calendarSelectedDay = 1
		m.viewDate = m.calendarMonth
	}
}

// jumpToToday resets navigation to the current date
func (m *Model) jumpToToday() {
	now := time.Now()
	m.viewDate = now
	m.calendarMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	m.calendarSelectedDay = now.Day()
}

// focusInput focuses the active form input and blurs the rest
func (m *Model) focusInput() {
	m.titleInput.Blur()
	m.caseInput.Blur()
	m.dateInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
	m.locationInput.Blur()

	switch m.activeInput {
	case inputTitle:
		m.titleInput.Focus()
	case inputCase:
		m.caseInput.Focus()
	case inputDate:
		m.dateInput.Focus()
	case inputStart:
		m.startInput.Focus()
	case inputEnd:
		m.endInput.Focus()
	case inputLocation:
		m.locationInput.Focus()
	}
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % inputCount
	m.focusInput()
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.activeInput = (m.activeInput - 1 + inputCount) % inputCount
	m.focusInput()
}

// seedFormFromEvent clones an existing event into the form for editing
func (m *Model) seedFormFromEvent(e *api.Event) {
	m.resetInputs()
	m.titleInput.SetValue(e.Title)
	m.caseInput.SetValue(strconv.Itoa(e.CaseID))
	m.dateInput.SetValue(e.StartTime.Format("2006-01-02"))
	if !e.AllDay {
		m.startInput.SetValue(e.StartTime.Format("15:04"))
		m.endInput.SetValue(e.EndTime.Format("15:04"))
	}
	if e.MeetingLink != "" {
		m.locationInput.SetValue(e.MeetingLink)
	} else {
		m.locationInput.SetValue(e.Location)
	}
	m.draftType = e.EventType
	m.draftPriority = e.Priority
	m.draftStatus = e.Status
	m.draftAllDay = e.AllDay
}

// seedFormForAdd initializes a fresh draft with the documented
// defaults, starting on the currently selected date.
func (m *Model) seedFormForAdd() {
	m.resetInputs()
	selected := m.selectedCalendarDate()
	draft := api.NewCreateEventData(selected)
	m.dateInput.SetValue(draft.StartTime.Format("2006-01-02"))
	m.draftType = draft.EventType
	m.draftPriority = draft.Priority
	m.draftStatus = draft.Status
	m.draftAllDay = draft.AllDay
}

// buildDraft validates the form and assembles the mutable field set.
// Validation failures short-circuit here, before any store call.
func (m *Model) buildDraft() (api.CreateEventData, error) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		return api.CreateEventData{}, errors.New("title is required")
	}

	caseID, err := strconv.Atoi(strings.TrimSpace(m.caseInput.Value()))
	if err != nil || caseID <= 0 {
		return api.CreateEventData{}, errors.New("a valid case id is required")
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(m.dateInput.Value()), time.Local)
	if err != nil {
		return api.CreateEventData{}, errors.New("invalid date format: use YYYY-MM-DD")
	}

	var start, end time.Time
	if m.draftAllDay {
		// All-day events get normalized to day boundaries
		start = day
		end = day.AddDate(0, 0, 1)
	} else {
		start, err = combineTime(day, m.startInput.Value())
		if err != nil {
			return api.CreateEventData{}, errors.New("invalid start time: use HH:MM")
		}
		end, err = combineTime(day, m.endInput.Value())
		if err != nil {
			return api.CreateEventData{}, errors.New("invalid end time: use HH:MM")
		}
		if end.Before(start) {
			return api.CreateEventData{}, errors.New("end time must not be before start time")
		}
	}

	location := strings.TrimSpace(m.locationInput.Value())
	data := api.CreateEventData{
		Title:                 title,
		EventType:             m.draftType,
		Status:                m.draftStatus,
		Priority:              m.draftPriority,
		StartTime:             api.NewLocalTime(start),
		EndTime:               api.NewLocalTime(end),
		AllDay:                m.draftAllDay,
		CaseID:                caseID,
		ReminderMinutesBefore: 30,
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data.MeetingLink = location
	} else {
		data.Location = location
	}

	// Editing keeps the fields the form does not surface
	if m.editingEvent != nil {
		keep := api.MutableFields(*m.editingEvent)
		data.Description = keep.Description
		data.AssignedToUserID = keep.AssignedToUserID
		data.Address = keep.Address
		data.ClientInvited = keep.ClientInvited
		data.ClientConfirmed = keep.ClientConfirmed
		data.ReminderMinutesBefore = keep.ReminderMinutesBefore
		data.IsRecurring = keep.IsRecurring
		data.RecurrencePattern = keep.RecurrencePattern
		data.DocumentID = keep.DocumentID
	}

	return data, nil
}

func combineTime(day time.Time, value string) (time.Time, error) {
	clock, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}

// applyCreated prepends a newly created event to the collection
func (m *Model) applyCreated(e api.Event) {
	m.events = append([]api.Event{e}, m.events...)
	m.rebuildTable()
}

// applyUpdated replaces the matching collection entry by id and
// clears a detail view that was showing the old record.
func (m *Model) applyUpdated(e api.Event) {
	for i := range m.events {
		if m.events[i].ID == e.ID {
			m.events[i] = e
			break
		}
	}
	if m.detailEvent != nil && m.detailEvent.ID == e.ID {
		m.detailEvent = nil
	}
	m.rebuildTable()
}

// applyDeleted removes exactly the entry with the given id and clears
// the detail view if it was showing it.
func (m *Model) applyDeleted(id int) {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			break
		}
	}
	if m.detailEvent != nil && m.detailEvent.ID == id {
		m.detailEvent = nil
	}
	m.rebuildTable()
}

// applyReminderSent stamps reminder_sent on the matching event. The
// flag only ever goes false to true here; nothing resets it.
func (m *Model) applyReminderSent(id int) {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].ReminderSent = true
			break
		}
	}
	if m.detailEvent != nil && m.detailEvent.ID == id {
		m.detailEvent.ReminderSent = true
	}
	m.rebuildTable()
}

// caseLabel renders "CV-2026-014 Smith v. Jones" for a case id, for
// the form's case picker hint.
func (m *Model) caseLabel(caseID int) string {
	for _, c := range m.cases {
		if c.ID == caseID {
			label := c.CaseNumber
			if c.Title != "" {
				label += " " + c.Title
			}
			if c.Client != "" {
				label += " / " + c.Client
			}
			return label
		}
	}
	return ""
}

// cycleStatusFilter advances the status filter through all statuses
// and back to "no filter".
func (m *Model) cycleStatusFilter() {
	statuses := api.EventStatuses
	if m.filter.Status == "" {
		m.filter.Status = statuses[0]
		return
	}
	for i, s := range statuses {
		if s == m.filter.Status {
			if i == len(statuses)-1 {
				m.filter.Status = ""
			} else {
				m.filter.Status = statuses[i+1]
			}
			return
		}
	}
	m.filter.Status = ""
}

// cycleTypeFilter advances the event type filter the same way
func (m *Model) cycleTypeFilter() {
	types := api.EventTypes
	if m.filter.EventType == "" {
		m.filter.EventType = types[0]
		return
	}
	for i, t := range types {
		if t == m.filter.EventType {
			if i == len(types)-1 {
				m.filter.EventType = ""
			} else {
				m.filter.EventType = types[i+1]
			}
			return
		}
	}
	m.filter.EventType = ""
}

func cycleType(t api.EventType) api.EventType {
	for i, v := range api.EventTypes {
		if v == t {
			return api.EventTypes[(i+1)%len(api.EventTypes)]
		}
	}
	return api.TypeMeeting
}

func cyclePriority(p api.EventPriority) api.EventPriority {
	for i, v := range api.EventPriorities {
		if v == p {
			return api.EventPriorities[(i+1)%len(api.EventPriorities)]
		}
	}
	return api.PriorityMedium
}

func cycleStatus(s api.EventStatus) api.EventStatus {
	for i, v := range api.EventStatuses {
		if v == s {
			return api.EventStatuses[(i+1)%len(api.EventStatuses)]
		}
	}
	return api.StatusScheduled
}
