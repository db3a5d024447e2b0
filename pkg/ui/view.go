package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"lexcal/pkg/api"
	"lexcal/pkg/calendar"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		// A failed first load gets a full retry screen; a failed
		// refresh keeps the stale collection visible with an error
		// indicator in the footer instead.
		if m.err != nil && len(m.events) == 0 && !m.loading {
			sb.WriteString(m.titleBar(" LexCal - Attorney Calendar "))
			sb.WriteString("\n\n")
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.ErrorColor)).
				Render(fmt.Sprintf("Failed to load events: %v", m.err)))
			sb.WriteString("\n\n")
			sb.WriteString("Press ctrl+r to retry.")
			sb.WriteString("\n")
			sb.WriteString(m.helpBar())
			return sb.String()
		}

		sb.WriteString(m.titleBar(" LexCal - Attorney Calendar "))
		if m.userName != "" {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.MutedTextColor)).
				Render("  signed in as " + m.userName))
		}
		sb.WriteString("\n\n")

		switch m.viewMode {
		case api.MonthViewMode:
			sb.WriteString(m.renderCalendar())
			sb.WriteString("\n")
			sb.WriteString(m.renderSelectedDayList())
			sb.WriteString("\n")
			sb.WriteString(m.renderUpcoming())

		case api.WeekViewMode:
			weekStart, weekEnd := api.WeekBounds(m.viewDate)
			heading := fmt.Sprintf("Week of %s - %s",
				weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"))
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render(heading))
			sb.WriteString("\n")
			sb.WriteString(m.table.View())
			sb.WriteString("\n")

		case api.DayViewMode:
			sb.WriteString(lipgloss.NewStyle().Bold(true).
				Render(m.viewDate.Format("Monday, January 2, 2006")))
			sb.WriteString("\n")
			sb.WriteString(m.renderDaySchedule())
			sb.WriteString("\n")
			sb.WriteString(m.table.View())
			sb.WriteString("\n")
		}

		sb.WriteString(m.renderStatusLine())
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.titleBar(" New Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Event "))
		sb.WriteString("\n\n")

		if m.editingEvent != nil {
			e := m.editingEvent
			sb.WriteString("Are you sure you want to delete this event?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
			sb.WriteString(fmt.Sprintf("When:  %s, %s\n",
				e.StartTime.Format("Jan 2, 2006"),
				calendar.FormatEventTime(e.StartTime.Time, e.EndTime.Time, e.AllDay)))
			if e.CaseNumber != "" {
				sb.WriteString(fmt.Sprintf("Case:  %s\n", e.CaseNumber))
			}
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case DetailViewMode:
		sb.WriteString(m.titleBar(" Event Details "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderDetail())

	case SearchMode:
		sb.WriteString(m.titleBar(" Search Events "))
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render(fmt.Sprintf("%d events match", len(m.events))))
		sb.WriteString("\n")

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error indicator when stale data is still on screen
	if m.err != nil && m.mode == NormalMode && len(m.events) > 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\nError: %v (showing last loaded events)", m.err)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(text)
}

// renderStatusLine shows the active view, filters, and the aggregate
// counts derived from the collection.
func (m Model) renderStatusLine() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("view: %s", m.viewMode))

	if m.filter.Status != "" {
		parts = append(parts, "status: "+calendar.StatusLabel(m.filter.Status))
	}
	if m.filter.EventType != "" {
		parts = append(parts, "type: "+calendar.TypeStyle(m.filter.EventType).Label)
	}
	if m.filter.AssignedTo != 0 {
		parts = append(parts, "my events")
	}
	if m.filter.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.filter.Search))
	}
	if m.loading {
		parts = append(parts, "loading...")
	}

	stats := calendar.Collect(m.events)
	statLine := fmt.Sprintf("%d events | %d hearings | %d court dates | %d deadlines | %d meetings | %d consultations | court events: %d",
		stats.Total, stats.Hearings, stats.CourtDates, stats.Deadlines,
		stats.Meetings, stats.Consultations, stats.CourtEvents())

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))
	return style.Render(strings.Join(parts, " | ")) + "\n" +
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor)).Render(statLine)
}

// renderSelectedDayList shows the events on the month grid's selected
// day via the shared table.
func (m Model) renderSelectedDayList() string {
	var sb strings.Builder
	selected := m.selectedCalendarDate()
	sb.WriteString(lipgloss.NewStyle().Bold(true).
		Render("Events on " + selected.Format("Jan 2, 2006")))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	return sb.String()
}

// renderUpcoming lists the next scheduled events across the whole
// collection.
func (m Model) renderUpcoming() string {
	var sb strings.Builder
	upcoming := calendar.Upcoming(m.events, time.Now(), calendar.DefaultUpcomingLimit)

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Upcoming"))
	sb.WriteString("\n")
	if len(upcoming) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render("Nothing scheduled."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, e := range upcoming {
		info := calendar.TypeStyle(e.EventType)
		line := fmt.Sprintf("%s  %s %s",
			e.StartTime.Format("Jan 2 3:04 PM"),
			lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render("["+info.Label+"]"),
			e.Title)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderDaySchedule renders the fixed 08:00-19:00 hour grid for the
// selected day. Events outside the window do not appear.
func (m Model) renderDaySchedule() string {
	var sb strings.Builder

	allDay := calendar.AllDayEvents(m.events, m.viewDate)
	for _, e := range allDay {
		info := calendar.TypeStyle(e.EventType)
		sb.WriteString(fmt.Sprintf("%8s  %s %s\n", calendar.AllDayLabel,
			lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render("["+info.Label+"]"),
			e.Title))
	}

	slots := calendar.HourSlots(m.events, m.viewDate)
	hourStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor))

	for hour := calendar.DayViewStartHour; hour <= calendar.DayViewEndHour; hour++ {
		label := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("3 PM")
		sb.WriteString(hourStyle.Render(fmt.Sprintf("%5s |", label)))

		events := slots[hour]
		if len(events) == 0 {
			sb.WriteString("\n")
			continue
		}

		names := make([]string, 0, len(events))
		for _, e := range events {
			info := calendar.TypeStyle(e.EventType)
			names = append(names, fmt.Sprintf("%s %s",
				lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render("["+info.Label+"]"),
				e.Title))
		}
		sb.WriteString(" " + strings.Join(names, "; "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderForm renders the input form for adding/editing events
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Title:\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Case ID:\n")
	sb.WriteString(m.caseInput.View())
	if id, err := parseCaseID(m.caseInput.Value()); err == nil {
		if label := m.caseLabel(id); label != "" {
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.MutedTextColor)).
				Render("  " + label))
		}
	}
	sb.WriteString("\n\n")

	sb.WriteString("Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	if !m.draftAllDay {
		sb.WriteString("Start (HH:MM):\n")
		sb.WriteString(m.startInput.View())
		sb.WriteString("\n\n")

		sb.WriteString("End (HH:MM):\n")
		sb.WriteString(m.endInput.View())
		sb.WriteString("\n\n")
	}

	sb.WriteString("Location or meeting link:\n")
	sb.WriteString(m.locationInput.View())
	sb.WriteString("\n\n")

	typeInfo := calendar.TypeStyle(m.draftType)
	allDayStr := "no"
	if m.draftAllDay {
		allDayStr = "yes"
	}
	sb.WriteString(fmt.Sprintf("Type: %s (ctrl+t)   Priority: %s (ctrl+p)   Status: %s (ctrl+s)   All day: %s (ctrl+a)\n",
		lipgloss.NewStyle().Foreground(lipgloss.Color(typeInfo.Color)).Render(typeInfo.Label),
		lipgloss.NewStyle().Foreground(lipgloss.Color(calendar.PriorityColor(m.draftPriority))).Render(string(m.draftPriority)),
		calendar.StatusLabel(m.draftStatus),
		allDayStr))

	if m.submitting {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Render("Saving..."))
	}

	if m.formErr != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(m.formErr))
	}

	return sb.String()
}

// renderDetail renders the full event record
func (m Model) renderDetail() string {
	if m.detailEvent == nil {
		return "No event selected."
	}
	e := m.detailEvent

	var sb strings.Builder
	info := calendar.TypeStyle(e.EventType)

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(e.Title))
	sb.WriteString("\n\n")

	write := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(fmt.Sprintf("%-12s %s\n", label+":", value))
	}

	write("When", fmt.Sprintf("%s, %s",
		e.StartTime.Format("Monday, Jan 2, 2006"),
		calendar.FormatEventTime(e.StartTime.Time, e.EndTime.Time, e.AllDay)))
	write("Type", lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render(info.Label))
	write("Priority", string(e.Priority))
	write("Status", calendar.StatusLabel(e.Status))

	caseLine := e.CaseNumber
	if e.CaseTitle != "" {
		caseLine += " " + e.CaseTitle
	}
	write("Case", caseLine)
	write("Client", e.ClientName)
	write("Assigned to", e.AssignedToName)
	write("Where", e.DisplayLocation())
	write("Description", e.Description)

	invited := "no"
	if e.ClientInvited {
		invited = "yes"
	}
	confirmed := "no"
	if e.ClientConfirmed {
		confirmed = "yes"
	}
	write("Client invited", invited)
	write("Client confirmed", confirmed)

	reminder := fmt.Sprintf("%d minutes before", e.ReminderMinutesBefore)
	if e.ReminderSent {
		reminder += " (sent)"
	}
	write("Reminder", reminder)

	if e.IsRecurring {
		write("Recurs", e.RecurrencePattern)
	}
	write("Document", e.DocumentName)

	return sb.String()
}

// renderHelp renders the fullscreen command list
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddEvent)
	addCommand(m.keyMap.EditEvent)
	addCommand(m.keyMap.DeleteEvent)
	addCommand(m.keyMap.OpenDetail)
	addCommand(m.keyMap.SendReminder)
	addCommand(m.keyMap.SearchEvents)
	addCommand(m.keyMap.CycleView)
	addCommand(m.keyMap.CycleStatusFilter)
	addCommand(m.keyMap.CycleTypeFilter)
	addCommand(m.keyMap.ToggleMyEvents)
	addCommand(m.keyMap.ClearFilters)
	addCommand(m.keyMap.Refresh)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Navigation Commands"))
	sb.WriteString("\n\n")

	addCommand(m.keyMap.PrevPeriod)
	addCommand(m.keyMap.NextPeriod)
	addCommand(m.keyMap.JumpToToday)
	addCommand(m.keyMap.CalendarLeft)
	addCommand(m.keyMap.CalendarRight)
	addCommand(m.keyMap.CalendarUp)
	addCommand(m.keyMap.CalendarDown)
	addCommand(m.keyMap.CalendarSelect)

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		if m.viewMode == api.MonthViewMode {
			addAction("←↑↓→", "nav")
			addAction("enter", "day view")
		} else {
			addAction("enter", "details")
		}
		addAction("a", "add")
		addAction("e", "edit")
		addAction("d", "del")
		addAction("r", "remind")
		addAction("v", "view")
		addAction("f/t/m", "filters")
		addAction("ctrl+f", "search")
		addAction("h", "today")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case DetailViewMode:
		addAction("r", "remind")
		addAction("e", "edit")
		addAction("d", "del")
		addAction("esc", "back")

	case SearchMode:
		addAction("enter", "apply")
		addAction("esc", "clear")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// renderCalendar renders the month grid, marking days that have
// events in the in-memory collection.
func (m Model) renderCalendar() string {
	var sb strings.Builder

	firstDay := m.calendarMonth
	lastDay := firstDay.AddDate(0, 1, 0).AddDate(0, 0, -1)
	firstWeekday := int(firstDay.Weekday())
	monthDays := lastDay.Day()

	monthYearHeader := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(" " + firstDay.Format("January 2006") + " ")
	sb.WriteString(monthYearHeader)
	sb.WriteString("\n\n")

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayRow := ""
	for _, day := range weekdays {
		weekdayRow += fmt.Sprintf("%-4s", day)
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(weekdayRow))
	sb.WriteString("\n")

	daysWithEvents := calendar.DaysWithEvents(m.events, firstDay)
	now := time.Now()

	currentDay := 1
	for week := 0; week < 6; week++ {
		if currentDay > monthDays {
			break
		}

		row := ""
		for weekday := 0; weekday < 7; weekday++ {
			if week == 0 && weekday < firstWeekday {
				row += "    "
			} else if currentDay <= monthDays {
				dayStyle := lipgloss.NewStyle()

				isSelected := currentDay == m.calendarSelectedDay
				isToday := now.Year() == firstDay.Year() &&
					now.Month() == firstDay.Month() &&
					now.Day() == currentDay
				hasEvent := daysWithEvents[currentDay]

				if isSelected {
					dayStyle = dayStyle.Background(lipgloss.Color(m.styles.AccentColor)).
						Foreground(lipgloss.Color(m.styles.SelectedTextColor)).Bold(true)
				} else if isToday {
					dayStyle = dayStyle.Background(lipgloss.Color(m.styles.TodayBgColor)).
						Foreground(lipgloss.Color(m.styles.SelectedTextColor))
				} else if hasEvent {
					dayStyle = dayStyle.Foreground(lipgloss.Color(m.styles.EventDayColor)).Bold(true)
				}

				row += dayStyle.Render(fmt.Sprintf("%-4d", currentDay))
				currentDay++
			} else {
				row += "    "
			}
		}

		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

func parseCaseID(value string) (int, error) {
	var id int
	_, err := fmt.Sscanf(strings.TrimSpace(value), "%d", &id)
	return id, err
}
