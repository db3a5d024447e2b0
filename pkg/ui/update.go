package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lexcal/pkg/api"
	"lexcal/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case refreshMsg:
		cmds = append(cmds, m.fetchEventsCmd())

	case eventsLoadedMsg:
		if msg.seq <= m.appliedSeq {
			// A newer response already landed; this one is stale
			utils.Log("Dropping stale list response (seq %d, applied %d)", msg.seq, m.appliedSeq)
			break
		}
		m.loading = false
		if msg.err != nil {
			// Keep whatever is already on screen; stale data beats a
			// blank calendar.
			m.err = msg.err
			utils.LogError(msg.err, "Event fetch failed")
			break
		}
		m.appliedSeq = msg.seq
		m.events = msg.events
		m.err = nil
		m.rebuildTable()

	case casesLoadedMsg:
		if msg.err != nil {
			utils.LogError(msg.err, "Case fetch failed")
			break
		}
		m.cases = msg.cases

	case eventSavedMsg:
		m.submitting = false
		if msg.err != nil {
			// Leave the dialog open with the draft intact
			m.formErr = msg.err.Error()
			utils.LogError(msg.err, "Save failed")
			break
		}
		if msg.created {
			m.applyCreated(*msg.event)
		} else {
			m.applyUpdated(*msg.event)
		}
		m.mode = NormalMode
		m.editingEvent = nil
		m.resetInputs()

	case eventDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			utils.LogError(msg.err, "Delete failed")
			break
		}
		m.applyDeleted(msg.id)
		if m.mode == DetailViewMode && m.detailEvent == nil {
			m.mode = NormalMode
		}

	case reminderSentMsg:
		if msg.err != nil {
			m.err = msg.err
			utils.LogError(msg.err, "Reminder dispatch failed")
			break
		}
		m.applyReminderSent(msg.id)

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.JumpToToday):
				m.jumpToToday()
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.Refresh):
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.AddEvent):
				m.mode = AddMode
				m.editingEvent = nil
				m.seedFormForAdd()

			case key.Matches(msg, m.keyMap.EditEvent):
				if ev := m.selectedEvent(); ev != nil {
					m.mode = EditMode
					m.editingEvent = ev
					m.seedFormFromEvent(ev)
				}

			case key.Matches(msg, m.keyMap.DeleteEvent):
				if ev := m.selectedEvent(); ev != nil {
					m.mode = DeleteConfirmMode
					m.editingEvent = ev
				}

			case key.Matches(msg, m.keyMap.SendReminder):
				if ev := m.selectedEvent(); ev != nil && !ev.ReminderSent {
					cmds = append(cmds, m.sendReminderCmd(ev.ID))
				}

			case key.Matches(msg, m.keyMap.SearchEvents):
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue(m.filter.Search)
				return m, nil

			case key.Matches(msg, m.keyMap.CycleView):
				switch m.viewMode {
				case api.MonthViewMode:
					m.viewMode = api.WeekViewMode
					m.viewDate = m.selectedCalendarDate()
				case api.WeekViewMode:
					m.viewMode = api.DayViewMode
				default:
					m.viewMode = api.MonthViewMode
				}
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.CycleStatusFilter):
				m.cycleStatusFilter()
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.CycleTypeFilter):
				m.cycleTypeFilter()
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.ToggleMyEvents):
				if m.filter.AssignedTo == 0 {
					m.filter.AssignedTo = m.myUserID
				} else {
					m.filter.AssignedTo = 0
				}
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.ClearFilters):
				m.filter = api.Filter{}
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.PrevPeriod):
				m.stepPeriod(-1)
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.NextPeriod):
				m.stepPeriod(1)
				cmds = append(cmds, m.fetchEventsCmd())

			// Month grid navigation
			case key.Matches(msg, m.keyMap.CalendarLeft) && m.viewMode == api.MonthViewMode:
				if m.calendarSelectedDay > 1 {
					m.calendarSelectedDay--
				} else {
					m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
					m.calendarSelectedDay = daysInMonth(m.calendarMonth)
				}
				m.rebuildTable()

			case key.Matches(msg, m.keyMap.CalendarRight) && m.viewMode == api.MonthViewMode:
				if m.calendarSelectedDay < daysInMonth(m.calendarMonth) {
					m.calendarSelectedDay++
				} else {
					m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
					m.calendarSelectedDay = 1
				}
				m.rebuildTable()

			case key.Matches(msg, m.keyMap.CalendarUp) && m.viewMode == api.MonthViewMode:
				newDay := m.calendarSelectedDay - 7
				if newDay < 1 {
					m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
					m.calendarSelectedDay = daysInMonth(m.calendarMonth) + newDay
					if m.calendarSelectedDay < 1 {
						m.calendarSelectedDay = 1
					}
				} else {
					m.calendarSelectedDay = newDay
				}
				m.rebuildTable()

			case key.Matches(msg, m.keyMap.CalendarDown) && m.viewMode == api.MonthViewMode:
				last := daysInMonth(m.calendarMonth)
				newDay := m.calendarSelectedDay + 7
				if newDay > last {
					m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
					m.calendarSelectedDay = newDay - last
				} else {
					m.calendarSelectedDay = newDay
				}
				m.rebuildTable()

			case key.Matches(msg, m.keyMap.CalendarSelect) && m.viewMode == api.MonthViewMode:
				// Jump into day view on the selected day
				m.viewDate = m.selectedCalendarDate()
				m.viewMode = api.DayViewMode
				cmds = append(cmds, m.fetchEventsCmd())

			case key.Matches(msg, m.keyMap.OpenDetail):
				if ev := m.selectedEvent(); ev != nil {
					m.mode = DetailViewMode
					m.detailEvent = ev
				}
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				// Cancel discards the draft; an in-flight submission is
				// not cancelled, its response is simply ignored by the
				// closed form.
				m.mode = NormalMode
				m.resetInputs()
				m.editingEvent = nil

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "ctrl+t":
				m.draftType = cycleType(m.draftType)

			case "ctrl+p":
				m.draftPriority = cyclePriority(m.draftPriority)

			case "ctrl+s":
				m.draftStatus = cycleStatus(m.draftStatus)

			case "ctrl+a":
				m.draftAllDay = !m.draftAllDay

			case "enter":
				if m.activeInput == inputLocation { // last field submits
					if c := m.dispatchSubmit(); c != nil {
						cmds = append(cmds, c)
					}
				} else {
					m.focusNextInput()
				}
			}

			// Route typing to the active input
			switch m.activeInput {
			case inputTitle:
				m.titleInput, cmd = m.titleInput.Update(msg)
			case inputCase:
				m.caseInput, cmd = m.caseInput.Update(msg)
			case inputDate:
				m.dateInput, cmd = m.dateInput.Update(msg)
			case inputStart:
				m.startInput, cmd = m.startInput.Update(msg)
			case inputEnd:
				m.endInput, cmd = m.endInput.Update(msg)
			case inputLocation:
				m.locationInput, cmd = m.locationInput.Update(msg)
			}
			cmds = append(cmds, cmd)

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.filter.Search = ""
				m.searchInput.SetValue("")
				cmds = append(cmds, m.fetchEventsCmd())

			case "enter":
				m.mode = NormalMode

			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				cmds = append(cmds, cmd)
				// Live search: every keystroke re-runs the query. The
				// sequence guard sorts out responses racing each other.
				if m.filter.Search != m.searchInput.Value() {
					m.filter.Search = m.searchInput.Value()
					cmds = append(cmds, m.fetchEventsCmd())
				}
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingEvent != nil {
					utils.Log("Deleting event ID: %d", m.editingEvent.ID)
					cmds = append(cmds, m.deleteEventCmd(m.editingEvent.ID))
				}
				m.mode = NormalMode
				m.editingEvent = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingEvent = nil
			}

		case DetailViewMode:
			switch {
			case msg.String() == "esc":
				m.mode = NormalMode
				m.detailEvent = nil

			case key.Matches(msg, m.keyMap.SendReminder):
				if m.detailEvent != nil && !m.detailEvent.ReminderSent {
					cmds = append(cmds, m.sendReminderCmd(m.detailEvent.ID))
				}

			case key.Matches(msg, m.keyMap.EditEvent):
				if m.detailEvent != nil {
					m.mode = EditMode
					m.editingEvent = m.detailEvent
					m.seedFormFromEvent(m.detailEvent)
				}

			case key.Matches(msg, m.keyMap.DeleteEvent):
				if m.detailEvent != nil {
					m.mode = DeleteConfirmMode
					m.editingEvent = m.detailEvent
				}
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 14)
	}

	// Table navigation outside the month grid
	if m.mode == NormalMode && m.viewMode != api.MonthViewMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// dispatchSubmit validates the draft and issues the store call.
// Validation failures never reach the client; a submission already in
// flight blocks a second one.
func (m *Model) dispatchSubmit() tea.Cmd {
	if m.submitting {
		return nil
	}

	data, err := m.buildDraft()
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	m.formErr = ""
	m.submitting = true

	if m.mode == EditMode && m.editingEvent != nil {
		return m.updateEventCmd(m.editingEvent.ID, data)
	}
	return m.createEventCmd(data)
}

func daysInMonth(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}
