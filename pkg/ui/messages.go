package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lexcal/pkg/api"
)

// refreshMsg asks Update to issue a fresh event fetch
type refreshMsg struct{}

func refreshNow() tea.Msg {
	return refreshMsg{}
}

// eventsLoadedMsg carries a list response plus the sequence number of
// the request that produced it.
type eventsLoadedMsg struct {
	seq    int
	events []api.Event
	err    error
}

// casesLoadedMsg carries the case summaries for the form's case picker
type casesLoadedMsg struct {
	cases []api.CaseSummary
	err   error
}

// eventSavedMsg is the result of a create or update call
type eventSavedMsg struct {
	event   *api.Event
	created bool
	err     error
}

// eventDeletedMsg is the result of a delete call
type eventDeletedMsg struct {
	id  int
	err error
}

// reminderSentMsg is the result of a send-reminder call
type reminderSentMsg struct {
	id  int
	err error
}

// fetchEventsCmd snapshots the current filter state into a request and
// returns the command that runs it. Each call gets the next sequence
// number; responses arriving out of order are discarded in Update.
func (m *Model) fetchEventsCmd() tea.Cmd {
	m.fetchSeq++
	m.loading = true

	seq := m.fetchSeq
	query := api.BuildQuery(m.filter, m.viewMode, m.viewDate)
	client := m.client

	return func() tea.Msg {
		events, err := client.ListEvents(context.Background(), query)
		return eventsLoadedMsg{seq: seq, events: events, err: err}
	}
}

func (m Model) fetchCasesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cases, err := client.ListCases(context.Background())
		return casesLoadedMsg{cases: cases, err: err}
	}
}

func (m Model) createEventCmd(data api.CreateEventData) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreateEvent(context.Background(), data)
		return eventSavedMsg{event: created, created: true, err: err}
	}
}

func (m Model) updateEventCmd(id int, data api.CreateEventData) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		updated, err := client.UpdateEvent(context.Background(), id, data)
		return eventSavedMsg{event: updated, err: err}
	}
}

func (m Model) deleteEventCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteEvent(context.Background(), id)
		return eventDeletedMsg{id: id, err: err}
	}
}

func (m Model) sendReminderCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.SendReminder(context.Background(), id)
		return reminderSentMsg{id: id, err: err}
	}
}
