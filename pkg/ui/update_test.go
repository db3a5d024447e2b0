package ui

import (
	"errors"
	"testing"
	"time"

	"lexcal/pkg/api"
	"lexcal/pkg/config"
)

func newTestModel() Model {
	return NewModel(api.NewClient("http://127.0.0.1:1", nil, nil), config.Config{}, config.Styles{}, "", 0)
}

func testEvent(id int, title string) api.Event {
	start := time.Date(2026, 1, 10, 14, 0, 0, 0, time.Local)
	return api.Event{
		ID:        id,
		Title:     title,
		EventType: api.TypeMeeting,
		Status:    api.StatusScheduled,
		Priority:  api.PriorityMedium,
		StartTime: api.NewLocalTime(start),
		EndTime:   api.NewLocalTime(start.Add(time.Hour)),
		CaseID:    1,
	}
}

func apply(t *testing.T, m Model, msg interface{}) Model {
	t.Helper()
	res, _ := m.Update(msg)
	out, ok := res.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", res)
	}
	return out
}

func TestStaleListResponseDropped(t *testing.T) {
	m := newTestModel()

	fresh := []api.Event{testEvent(1, "fresh")}
	stale := []api.Event{testEvent(2, "stale")}

	m = apply(t, m, eventsLoadedMsg{seq: 2, events: fresh})
	m = apply(t, m, eventsLoadedMsg{seq: 1, events: stale})

	if len(m.events) != 1 || m.events[0].Title != "fresh" {
		t.Errorf("stale response overwrote the collection: %+v", m.events)
	}
	if m.appliedSeq != 2 {
		t.Errorf("appliedSeq = %d, want 2", m.appliedSeq)
	}
}

func TestFetchErrorKeepsCollection(t *testing.T) {
	m := newTestModel()
	m = apply(t, m, eventsLoadedMsg{seq: 1, events: []api.Event{testEvent(1, "kept")}})
	m = apply(t, m, eventsLoadedMsg{seq: 2, err: errors.New("store down")})

	if len(m.events) != 1 || m.events[0].Title != "kept" {
		t.Errorf("fetch error wiped the collection: %+v", m.events)
	}
	if m.err == nil {
		t.Errorf("fetch error not surfaced")
	}
	if m.loading {
		t.Errorf("still loading after error response")
	}
}

func TestFetchSeqIncrements(t *testing.T) {
	m := newTestModel()
	m.fetchEventsCmd()
	m.fetchEventsCmd()
	if m.fetchSeq != 2 {
		t.Errorf("fetchSeq = %d after two fetches, want 2", m.fetchSeq)
	}
	if !m.loading {
		t.Errorf("loading not set by fetch")
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Model)
	}{
		{"empty title", func(m *Model) {
			m.caseInput.SetValue("3")
		}},
		{"missing case", func(m *Model) {
			m.titleInput.SetValue("Deposition prep")
			m.caseInput.SetValue("")
		}},
		{"non-numeric case", func(m *Model) {
			m.titleInput.SetValue("Deposition prep")
			m.caseInput.SetValue("CV-42")
		}},
		{"bad date", func(m *Model) {
			m.titleInput.SetValue("Deposition prep")
			m.caseInput.SetValue("3")
			m.dateInput.SetValue("tomorrow")
		}},
		{"end before start", func(m *Model) {
			m.titleInput.SetValue("Deposition prep")
			m.caseInput.SetValue("3")
			m.dateInput.SetValue("2026-01-10")
			m.startInput.SetValue("15:00")
			m.endInput.SetValue("14:00")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m.mode = AddMode
			m.resetInputs()
			tt.setup(&m)

			if cmd := m.dispatchSubmit(); cmd != nil {
				t.Errorf("invalid draft produced a store command")
			}
			if m.formErr == "" {
				t.Errorf("no validation message set")
			}
			if m.submitting {
				t.Errorf("submitting set despite validation failure")
			}
		})
	}
}

func TestSubmitValidDraft(t *testing.T) {
	m := newTestModel()
	m.mode = AddMode
	m.resetInputs()
	m.titleInput.SetValue("Deposition prep")
	m.caseInput.SetValue("3")
	m.dateInput.SetValue("2026-01-10")
	m.startInput.SetValue("14:00")
	m.endInput.SetValue("15:00")

	cmd := m.dispatchSubmit()
	if cmd == nil {
		t.Fatal("valid draft produced no command")
	}
	if !m.submitting {
		t.Errorf("submitting not set")
	}
	if m.formErr != "" {
		t.Errorf("formErr = %q on a valid draft", m.formErr)
	}

	// A second submit while in flight is a no-op
	if cmd := m.dispatchSubmit(); cmd != nil {
		t.Errorf("double submit produced a second command")
	}
}

func TestSaveErrorKeepsFormOpen(t *testing.T) {
	m := newTestModel()
	m.mode = AddMode
	m.resetInputs()
	m.titleInput.SetValue("Deposition prep")
	m.submitting = true

	m = apply(t, m, eventSavedMsg{err: errors.New("title is required")})

	if m.mode != AddMode {
		t.Errorf("form closed on save error, mode = %v", m.mode)
	}
	if m.titleInput.Value() != "Deposition prep" {
		t.Errorf("draft discarded on save error")
	}
	if m.formErr != "title is required" {
		t.Errorf("formErr = %q", m.formErr)
	}
	if m.submitting {
		t.Errorf("submitting still set after response")
	}
}

func TestCreatePrependsAndClosesForm(t *testing.T) {
	m := newTestModel()
	m.events = []api.Event{testEvent(2, "existing")}
	m.mode = AddMode

	created := testEvent(9, "new hearing")
	m = apply(t, m, eventSavedMsg{event: &created, created: true})

	if len(m.events) != 2 || m.events[0].ID != 9 {
		t.Errorf("created event not prepended: %+v", m.events)
	}
	if m.mode != NormalMode {
		t.Errorf("mode = %v after successful create, want NormalMode", m.mode)
	}
}

func TestUpdateReplacesEntryAndClearsDetail(t *testing.T) {
	m := newTestModel()
	m.events = []api.Event{testEvent(1, "before"), testEvent(2, "other")}
	m.detailEvent = &m.events[0]
	m.mode = EditMode

	updated := testEvent(1, "after")
	m = apply(t, m, eventSavedMsg{event: &updated})

	if len(m.events) != 2 {
		t.Fatalf("collection size changed: %d", len(m.events))
	}
	if m.events[0].Title != "after" {
		t.Errorf("entry not replaced: %+v", m.events[0])
	}
	if m.events[1].Title != "other" {
		t.Errorf("unrelated entry touched: %+v", m.events[1])
	}
	if m.detailEvent != nil {
		t.Errorf("detail view not cleared after edit")
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	m := newTestModel()
	m.events = []api.Event{testEvent(1, "a"), testEvent(2, "b"), testEvent(3, "c")}
	m.detailEvent = &m.events[1]
	m.mode = DetailViewMode

	m = apply(t, m, eventDeletedMsg{id: 2})

	if len(m.events) != 2 {
		t.Fatalf("collection size = %d, want 2", len(m.events))
	}
	for _, e := range m.events {
		if e.ID == 2 {
			t.Errorf("deleted event still present")
		}
	}
	if m.detailEvent != nil {
		t.Errorf("detail view still showing the deleted event")
	}
	if m.mode != NormalMode {
		t.Errorf("mode = %v, want NormalMode after deleting the detailed event", m.mode)
	}
}

func TestDeleteErrorLeavesCollection(t *testing.T) {
	m := newTestModel()
	m.events = []api.Event{testEvent(1, "a")}

	m = apply(t, m, eventDeletedMsg{id: 1, err: errors.New("store down")})

	if len(m.events) != 1 {
		t.Errorf("failed delete removed the event anyway")
	}
	if m.err == nil {
		t.Errorf("delete error not surfaced")
	}
}

func TestReminderSentIsMonotonic(t *testing.T) {
	m := newTestModel()
	m.events = []api.Event{testEvent(1, "a"), testEvent(2, "b")}

	m = apply(t, m, reminderSentMsg{id: 1})
	if !m.events[0].ReminderSent {
		t.Fatalf("reminder_sent not stamped")
	}
	if m.events[1].ReminderSent {
		t.Errorf("wrong event stamped")
	}

	// Nothing ever resets the flag
	m = apply(t, m, reminderSentMsg{id: 1})
	if !m.events[0].ReminderSent {
		t.Errorf("reminder_sent reset by repeat message")
	}
}

func TestClientConfirmedWithoutInvited(t *testing.T) {
	// The two client flags are independent; a confirmation recorded
	// over the phone never requires the invited flag.
	e := testEvent(1, "conference")
	e.ClientConfirmed = true

	m := newTestModel()
	m.mode = EditMode
	m.editingEvent = &e
	m.resetInputs()
	m.titleInput.SetValue(e.Title)
	m.caseInput.SetValue("1")
	m.dateInput.SetValue("2026-01-10")
	m.startInput.SetValue("14:00")
	m.endInput.SetValue("15:00")

	data, err := m.buildDraft()
	if err != nil {
		t.Fatalf("buildDraft() error: %v", err)
	}
	if data.ClientInvited || !data.ClientConfirmed {
		t.Errorf("client flags altered: invited=%v confirmed=%v", data.ClientInvited, data.ClientConfirmed)
	}
}

func TestBuildDraftAllDayNormalization(t *testing.T) {
	m := newTestModel()
	m.resetInputs()
	m.titleInput.SetValue("Filing deadline")
	m.caseInput.SetValue("4")
	m.dateInput.SetValue("2026-01-10")
	m.draftAllDay = true

	data, err := m.buildDraft()
	if err != nil {
		t.Fatalf("buildDraft() error: %v", err)
	}
	if data.StartTime.Hour() != 0 || data.StartTime.Day() != 10 {
		t.Errorf("all-day start = %v, want midnight of the day", data.StartTime)
	}
	if got := data.EndTime.Sub(data.StartTime.Time); got != 24*time.Hour {
		t.Errorf("all-day span = %v, want 24h", got)
	}
}

func TestBuildDraftLocationRouting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLink string
		wantLoc  string
	}{
		{"https link", "https://meet.example/x", "https://meet.example/x", ""},
		{"http link", "http://meet.example/x", "http://meet.example/x", ""},
		{"room", "Courtroom 4B", "", "Courtroom 4B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m.resetInputs()
			m.titleInput.SetValue("Hearing")
			m.caseInput.SetValue("4")
			m.dateInput.SetValue("2026-01-10")
			m.startInput.SetValue("09:00")
			m.endInput.SetValue("10:00")
			m.locationInput.SetValue(tt.input)

			data, err := m.buildDraft()
			if err != nil {
				t.Fatalf("buildDraft() error: %v", err)
			}
			if data.MeetingLink != tt.wantLink || data.Location != tt.wantLoc {
				t.Errorf("link=%q loc=%q, want link=%q loc=%q",
					data.MeetingLink, data.Location, tt.wantLink, tt.wantLoc)
			}
		})
	}
}

func TestCycleStatusFilterWrapsToEmpty(t *testing.T) {
	m := newTestModel()

	seen := map[api.EventStatus]bool{}
	for range api.EventStatuses {
		m.cycleStatusFilter()
		if m.filter.Status == "" {
			t.Fatalf("filter cleared before visiting every status: %v", seen)
		}
		seen[m.filter.Status] = true
	}
	m.cycleStatusFilter()
	if m.filter.Status != "" {
		t.Errorf("filter = %q after full cycle, want cleared", m.filter.Status)
	}
	if len(seen) != len(api.EventStatuses) {
		t.Errorf("visited %d statuses, want %d", len(seen), len(api.EventStatuses))
	}
}

func TestCycleTypeFilterWrapsToEmpty(t *testing.T) {
	m := newTestModel()
	for range api.EventTypes {
		m.cycleTypeFilter()
	}
	m.cycleTypeFilter()
	if m.filter.EventType != "" {
		t.Errorf("filter = %q after full cycle, want cleared", m.filter.EventType)
	}
}
