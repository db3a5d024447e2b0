package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexcal/pkg/api"
	"lexcal/pkg/config"
	"lexcal/pkg/keymaps"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	DetailViewMode // full event record with reminder/edit/delete actions
	SearchMode
	HelpViewMode
)

// Form input indexes, in tab order
const (
	inputTitle = iota
	inputCase
	inputDate
	inputStart
	inputEnd
	inputLocation
	inputCount
)

// Model represents the application state
type Model struct {
	table  table.Model
	events []api.Event // canonical in-memory collection
	cases  []api.CaseSummary
	client *api.Client

	userName string
	myUserID int

	showCommands  bool
	width, height int
	err           error
	loading       bool

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	viewMode api.ViewMode
	filter   api.Filter
	viewDate time.Time

	// List responses are applied last-request-wins: every fetch gets a
	// sequence number and anything older than the last applied one is
	// dropped on arrival.
	fetchSeq   int
	appliedSeq int

	// Form state
	mode          InputMode
	titleInput    textinput.Model
	caseInput     textinput.Model
	dateInput     textinput.Model
	startInput    textinput.Model
	endInput      textinput.Model
	locationInput textinput.Model
	activeInput   int

	// Draft fields cycled by keys rather than typed
	draftType     api.EventType
	draftPriority api.EventPriority
	draftStatus   api.EventStatus
	draftAllDay   bool

	submitting bool
	formErr    string

	searchInput textinput.Model

	// Edit/delete/detail state
	editingEvent *api.Event
	detailEvent  *api.Event

	calendarMonth       time.Time
	calendarSelectedDay int
}

// NewModel creates a new UI model with the provided configuration
func NewModel(client *api.Client, cfg config.Config, styles config.Styles, userName string, userID int) Model {
	columns := []table.Column{
		{Title: "", Width: 72},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	// Single-column list: hide the header entirely
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})

	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Focus()
	titleInput.Width = 40

	caseInput := textinput.New()
	caseInput.Placeholder = "Case ID"
	caseInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD)"
	dateInput.Width = 40

	startInput := textinput.New()
	startInput.Placeholder = "Start time (HH:MM, 24h)"
	startInput.Width = 40

	endInput := textinput.New()
	endInput.Placeholder = "End time (HH:MM, 24h)"
	endInput.Width = 40

	locationInput := textinput.New()
	locationInput.Placeholder = "Location or meeting link"
	locationInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = "Search events by title, case or client"
	searchInput.Focus()
	searchInput.Width = 40

	now := time.Now()

	m := Model{
		table:               t,
		client:              client,
		config:              cfg,
		styles:              styles,
		keyMap:              keymaps.BuildKeyMap(cfg.KeyMap),
		userName:            userName,
		myUserID:            userID,
		mode:                NormalMode,
		titleInput:          titleInput,
		caseInput:           caseInput,
		dateInput:           dateInput,
		startInput:          startInput,
		endInput:            endInput,
		locationInput:       locationInput,
		searchInput:         searchInput,
		activeInput:         inputTitle,
		viewMode:            viewModeFromConfig(cfg.DefaultView),
		viewDate:            now,
		calendarMonth:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		calendarSelectedDay: now.Day(),
	}

	return m
}

func viewModeFromConfig(name string) api.ViewMode {
	switch name {
	case "week":
		return api.WeekViewMode
	case "day":
		return api.DayViewMode
	default:
		return api.MonthViewMode
	}
}

// Init kicks off the initial event and case fetches. The event fetch
// goes through a refreshMsg so the sequence counter is bumped inside
// Update, where model changes stick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshNow, m.fetchCasesCmd())
}

// resetInputs clears all form inputs and draft fields
func (m *Model) resetInputs() {
	m.titleInput.Reset()
	m.caseInput.Reset()
	m.dateInput.SetValue(m.viewDate.Format("2006-01-02"))
	m.startInput.Reset()
	m.endInput.Reset()
	m.locationInput.Reset()

	m.draftType = api.TypeMeeting
	m.draftPriority = api.PriorityMedium
	m.draftStatus = api.StatusScheduled
	m.draftAllDay = false
	m.formErr = ""
	m.submitting = false

	m.activeInput = inputTitle
	m.focusInput()
}
