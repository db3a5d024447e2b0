package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":          {"ctrl+b", "show/hide commands"},
	"QuitApp":           {"q", "quit"},
	"AddEvent":          {"a", "add event"},
	"EditEvent":         {"e", "edit event"},
	"DeleteEvent":       {"d", "delete event"},
	"OpenDetail":        {"enter", "open event details"},
	"SendReminder":      {"r", "send reminder"},
	"SearchEvents":      {"ctrl+f", "search events"},
	"CycleView":         {"v", "cycle month/week/day view"},
	"CycleStatusFilter": {"f", "cycle status filter"},
	"CycleTypeFilter":   {"t", "cycle event type filter"},
	"ToggleMyEvents":    {"m", "toggle my events only"},
	"ClearFilters":      {"c", "clear filters"},
	"PrevPeriod":        {"ctrl+left", "previous day/week/month"},
	"NextPeriod":        {"ctrl+right", "next day/week/month"},
	"JumpToToday":       {"h", "jump to today"},
	"Refresh":           {"ctrl+r", "refetch events"},
	"CalendarLeft":      {"left", "move left in calendar"},
	"CalendarRight":     {"right", "move right in calendar"},
	"CalendarUp":        {"up", "move up in calendar"},
	"CalendarDown":      {"down", "move down in calendar"},
	"CalendarSelect":    {"enter", "select day in calendar"},
}

type KeyMap struct {
	ShowHelp          key.Binding
	QuitApp           key.Binding
	AddEvent          key.Binding
	EditEvent         key.Binding
	DeleteEvent       key.Binding
	OpenDetail        key.Binding
	SendReminder      key.Binding
	SearchEvents      key.Binding
	CycleView         key.Binding
	CycleStatusFilter key.Binding
	CycleTypeFilter   key.Binding
	ToggleMyEvents    key.Binding
	ClearFilters      key.Binding
	PrevPeriod        key.Binding
	NextPeriod        key.Binding
	JumpToToday       key.Binding
	Refresh           key.Binding
	CalendarLeft      key.Binding
	CalendarRight     key.Binding
	CalendarUp        key.Binding
	CalendarDown      key.Binding
	CalendarSelect    key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddEvent":
			km.AddEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditEvent":
			km.EditEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteEvent":
			km.DeleteEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "OpenDetail":
			km.OpenDetail = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SendReminder":
			km.SendReminder = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SearchEvents":
			km.SearchEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleView":
			km.CycleView = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleStatusFilter":
			km.CycleStatusFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleTypeFilter":
			km.CycleTypeFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleMyEvents":
			km.ToggleMyEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ClearFilters":
			km.ClearFilters = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "PrevPeriod":
			km.PrevPeriod = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NextPeriod":
			km.NextPeriod = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "JumpToToday":
			km.JumpToToday = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Refresh":
			km.Refresh = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarLeft":
			km.CalendarLeft = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarRight":
			km.CalendarRight = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarUp":
			km.CalendarUp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarDown":
			km.CalendarDown = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarSelect":
			km.CalendarSelect = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
