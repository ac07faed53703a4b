package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the list views. Forms handle
// their own keys.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Add         key.Binding
	Delete      key.Binding
	ToggleUnits key.Binding
	Converters  key.Binding
	Currency    key.Binding
	Language    key.Binding
	ExportPrint key.Binding
	ExportCSV   key.Binding
	ExportXLSX  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ToggleUnits: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "imperial/metric"),
		),
		Converters: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "unit converters"),
		),
		Currency: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "currency"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		ExportPrint: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "print document"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export csv"),
		),
		ExportXLSX: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "export workbook"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
