// Package tui implements the terminal interface of the estimator: the
// tabbed views over the session, the entry forms, and the export
// keybindings. The TUI owns no domain state — every number it renders
// comes from the session's computed-value surface.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// PrimaryColor is the main theme color (safety orange).
	PrimaryColor = lipgloss.Color("#FF8C42")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(SubtleColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(PrimaryColor).
			Underline(true)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	totalsBarStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("#333"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	formLabelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(SubtleColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Width(28).
				Bold(true).
				Foreground(PrimaryColor)
)
