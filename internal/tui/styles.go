package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the watch screen
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple - headers
	errorColor   = lipgloss.Color("#FF5555") // Red - scan failures
	mutedColor   = lipgloss.Color("#626262") // Gray - status line
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
