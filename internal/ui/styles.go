package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorSuccess = lipgloss.Color("#6BCF7F") // Green

	// Title above a list of choices
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Prompt line under a list or text input
	promptStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0)

	// Confirmation printed after a choice
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)
