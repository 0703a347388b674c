package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the styles used in the TUI.
type Styles struct {
	// Text styles
	Title  lipgloss.Style
	Subtle lipgloss.Style
	Header lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style

	// Transcript line styles
	Timeout lipgloss.Style
	RTTLow  lipgloss.Style // < 50ms
	RTTMed  lipgloss.Style // 50-150ms
	RTTHigh lipgloss.Style // > 150ms

	// Container styles
	StatusBar lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red

		Timeout: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red

		RTTLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green

		RTTMed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")), // Yellow

		RTTHigh: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1),
	}
}

// MinimalTheme returns a minimal style set with fewer colors.
func MinimalTheme() Styles {
	s := DefaultStyles()

	s.Title = lipgloss.NewStyle().Bold(true)
	s.Header = lipgloss.NewStyle().Bold(true)
	s.RTTLow = lipgloss.NewStyle()
	s.RTTMed = lipgloss.NewStyle()
	s.RTTHigh = lipgloss.NewStyle()

	return s
}
