package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the prompts and the summaries.
var (
	ColorAccent  = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorError   = lipgloss.Color("#FF5F5F")
	ColorMuted   = lipgloss.Color("#888888")
)

var (
	// Banner for the info screen
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	// Section headers inside a summary
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorAccent).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Hints attached to errors
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// File and directory names
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// Commands the user should type next
	CommandStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	DescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)
