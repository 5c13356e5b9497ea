package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Menu and section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			Underline(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Option number in menus
	KeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)
