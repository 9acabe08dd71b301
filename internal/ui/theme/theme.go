package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, taken from the game's red-on-navy look.
var (
	Primary   = lipgloss.Color("#FF4655") // Valorant Red
	Secondary = lipgloss.Color("#0FBFA8") // Teal
	Accent    = lipgloss.Color("#F5C542") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#ECE8E1") // Off White
	TextDim   = lipgloss.Color("#8B978F") // Sage Gray
	BgDark    = lipgloss.Color("#0F1923") // Deep Navy
	BgCard    = lipgloss.Color("#1F2731") // Dark Slate
	Border    = lipgloss.Color("#364966") // Steel
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Yes = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	No = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
