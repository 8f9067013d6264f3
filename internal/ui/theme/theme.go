package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Indigo and teal on a dark slate background.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Strong = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCard).
			Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCard).
			Padding(0, 2)

	Chip = lipgloss.NewStyle().
		Foreground(Text).
		Background(Border).
		Padding(0, 1)

	ChipFocused = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true).
			Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)

// TierColor maps a career tier to its badge color.
func TierColor(tier string) lipgloss.Style {
	switch tier {
	case "high":
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case "med":
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TextDim).Bold(true)
	}
}

// GapColor maps a gap bucket kind to its label color.
func GapColor(kind string) lipgloss.Style {
	switch kind {
	case "strengths":
		return lipgloss.NewStyle().Foreground(Success)
	case "develop":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Secondary)
	}
}
