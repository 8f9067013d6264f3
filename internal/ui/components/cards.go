package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections so
// they visually align.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 96)
}

// Card wraps content in a rounded-border card of total width w.
func Card(content string, w int, highlighted bool) string {
	border := theme.Border
	if highlighted {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(w - 2).
		Padding(0, 1).
		Render(content)
}

// Chips renders labels as inline chips.
func Chips(labels []string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = theme.Chip.Render(l)
	}
	return strings.Join(parts, " ")
}

// SectionTitle renders a bold section heading.
func SectionTitle(s string) string {
	return theme.Title.Render(s)
}
