package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// Tab is one entry of a tab bar.
type Tab struct {
	ID    string
	Label string
}

// TabBar renders tabs in a row, highlighting active.
func TabBar(tabs []Tab, active string, width int) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if t.ID == active {
			parts[i] = theme.TabActive.Render(t.Label)
		} else {
			parts[i] = theme.TabInactive.Render(t.Label)
		}
	}
	row := strings.Join(parts, " ")
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Render(row)
}
