package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// ProgressBar displays a labelled horizontal bar. Percent is the current
// fill in [0,1]; Target, when set, is printed as the value.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    float64
	Target     int
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, labelWidth int, percent float64, target, width int) ProgressBar {
	return ProgressBar{
		Label:      label,
		LabelWidth: labelWidth,
		Percent:    percent,
		Target:     target,
		Width:      width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(p.LabelWidth).
		MaxWidth(p.LabelWidth).
		Render(p.Label)

	const valueWidth = 6 // "  100%"
	barWidth := max(p.Width-lipgloss.Width(label)-2-valueWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	value := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d%%", p.Target))

	return label + "  " + bar + value
}
