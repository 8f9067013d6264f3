package workspace

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

func barTickCmd() tea.Cmd {
	return tea.Tick(barTick, func(t time.Time) tea.Msg {
		return barTickMsg(t)
	})
}

func (w *WorkspaceScreen) handleBarTick() tea.Cmd {
	if w.barsAnimated {
		return nil
	}
	w.barElapsed += barTick
	if w.barElapsed >= barDuration {
		w.barElapsed = barDuration
		w.barsAnimated = true
		return nil
	}
	return barTickCmd()
}

// barFill returns how far the bars have grown towards their targets.
func (w *WorkspaceScreen) barFill() float64 {
	return min(float64(w.barElapsed)/float64(barDuration), 1)
}

func (w *WorkspaceScreen) handleResultsKey(msg tea.KeyPressMsg) tea.Cmd {
	if w.result == nil {
		return nil
	}
	n := len(w.result.Careers)
	switch msg.String() {
	case "up":
		if w.careerCursor > 0 {
			w.careerCursor--
		}
	case "down":
		if w.careerCursor < n-1 {
			w.careerCursor++
		}
	case "enter":
		if w.careerCursor < n {
			w.selected = w.careerCursor
			w.heading = roadmap.Heading(w.result.Careers[w.selected].Title)
		}
	case "pgdown":
		w.scrollBy(max(w.bodyHeight()/2, 1))
	case "pgup":
		w.scrollBy(-max(w.bodyHeight()/2, 1))
	}
	return nil
}

func (w *WorkspaceScreen) renderResults(width int) string {
	if w.result == nil {
		return theme.Hint.Render("Run an analysis from the Assess tab to see your results.")
	}
	cw := components.ContentWidth(width)
	res := w.result

	sections := []string{
		w.renderBars(res.Bars, cw),
		w.renderCareers(res.Careers, cw),
		w.renderGaps(res.Gaps, cw),
	}
	return strings.Join(sections, "\n\n")
}

func (w *WorkspaceScreen) renderBars(bars []analysis.SkillScore, cw int) string {
	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Name))
	}
	labelWidth = min(labelWidth+1, 24)

	fill := w.barFill()
	rows := make([]string, len(bars))
	for i, b := range bars {
		rows[i] = components.NewProgressBar(b.Name, labelWidth, fill*float64(b.Pct)/100, b.Pct, cw-4).View()
	}
	return components.SectionTitle("Skill Proficiency") + "\n\n" + components.Card(strings.Join(rows, "\n"), cw, false)
}

func (w *WorkspaceScreen) renderCareers(careers []analysis.CareerMatch, cw int) string {
	cards := make([]string, len(careers))
	for i, c := range careers {
		marker := "  "
		if i == w.careerCursor {
			marker = theme.Selected.Render("▸ ")
		}
		title := theme.Strong.Render(c.Title)
		if i == w.selected {
			title = theme.Selected.Render(c.Title + "  ✓")
		}
		badge := theme.TierColor(c.Tier).Render(fmt.Sprintf("%d%% match · %s", c.Match, c.Tier))
		body := marker + title + "   " + badge + "\n" +
			theme.Subtitle.Render(c.Description) + "\n" +
			components.Chips(c.Tags)
		cards[i] = components.Card(body, cw, i == w.selected)
	}
	return components.SectionTitle("Career Matches") + "\n\n" + strings.Join(cards, "\n")
}

func (w *WorkspaceScreen) renderGaps(gaps []analysis.GapBucket, cw int) string {
	if len(gaps) == 0 {
		return ""
	}
	colWidth := cw / len(gaps)
	cols := make([]string, len(gaps))
	for i, g := range gaps {
		lines := []string{theme.GapColor(string(g.Kind)).Bold(true).Render(g.Icon + " " + g.Label)}
		for _, item := range g.Items {
			lines = append(lines, theme.GapColor(string(g.Kind)).Render(g.Prefix)+" "+theme.Body.Render(item))
		}
		cols[i] = components.Card(strings.Join(lines, "\n"), colWidth, false)
	}
	return components.SectionTitle("Skill Gap Analysis") + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
