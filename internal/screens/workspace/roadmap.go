package workspace

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

func roadmapTickCmd(seq int) tea.Cmd {
	return tea.Tick(roadmap.Stagger, func(time.Time) tea.Msg {
		return roadmapTickMsg{seq: seq}
	})
}

// restartRoadmap hides every phase but the first and reveals the rest on
// the stagger schedule. Ticks from an earlier reveal are dropped.
func (w *WorkspaceScreen) restartRoadmap() tea.Cmd {
	w.roadmapSeq++
	w.roadmapElapsed = 0
	if roadmap.Visible(w.phases, 0) >= len(w.phases) {
		return nil
	}
	return roadmapTickCmd(w.roadmapSeq)
}

func (w *WorkspaceScreen) handleRoadmapTick(msg roadmapTickMsg) tea.Cmd {
	if msg.seq != w.roadmapSeq {
		return nil
	}
	w.roadmapElapsed += roadmap.Stagger
	if roadmap.Visible(w.phases, w.roadmapElapsed) >= len(w.phases) {
		return nil
	}
	return roadmapTickCmd(w.roadmapSeq)
}

func (w *WorkspaceScreen) handleRoadmapKey(msg tea.KeyPressMsg) {
	page := max(w.bodyHeight()/2, 1)
	switch msg.String() {
	case "up":
		w.scrollBy(-1)
	case "down":
		w.scrollBy(1)
	case "pgup":
		w.scrollBy(-page)
	case "pgdown":
		w.scrollBy(page)
	}
}

func (w *WorkspaceScreen) renderRoadmap(width int) string {
	cw := components.ContentWidth(width)
	visible := roadmap.Visible(w.phases, w.roadmapElapsed)

	parts := []string{components.SectionTitle(w.heading), ""}
	for _, p := range w.phases[:visible] {
		parts = append(parts, renderPhase(p, cw))
	}
	return strings.Join(parts, "\n")
}

func renderPhase(p roadmap.PhaseView, cw int) string {
	dot := theme.Subtitle.Render("○")
	if p.Done {
		dot = theme.Done.Render("●")
	}
	head := dot + " " + theme.Hint.Render(p.Label) + "\n  " + theme.Strong.Render(p.Title)
	if p.Done {
		head += "  " + theme.Done.Render("✓ done")
	}

	items := make([]string, len(p.Items))
	for i, it := range p.Items {
		badge := lipgloss.NewStyle().Foreground(theme.Secondary).Render("[" + it.Badge + "]")
		items[i] = it.Icon + " " + theme.Body.Render(it.Name) + "  " + badge + "\n   " + theme.Subtitle.Render(it.Detail)
	}
	return head + "\n" + components.Card(strings.Join(items, "\n"), cw, p.Done)
}
