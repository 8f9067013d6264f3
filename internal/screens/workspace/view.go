package workspace

import (
	"strings"

	"github.com/abhisek/pathwise/internal/tabs"
	"github.com/abhisek/pathwise/internal/ui/components"
)

var tabLabels = []components.Tab{
	{ID: tabs.Assess, Label: "Assess"},
	{ID: tabs.Results, Label: "Results"},
	{ID: tabs.Roadmap, Label: "Roadmap"},
	{ID: tabs.Chat, Label: "Counselor"},
}

// bodyHeight is the height left for the active panel under the tab bar.
func (w *WorkspaceScreen) bodyHeight() int {
	return max(w.height-tabBarHeight, 0)
}

func (w *WorkspaceScreen) renderPanel(width int) string {
	switch w.tabs.Active() {
	case tabs.Assess:
		return w.renderAssess(width)
	case tabs.Results:
		return w.renderResults(width)
	case tabs.Roadmap:
		return w.renderRoadmap(width)
	case tabs.Chat:
		return w.renderChat(width)
	}
	return ""
}

// scrollBy moves the active panel's offset, clamped to its content.
func (w *WorkspaceScreen) scrollBy(delta int) {
	id := w.tabs.Active()
	lines := strings.Count(w.renderPanel(w.width), "\n") + 1
	limit := max(lines-w.bodyHeight(), 0)
	w.scroll[id] = min(max(w.scroll[id]+delta, 0), limit)
}

func (w *WorkspaceScreen) View(width, height int) string {
	bar := components.TabBar(tabLabels, w.tabs.Active(), width)
	body := w.renderPanel(width)
	if w.tabs.IsActive(tabs.Chat) {
		// The transcript scrolls itself.
		return bar + "\n" + body
	}
	return bar + "\n" + clip(body, w.scroll[w.tabs.Active()], max(height-tabBarHeight, 0))
}

// clip returns the lines of s starting at offset, at most height of them.
// The offset is clamped so the last page stays full.
func clip(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	offset = min(offset, max(len(lines)-height, 0))
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
