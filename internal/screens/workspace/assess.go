package workspace

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/skills"
	"github.com/abhisek/pathwise/internal/tabs"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type assessFocus int

const (
	focusPersona assessFocus = iota
	focusSkill
	focusTags
	focusAnalyze
)

func (w *WorkspaceScreen) handleAssessKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		return w.moveFocus(-1)
	case "down":
		return w.moveFocus(1)
	}

	switch w.focus {
	case focusPersona:
		var cmd tea.Cmd
		w.persona, cmd = w.persona.Update(msg)
		return cmd

	case focusSkill:
		switch msg.String() {
		case "enter", ",":
			w.commitSkill()
			return nil
		}
		var cmd tea.Cmd
		w.skillIn, cmd = w.skillIn.Update(msg)
		return cmd

	case focusTags:
		w.handleTagKey(msg)
		return nil

	case focusAnalyze:
		// OnPress relabels w.analyze, so the returned copy is stale.
		_, cmd := w.analyze.Update(msg)
		return cmd
	}
	return nil
}

// moveFocus steps through persona, skill field, tags and the button. The
// tag row is skipped while there are no tags.
func (w *WorkspaceScreen) moveFocus(delta int) tea.Cmd {
	next := w.focus + assessFocus(delta)
	if next == focusTags && w.store.Len() == 0 {
		next += assessFocus(delta)
	}
	if next < focusPersona || next > focusAnalyze {
		return nil
	}
	return w.setFocus(next)
}

func (w *WorkspaceScreen) setFocus(f assessFocus) tea.Cmd {
	w.focus = f
	w.persona.Focused = f == focusPersona
	w.analyze.Focused = f == focusAnalyze
	if f == focusTags {
		w.tagCursor = min(w.tagCursor, max(w.store.Len()-1, 0))
	}
	if f == focusSkill {
		return w.skillIn.Focus()
	}
	w.skillIn.Blur()
	return nil
}

// commitSkill adds the field's text as a tag. The field is cleared even
// when nothing was added.
func (w *WorkspaceScreen) commitSkill() {
	name := skills.CommitText(w.skillIn.Value())
	if w.store.Add(name) {
		w.log.Debug("skill added", "count", w.store.Len())
	}
	w.skillIn.Reset()
}

func (w *WorkspaceScreen) handleTagKey(msg tea.KeyPressMsg) {
	list := w.store.Skills()
	if len(list) == 0 {
		return
	}
	switch msg.String() {
	case "left":
		if w.tagCursor > 0 {
			w.tagCursor--
		}
	case "right":
		if w.tagCursor < len(list)-1 {
			w.tagCursor++
		}
	case "x", "delete", "backspace":
		w.store.Remove(list[w.tagCursor])
		if w.store.Len() == 0 {
			w.tagCursor = 0
			w.setFocus(focusSkill)
			return
		}
		w.tagCursor = min(w.tagCursor, w.store.Len()-1)
	}
}

// startAnalysis snapshots the store and runs the analysis in the
// background. A second trigger while a run is in flight is ignored.
func (w *WorkspaceScreen) startAnalysis() tea.Cmd {
	if w.running {
		return nil
	}
	snap := w.deps.Runner.Prepare(w.store)
	ctx, cancel := context.WithCancel(context.Background())

	w.running = true
	w.runSeq++
	w.cancel = cancel
	w.analyze.Disabled = true
	w.analyze.Label = runningLabel

	seq := w.runSeq
	runner := w.deps.Runner
	return tea.Batch(w.startSpinner(), func() tea.Msg {
		res, err := runner.Run(ctx, snap)
		return analysisDoneMsg{seq: seq, result: res, err: err}
	})
}

func (w *WorkspaceScreen) cancelAnalysis() {
	if !w.running {
		return
	}
	w.cancel()
	w.finishRun()
	w.log.Info("analysis canceled by user")
}

func (w *WorkspaceScreen) finishRun() {
	w.running = false
	w.cancel = nil
	w.analyze.Disabled = false
	w.analyze.Label = analyzeLabel
}

func (w *WorkspaceScreen) handleAnalysisDone(msg analysisDoneMsg) tea.Cmd {
	if msg.seq != w.runSeq || !w.running {
		return nil
	}
	w.cancel()
	w.finishRun()
	if msg.err != nil {
		if !errors.Is(msg.err, context.Canceled) {
			w.log.Error("analysis failed", "error", msg.err)
		}
		return nil
	}

	res := msg.result
	w.result = &res
	w.careerCursor = 0
	w.selected = 0
	w.scroll[tabs.Results] = 0
	w.tabs.Switch(tabs.Results)
	w.skillIn.Blur()
	w.chatIn.Blur()

	w.barElapsed = 0
	w.barsAnimated = false
	return tea.Batch(barTickCmd(), w.restartRoadmap())
}

func (w *WorkspaceScreen) renderAssess(width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.SectionTitle("Who are you?"))
	b.WriteString("\n\n")
	b.WriteString(w.persona.View())
	if i := w.persona.Cursor; i >= 0 && i < len(w.deps.Catalog.Personas) {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(w.deps.Catalog.Personas[i].Blurb))
	}
	b.WriteString("\n\n")

	b.WriteString(w.skillIn.View())
	b.WriteString("\n")
	b.WriteString(w.renderTags(cw))
	b.WriteString("\n\n")

	button := w.analyze.View()
	if w.running {
		button = lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", w.spinner.View())
	}
	b.WriteString(button)
	if w.running {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("esc to cancel"))
	}
	return components.Card(b.String(), cw, false)
}

func (w *WorkspaceScreen) renderTags(width int) string {
	list := w.store.Skills()
	if len(list) == 0 {
		return theme.Hint.Render("No skills yet. Defaults are used if you analyze now.")
	}
	parts := make([]string, len(list))
	for i, s := range list {
		if w.focus == focusTags && i == w.tagCursor {
			parts[i] = theme.ChipFocused.Render(s + " ×")
		} else {
			parts[i] = theme.Chip.Render(s)
		}
	}
	return lipgloss.NewStyle().Width(width - 4).Render(strings.Join(parts, " "))
}
