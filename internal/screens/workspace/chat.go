package workspace

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/chat"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const maxQuickPrompts = 5

func (w *WorkspaceScreen) handleChatKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "enter":
		return w.sendChat(w.chatIn.Value(), false)
	case "up":
		w.transcript.ScrollUp(1)
		return nil
	case "down":
		w.transcript.ScrollDown(1)
		return nil
	case "pgup":
		w.transcript.PageUp()
		return nil
	case "pgdown":
		w.transcript.PageDown()
		return nil
	}

	if w.chatIn.Value() == "" && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(w.questions) && i < maxQuickPrompts {
			return w.sendChat(w.questions[i], true)
		}
	}

	var cmd tea.Cmd
	w.chatIn, cmd = w.chatIn.Update(msg)
	w.transcript.SetHeight(w.transcriptHeight())
	return cmd
}

// sendChat appends the user message and asks the responder in the
// background. Empty messages are dropped.
func (w *WorkspaceScreen) sendChat(raw string, quick bool) tea.Cmd {
	text, ok := w.widget.Send(raw)
	w.chatIn.Reset()
	if !ok {
		return nil
	}
	w.refreshTranscript()

	req := chat.Request{Text: text, QuickPrompt: quick}
	responder := w.deps.Responder
	return tea.Batch(w.startSpinner(), func() tea.Msg {
		reply, err := responder.Respond(context.Background(), req)
		return chatReplyMsg{reply: reply, err: err}
	})
}

func (w *WorkspaceScreen) handleChatReply(msg chatReplyMsg) {
	if msg.err != nil {
		w.log.Warn("chat reply failed", "error", msg.err)
		w.widget.Abandon()
	} else {
		w.widget.Deliver(msg.reply.Text)
	}
	w.refreshTranscript()
}

// refreshTranscript re-renders the messages into the viewport and keeps it
// pinned to the newest one.
func (w *WorkspaceScreen) refreshTranscript() {
	w.transcript.SetHeight(w.transcriptHeight())
	width := max(w.transcript.Width(), 20)
	msgs := w.widget.Messages()
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		blocks = append(blocks, renderMessage(m, width))
	}
	w.transcript.SetContent(strings.Join(blocks, "\n\n"))
	w.transcript.GotoBottom()
}

func renderMessage(m chat.Message, width int) string {
	var b strings.Builder
	for _, sp := range chat.ParseMarkup(m.Text) {
		if sp.Bold {
			b.WriteString(theme.Strong.Render(sp.Text))
		} else {
			b.WriteString(sp.Text)
		}
	}
	body := lipgloss.NewStyle().Width(width - 4).Render(b.String())

	if m.Role == chat.RoleUser {
		who := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You")
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(who + "\n" + body)
	}
	who := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Counselor")
	return who + "\n" + body
}

// chatChromeHeight is the number of body lines used by everything in the
// chat tab except the transcript.
func (w *WorkspaceScreen) chatChromeHeight() int {
	// typing line + input box
	h := 1 + 3
	if w.chatIn.Value() == "" {
		h += 1 + min(len(w.questions), maxQuickPrompts)
	}
	return h
}

func (w *WorkspaceScreen) transcriptHeight() int {
	return max(w.bodyHeight()-w.chatChromeHeight()-1, 3)
}

func (w *WorkspaceScreen) renderChat(width int) string {
	cw := components.ContentWidth(width)

	typing := ""
	if w.widget.Pending() > 0 {
		typing = w.spinner.View() + " " + theme.Hint.Render("Counselor is typing...")
	}

	parts := []string{w.transcript.View(), typing, w.chatIn.View()}
	if w.chatIn.Value() == "" {
		prompts := []string{theme.Hint.Render("Quick prompts")}
		for i, q := range w.questions {
			if i >= maxQuickPrompts {
				break
			}
			prompts = append(prompts, theme.Subtitle.Render(fmt.Sprintf("  %d  ", i+1))+theme.Body.Render(q))
		}
		parts = append(parts, strings.Join(prompts, "\n"))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, "\n"))
}
