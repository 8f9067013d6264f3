package workspace

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/chat"
	"github.com/abhisek/pathwise/internal/tabs"
)

type failingResponder struct{}

func (failingResponder) Respond(context.Context, chat.Request) (chat.Reply, error) {
	return chat.Reply{}, errors.New("boom")
}

func openChat(t *testing.T, w *WorkspaceScreen) {
	t.Helper()
	w.tabs.Switch(tabs.Chat)
	w.switchTab(tabs.Chat)
	require.True(t, w.chatIn.Focused())
}

func TestChatSendAndDeliver(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)
	require.Equal(t, 1, w.widget.Len(), "greeting")

	typeText(w, "  any python tips?  ")
	cmd := press(w, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, 2, w.widget.Len())
	assert.Equal(t, 1, w.widget.Pending())
	assert.Empty(t, w.chatIn.Value())
	assert.Equal(t, "any python tips?", w.widget.Messages()[1].Text)

	reply := find[chatReplyMsg](t, collect(cmd))
	assert.Equal(t, "python", reply.reply.Rule)
	w.Update(reply)

	msgs := w.widget.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.RoleAI, msgs[2].Role)
	assert.Equal(t, 0, w.widget.Pending())
}

func TestChatEmptySendIsNoop(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	typeText(w, "   ")
	assert.Nil(t, press(w, tea.KeyEnter))
	assert.Equal(t, 1, w.widget.Len())
	assert.Equal(t, 0, w.widget.Pending())
}

func TestQuickPromptSendsCannedQuestion(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)
	cat := catalog.Default()

	cmd := press(w, '2')
	require.NotNil(t, cmd)
	assert.Equal(t, cat.Chat.Canned[1].Question, w.widget.Messages()[1].Text)

	reply := find[chatReplyMsg](t, collect(cmd))
	assert.Equal(t, chat.RuleCanned, reply.reply.Rule)
	assert.Equal(t, cat.Chat.Canned[1].Answer, reply.reply.Text)
}

func TestDigitsTypeWhenFieldHasText(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	typeText(w, "top 3")
	assert.Equal(t, "top 3", w.chatIn.Value())
	assert.Equal(t, 1, w.widget.Len())
}

func TestQuickPromptOutOfRangeTypes(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	w.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	assert.Equal(t, "7", w.chatIn.Value())
	assert.Equal(t, 1, w.widget.Len())
}

func TestConcurrentRepliesKeepTranscriptGrowing(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	first := press(w, '1')
	second := press(w, '3')
	assert.Equal(t, 2, w.widget.Pending())

	// Replies may arrive in any order.
	w.Update(find[chatReplyMsg](t, collect(second)))
	w.Update(find[chatReplyMsg](t, collect(first)))

	assert.Equal(t, 5, w.widget.Len())
	assert.Equal(t, 0, w.widget.Pending())
}

func TestChatFailureClearsTypingIndicator(t *testing.T) {
	w := newTestWorkspace(t, 0)
	w.deps.Responder = failingResponder{}
	openChat(t, w)

	cmd := press(w, '1')
	w.Update(find[chatReplyMsg](t, collect(cmd)))

	assert.Equal(t, 0, w.widget.Pending())
	assert.Equal(t, 2, w.widget.Len(), "no ai message on failure")
	assert.NotContains(t, w.View(100, 38), "typing")
}

func TestChatViewRendersBoldAndPrompts(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	view := w.View(100, 38)
	assert.Contains(t, view, "Quick prompts")
	assert.Contains(t, view, "Counselor")

	cmd := press(w, '1')
	assert.Contains(t, w.View(100, 38), "typing")
	w.Update(find[chatReplyMsg](t, collect(cmd)))

	view = w.View(100, 38)
	assert.NotContains(t, view, "**", "markup markers are not shown")
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	w := newTestWorkspace(t, 0)
	openChat(t, w)

	cmd := press(w, '1')
	assert.True(t, w.spinning)
	msgs := collect(cmd)
	w.Update(find[chatReplyMsg](t, msgs))

	for _, m := range msgs {
		if _, ok := m.(chatReplyMsg); ok {
			continue
		}
		_, next := w.Update(m)
		assert.Nil(t, next)
	}
	assert.False(t, w.spinning)
}
