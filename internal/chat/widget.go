package chat

import "strings"

// Widget is the chat panel state: the transcript plus the number of replies
// still being typed. The typing indicator is not a transcript entry, so the
// transcript never shrinks.
type Widget struct {
	transcript Transcript
	pending    int
}

// NewWidget returns a widget whose transcript opens with greeting, if any.
func NewWidget(greeting string) *Widget {
	w := &Widget{}
	if greeting != "" {
		w.transcript.Append(RoleAI, greeting)
	}
	return w
}

// Send trims raw and appends it as a user message. It returns the trimmed
// text and false when there was nothing to send.
func (w *Widget) Send(raw string) (string, bool) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", false
	}
	w.transcript.Append(RoleUser, msg)
	w.pending++
	return msg, true
}

// Deliver appends an AI reply and clears one pending slot.
func (w *Widget) Deliver(reply string) {
	w.transcript.Append(RoleAI, reply)
	w.Abandon()
}

// Abandon clears one pending slot without a reply, e.g. after cancellation.
func (w *Widget) Abandon() {
	if w.pending > 0 {
		w.pending--
	}
}

// Pending returns the number of replies still being typed.
func (w *Widget) Pending() int { return w.pending }

// Messages returns a copy of the transcript.
func (w *Widget) Messages() []Message { return w.transcript.Messages() }

func (w *Widget) Len() int { return w.transcript.Len() }
