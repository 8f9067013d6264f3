// Package chat implements the career counselor: an append-only transcript,
// canned reply resolution and simulated thinking time.
package chat

// Role is the message sender role.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is one transcript entry.
type Message struct {
	Role Role
	Text string
}

// Transcript is an append-only message list.
type Transcript struct {
	msgs []Message
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(role Role, text string) {
	t.msgs = append(t.msgs, Message{Role: role, Text: text})
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

func (t *Transcript) Len() int { return len(t.msgs) }
