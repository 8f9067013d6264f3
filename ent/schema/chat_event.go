package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one counselor reply. The message text is not stored.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the TUI or CLI session"),
		field.String("rule").
			Comment("Reply source: canned, a keyword rule name, or fallback"),
		field.Bool("quick_prompt").
			Default(false).
			Comment("Whether the message came from a quick prompt"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Simulated thinking time before the reply"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule"),
		index.Fields("session_id"),
	}
}
