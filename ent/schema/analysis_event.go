package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records one finished or canceled analysis run. Skill names
// are not stored.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID of the run"),
		field.String("persona").
			Comment("Persona id selected when the run started"),
		field.Int("skill_count").
			Default(0).
			Comment("Number of skills analyzed"),
		field.Bool("seeded").
			Default(false).
			Comment("Whether the default skills were seeded into an empty list"),
		field.String("top_career").
			Default("").
			Comment("Title of the first career match, empty when canceled"),
		field.Bool("penalized").
			Default(false).
			Comment("Whether career matches were lowered for missing signals"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time from start to result"),
		field.Bool("canceled").
			Default(false).
			Comment("Whether the run was canceled before finishing"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("persona"),
		index.Fields("canceled"),
	}
}
