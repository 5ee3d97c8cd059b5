package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/chat"
)

// CoachSession holds the running coach conversation for one task attempt.
type CoachSession struct {
	ent.Schema
}

func (CoachSession) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (CoachSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.UUID("task_record_id", uuid.UUID{}),
		field.JSON("messages", []chat.Turn{}).
			Optional(),
		field.Int("turn_count").
			Default(0),
	}
}

func (CoachSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("coach_sessions").
			Field("child_id").
			Unique().
			Required(),
	}
}

func (CoachSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "task_record_id").Unique(),
	}
}
