package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskRecord is one attempt by a child at a Task and its evaluation.
type TaskRecord struct {
	ent.Schema
}

func (TaskRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (TaskRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.UUID("task_id", uuid.UUID{}),
		field.Enum("status").
			Values("in_progress", "completed").
			Default("in_progress"),
		field.Text("submission").
			Default(""),
		field.Int("time_spent_secs").
			Default(0).
			NonNegative(),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("expression_score").Optional().Nillable(),
		field.Float("logic_score").Optional().Nillable(),
		field.Float("exploration_score").Optional().Nillable(),
		field.Float("creativity_score").Optional().Nillable(),
		field.Float("habit_score").Optional().Nillable(),
		field.Text("feedback").
			Default(""),
		field.JSON("suggestions", []string{}).
			Optional(),
		field.Text("exemplar_answer").
			Default(""),
		field.Int("xp_earned").
			Default(0),
	}
}

func (TaskRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("task_records").
			Field("child_id").
			Unique().
			Required(),
		edge.From("task", Task.Type).
			Ref("records").
			Field("task_id").
			Unique().
			Required(),
	}
}

func (TaskRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "status"),
		index.Fields("completed_at"),
	}
}
