package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GrowthRecord aggregates a child's completed tasks for one calendar day.
type GrowthRecord struct {
	ent.Schema
}

func (GrowthRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (GrowthRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.Time("date").
			Comment("Local midnight of the day"),
		field.Int("tasks_completed").Default(0),
		field.Int("xp_earned").Default(0),
		field.Float("average_expression_score").Default(0),
		field.Float("average_logic_score").Default(0),
		field.Float("average_exploration_score").Default(0),
		field.Float("average_creativity_score").Default(0),
		field.Float("average_habit_score").Default(0),
	}
}

func (GrowthRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("growth_records").
			Field("child_id").
			Unique().
			Required(),
	}
}

func (GrowthRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "date").Unique(),
	}
}
