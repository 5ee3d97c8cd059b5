package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// WeeklyReport is the parent-facing summary of one week.
type WeeklyReport struct {
	ent.Schema
}

func (WeeklyReport) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (WeeklyReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.Time("week_start"),
		field.Time("week_end"),
		field.Int("tasks_completed").Default(0),
		field.Float("average_score").Default(0),
		field.String("most_improved").Default(""),
		field.String("needs_work").Default(""),
		field.Text("summary").Default(""),
		field.JSON("insights", map[string]string{}).
			Optional(),
		field.JSON("suggestions", []string{}).
			Optional(),
		field.JSON("recommended_games", []string{}).
			Optional(),
	}
}

func (WeeklyReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("weekly_reports").
			Field("child_id").
			Unique().
			Required(),
	}
}

func (WeeklyReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "week_start").Unique(),
	}
}
