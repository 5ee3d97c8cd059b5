package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Child is a learner profile owned by a parent User.
type Child struct {
	ent.Schema
}

func (Child) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}, ScoreMixin{}}
}

func (Child) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.String("nickname").NotEmpty(),
		field.String("grade").NotEmpty(),
		field.JSON("interests", []string{}).
			Optional(),
		field.String("avatar_url").
			Default(""),
		field.Int("level").
			Default(1).
			Positive(),
		field.Int("xp").
			Default(0).
			NonNegative(),
		field.Int("streak").
			Default(0).
			NonNegative().
			Comment("Consecutive days with a completed task"),
		field.Time("last_active_on").
			Optional().
			Nillable(),
		field.String("global_title").
			Default(""),
	}
}

func (Child) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parent", User.Type).
			Ref("children").
			Field("user_id").
			Unique().
			Required(),
		edge.To("assessments", Assessment.Type),
		edge.To("task_records", TaskRecord.Type),
		edge.To("badge_awards", BadgeAward.Type),
		edge.To("contributions", CoCreationContribution.Type),
		edge.To("weekly_reports", WeeklyReport.Type),
		edge.To("growth_records", GrowthRecord.Type),
		edge.To("works", Work.Type),
		edge.To("coach_sessions", CoachSession.Type),
	}
}

func (Child) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
