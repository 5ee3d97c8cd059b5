package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Assessment is a diagnostic run over a child's free-form answers.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}, ScoreMixin{}}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.Enum("kind").
			Values("initial", "periodic"),
		field.JSON("responses", []string{}),
		field.Text("analysis").
			Default(""),
		field.JSON("suggestions", []string{}).
			Optional(),
	}
}

func (Assessment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("assessments").
			Field("child_id").
			Unique().
			Required(),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
	}
}
