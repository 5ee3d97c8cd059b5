package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Work archives a finished piece of the child's output.
type Work struct {
	ent.Schema
}

func (Work) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (Work) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.UUID("task_record_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("title").NotEmpty(),
		field.String("kind").Default("task"),
		field.Text("content"),
		field.Text("comment").Default(""),
		field.Float("score").Default(0),
	}
}

func (Work) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("works").
			Field("child_id").
			Unique().
			Required(),
	}
}

func (Work) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
	}
}
