package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CoCreationTheme is a time-boxed shared story prompt.
type CoCreationTheme struct {
	ent.Schema
}

func (CoCreationTheme) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (CoCreationTheme) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
		field.Text("prompt"),
		field.Time("start_date"),
		field.Time("end_date"),
	}
}

func (CoCreationTheme) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contributions", CoCreationContribution.Type),
	}
}

// CoCreationContribution is one child's piece of a co-created story.
type CoCreationContribution struct {
	ent.Schema
}

func (CoCreationContribution) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (CoCreationContribution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.UUID("theme_id", uuid.UUID{}),
		field.Enum("kind").
			Values("idea", "character", "plot", "ending", "drawing"),
		field.Text("content"),
	}
}

func (CoCreationContribution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("contributions").
			Field("child_id").
			Unique().
			Required(),
		edge.From("theme", CoCreationTheme.Type).
			Ref("contributions").
			Field("theme_id").
			Unique().
			Required(),
	}
}

func (CoCreationContribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("theme_id"),
		index.Fields("child_id"),
	}
}
