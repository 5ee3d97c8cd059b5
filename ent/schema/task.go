package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Task is generated activity content. A task can be attempted many times.
type Task struct {
	ent.Schema
}

func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("ability").
			NotEmpty().
			Comment("Targeted 5C ability"),
		field.Int("difficulty").
			Range(1, 5),
		field.String("title").NotEmpty(),
		field.Text("description"),
		field.Text("prompt"),
		field.JSON("constraints", []string{}).
			Optional(),
		field.Int("expected_minutes").
			Default(10),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("records", TaskRecord.Type),
	}
}
