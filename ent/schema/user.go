package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a parent account. Children hang off it.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("phone").
			Unique().
			NotEmpty().
			Comment("Mainland China mobile number, login identifier"),
		field.String("password_hash").
			Sensitive().
			NotEmpty(),
		field.Enum("role").
			Values("parent", "admin").
			Default("parent"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Child.Type),
	}
}
