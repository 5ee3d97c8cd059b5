package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Badge is a catalog entry. Rows are seeded from the badges package.
type Badge struct {
	ent.Schema
}

func (Badge) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, TimeMixin{}}
}

func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("description").Default(""),
		field.String("icon").Default(""),
		field.String("criteria").Default(""),
	}
}

func (Badge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("awards", BadgeAward.Type),
	}
}

// BadgeAward links a child to a badge. A badge is awarded at most once.
type BadgeAward struct {
	ent.Schema
}

func (BadgeAward) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}}
}

func (BadgeAward) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("child_id", uuid.UUID{}),
		field.UUID("badge_id", uuid.UUID{}),
		field.Time("awarded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BadgeAward) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("child", Child.Type).
			Ref("badge_awards").
			Field("child_id").
			Unique().
			Required(),
		edge.From("badge", Badge.Type).
			Ref("awards").
			Field("badge_id").
			Unique().
			Required(),
	}
}

func (BadgeAward) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "badge_id").Unique(),
	}
}
