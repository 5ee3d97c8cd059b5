package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// TimeMixin provides created/updated timestamps shared by all entities.
type TimeMixin struct {
	mixin.Schema
}

func (TimeMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TimeMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}

// IDMixin gives an entity a random UUID primary key.
type IDMixin struct {
	mixin.Schema
}

func (IDMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
	}
}

// ScoreMixin holds the five 5C ability scores.
// Children default to the neutral midpoint of the 1-5 scale.
type ScoreMixin struct {
	mixin.Schema
}

func (ScoreMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Float("expression_score").Default(3.0),
		field.Float("logic_score").Default(3.0),
		field.Float("exploration_score").Default(3.0),
		field.Float("creativity_score").Default(3.0),
		field.Float("habit_score").Default(3.0),
	}
}
