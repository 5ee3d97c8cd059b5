// Code generated by ent, DO NOT EDIT.

package badgeaward

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldLTE(FieldID, id))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldChildID, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldBadgeID, v))
}

// AwardedAt applies equality check predicate on the "awarded_at" field. It's identical to AwardedAtEQ.
func AwardedAt(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldAwardedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNotIn(FieldChildID, vs...))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...uuid.UUID) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNotIn(FieldBadgeID, vs...))
}

// AwardedAtEQ applies the EQ predicate on the "awarded_at" field.
func AwardedAtEQ(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedAtNEQ applies the NEQ predicate on the "awarded_at" field.
func AwardedAtNEQ(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNEQ(FieldAwardedAt, v))
}

// AwardedAtIn applies the In predicate on the "awarded_at" field.
func AwardedAtIn(vs ...time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldIn(FieldAwardedAt, vs...))
}

// AwardedAtNotIn applies the NotIn predicate on the "awarded_at" field.
func AwardedAtNotIn(vs ...time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldNotIn(FieldAwardedAt, vs...))
}

// AwardedAtGT applies the GT predicate on the "awarded_at" field.
func AwardedAtGT(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldGT(FieldAwardedAt, v))
}

// AwardedAtGTE applies the GTE predicate on the "awarded_at" field.
func AwardedAtGTE(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldGTE(FieldAwardedAt, v))
}

// AwardedAtLT applies the LT predicate on the "awarded_at" field.
func AwardedAtLT(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldLT(FieldAwardedAt, v))
}

// AwardedAtLTE applies the LTE predicate on the "awarded_at" field.
func AwardedAtLTE(v time.Time) predicate.BadgeAward {
	return predicate.BadgeAward(sql.FieldLTE(FieldAwardedAt, v))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.BadgeAward {
	return predicate.BadgeAward(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.BadgeAward {
	return predicate.BadgeAward(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBadge applies the HasEdge predicate on the "badge" edge.
func HasBadge() predicate.BadgeAward {
	return predicate.BadgeAward(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BadgeTable, BadgeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBadgeWith applies the HasEdge predicate on the "badge" edge with a given conditions (other predicates).
func HasBadgeWith(preds ...predicate.Badge) predicate.BadgeAward {
	return predicate.BadgeAward(func(s *sql.Selector) {
		step := newBadgeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeAward) predicate.BadgeAward {
	return predicate.BadgeAward(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeAward) predicate.BadgeAward {
	return predicate.BadgeAward(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeAward) predicate.BadgeAward {
	return predicate.BadgeAward(sql.NotPredicates(p))
}
