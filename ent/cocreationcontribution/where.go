// Code generated by ent, DO NOT EDIT.

package cocreationcontribution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldChildID, v))
}

// ThemeID applies equality check predicate on the "theme_id" field. It's identical to ThemeIDEQ.
func ThemeID(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldThemeID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLTE(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldChildID, vs...))
}

// ThemeIDEQ applies the EQ predicate on the "theme_id" field.
func ThemeIDEQ(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldThemeID, v))
}

// ThemeIDNEQ applies the NEQ predicate on the "theme_id" field.
func ThemeIDNEQ(v uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldThemeID, v))
}

// ThemeIDIn applies the In predicate on the "theme_id" field.
func ThemeIDIn(vs ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldThemeID, vs...))
}

// ThemeIDNotIn applies the NotIn predicate on the "theme_id" field.
func ThemeIDNotIn(vs ...uuid.UUID) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldThemeID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldKind, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.FieldContainsFold(FieldContent, v))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.CoCreationContribution {
	return predicate.CoCreationContribution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTheme applies the HasEdge predicate on the "theme" edge.
func HasTheme() predicate.CoCreationContribution {
	return predicate.CoCreationContribution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThemeTable, ThemeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThemeWith applies the HasEdge predicate on the "theme" edge with a given conditions (other predicates).
func HasThemeWith(preds ...predicate.CoCreationTheme) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(func(s *sql.Selector) {
		step := newThemeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoCreationContribution) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoCreationContribution) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoCreationContribution) predicate.CoCreationContribution {
	return predicate.CoCreationContribution(sql.NotPredicates(p))
}
