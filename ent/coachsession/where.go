// Code generated by ent, DO NOT EDIT.

package coachsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldChildID, v))
}

// TaskRecordID applies equality check predicate on the "task_record_id" field. It's identical to TaskRecordIDEQ.
func TaskRecordID(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldTaskRecordID, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldTurnCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldChildID, vs...))
}

// TaskRecordIDEQ applies the EQ predicate on the "task_record_id" field.
func TaskRecordIDEQ(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldTaskRecordID, v))
}

// TaskRecordIDNEQ applies the NEQ predicate on the "task_record_id" field.
func TaskRecordIDNEQ(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldTaskRecordID, v))
}

// TaskRecordIDIn applies the In predicate on the "task_record_id" field.
func TaskRecordIDIn(vs ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldTaskRecordID, vs...))
}

// TaskRecordIDNotIn applies the NotIn predicate on the "task_record_id" field.
func TaskRecordIDNotIn(vs ...uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldTaskRecordID, vs...))
}

// TaskRecordIDGT applies the GT predicate on the "task_record_id" field.
func TaskRecordIDGT(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldTaskRecordID, v))
}

// TaskRecordIDGTE applies the GTE predicate on the "task_record_id" field.
func TaskRecordIDGTE(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldTaskRecordID, v))
}

// TaskRecordIDLT applies the LT predicate on the "task_record_id" field.
func TaskRecordIDLT(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldTaskRecordID, v))
}

// TaskRecordIDLTE applies the LTE predicate on the "task_record_id" field.
func TaskRecordIDLTE(v uuid.UUID) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldTaskRecordID, v))
}

// MessagesIsNil applies the IsNil predicate on the "messages" field.
func MessagesIsNil() predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIsNull(FieldMessages))
}

// MessagesNotNil applies the NotNil predicate on the "messages" field.
func MessagesNotNil() predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotNull(FieldMessages))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldTurnCount, v))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.CoachSession {
	return predicate.CoachSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.CoachSession {
	return predicate.CoachSession(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.NotPredicates(p))
}
