// Code generated by ent, DO NOT EDIT.

package growthrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldChildID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldDate, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldTasksCompleted, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldXpEarned, v))
}

// AverageExpressionScore applies equality check predicate on the "average_expression_score" field. It's identical to AverageExpressionScoreEQ.
func AverageExpressionScore(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageExpressionScore, v))
}

// AverageLogicScore applies equality check predicate on the "average_logic_score" field. It's identical to AverageLogicScoreEQ.
func AverageLogicScore(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageLogicScore, v))
}

// AverageExplorationScore applies equality check predicate on the "average_exploration_score" field. It's identical to AverageExplorationScoreEQ.
func AverageExplorationScore(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageExplorationScore, v))
}

// AverageCreativityScore applies equality check predicate on the "average_creativity_score" field. It's identical to AverageCreativityScoreEQ.
func AverageCreativityScore(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageCreativityScore, v))
}

// AverageHabitScore applies equality check predicate on the "average_habit_score" field. It's identical to AverageHabitScoreEQ.
func AverageHabitScore(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageHabitScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldChildID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldDate, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldTasksCompleted, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldXpEarned, v))
}

// AverageExpressionScoreEQ applies the EQ predicate on the "average_expression_score" field.
func AverageExpressionScoreEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageExpressionScore, v))
}

// AverageExpressionScoreNEQ applies the NEQ predicate on the "average_expression_score" field.
func AverageExpressionScoreNEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldAverageExpressionScore, v))
}

// AverageExpressionScoreIn applies the In predicate on the "average_expression_score" field.
func AverageExpressionScoreIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldAverageExpressionScore, vs...))
}

// AverageExpressionScoreNotIn applies the NotIn predicate on the "average_expression_score" field.
func AverageExpressionScoreNotIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldAverageExpressionScore, vs...))
}

// AverageExpressionScoreGT applies the GT predicate on the "average_expression_score" field.
func AverageExpressionScoreGT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldAverageExpressionScore, v))
}

// AverageExpressionScoreGTE applies the GTE predicate on the "average_expression_score" field.
func AverageExpressionScoreGTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldAverageExpressionScore, v))
}

// AverageExpressionScoreLT applies the LT predicate on the "average_expression_score" field.
func AverageExpressionScoreLT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldAverageExpressionScore, v))
}

// AverageExpressionScoreLTE applies the LTE predicate on the "average_expression_score" field.
func AverageExpressionScoreLTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldAverageExpressionScore, v))
}

// AverageLogicScoreEQ applies the EQ predicate on the "average_logic_score" field.
func AverageLogicScoreEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageLogicScore, v))
}

// AverageLogicScoreNEQ applies the NEQ predicate on the "average_logic_score" field.
func AverageLogicScoreNEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldAverageLogicScore, v))
}

// AverageLogicScoreIn applies the In predicate on the "average_logic_score" field.
func AverageLogicScoreIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldAverageLogicScore, vs...))
}

// AverageLogicScoreNotIn applies the NotIn predicate on the "average_logic_score" field.
func AverageLogicScoreNotIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldAverageLogicScore, vs...))
}

// AverageLogicScoreGT applies the GT predicate on the "average_logic_score" field.
func AverageLogicScoreGT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldAverageLogicScore, v))
}

// AverageLogicScoreGTE applies the GTE predicate on the "average_logic_score" field.
func AverageLogicScoreGTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldAverageLogicScore, v))
}

// AverageLogicScoreLT applies the LT predicate on the "average_logic_score" field.
func AverageLogicScoreLT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldAverageLogicScore, v))
}

// AverageLogicScoreLTE applies the LTE predicate on the "average_logic_score" field.
func AverageLogicScoreLTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldAverageLogicScore, v))
}

// AverageExplorationScoreEQ applies the EQ predicate on the "average_exploration_score" field.
func AverageExplorationScoreEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageExplorationScore, v))
}

// AverageExplorationScoreNEQ applies the NEQ predicate on the "average_exploration_score" field.
func AverageExplorationScoreNEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldAverageExplorationScore, v))
}

// AverageExplorationScoreIn applies the In predicate on the "average_exploration_score" field.
func AverageExplorationScoreIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldAverageExplorationScore, vs...))
}

// AverageExplorationScoreNotIn applies the NotIn predicate on the "average_exploration_score" field.
func AverageExplorationScoreNotIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldAverageExplorationScore, vs...))
}

// AverageExplorationScoreGT applies the GT predicate on the "average_exploration_score" field.
func AverageExplorationScoreGT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldAverageExplorationScore, v))
}

// AverageExplorationScoreGTE applies the GTE predicate on the "average_exploration_score" field.
func AverageExplorationScoreGTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldAverageExplorationScore, v))
}

// AverageExplorationScoreLT applies the LT predicate on the "average_exploration_score" field.
func AverageExplorationScoreLT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldAverageExplorationScore, v))
}

// AverageExplorationScoreLTE applies the LTE predicate on the "average_exploration_score" field.
func AverageExplorationScoreLTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldAverageExplorationScore, v))
}

// AverageCreativityScoreEQ applies the EQ predicate on the "average_creativity_score" field.
func AverageCreativityScoreEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageCreativityScore, v))
}

// AverageCreativityScoreNEQ applies the NEQ predicate on the "average_creativity_score" field.
func AverageCreativityScoreNEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldAverageCreativityScore, v))
}

// AverageCreativityScoreIn applies the In predicate on the "average_creativity_score" field.
func AverageCreativityScoreIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldAverageCreativityScore, vs...))
}

// AverageCreativityScoreNotIn applies the NotIn predicate on the "average_creativity_score" field.
func AverageCreativityScoreNotIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldAverageCreativityScore, vs...))
}

// AverageCreativityScoreGT applies the GT predicate on the "average_creativity_score" field.
func AverageCreativityScoreGT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldAverageCreativityScore, v))
}

// AverageCreativityScoreGTE applies the GTE predicate on the "average_creativity_score" field.
func AverageCreativityScoreGTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldAverageCreativityScore, v))
}

// AverageCreativityScoreLT applies the LT predicate on the "average_creativity_score" field.
func AverageCreativityScoreLT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldAverageCreativityScore, v))
}

// AverageCreativityScoreLTE applies the LTE predicate on the "average_creativity_score" field.
func AverageCreativityScoreLTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldAverageCreativityScore, v))
}

// AverageHabitScoreEQ applies the EQ predicate on the "average_habit_score" field.
func AverageHabitScoreEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldEQ(FieldAverageHabitScore, v))
}

// AverageHabitScoreNEQ applies the NEQ predicate on the "average_habit_score" field.
func AverageHabitScoreNEQ(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNEQ(FieldAverageHabitScore, v))
}

// AverageHabitScoreIn applies the In predicate on the "average_habit_score" field.
func AverageHabitScoreIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldIn(FieldAverageHabitScore, vs...))
}

// AverageHabitScoreNotIn applies the NotIn predicate on the "average_habit_score" field.
func AverageHabitScoreNotIn(vs ...float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldNotIn(FieldAverageHabitScore, vs...))
}

// AverageHabitScoreGT applies the GT predicate on the "average_habit_score" field.
func AverageHabitScoreGT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGT(FieldAverageHabitScore, v))
}

// AverageHabitScoreGTE applies the GTE predicate on the "average_habit_score" field.
func AverageHabitScoreGTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldGTE(FieldAverageHabitScore, v))
}

// AverageHabitScoreLT applies the LT predicate on the "average_habit_score" field.
func AverageHabitScoreLT(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLT(FieldAverageHabitScore, v))
}

// AverageHabitScoreLTE applies the LTE predicate on the "average_habit_score" field.
func AverageHabitScoreLTE(v float64) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.FieldLTE(FieldAverageHabitScore, v))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.GrowthRecord {
	return predicate.GrowthRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.GrowthRecord {
	return predicate.GrowthRecord(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GrowthRecord) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GrowthRecord) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GrowthRecord) predicate.GrowthRecord {
	return predicate.GrowthRecord(sql.NotPredicates(p))
}
