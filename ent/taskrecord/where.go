// Code generated by ent, DO NOT EDIT.

package taskrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldChildID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldTaskID, v))
}

// Submission applies equality check predicate on the "submission" field. It's identical to SubmissionEQ.
func Submission(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldSubmission, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// ExpressionScore applies equality check predicate on the "expression_score" field. It's identical to ExpressionScoreEQ.
func ExpressionScore(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExpressionScore, v))
}

// LogicScore applies equality check predicate on the "logic_score" field. It's identical to LogicScoreEQ.
func LogicScore(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldLogicScore, v))
}

// ExplorationScore applies equality check predicate on the "exploration_score" field. It's identical to ExplorationScoreEQ.
func ExplorationScore(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExplorationScore, v))
}

// CreativityScore applies equality check predicate on the "creativity_score" field. It's identical to CreativityScoreEQ.
func CreativityScore(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCreativityScore, v))
}

// HabitScore applies equality check predicate on the "habit_score" field. It's identical to HabitScoreEQ.
func HabitScore(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldHabitScore, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldFeedback, v))
}

// ExemplarAnswer applies equality check predicate on the "exemplar_answer" field. It's identical to ExemplarAnswerEQ.
func ExemplarAnswer(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExemplarAnswer, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldXpEarned, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldChildID, vs...))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldTaskID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// SubmissionEQ applies the EQ predicate on the "submission" field.
func SubmissionEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldSubmission, v))
}

// SubmissionNEQ applies the NEQ predicate on the "submission" field.
func SubmissionNEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldSubmission, v))
}

// SubmissionIn applies the In predicate on the "submission" field.
func SubmissionIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldSubmission, vs...))
}

// SubmissionNotIn applies the NotIn predicate on the "submission" field.
func SubmissionNotIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldSubmission, vs...))
}

// SubmissionGT applies the GT predicate on the "submission" field.
func SubmissionGT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldSubmission, v))
}

// SubmissionGTE applies the GTE predicate on the "submission" field.
func SubmissionGTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldSubmission, v))
}

// SubmissionLT applies the LT predicate on the "submission" field.
func SubmissionLT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldSubmission, v))
}

// SubmissionLTE applies the LTE predicate on the "submission" field.
func SubmissionLTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldSubmission, v))
}

// SubmissionContains applies the Contains predicate on the "submission" field.
func SubmissionContains(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContains(FieldSubmission, v))
}

// SubmissionHasPrefix applies the HasPrefix predicate on the "submission" field.
func SubmissionHasPrefix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasPrefix(FieldSubmission, v))
}

// SubmissionHasSuffix applies the HasSuffix predicate on the "submission" field.
func SubmissionHasSuffix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasSuffix(FieldSubmission, v))
}

// SubmissionEqualFold applies the EqualFold predicate on the "submission" field.
func SubmissionEqualFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEqualFold(FieldSubmission, v))
}

// SubmissionContainsFold applies the ContainsFold predicate on the "submission" field.
func SubmissionContainsFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContainsFold(FieldSubmission, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldCompletedAt))
}

// ExpressionScoreEQ applies the EQ predicate on the "expression_score" field.
func ExpressionScoreEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExpressionScore, v))
}

// ExpressionScoreNEQ applies the NEQ predicate on the "expression_score" field.
func ExpressionScoreNEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldExpressionScore, v))
}

// ExpressionScoreIn applies the In predicate on the "expression_score" field.
func ExpressionScoreIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldExpressionScore, vs...))
}

// ExpressionScoreNotIn applies the NotIn predicate on the "expression_score" field.
func ExpressionScoreNotIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldExpressionScore, vs...))
}

// ExpressionScoreGT applies the GT predicate on the "expression_score" field.
func ExpressionScoreGT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldExpressionScore, v))
}

// ExpressionScoreGTE applies the GTE predicate on the "expression_score" field.
func ExpressionScoreGTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldExpressionScore, v))
}

// ExpressionScoreLT applies the LT predicate on the "expression_score" field.
func ExpressionScoreLT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldExpressionScore, v))
}

// ExpressionScoreLTE applies the LTE predicate on the "expression_score" field.
func ExpressionScoreLTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldExpressionScore, v))
}

// ExpressionScoreIsNil applies the IsNil predicate on the "expression_score" field.
func ExpressionScoreIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldExpressionScore))
}

// ExpressionScoreNotNil applies the NotNil predicate on the "expression_score" field.
func ExpressionScoreNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldExpressionScore))
}

// LogicScoreEQ applies the EQ predicate on the "logic_score" field.
func LogicScoreEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldLogicScore, v))
}

// LogicScoreNEQ applies the NEQ predicate on the "logic_score" field.
func LogicScoreNEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldLogicScore, v))
}

// LogicScoreIn applies the In predicate on the "logic_score" field.
func LogicScoreIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldLogicScore, vs...))
}

// LogicScoreNotIn applies the NotIn predicate on the "logic_score" field.
func LogicScoreNotIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldLogicScore, vs...))
}

// LogicScoreGT applies the GT predicate on the "logic_score" field.
func LogicScoreGT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldLogicScore, v))
}

// LogicScoreGTE applies the GTE predicate on the "logic_score" field.
func LogicScoreGTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldLogicScore, v))
}

// LogicScoreLT applies the LT predicate on the "logic_score" field.
func LogicScoreLT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldLogicScore, v))
}

// LogicScoreLTE applies the LTE predicate on the "logic_score" field.
func LogicScoreLTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldLogicScore, v))
}

// LogicScoreIsNil applies the IsNil predicate on the "logic_score" field.
func LogicScoreIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldLogicScore))
}

// LogicScoreNotNil applies the NotNil predicate on the "logic_score" field.
func LogicScoreNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldLogicScore))
}

// ExplorationScoreEQ applies the EQ predicate on the "exploration_score" field.
func ExplorationScoreEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExplorationScore, v))
}

// ExplorationScoreNEQ applies the NEQ predicate on the "exploration_score" field.
func ExplorationScoreNEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldExplorationScore, v))
}

// ExplorationScoreIn applies the In predicate on the "exploration_score" field.
func ExplorationScoreIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldExplorationScore, vs...))
}

// ExplorationScoreNotIn applies the NotIn predicate on the "exploration_score" field.
func ExplorationScoreNotIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldExplorationScore, vs...))
}

// ExplorationScoreGT applies the GT predicate on the "exploration_score" field.
func ExplorationScoreGT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldExplorationScore, v))
}

// ExplorationScoreGTE applies the GTE predicate on the "exploration_score" field.
func ExplorationScoreGTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldExplorationScore, v))
}

// ExplorationScoreLT applies the LT predicate on the "exploration_score" field.
func ExplorationScoreLT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldExplorationScore, v))
}

// ExplorationScoreLTE applies the LTE predicate on the "exploration_score" field.
func ExplorationScoreLTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldExplorationScore, v))
}

// ExplorationScoreIsNil applies the IsNil predicate on the "exploration_score" field.
func ExplorationScoreIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldExplorationScore))
}

// ExplorationScoreNotNil applies the NotNil predicate on the "exploration_score" field.
func ExplorationScoreNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldExplorationScore))
}

// CreativityScoreEQ applies the EQ predicate on the "creativity_score" field.
func CreativityScoreEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldCreativityScore, v))
}

// CreativityScoreNEQ applies the NEQ predicate on the "creativity_score" field.
func CreativityScoreNEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldCreativityScore, v))
}

// CreativityScoreIn applies the In predicate on the "creativity_score" field.
func CreativityScoreIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldCreativityScore, vs...))
}

// CreativityScoreNotIn applies the NotIn predicate on the "creativity_score" field.
func CreativityScoreNotIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldCreativityScore, vs...))
}

// CreativityScoreGT applies the GT predicate on the "creativity_score" field.
func CreativityScoreGT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldCreativityScore, v))
}

// CreativityScoreGTE applies the GTE predicate on the "creativity_score" field.
func CreativityScoreGTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldCreativityScore, v))
}

// CreativityScoreLT applies the LT predicate on the "creativity_score" field.
func CreativityScoreLT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldCreativityScore, v))
}

// CreativityScoreLTE applies the LTE predicate on the "creativity_score" field.
func CreativityScoreLTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldCreativityScore, v))
}

// CreativityScoreIsNil applies the IsNil predicate on the "creativity_score" field.
func CreativityScoreIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldCreativityScore))
}

// CreativityScoreNotNil applies the NotNil predicate on the "creativity_score" field.
func CreativityScoreNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldCreativityScore))
}

// HabitScoreEQ applies the EQ predicate on the "habit_score" field.
func HabitScoreEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldHabitScore, v))
}

// HabitScoreNEQ applies the NEQ predicate on the "habit_score" field.
func HabitScoreNEQ(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldHabitScore, v))
}

// HabitScoreIn applies the In predicate on the "habit_score" field.
func HabitScoreIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldHabitScore, vs...))
}

// HabitScoreNotIn applies the NotIn predicate on the "habit_score" field.
func HabitScoreNotIn(vs ...float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldHabitScore, vs...))
}

// HabitScoreGT applies the GT predicate on the "habit_score" field.
func HabitScoreGT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldHabitScore, v))
}

// HabitScoreGTE applies the GTE predicate on the "habit_score" field.
func HabitScoreGTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldHabitScore, v))
}

// HabitScoreLT applies the LT predicate on the "habit_score" field.
func HabitScoreLT(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldHabitScore, v))
}

// HabitScoreLTE applies the LTE predicate on the "habit_score" field.
func HabitScoreLTE(v float64) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldHabitScore, v))
}

// HabitScoreIsNil applies the IsNil predicate on the "habit_score" field.
func HabitScoreIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldHabitScore))
}

// HabitScoreNotNil applies the NotNil predicate on the "habit_score" field.
func HabitScoreNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldHabitScore))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContainsFold(FieldFeedback, v))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotNull(FieldSuggestions))
}

// ExemplarAnswerEQ applies the EQ predicate on the "exemplar_answer" field.
func ExemplarAnswerEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldExemplarAnswer, v))
}

// ExemplarAnswerNEQ applies the NEQ predicate on the "exemplar_answer" field.
func ExemplarAnswerNEQ(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldExemplarAnswer, v))
}

// ExemplarAnswerIn applies the In predicate on the "exemplar_answer" field.
func ExemplarAnswerIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldExemplarAnswer, vs...))
}

// ExemplarAnswerNotIn applies the NotIn predicate on the "exemplar_answer" field.
func ExemplarAnswerNotIn(vs ...string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldExemplarAnswer, vs...))
}

// ExemplarAnswerGT applies the GT predicate on the "exemplar_answer" field.
func ExemplarAnswerGT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldExemplarAnswer, v))
}

// ExemplarAnswerGTE applies the GTE predicate on the "exemplar_answer" field.
func ExemplarAnswerGTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldExemplarAnswer, v))
}

// ExemplarAnswerLT applies the LT predicate on the "exemplar_answer" field.
func ExemplarAnswerLT(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldExemplarAnswer, v))
}

// ExemplarAnswerLTE applies the LTE predicate on the "exemplar_answer" field.
func ExemplarAnswerLTE(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldExemplarAnswer, v))
}

// ExemplarAnswerContains applies the Contains predicate on the "exemplar_answer" field.
func ExemplarAnswerContains(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContains(FieldExemplarAnswer, v))
}

// ExemplarAnswerHasPrefix applies the HasPrefix predicate on the "exemplar_answer" field.
func ExemplarAnswerHasPrefix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasPrefix(FieldExemplarAnswer, v))
}

// ExemplarAnswerHasSuffix applies the HasSuffix predicate on the "exemplar_answer" field.
func ExemplarAnswerHasSuffix(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldHasSuffix(FieldExemplarAnswer, v))
}

// ExemplarAnswerEqualFold applies the EqualFold predicate on the "exemplar_answer" field.
func ExemplarAnswerEqualFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEqualFold(FieldExemplarAnswer, v))
}

// ExemplarAnswerContainsFold applies the ContainsFold predicate on the "exemplar_answer" field.
func ExemplarAnswerContainsFold(v string) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldContainsFold(FieldExemplarAnswer, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.TaskRecord {
	return predicate.TaskRecord(sql.FieldLTE(FieldXpEarned, v))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.TaskRecord {
	return predicate.TaskRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.TaskRecord {
	return predicate.TaskRecord(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskRecord {
	return predicate.TaskRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskRecord {
	return predicate.TaskRecord(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskRecord) predicate.TaskRecord {
	return predicate.TaskRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskRecord) predicate.TaskRecord {
	return predicate.TaskRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskRecord) predicate.TaskRecord {
	return predicate.TaskRecord(sql.NotPredicates(p))
}
