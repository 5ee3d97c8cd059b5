// Code generated by ent, DO NOT EDIT.

package weeklyreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldChildID, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldWeekStart, v))
}

// WeekEnd applies equality check predicate on the "week_end" field. It's identical to WeekEndEQ.
func WeekEnd(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldWeekEnd, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldTasksCompleted, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldAverageScore, v))
}

// MostImproved applies equality check predicate on the "most_improved" field. It's identical to MostImprovedEQ.
func MostImproved(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldMostImproved, v))
}

// NeedsWork applies equality check predicate on the "needs_work" field. It's identical to NeedsWorkEQ.
func NeedsWork(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldNeedsWork, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldChildID, vs...))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldWeekStart, v))
}

// WeekEndEQ applies the EQ predicate on the "week_end" field.
func WeekEndEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldWeekEnd, v))
}

// WeekEndNEQ applies the NEQ predicate on the "week_end" field.
func WeekEndNEQ(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldWeekEnd, v))
}

// WeekEndIn applies the In predicate on the "week_end" field.
func WeekEndIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldWeekEnd, vs...))
}

// WeekEndNotIn applies the NotIn predicate on the "week_end" field.
func WeekEndNotIn(vs ...time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldWeekEnd, vs...))
}

// WeekEndGT applies the GT predicate on the "week_end" field.
func WeekEndGT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldWeekEnd, v))
}

// WeekEndGTE applies the GTE predicate on the "week_end" field.
func WeekEndGTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldWeekEnd, v))
}

// WeekEndLT applies the LT predicate on the "week_end" field.
func WeekEndLT(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldWeekEnd, v))
}

// WeekEndLTE applies the LTE predicate on the "week_end" field.
func WeekEndLTE(v time.Time) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldWeekEnd, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldTasksCompleted, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldAverageScore, v))
}

// MostImprovedEQ applies the EQ predicate on the "most_improved" field.
func MostImprovedEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldMostImproved, v))
}

// MostImprovedNEQ applies the NEQ predicate on the "most_improved" field.
func MostImprovedNEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldMostImproved, v))
}

// MostImprovedIn applies the In predicate on the "most_improved" field.
func MostImprovedIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldMostImproved, vs...))
}

// MostImprovedNotIn applies the NotIn predicate on the "most_improved" field.
func MostImprovedNotIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldMostImproved, vs...))
}

// MostImprovedGT applies the GT predicate on the "most_improved" field.
func MostImprovedGT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldMostImproved, v))
}

// MostImprovedGTE applies the GTE predicate on the "most_improved" field.
func MostImprovedGTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldMostImproved, v))
}

// MostImprovedLT applies the LT predicate on the "most_improved" field.
func MostImprovedLT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldMostImproved, v))
}

// MostImprovedLTE applies the LTE predicate on the "most_improved" field.
func MostImprovedLTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldMostImproved, v))
}

// MostImprovedContains applies the Contains predicate on the "most_improved" field.
func MostImprovedContains(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContains(FieldMostImproved, v))
}

// MostImprovedHasPrefix applies the HasPrefix predicate on the "most_improved" field.
func MostImprovedHasPrefix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasPrefix(FieldMostImproved, v))
}

// MostImprovedHasSuffix applies the HasSuffix predicate on the "most_improved" field.
func MostImprovedHasSuffix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasSuffix(FieldMostImproved, v))
}

// MostImprovedEqualFold applies the EqualFold predicate on the "most_improved" field.
func MostImprovedEqualFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEqualFold(FieldMostImproved, v))
}

// MostImprovedContainsFold applies the ContainsFold predicate on the "most_improved" field.
func MostImprovedContainsFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContainsFold(FieldMostImproved, v))
}

// NeedsWorkEQ applies the EQ predicate on the "needs_work" field.
func NeedsWorkEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldNeedsWork, v))
}

// NeedsWorkNEQ applies the NEQ predicate on the "needs_work" field.
func NeedsWorkNEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldNeedsWork, v))
}

// NeedsWorkIn applies the In predicate on the "needs_work" field.
func NeedsWorkIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldNeedsWork, vs...))
}

// NeedsWorkNotIn applies the NotIn predicate on the "needs_work" field.
func NeedsWorkNotIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldNeedsWork, vs...))
}

// NeedsWorkGT applies the GT predicate on the "needs_work" field.
func NeedsWorkGT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldNeedsWork, v))
}

// NeedsWorkGTE applies the GTE predicate on the "needs_work" field.
func NeedsWorkGTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldNeedsWork, v))
}

// NeedsWorkLT applies the LT predicate on the "needs_work" field.
func NeedsWorkLT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldNeedsWork, v))
}

// NeedsWorkLTE applies the LTE predicate on the "needs_work" field.
func NeedsWorkLTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldNeedsWork, v))
}

// NeedsWorkContains applies the Contains predicate on the "needs_work" field.
func NeedsWorkContains(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContains(FieldNeedsWork, v))
}

// NeedsWorkHasPrefix applies the HasPrefix predicate on the "needs_work" field.
func NeedsWorkHasPrefix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasPrefix(FieldNeedsWork, v))
}

// NeedsWorkHasSuffix applies the HasSuffix predicate on the "needs_work" field.
func NeedsWorkHasSuffix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasSuffix(FieldNeedsWork, v))
}

// NeedsWorkEqualFold applies the EqualFold predicate on the "needs_work" field.
func NeedsWorkEqualFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEqualFold(FieldNeedsWork, v))
}

// NeedsWorkContainsFold applies the ContainsFold predicate on the "needs_work" field.
func NeedsWorkContainsFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContainsFold(FieldNeedsWork, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldContainsFold(FieldSummary, v))
}

// InsightsIsNil applies the IsNil predicate on the "insights" field.
func InsightsIsNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIsNull(FieldInsights))
}

// InsightsNotNil applies the NotNil predicate on the "insights" field.
func InsightsNotNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotNull(FieldInsights))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotNull(FieldSuggestions))
}

// RecommendedGamesIsNil applies the IsNil predicate on the "recommended_games" field.
func RecommendedGamesIsNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldIsNull(FieldRecommendedGames))
}

// RecommendedGamesNotNil applies the NotNil predicate on the "recommended_games" field.
func RecommendedGamesNotNil() predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.FieldNotNull(FieldRecommendedGames))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.WeeklyReport {
	return predicate.WeeklyReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.WeeklyReport {
	return predicate.WeeklyReport(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeeklyReport) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeeklyReport) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeeklyReport) predicate.WeeklyReport {
	return predicate.WeeklyReport(sql.NotPredicates(p))
}
