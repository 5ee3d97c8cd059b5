// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpressionScore applies equality check predicate on the "expression_score" field. It's identical to ExpressionScoreEQ.
func ExpressionScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldExpressionScore, v))
}

// LogicScore applies equality check predicate on the "logic_score" field. It's identical to LogicScoreEQ.
func LogicScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldLogicScore, v))
}

// ExplorationScore applies equality check predicate on the "exploration_score" field. It's identical to ExplorationScoreEQ.
func ExplorationScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldExplorationScore, v))
}

// CreativityScore applies equality check predicate on the "creativity_score" field. It's identical to CreativityScoreEQ.
func CreativityScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreativityScore, v))
}

// HabitScore applies equality check predicate on the "habit_score" field. It's identical to HabitScoreEQ.
func HabitScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldHabitScore, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldChildID, v))
}

// Analysis applies equality check predicate on the "analysis" field. It's identical to AnalysisEQ.
func Analysis(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAnalysis, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpressionScoreEQ applies the EQ predicate on the "expression_score" field.
func ExpressionScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldExpressionScore, v))
}

// ExpressionScoreNEQ applies the NEQ predicate on the "expression_score" field.
func ExpressionScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldExpressionScore, v))
}

// ExpressionScoreIn applies the In predicate on the "expression_score" field.
func ExpressionScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldExpressionScore, vs...))
}

// ExpressionScoreNotIn applies the NotIn predicate on the "expression_score" field.
func ExpressionScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldExpressionScore, vs...))
}

// ExpressionScoreGT applies the GT predicate on the "expression_score" field.
func ExpressionScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldExpressionScore, v))
}

// ExpressionScoreGTE applies the GTE predicate on the "expression_score" field.
func ExpressionScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldExpressionScore, v))
}

// ExpressionScoreLT applies the LT predicate on the "expression_score" field.
func ExpressionScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldExpressionScore, v))
}

// ExpressionScoreLTE applies the LTE predicate on the "expression_score" field.
func ExpressionScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldExpressionScore, v))
}

// LogicScoreEQ applies the EQ predicate on the "logic_score" field.
func LogicScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldLogicScore, v))
}

// LogicScoreNEQ applies the NEQ predicate on the "logic_score" field.
func LogicScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldLogicScore, v))
}

// LogicScoreIn applies the In predicate on the "logic_score" field.
func LogicScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldLogicScore, vs...))
}

// LogicScoreNotIn applies the NotIn predicate on the "logic_score" field.
func LogicScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldLogicScore, vs...))
}

// LogicScoreGT applies the GT predicate on the "logic_score" field.
func LogicScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldLogicScore, v))
}

// LogicScoreGTE applies the GTE predicate on the "logic_score" field.
func LogicScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldLogicScore, v))
}

// LogicScoreLT applies the LT predicate on the "logic_score" field.
func LogicScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldLogicScore, v))
}

// LogicScoreLTE applies the LTE predicate on the "logic_score" field.
func LogicScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldLogicScore, v))
}

// ExplorationScoreEQ applies the EQ predicate on the "exploration_score" field.
func ExplorationScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldExplorationScore, v))
}

// ExplorationScoreNEQ applies the NEQ predicate on the "exploration_score" field.
func ExplorationScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldExplorationScore, v))
}

// ExplorationScoreIn applies the In predicate on the "exploration_score" field.
func ExplorationScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldExplorationScore, vs...))
}

// ExplorationScoreNotIn applies the NotIn predicate on the "exploration_score" field.
func ExplorationScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldExplorationScore, vs...))
}

// ExplorationScoreGT applies the GT predicate on the "exploration_score" field.
func ExplorationScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldExplorationScore, v))
}

// ExplorationScoreGTE applies the GTE predicate on the "exploration_score" field.
func ExplorationScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldExplorationScore, v))
}

// ExplorationScoreLT applies the LT predicate on the "exploration_score" field.
func ExplorationScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldExplorationScore, v))
}

// ExplorationScoreLTE applies the LTE predicate on the "exploration_score" field.
func ExplorationScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldExplorationScore, v))
}

// CreativityScoreEQ applies the EQ predicate on the "creativity_score" field.
func CreativityScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreativityScore, v))
}

// CreativityScoreNEQ applies the NEQ predicate on the "creativity_score" field.
func CreativityScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCreativityScore, v))
}

// CreativityScoreIn applies the In predicate on the "creativity_score" field.
func CreativityScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCreativityScore, vs...))
}

// CreativityScoreNotIn applies the NotIn predicate on the "creativity_score" field.
func CreativityScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCreativityScore, vs...))
}

// CreativityScoreGT applies the GT predicate on the "creativity_score" field.
func CreativityScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCreativityScore, v))
}

// CreativityScoreGTE applies the GTE predicate on the "creativity_score" field.
func CreativityScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCreativityScore, v))
}

// CreativityScoreLT applies the LT predicate on the "creativity_score" field.
func CreativityScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCreativityScore, v))
}

// CreativityScoreLTE applies the LTE predicate on the "creativity_score" field.
func CreativityScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCreativityScore, v))
}

// HabitScoreEQ applies the EQ predicate on the "habit_score" field.
func HabitScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldHabitScore, v))
}

// HabitScoreNEQ applies the NEQ predicate on the "habit_score" field.
func HabitScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldHabitScore, v))
}

// HabitScoreIn applies the In predicate on the "habit_score" field.
func HabitScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldHabitScore, vs...))
}

// HabitScoreNotIn applies the NotIn predicate on the "habit_score" field.
func HabitScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldHabitScore, vs...))
}

// HabitScoreGT applies the GT predicate on the "habit_score" field.
func HabitScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldHabitScore, v))
}

// HabitScoreGTE applies the GTE predicate on the "habit_score" field.
func HabitScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldHabitScore, v))
}

// HabitScoreLT applies the LT predicate on the "habit_score" field.
func HabitScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldHabitScore, v))
}

// HabitScoreLTE applies the LTE predicate on the "habit_score" field.
func HabitScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldHabitScore, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldChildID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldKind, vs...))
}

// AnalysisEQ applies the EQ predicate on the "analysis" field.
func AnalysisEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAnalysis, v))
}

// AnalysisNEQ applies the NEQ predicate on the "analysis" field.
func AnalysisNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAnalysis, v))
}

// AnalysisIn applies the In predicate on the "analysis" field.
func AnalysisIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAnalysis, vs...))
}

// AnalysisNotIn applies the NotIn predicate on the "analysis" field.
func AnalysisNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAnalysis, vs...))
}

// AnalysisGT applies the GT predicate on the "analysis" field.
func AnalysisGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAnalysis, v))
}

// AnalysisGTE applies the GTE predicate on the "analysis" field.
func AnalysisGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAnalysis, v))
}

// AnalysisLT applies the LT predicate on the "analysis" field.
func AnalysisLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAnalysis, v))
}

// AnalysisLTE applies the LTE predicate on the "analysis" field.
func AnalysisLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAnalysis, v))
}

// AnalysisContains applies the Contains predicate on the "analysis" field.
func AnalysisContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAnalysis, v))
}

// AnalysisHasPrefix applies the HasPrefix predicate on the "analysis" field.
func AnalysisHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAnalysis, v))
}

// AnalysisHasSuffix applies the HasSuffix predicate on the "analysis" field.
func AnalysisHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAnalysis, v))
}

// AnalysisEqualFold applies the EqualFold predicate on the "analysis" field.
func AnalysisEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAnalysis, v))
}

// AnalysisContainsFold applies the ContainsFold predicate on the "analysis" field.
func AnalysisContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAnalysis, v))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldSuggestions))
}

// HasChild applies the HasEdge predicate on the "child" edge.
func HasChild() predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildWith applies the HasEdge predicate on the "child" edge with a given conditions (other predicates).
func HasChildWith(preds ...predicate.Child) predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := newChildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
