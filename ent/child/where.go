// Code generated by ent, DO NOT EDIT.

package child

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpressionScore applies equality check predicate on the "expression_score" field. It's identical to ExpressionScoreEQ.
func ExpressionScore(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldExpressionScore, v))
}

// LogicScore applies equality check predicate on the "logic_score" field. It's identical to LogicScoreEQ.
func LogicScore(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLogicScore, v))
}

// ExplorationScore applies equality check predicate on the "exploration_score" field. It's identical to ExplorationScoreEQ.
func ExplorationScore(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldExplorationScore, v))
}

// CreativityScore applies equality check predicate on the "creativity_score" field. It's identical to CreativityScoreEQ.
func CreativityScore(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldCreativityScore, v))
}

// HabitScore applies equality check predicate on the "habit_score" field. It's identical to HabitScoreEQ.
func HabitScore(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldHabitScore, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldUserID, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldNickname, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldGrade, v))
}

// AvatarURL applies equality check predicate on the "avatar_url" field. It's identical to AvatarURLEQ.
func AvatarURL(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldAvatarURL, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLevel, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldXp, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldStreak, v))
}

// LastActiveOn applies equality check predicate on the "last_active_on" field. It's identical to LastActiveOnEQ.
func LastActiveOn(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLastActiveOn, v))
}

// GlobalTitle applies equality check predicate on the "global_title" field. It's identical to GlobalTitleEQ.
func GlobalTitle(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldGlobalTitle, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpressionScoreEQ applies the EQ predicate on the "expression_score" field.
func ExpressionScoreEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldExpressionScore, v))
}

// ExpressionScoreNEQ applies the NEQ predicate on the "expression_score" field.
func ExpressionScoreNEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldExpressionScore, v))
}

// ExpressionScoreIn applies the In predicate on the "expression_score" field.
func ExpressionScoreIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldExpressionScore, vs...))
}

// ExpressionScoreNotIn applies the NotIn predicate on the "expression_score" field.
func ExpressionScoreNotIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldExpressionScore, vs...))
}

// ExpressionScoreGT applies the GT predicate on the "expression_score" field.
func ExpressionScoreGT(v float64) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldExpressionScore, v))
}

// ExpressionScoreGTE applies the GTE predicate on the "expression_score" field.
func ExpressionScoreGTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldExpressionScore, v))
}

// ExpressionScoreLT applies the LT predicate on the "expression_score" field.
func ExpressionScoreLT(v float64) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldExpressionScore, v))
}

// ExpressionScoreLTE applies the LTE predicate on the "expression_score" field.
func ExpressionScoreLTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldExpressionScore, v))
}

// LogicScoreEQ applies the EQ predicate on the "logic_score" field.
func LogicScoreEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLogicScore, v))
}

// LogicScoreNEQ applies the NEQ predicate on the "logic_score" field.
func LogicScoreNEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldLogicScore, v))
}

// LogicScoreIn applies the In predicate on the "logic_score" field.
func LogicScoreIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldLogicScore, vs...))
}

// LogicScoreNotIn applies the NotIn predicate on the "logic_score" field.
func LogicScoreNotIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldLogicScore, vs...))
}

// LogicScoreGT applies the GT predicate on the "logic_score" field.
func LogicScoreGT(v float64) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldLogicScore, v))
}

// LogicScoreGTE applies the GTE predicate on the "logic_score" field.
func LogicScoreGTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldLogicScore, v))
}

// LogicScoreLT applies the LT predicate on the "logic_score" field.
func LogicScoreLT(v float64) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldLogicScore, v))
}

// LogicScoreLTE applies the LTE predicate on the "logic_score" field.
func LogicScoreLTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldLogicScore, v))
}

// ExplorationScoreEQ applies the EQ predicate on the "exploration_score" field.
func ExplorationScoreEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldExplorationScore, v))
}

// ExplorationScoreNEQ applies the NEQ predicate on the "exploration_score" field.
func ExplorationScoreNEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldExplorationScore, v))
}

// ExplorationScoreIn applies the In predicate on the "exploration_score" field.
func ExplorationScoreIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldExplorationScore, vs...))
}

// ExplorationScoreNotIn applies the NotIn predicate on the "exploration_score" field.
func ExplorationScoreNotIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldExplorationScore, vs...))
}

// ExplorationScoreGT applies the GT predicate on the "exploration_score" field.
func ExplorationScoreGT(v float64) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldExplorationScore, v))
}

// ExplorationScoreGTE applies the GTE predicate on the "exploration_score" field.
func ExplorationScoreGTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldExplorationScore, v))
}

// ExplorationScoreLT applies the LT predicate on the "exploration_score" field.
func ExplorationScoreLT(v float64) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldExplorationScore, v))
}

// ExplorationScoreLTE applies the LTE predicate on the "exploration_score" field.
func ExplorationScoreLTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldExplorationScore, v))
}

// CreativityScoreEQ applies the EQ predicate on the "creativity_score" field.
func CreativityScoreEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldCreativityScore, v))
}

// CreativityScoreNEQ applies the NEQ predicate on the "creativity_score" field.
func CreativityScoreNEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldCreativityScore, v))
}

// CreativityScoreIn applies the In predicate on the "creativity_score" field.
func CreativityScoreIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldCreativityScore, vs...))
}

// CreativityScoreNotIn applies the NotIn predicate on the "creativity_score" field.
func CreativityScoreNotIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldCreativityScore, vs...))
}

// CreativityScoreGT applies the GT predicate on the "creativity_score" field.
func CreativityScoreGT(v float64) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldCreativityScore, v))
}

// CreativityScoreGTE applies the GTE predicate on the "creativity_score" field.
func CreativityScoreGTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldCreativityScore, v))
}

// CreativityScoreLT applies the LT predicate on the "creativity_score" field.
func CreativityScoreLT(v float64) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldCreativityScore, v))
}

// CreativityScoreLTE applies the LTE predicate on the "creativity_score" field.
func CreativityScoreLTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldCreativityScore, v))
}

// HabitScoreEQ applies the EQ predicate on the "habit_score" field.
func HabitScoreEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldHabitScore, v))
}

// HabitScoreNEQ applies the NEQ predicate on the "habit_score" field.
func HabitScoreNEQ(v float64) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldHabitScore, v))
}

// HabitScoreIn applies the In predicate on the "habit_score" field.
func HabitScoreIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldHabitScore, vs...))
}

// HabitScoreNotIn applies the NotIn predicate on the "habit_score" field.
func HabitScoreNotIn(vs ...float64) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldHabitScore, vs...))
}

// HabitScoreGT applies the GT predicate on the "habit_score" field.
func HabitScoreGT(v float64) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldHabitScore, v))
}

// HabitScoreGTE applies the GTE predicate on the "habit_score" field.
func HabitScoreGTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldHabitScore, v))
}

// HabitScoreLT applies the LT predicate on the "habit_score" field.
func HabitScoreLT(v float64) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldHabitScore, v))
}

// HabitScoreLTE applies the LTE predicate on the "habit_score" field.
func HabitScoreLTE(v float64) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldHabitScore, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldUserID, vs...))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.Child {
	return predicate.Child(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.Child {
	return predicate.Child(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.Child {
	return predicate.Child(sql.FieldContainsFold(FieldNickname, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Child {
	return predicate.Child(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Child {
	return predicate.Child(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Child {
	return predicate.Child(sql.FieldContainsFold(FieldGrade, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.Child {
	return predicate.Child(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.Child {
	return predicate.Child(sql.FieldNotNull(FieldInterests))
}

// AvatarURLEQ applies the EQ predicate on the "avatar_url" field.
func AvatarURLEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldAvatarURL, v))
}

// AvatarURLNEQ applies the NEQ predicate on the "avatar_url" field.
func AvatarURLNEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldAvatarURL, v))
}

// AvatarURLIn applies the In predicate on the "avatar_url" field.
func AvatarURLIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldAvatarURL, vs...))
}

// AvatarURLNotIn applies the NotIn predicate on the "avatar_url" field.
func AvatarURLNotIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldAvatarURL, vs...))
}

// AvatarURLGT applies the GT predicate on the "avatar_url" field.
func AvatarURLGT(v string) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldAvatarURL, v))
}

// AvatarURLGTE applies the GTE predicate on the "avatar_url" field.
func AvatarURLGTE(v string) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldAvatarURL, v))
}

// AvatarURLLT applies the LT predicate on the "avatar_url" field.
func AvatarURLLT(v string) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldAvatarURL, v))
}

// AvatarURLLTE applies the LTE predicate on the "avatar_url" field.
func AvatarURLLTE(v string) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldAvatarURL, v))
}

// AvatarURLContains applies the Contains predicate on the "avatar_url" field.
func AvatarURLContains(v string) predicate.Child {
	return predicate.Child(sql.FieldContains(FieldAvatarURL, v))
}

// AvatarURLHasPrefix applies the HasPrefix predicate on the "avatar_url" field.
func AvatarURLHasPrefix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasPrefix(FieldAvatarURL, v))
}

// AvatarURLHasSuffix applies the HasSuffix predicate on the "avatar_url" field.
func AvatarURLHasSuffix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasSuffix(FieldAvatarURL, v))
}

// AvatarURLEqualFold applies the EqualFold predicate on the "avatar_url" field.
func AvatarURLEqualFold(v string) predicate.Child {
	return predicate.Child(sql.FieldEqualFold(FieldAvatarURL, v))
}

// AvatarURLContainsFold applies the ContainsFold predicate on the "avatar_url" field.
func AvatarURLContainsFold(v string) predicate.Child {
	return predicate.Child(sql.FieldContainsFold(FieldAvatarURL, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldLevel, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldXp, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldStreak, v))
}

// LastActiveOnEQ applies the EQ predicate on the "last_active_on" field.
func LastActiveOnEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldLastActiveOn, v))
}

// LastActiveOnNEQ applies the NEQ predicate on the "last_active_on" field.
func LastActiveOnNEQ(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldLastActiveOn, v))
}

// LastActiveOnIn applies the In predicate on the "last_active_on" field.
func LastActiveOnIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldLastActiveOn, vs...))
}

// LastActiveOnNotIn applies the NotIn predicate on the "last_active_on" field.
func LastActiveOnNotIn(vs ...time.Time) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldLastActiveOn, vs...))
}

// LastActiveOnGT applies the GT predicate on the "last_active_on" field.
func LastActiveOnGT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldLastActiveOn, v))
}

// LastActiveOnGTE applies the GTE predicate on the "last_active_on" field.
func LastActiveOnGTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldLastActiveOn, v))
}

// LastActiveOnLT applies the LT predicate on the "last_active_on" field.
func LastActiveOnLT(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldLastActiveOn, v))
}

// LastActiveOnLTE applies the LTE predicate on the "last_active_on" field.
func LastActiveOnLTE(v time.Time) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldLastActiveOn, v))
}

// LastActiveOnIsNil applies the IsNil predicate on the "last_active_on" field.
func LastActiveOnIsNil() predicate.Child {
	return predicate.Child(sql.FieldIsNull(FieldLastActiveOn))
}

// LastActiveOnNotNil applies the NotNil predicate on the "last_active_on" field.
func LastActiveOnNotNil() predicate.Child {
	return predicate.Child(sql.FieldNotNull(FieldLastActiveOn))
}

// GlobalTitleEQ applies the EQ predicate on the "global_title" field.
func GlobalTitleEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldEQ(FieldGlobalTitle, v))
}

// GlobalTitleNEQ applies the NEQ predicate on the "global_title" field.
func GlobalTitleNEQ(v string) predicate.Child {
	return predicate.Child(sql.FieldNEQ(FieldGlobalTitle, v))
}

// GlobalTitleIn applies the In predicate on the "global_title" field.
func GlobalTitleIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldIn(FieldGlobalTitle, vs...))
}

// GlobalTitleNotIn applies the NotIn predicate on the "global_title" field.
func GlobalTitleNotIn(vs ...string) predicate.Child {
	return predicate.Child(sql.FieldNotIn(FieldGlobalTitle, vs...))
}

// GlobalTitleGT applies the GT predicate on the "global_title" field.
func GlobalTitleGT(v string) predicate.Child {
	return predicate.Child(sql.FieldGT(FieldGlobalTitle, v))
}

// GlobalTitleGTE applies the GTE predicate on the "global_title" field.
func GlobalTitleGTE(v string) predicate.Child {
	return predicate.Child(sql.FieldGTE(FieldGlobalTitle, v))
}

// GlobalTitleLT applies the LT predicate on the "global_title" field.
func GlobalTitleLT(v string) predicate.Child {
	return predicate.Child(sql.FieldLT(FieldGlobalTitle, v))
}

// GlobalTitleLTE applies the LTE predicate on the "global_title" field.
func GlobalTitleLTE(v string) predicate.Child {
	return predicate.Child(sql.FieldLTE(FieldGlobalTitle, v))
}

// GlobalTitleContains applies the Contains predicate on the "global_title" field.
func GlobalTitleContains(v string) predicate.Child {
	return predicate.Child(sql.FieldContains(FieldGlobalTitle, v))
}

// GlobalTitleHasPrefix applies the HasPrefix predicate on the "global_title" field.
func GlobalTitleHasPrefix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasPrefix(FieldGlobalTitle, v))
}

// GlobalTitleHasSuffix applies the HasSuffix predicate on the "global_title" field.
func GlobalTitleHasSuffix(v string) predicate.Child {
	return predicate.Child(sql.FieldHasSuffix(FieldGlobalTitle, v))
}

// GlobalTitleEqualFold applies the EqualFold predicate on the "global_title" field.
func GlobalTitleEqualFold(v string) predicate.Child {
	return predicate.Child(sql.FieldEqualFold(FieldGlobalTitle, v))
}

// GlobalTitleContainsFold applies the ContainsFold predicate on the "global_title" field.
func GlobalTitleContainsFold(v string) predicate.Child {
	return predicate.Child(sql.FieldContainsFold(FieldGlobalTitle, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.User) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssessments applies the HasEdge predicate on the "assessments" edge.
func HasAssessments() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentsWith applies the HasEdge predicate on the "assessments" edge with a given conditions (other predicates).
func HasAssessmentsWith(preds ...predicate.Assessment) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newAssessmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTaskRecords applies the HasEdge predicate on the "task_records" edge.
func HasTaskRecords() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TaskRecordsTable, TaskRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskRecordsWith applies the HasEdge predicate on the "task_records" edge with a given conditions (other predicates).
func HasTaskRecordsWith(preds ...predicate.TaskRecord) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newTaskRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBadgeAwards applies the HasEdge predicate on the "badge_awards" edge.
func HasBadgeAwards() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BadgeAwardsTable, BadgeAwardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBadgeAwardsWith applies the HasEdge predicate on the "badge_awards" edge with a given conditions (other predicates).
func HasBadgeAwardsWith(preds ...predicate.BadgeAward) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newBadgeAwardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContributions applies the HasEdge predicate on the "contributions" edge.
func HasContributions() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContributionsTable, ContributionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContributionsWith applies the HasEdge predicate on the "contributions" edge with a given conditions (other predicates).
func HasContributionsWith(preds ...predicate.CoCreationContribution) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newContributionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWeeklyReports applies the HasEdge predicate on the "weekly_reports" edge.
func HasWeeklyReports() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WeeklyReportsTable, WeeklyReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWeeklyReportsWith applies the HasEdge predicate on the "weekly_reports" edge with a given conditions (other predicates).
func HasWeeklyReportsWith(preds ...predicate.WeeklyReport) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newWeeklyReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrowthRecords applies the HasEdge predicate on the "growth_records" edge.
func HasGrowthRecords() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrowthRecordsTable, GrowthRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrowthRecordsWith applies the HasEdge predicate on the "growth_records" edge with a given conditions (other predicates).
func HasGrowthRecordsWith(preds ...predicate.GrowthRecord) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newGrowthRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorks applies the HasEdge predicate on the "works" edge.
func HasWorks() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorksTable, WorksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorksWith applies the HasEdge predicate on the "works" edge with a given conditions (other predicates).
func HasWorksWith(preds ...predicate.Work) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newWorksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCoachSessions applies the HasEdge predicate on the "coach_sessions" edge.
func HasCoachSessions() predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CoachSessionsTable, CoachSessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoachSessionsWith applies the HasEdge predicate on the "coach_sessions" edge with a given conditions (other predicates).
func HasCoachSessionsWith(preds ...predicate.CoachSession) predicate.Child {
	return predicate.Child(func(s *sql.Selector) {
		step := newCoachSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Child) predicate.Child {
	return predicate.Child(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Child) predicate.Child {
	return predicate.Child(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Child) predicate.Child {
	return predicate.Child(sql.NotPredicates(p))
}
