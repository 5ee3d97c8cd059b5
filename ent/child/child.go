// Code generated by ent, DO NOT EDIT.

package child

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the child type in the database.
	Label = "child"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpressionScore holds the string denoting the expression_score field in the database.
	FieldExpressionScore = "expression_score"
	// FieldLogicScore holds the string denoting the logic_score field in the database.
	FieldLogicScore = "logic_score"
	// FieldExplorationScore holds the string denoting the exploration_score field in the database.
	FieldExplorationScore = "exploration_score"
	// FieldCreativityScore holds the string denoting the creativity_score field in the database.
	FieldCreativityScore = "creativity_score"
	// FieldHabitScore holds the string denoting the habit_score field in the database.
	FieldHabitScore = "habit_score"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldAvatarURL holds the string denoting the avatar_url field in the database.
	FieldAvatarURL = "avatar_url"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastActiveOn holds the string denoting the last_active_on field in the database.
	FieldLastActiveOn = "last_active_on"
	// FieldGlobalTitle holds the string denoting the global_title field in the database.
	FieldGlobalTitle = "global_title"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeAssessments holds the string denoting the assessments edge name in mutations.
	EdgeAssessments = "assessments"
	// EdgeTaskRecords holds the string denoting the task_records edge name in mutations.
	EdgeTaskRecords = "task_records"
	// EdgeBadgeAwards holds the string denoting the badge_awards edge name in mutations.
	EdgeBadgeAwards = "badge_awards"
	// EdgeContributions holds the string denoting the contributions edge name in mutations.
	EdgeContributions = "contributions"
	// EdgeWeeklyReports holds the string denoting the weekly_reports edge name in mutations.
	EdgeWeeklyReports = "weekly_reports"
	// EdgeGrowthRecords holds the string denoting the growth_records edge name in mutations.
	EdgeGrowthRecords = "growth_records"
	// EdgeWorks holds the string denoting the works edge name in mutations.
	EdgeWorks = "works"
	// EdgeCoachSessions holds the string denoting the coach_sessions edge name in mutations.
	EdgeCoachSessions = "coach_sessions"
	// Table holds the table name of the child in the database.
	Table = "childs"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "childs"
	// ParentInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ParentInverseTable = "users"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "user_id"
	// AssessmentsTable is the table that holds the assessments relation/edge.
	AssessmentsTable = "assessments"
	// AssessmentsInverseTable is the table name for the Assessment entity.
	// It exists in this package in order to avoid circular dependency with the "assessment" package.
	AssessmentsInverseTable = "assessments"
	// AssessmentsColumn is the table column denoting the assessments relation/edge.
	AssessmentsColumn = "child_id"
	// TaskRecordsTable is the table that holds the task_records relation/edge.
	TaskRecordsTable = "task_records"
	// TaskRecordsInverseTable is the table name for the TaskRecord entity.
	// It exists in this package in order to avoid circular dependency with the "taskrecord" package.
	TaskRecordsInverseTable = "task_records"
	// TaskRecordsColumn is the table column denoting the task_records relation/edge.
	TaskRecordsColumn = "child_id"
	// BadgeAwardsTable is the table that holds the badge_awards relation/edge.
	BadgeAwardsTable = "badge_awards"
	// BadgeAwardsInverseTable is the table name for the BadgeAward entity.
	// It exists in this package in order to avoid circular dependency with the "badgeaward" package.
	BadgeAwardsInverseTable = "badge_awards"
	// BadgeAwardsColumn is the table column denoting the badge_awards relation/edge.
	BadgeAwardsColumn = "child_id"
	// ContributionsTable is the table that holds the contributions relation/edge.
	ContributionsTable = "co_creation_contributions"
	// ContributionsInverseTable is the table name for the CoCreationContribution entity.
	// It exists in this package in order to avoid circular dependency with the "cocreationcontribution" package.
	ContributionsInverseTable = "co_creation_contributions"
	// ContributionsColumn is the table column denoting the contributions relation/edge.
	ContributionsColumn = "child_id"
	// WeeklyReportsTable is the table that holds the weekly_reports relation/edge.
	WeeklyReportsTable = "weekly_reports"
	// WeeklyReportsInverseTable is the table name for the WeeklyReport entity.
	// It exists in this package in order to avoid circular dependency with the "weeklyreport" package.
	WeeklyReportsInverseTable = "weekly_reports"
	// WeeklyReportsColumn is the table column denoting the weekly_reports relation/edge.
	WeeklyReportsColumn = "child_id"
	// GrowthRecordsTable is the table that holds the growth_records relation/edge.
	GrowthRecordsTable = "growth_records"
	// GrowthRecordsInverseTable is the table name for the GrowthRecord entity.
	// It exists in this package in order to avoid circular dependency with the "growthrecord" package.
	GrowthRecordsInverseTable = "growth_records"
	// GrowthRecordsColumn is the table column denoting the growth_records relation/edge.
	GrowthRecordsColumn = "child_id"
	// WorksTable is the table that holds the works relation/edge.
	WorksTable = "works"
	// WorksInverseTable is the table name for the Work entity.
	// It exists in this package in order to avoid circular dependency with the "work" package.
	WorksInverseTable = "works"
	// WorksColumn is the table column denoting the works relation/edge.
	WorksColumn = "child_id"
	// CoachSessionsTable is the table that holds the coach_sessions relation/edge.
	CoachSessionsTable = "coach_sessions"
	// CoachSessionsInverseTable is the table name for the CoachSession entity.
	// It exists in this package in order to avoid circular dependency with the "coachsession" package.
	CoachSessionsInverseTable = "coach_sessions"
	// CoachSessionsColumn is the table column denoting the coach_sessions relation/edge.
	CoachSessionsColumn = "child_id"
)

// Columns holds all SQL columns for child fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldExpressionScore,
	FieldLogicScore,
	FieldExplorationScore,
	FieldCreativityScore,
	FieldHabitScore,
	FieldUserID,
	FieldNickname,
	FieldGrade,
	FieldInterests,
	FieldAvatarURL,
	FieldLevel,
	FieldXp,
	FieldStreak,
	FieldLastActiveOn,
	FieldGlobalTitle,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultExpressionScore holds the default value on creation for the "expression_score" field.
	DefaultExpressionScore float64
	// DefaultLogicScore holds the default value on creation for the "logic_score" field.
	DefaultLogicScore float64
	// DefaultExplorationScore holds the default value on creation for the "exploration_score" field.
	DefaultExplorationScore float64
	// DefaultCreativityScore holds the default value on creation for the "creativity_score" field.
	DefaultCreativityScore float64
	// DefaultHabitScore holds the default value on creation for the "habit_score" field.
	DefaultHabitScore float64
	// NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	NicknameValidator func(string) error
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// DefaultAvatarURL holds the default value on creation for the "avatar_url" field.
	DefaultAvatarURL string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// DefaultGlobalTitle holds the default value on creation for the "global_title" field.
	DefaultGlobalTitle string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Child queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpressionScore orders the results by the expression_score field.
func ByExpressionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpressionScore, opts...).ToFunc()
}

// ByLogicScore orders the results by the logic_score field.
func ByLogicScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicScore, opts...).ToFunc()
}

// ByExplorationScore orders the results by the exploration_score field.
func ByExplorationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplorationScore, opts...).ToFunc()
}

// ByCreativityScore orders the results by the creativity_score field.
func ByCreativityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreativityScore, opts...).ToFunc()
}

// ByHabitScore orders the results by the habit_score field.
func ByHabitScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHabitScore, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByNickname orders the results by the nickname field.
func ByNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNickname, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByAvatarURL orders the results by the avatar_url field.
func ByAvatarURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarURL, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastActiveOn orders the results by the last_active_on field.
func ByLastActiveOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveOn, opts...).ToFunc()
}

// ByGlobalTitle orders the results by the global_title field.
func ByGlobalTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalTitle, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssessmentsCount orders the results by assessments count.
func ByAssessmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssessmentsStep(), opts...)
	}
}

// ByAssessments orders the results by assessments terms.
func ByAssessments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssessmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTaskRecordsCount orders the results by task_records count.
func ByTaskRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTaskRecordsStep(), opts...)
	}
}

// ByTaskRecords orders the results by task_records terms.
func ByTaskRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBadgeAwardsCount orders the results by badge_awards count.
func ByBadgeAwardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBadgeAwardsStep(), opts...)
	}
}

// ByBadgeAwards orders the results by badge_awards terms.
func ByBadgeAwards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBadgeAwardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContributionsCount orders the results by contributions count.
func ByContributionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContributionsStep(), opts...)
	}
}

// ByContributions orders the results by contributions terms.
func ByContributions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContributionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWeeklyReportsCount orders the results by weekly_reports count.
func ByWeeklyReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWeeklyReportsStep(), opts...)
	}
}

// ByWeeklyReports orders the results by weekly_reports terms.
func ByWeeklyReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWeeklyReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGrowthRecordsCount orders the results by growth_records count.
func ByGrowthRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrowthRecordsStep(), opts...)
	}
}

// ByGrowthRecords orders the results by growth_records terms.
func ByGrowthRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrowthRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorksCount orders the results by works count.
func ByWorksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorksStep(), opts...)
	}
}

// ByWorks orders the results by works terms.
func ByWorks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCoachSessionsCount orders the results by coach_sessions count.
func ByCoachSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCoachSessionsStep(), opts...)
	}
}

// ByCoachSessions orders the results by coach_sessions terms.
func ByCoachSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCoachSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newAssessmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssessmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
	)
}
func newTaskRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TaskRecordsTable, TaskRecordsColumn),
	)
}
func newBadgeAwardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BadgeAwardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BadgeAwardsTable, BadgeAwardsColumn),
	)
}
func newContributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContributionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContributionsTable, ContributionsColumn),
	)
}
func newWeeklyReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WeeklyReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WeeklyReportsTable, WeeklyReportsColumn),
	)
}
func newGrowthRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrowthRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrowthRecordsTable, GrowthRecordsColumn),
	)
}
func newWorksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorksTable, WorksColumn),
	)
}
func newCoachSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CoachSessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CoachSessionsTable, CoachSessionsColumn),
	)
}
