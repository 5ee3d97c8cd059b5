// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/llmrequestevent"
	"github.com/abhisek/budai/ent/schema"
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentMixin := schema.Assessment{}.Mixin()
	assessmentMixinFields0 := assessmentMixin[0].Fields()
	_ = assessmentMixinFields0
	assessmentMixinFields1 := assessmentMixin[1].Fields()
	_ = assessmentMixinFields1
	assessmentMixinFields2 := assessmentMixin[2].Fields()
	_ = assessmentMixinFields2
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescCreatedAt is the schema descriptor for created_at field.
	assessmentDescCreatedAt := assessmentMixinFields1[0].Descriptor()
	// assessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessment.DefaultCreatedAt = assessmentDescCreatedAt.Default.(func() time.Time)
	// assessmentDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentDescUpdatedAt := assessmentMixinFields1[1].Descriptor()
	// assessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessment.DefaultUpdatedAt = assessmentDescUpdatedAt.Default.(func() time.Time)
	// assessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessment.UpdateDefaultUpdatedAt = assessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assessmentDescExpressionScore is the schema descriptor for expression_score field.
	assessmentDescExpressionScore := assessmentMixinFields2[0].Descriptor()
	// assessment.DefaultExpressionScore holds the default value on creation for the expression_score field.
	assessment.DefaultExpressionScore = assessmentDescExpressionScore.Default.(float64)
	// assessmentDescLogicScore is the schema descriptor for logic_score field.
	assessmentDescLogicScore := assessmentMixinFields2[1].Descriptor()
	// assessment.DefaultLogicScore holds the default value on creation for the logic_score field.
	assessment.DefaultLogicScore = assessmentDescLogicScore.Default.(float64)
	// assessmentDescExplorationScore is the schema descriptor for exploration_score field.
	assessmentDescExplorationScore := assessmentMixinFields2[2].Descriptor()
	// assessment.DefaultExplorationScore holds the default value on creation for the exploration_score field.
	assessment.DefaultExplorationScore = assessmentDescExplorationScore.Default.(float64)
	// assessmentDescCreativityScore is the schema descriptor for creativity_score field.
	assessmentDescCreativityScore := assessmentMixinFields2[3].Descriptor()
	// assessment.DefaultCreativityScore holds the default value on creation for the creativity_score field.
	assessment.DefaultCreativityScore = assessmentDescCreativityScore.Default.(float64)
	// assessmentDescHabitScore is the schema descriptor for habit_score field.
	assessmentDescHabitScore := assessmentMixinFields2[4].Descriptor()
	// assessment.DefaultHabitScore holds the default value on creation for the habit_score field.
	assessment.DefaultHabitScore = assessmentDescHabitScore.Default.(float64)
	// assessmentDescAnalysis is the schema descriptor for analysis field.
	assessmentDescAnalysis := assessmentFields[3].Descriptor()
	// assessment.DefaultAnalysis holds the default value on creation for the analysis field.
	assessment.DefaultAnalysis = assessmentDescAnalysis.Default.(string)
	// assessmentDescID is the schema descriptor for id field.
	assessmentDescID := assessmentMixinFields0[0].Descriptor()
	// assessment.DefaultID holds the default value on creation for the id field.
	assessment.DefaultID = assessmentDescID.Default.(func() uuid.UUID)
	badgeMixin := schema.Badge{}.Mixin()
	badgeMixinFields0 := badgeMixin[0].Fields()
	_ = badgeMixinFields0
	badgeMixinFields1 := badgeMixin[1].Fields()
	_ = badgeMixinFields1
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescCreatedAt is the schema descriptor for created_at field.
	badgeDescCreatedAt := badgeMixinFields1[0].Descriptor()
	// badge.DefaultCreatedAt holds the default value on creation for the created_at field.
	badge.DefaultCreatedAt = badgeDescCreatedAt.Default.(func() time.Time)
	// badgeDescUpdatedAt is the schema descriptor for updated_at field.
	badgeDescUpdatedAt := badgeMixinFields1[1].Descriptor()
	// badge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	badge.DefaultUpdatedAt = badgeDescUpdatedAt.Default.(func() time.Time)
	// badge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	badge.UpdateDefaultUpdatedAt = badgeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// badgeDescKey is the schema descriptor for key field.
	badgeDescKey := badgeFields[0].Descriptor()
	// badge.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	badge.KeyValidator = badgeDescKey.Validators[0].(func(string) error)
	// badgeDescName is the schema descriptor for name field.
	badgeDescName := badgeFields[1].Descriptor()
	// badge.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badge.NameValidator = badgeDescName.Validators[0].(func(string) error)
	// badgeDescDescription is the schema descriptor for description field.
	badgeDescDescription := badgeFields[2].Descriptor()
	// badge.DefaultDescription holds the default value on creation for the description field.
	badge.DefaultDescription = badgeDescDescription.Default.(string)
	// badgeDescIcon is the schema descriptor for icon field.
	badgeDescIcon := badgeFields[3].Descriptor()
	// badge.DefaultIcon holds the default value on creation for the icon field.
	badge.DefaultIcon = badgeDescIcon.Default.(string)
	// badgeDescCriteria is the schema descriptor for criteria field.
	badgeDescCriteria := badgeFields[4].Descriptor()
	// badge.DefaultCriteria holds the default value on creation for the criteria field.
	badge.DefaultCriteria = badgeDescCriteria.Default.(string)
	// badgeDescID is the schema descriptor for id field.
	badgeDescID := badgeMixinFields0[0].Descriptor()
	// badge.DefaultID holds the default value on creation for the id field.
	badge.DefaultID = badgeDescID.Default.(func() uuid.UUID)
	badgeawardMixin := schema.BadgeAward{}.Mixin()
	badgeawardMixinFields0 := badgeawardMixin[0].Fields()
	_ = badgeawardMixinFields0
	badgeawardFields := schema.BadgeAward{}.Fields()
	_ = badgeawardFields
	// badgeawardDescAwardedAt is the schema descriptor for awarded_at field.
	badgeawardDescAwardedAt := badgeawardFields[2].Descriptor()
	// badgeaward.DefaultAwardedAt holds the default value on creation for the awarded_at field.
	badgeaward.DefaultAwardedAt = badgeawardDescAwardedAt.Default.(func() time.Time)
	// badgeawardDescID is the schema descriptor for id field.
	badgeawardDescID := badgeawardMixinFields0[0].Descriptor()
	// badgeaward.DefaultID holds the default value on creation for the id field.
	badgeaward.DefaultID = badgeawardDescID.Default.(func() uuid.UUID)
	childMixin := schema.Child{}.Mixin()
	childMixinFields0 := childMixin[0].Fields()
	_ = childMixinFields0
	childMixinFields1 := childMixin[1].Fields()
	_ = childMixinFields1
	childMixinFields2 := childMixin[2].Fields()
	_ = childMixinFields2
	childFields := schema.Child{}.Fields()
	_ = childFields
	// childDescCreatedAt is the schema descriptor for created_at field.
	childDescCreatedAt := childMixinFields1[0].Descriptor()
	// child.DefaultCreatedAt holds the default value on creation for the created_at field.
	child.DefaultCreatedAt = childDescCreatedAt.Default.(func() time.Time)
	// childDescUpdatedAt is the schema descriptor for updated_at field.
	childDescUpdatedAt := childMixinFields1[1].Descriptor()
	// child.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	child.DefaultUpdatedAt = childDescUpdatedAt.Default.(func() time.Time)
	// child.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	child.UpdateDefaultUpdatedAt = childDescUpdatedAt.UpdateDefault.(func() time.Time)
	// childDescExpressionScore is the schema descriptor for expression_score field.
	childDescExpressionScore := childMixinFields2[0].Descriptor()
	// child.DefaultExpressionScore holds the default value on creation for the expression_score field.
	child.DefaultExpressionScore = childDescExpressionScore.Default.(float64)
	// childDescLogicScore is the schema descriptor for logic_score field.
	childDescLogicScore := childMixinFields2[1].Descriptor()
	// child.DefaultLogicScore holds the default value on creation for the logic_score field.
	child.DefaultLogicScore = childDescLogicScore.Default.(float64)
	// childDescExplorationScore is the schema descriptor for exploration_score field.
	childDescExplorationScore := childMixinFields2[2].Descriptor()
	// child.DefaultExplorationScore holds the default value on creation for the exploration_score field.
	child.DefaultExplorationScore = childDescExplorationScore.Default.(float64)
	// childDescCreativityScore is the schema descriptor for creativity_score field.
	childDescCreativityScore := childMixinFields2[3].Descriptor()
	// child.DefaultCreativityScore holds the default value on creation for the creativity_score field.
	child.DefaultCreativityScore = childDescCreativityScore.Default.(float64)
	// childDescHabitScore is the schema descriptor for habit_score field.
	childDescHabitScore := childMixinFields2[4].Descriptor()
	// child.DefaultHabitScore holds the default value on creation for the habit_score field.
	child.DefaultHabitScore = childDescHabitScore.Default.(float64)
	// childDescNickname is the schema descriptor for nickname field.
	childDescNickname := childFields[1].Descriptor()
	// child.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	child.NicknameValidator = childDescNickname.Validators[0].(func(string) error)
	// childDescGrade is the schema descriptor for grade field.
	childDescGrade := childFields[2].Descriptor()
	// child.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	child.GradeValidator = childDescGrade.Validators[0].(func(string) error)
	// childDescAvatarURL is the schema descriptor for avatar_url field.
	childDescAvatarURL := childFields[4].Descriptor()
	// child.DefaultAvatarURL holds the default value on creation for the avatar_url field.
	child.DefaultAvatarURL = childDescAvatarURL.Default.(string)
	// childDescLevel is the schema descriptor for level field.
	childDescLevel := childFields[5].Descriptor()
	// child.DefaultLevel holds the default value on creation for the level field.
	child.DefaultLevel = childDescLevel.Default.(int)
	// child.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	child.LevelValidator = childDescLevel.Validators[0].(func(int) error)
	// childDescXp is the schema descriptor for xp field.
	childDescXp := childFields[6].Descriptor()
	// child.DefaultXp holds the default value on creation for the xp field.
	child.DefaultXp = childDescXp.Default.(int)
	// child.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	child.XpValidator = childDescXp.Validators[0].(func(int) error)
	// childDescStreak is the schema descriptor for streak field.
	childDescStreak := childFields[7].Descriptor()
	// child.DefaultStreak holds the default value on creation for the streak field.
	child.DefaultStreak = childDescStreak.Default.(int)
	// child.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	child.StreakValidator = childDescStreak.Validators[0].(func(int) error)
	// childDescGlobalTitle is the schema descriptor for global_title field.
	childDescGlobalTitle := childFields[9].Descriptor()
	// child.DefaultGlobalTitle holds the default value on creation for the global_title field.
	child.DefaultGlobalTitle = childDescGlobalTitle.Default.(string)
	// childDescID is the schema descriptor for id field.
	childDescID := childMixinFields0[0].Descriptor()
	// child.DefaultID holds the default value on creation for the id field.
	child.DefaultID = childDescID.Default.(func() uuid.UUID)
	cocreationcontributionMixin := schema.CoCreationContribution{}.Mixin()
	cocreationcontributionMixinFields0 := cocreationcontributionMixin[0].Fields()
	_ = cocreationcontributionMixinFields0
	cocreationcontributionMixinFields1 := cocreationcontributionMixin[1].Fields()
	_ = cocreationcontributionMixinFields1
	cocreationcontributionFields := schema.CoCreationContribution{}.Fields()
	_ = cocreationcontributionFields
	// cocreationcontributionDescCreatedAt is the schema descriptor for created_at field.
	cocreationcontributionDescCreatedAt := cocreationcontributionMixinFields1[0].Descriptor()
	// cocreationcontribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	cocreationcontribution.DefaultCreatedAt = cocreationcontributionDescCreatedAt.Default.(func() time.Time)
	// cocreationcontributionDescUpdatedAt is the schema descriptor for updated_at field.
	cocreationcontributionDescUpdatedAt := cocreationcontributionMixinFields1[1].Descriptor()
	// cocreationcontribution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cocreationcontribution.DefaultUpdatedAt = cocreationcontributionDescUpdatedAt.Default.(func() time.Time)
	// cocreationcontribution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cocreationcontribution.UpdateDefaultUpdatedAt = cocreationcontributionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cocreationcontributionDescID is the schema descriptor for id field.
	cocreationcontributionDescID := cocreationcontributionMixinFields0[0].Descriptor()
	// cocreationcontribution.DefaultID holds the default value on creation for the id field.
	cocreationcontribution.DefaultID = cocreationcontributionDescID.Default.(func() uuid.UUID)
	cocreationthemeMixin := schema.CoCreationTheme{}.Mixin()
	cocreationthemeMixinFields0 := cocreationthemeMixin[0].Fields()
	_ = cocreationthemeMixinFields0
	cocreationthemeMixinFields1 := cocreationthemeMixin[1].Fields()
	_ = cocreationthemeMixinFields1
	cocreationthemeFields := schema.CoCreationTheme{}.Fields()
	_ = cocreationthemeFields
	// cocreationthemeDescCreatedAt is the schema descriptor for created_at field.
	cocreationthemeDescCreatedAt := cocreationthemeMixinFields1[0].Descriptor()
	// cocreationtheme.DefaultCreatedAt holds the default value on creation for the created_at field.
	cocreationtheme.DefaultCreatedAt = cocreationthemeDescCreatedAt.Default.(func() time.Time)
	// cocreationthemeDescUpdatedAt is the schema descriptor for updated_at field.
	cocreationthemeDescUpdatedAt := cocreationthemeMixinFields1[1].Descriptor()
	// cocreationtheme.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cocreationtheme.DefaultUpdatedAt = cocreationthemeDescUpdatedAt.Default.(func() time.Time)
	// cocreationtheme.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cocreationtheme.UpdateDefaultUpdatedAt = cocreationthemeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cocreationthemeDescTitle is the schema descriptor for title field.
	cocreationthemeDescTitle := cocreationthemeFields[0].Descriptor()
	// cocreationtheme.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	cocreationtheme.TitleValidator = cocreationthemeDescTitle.Validators[0].(func(string) error)
	// cocreationthemeDescDescription is the schema descriptor for description field.
	cocreationthemeDescDescription := cocreationthemeFields[1].Descriptor()
	// cocreationtheme.DefaultDescription holds the default value on creation for the description field.
	cocreationtheme.DefaultDescription = cocreationthemeDescDescription.Default.(string)
	// cocreationthemeDescID is the schema descriptor for id field.
	cocreationthemeDescID := cocreationthemeMixinFields0[0].Descriptor()
	// cocreationtheme.DefaultID holds the default value on creation for the id field.
	cocreationtheme.DefaultID = cocreationthemeDescID.Default.(func() uuid.UUID)
	coachsessionMixin := schema.CoachSession{}.Mixin()
	coachsessionMixinFields0 := coachsessionMixin[0].Fields()
	_ = coachsessionMixinFields0
	coachsessionMixinFields1 := coachsessionMixin[1].Fields()
	_ = coachsessionMixinFields1
	coachsessionFields := schema.CoachSession{}.Fields()
	_ = coachsessionFields
	// coachsessionDescCreatedAt is the schema descriptor for created_at field.
	coachsessionDescCreatedAt := coachsessionMixinFields1[0].Descriptor()
	// coachsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	coachsession.DefaultCreatedAt = coachsessionDescCreatedAt.Default.(func() time.Time)
	// coachsessionDescUpdatedAt is the schema descriptor for updated_at field.
	coachsessionDescUpdatedAt := coachsessionMixinFields1[1].Descriptor()
	// coachsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	coachsession.DefaultUpdatedAt = coachsessionDescUpdatedAt.Default.(func() time.Time)
	// coachsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	coachsession.UpdateDefaultUpdatedAt = coachsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// coachsessionDescTurnCount is the schema descriptor for turn_count field.
	coachsessionDescTurnCount := coachsessionFields[3].Descriptor()
	// coachsession.DefaultTurnCount holds the default value on creation for the turn_count field.
	coachsession.DefaultTurnCount = coachsessionDescTurnCount.Default.(int)
	// coachsessionDescID is the schema descriptor for id field.
	coachsessionDescID := coachsessionMixinFields0[0].Descriptor()
	// coachsession.DefaultID holds the default value on creation for the id field.
	coachsession.DefaultID = coachsessionDescID.Default.(func() uuid.UUID)
	growthrecordMixin := schema.GrowthRecord{}.Mixin()
	growthrecordMixinFields0 := growthrecordMixin[0].Fields()
	_ = growthrecordMixinFields0
	growthrecordMixinFields1 := growthrecordMixin[1].Fields()
	_ = growthrecordMixinFields1
	growthrecordFields := schema.GrowthRecord{}.Fields()
	_ = growthrecordFields
	// growthrecordDescCreatedAt is the schema descriptor for created_at field.
	growthrecordDescCreatedAt := growthrecordMixinFields1[0].Descriptor()
	// growthrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	growthrecord.DefaultCreatedAt = growthrecordDescCreatedAt.Default.(func() time.Time)
	// growthrecordDescUpdatedAt is the schema descriptor for updated_at field.
	growthrecordDescUpdatedAt := growthrecordMixinFields1[1].Descriptor()
	// growthrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	growthrecord.DefaultUpdatedAt = growthrecordDescUpdatedAt.Default.(func() time.Time)
	// growthrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	growthrecord.UpdateDefaultUpdatedAt = growthrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// growthrecordDescTasksCompleted is the schema descriptor for tasks_completed field.
	growthrecordDescTasksCompleted := growthrecordFields[2].Descriptor()
	// growthrecord.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	growthrecord.DefaultTasksCompleted = growthrecordDescTasksCompleted.Default.(int)
	// growthrecordDescXpEarned is the schema descriptor for xp_earned field.
	growthrecordDescXpEarned := growthrecordFields[3].Descriptor()
	// growthrecord.DefaultXpEarned holds the default value on creation for the xp_earned field.
	growthrecord.DefaultXpEarned = growthrecordDescXpEarned.Default.(int)
	// growthrecordDescAverageExpressionScore is the schema descriptor for average_expression_score field.
	growthrecordDescAverageExpressionScore := growthrecordFields[4].Descriptor()
	// growthrecord.DefaultAverageExpressionScore holds the default value on creation for the average_expression_score field.
	growthrecord.DefaultAverageExpressionScore = growthrecordDescAverageExpressionScore.Default.(float64)
	// growthrecordDescAverageLogicScore is the schema descriptor for average_logic_score field.
	growthrecordDescAverageLogicScore := growthrecordFields[5].Descriptor()
	// growthrecord.DefaultAverageLogicScore holds the default value on creation for the average_logic_score field.
	growthrecord.DefaultAverageLogicScore = growthrecordDescAverageLogicScore.Default.(float64)
	// growthrecordDescAverageExplorationScore is the schema descriptor for average_exploration_score field.
	growthrecordDescAverageExplorationScore := growthrecordFields[6].Descriptor()
	// growthrecord.DefaultAverageExplorationScore holds the default value on creation for the average_exploration_score field.
	growthrecord.DefaultAverageExplorationScore = growthrecordDescAverageExplorationScore.Default.(float64)
	// growthrecordDescAverageCreativityScore is the schema descriptor for average_creativity_score field.
	growthrecordDescAverageCreativityScore := growthrecordFields[7].Descriptor()
	// growthrecord.DefaultAverageCreativityScore holds the default value on creation for the average_creativity_score field.
	growthrecord.DefaultAverageCreativityScore = growthrecordDescAverageCreativityScore.Default.(float64)
	// growthrecordDescAverageHabitScore is the schema descriptor for average_habit_score field.
	growthrecordDescAverageHabitScore := growthrecordFields[8].Descriptor()
	// growthrecord.DefaultAverageHabitScore holds the default value on creation for the average_habit_score field.
	growthrecord.DefaultAverageHabitScore = growthrecordDescAverageHabitScore.Default.(float64)
	// growthrecordDescID is the schema descriptor for id field.
	growthrecordDescID := growthrecordMixinFields0[0].Descriptor()
	// growthrecord.DefaultID holds the default value on creation for the id field.
	growthrecord.DefaultID = growthrecordDescID.Default.(func() uuid.UUID)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskMixinFields1 := taskMixin[1].Fields()
	_ = taskMixinFields1
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields1[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskMixinFields1[1].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescAbility is the schema descriptor for ability field.
	taskDescAbility := taskFields[0].Descriptor()
	// task.AbilityValidator is a validator for the "ability" field. It is called by the builders before save.
	task.AbilityValidator = taskDescAbility.Validators[0].(func(string) error)
	// taskDescDifficulty is the schema descriptor for difficulty field.
	taskDescDifficulty := taskFields[1].Descriptor()
	// task.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	task.DifficultyValidator = taskDescDifficulty.Validators[0].(func(int) error)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescExpectedMinutes is the schema descriptor for expected_minutes field.
	taskDescExpectedMinutes := taskFields[6].Descriptor()
	// task.DefaultExpectedMinutes holds the default value on creation for the expected_minutes field.
	task.DefaultExpectedMinutes = taskDescExpectedMinutes.Default.(int)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskMixinFields0[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskrecordMixin := schema.TaskRecord{}.Mixin()
	taskrecordMixinFields0 := taskrecordMixin[0].Fields()
	_ = taskrecordMixinFields0
	taskrecordMixinFields1 := taskrecordMixin[1].Fields()
	_ = taskrecordMixinFields1
	taskrecordFields := schema.TaskRecord{}.Fields()
	_ = taskrecordFields
	// taskrecordDescCreatedAt is the schema descriptor for created_at field.
	taskrecordDescCreatedAt := taskrecordMixinFields1[0].Descriptor()
	// taskrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskrecord.DefaultCreatedAt = taskrecordDescCreatedAt.Default.(func() time.Time)
	// taskrecordDescUpdatedAt is the schema descriptor for updated_at field.
	taskrecordDescUpdatedAt := taskrecordMixinFields1[1].Descriptor()
	// taskrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taskrecord.DefaultUpdatedAt = taskrecordDescUpdatedAt.Default.(func() time.Time)
	// taskrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taskrecord.UpdateDefaultUpdatedAt = taskrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskrecordDescSubmission is the schema descriptor for submission field.
	taskrecordDescSubmission := taskrecordFields[3].Descriptor()
	// taskrecord.DefaultSubmission holds the default value on creation for the submission field.
	taskrecord.DefaultSubmission = taskrecordDescSubmission.Default.(string)
	// taskrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	taskrecordDescTimeSpentSecs := taskrecordFields[4].Descriptor()
	// taskrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	taskrecord.DefaultTimeSpentSecs = taskrecordDescTimeSpentSecs.Default.(int)
	// taskrecord.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	taskrecord.TimeSpentSecsValidator = taskrecordDescTimeSpentSecs.Validators[0].(func(int) error)
	// taskrecordDescFeedback is the schema descriptor for feedback field.
	taskrecordDescFeedback := taskrecordFields[12].Descriptor()
	// taskrecord.DefaultFeedback holds the default value on creation for the feedback field.
	taskrecord.DefaultFeedback = taskrecordDescFeedback.Default.(string)
	// taskrecordDescExemplarAnswer is the schema descriptor for exemplar_answer field.
	taskrecordDescExemplarAnswer := taskrecordFields[14].Descriptor()
	// taskrecord.DefaultExemplarAnswer holds the default value on creation for the exemplar_answer field.
	taskrecord.DefaultExemplarAnswer = taskrecordDescExemplarAnswer.Default.(string)
	// taskrecordDescXpEarned is the schema descriptor for xp_earned field.
	taskrecordDescXpEarned := taskrecordFields[15].Descriptor()
	// taskrecord.DefaultXpEarned holds the default value on creation for the xp_earned field.
	taskrecord.DefaultXpEarned = taskrecordDescXpEarned.Default.(int)
	// taskrecordDescID is the schema descriptor for id field.
	taskrecordDescID := taskrecordMixinFields0[0].Descriptor()
	// taskrecord.DefaultID holds the default value on creation for the id field.
	taskrecord.DefaultID = taskrecordDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[0].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	weeklyreportMixin := schema.WeeklyReport{}.Mixin()
	weeklyreportMixinFields0 := weeklyreportMixin[0].Fields()
	_ = weeklyreportMixinFields0
	weeklyreportMixinFields1 := weeklyreportMixin[1].Fields()
	_ = weeklyreportMixinFields1
	weeklyreportFields := schema.WeeklyReport{}.Fields()
	_ = weeklyreportFields
	// weeklyreportDescCreatedAt is the schema descriptor for created_at field.
	weeklyreportDescCreatedAt := weeklyreportMixinFields1[0].Descriptor()
	// weeklyreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	weeklyreport.DefaultCreatedAt = weeklyreportDescCreatedAt.Default.(func() time.Time)
	// weeklyreportDescUpdatedAt is the schema descriptor for updated_at field.
	weeklyreportDescUpdatedAt := weeklyreportMixinFields1[1].Descriptor()
	// weeklyreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	weeklyreport.DefaultUpdatedAt = weeklyreportDescUpdatedAt.Default.(func() time.Time)
	// weeklyreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	weeklyreport.UpdateDefaultUpdatedAt = weeklyreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// weeklyreportDescTasksCompleted is the schema descriptor for tasks_completed field.
	weeklyreportDescTasksCompleted := weeklyreportFields[3].Descriptor()
	// weeklyreport.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	weeklyreport.DefaultTasksCompleted = weeklyreportDescTasksCompleted.Default.(int)
	// weeklyreportDescAverageScore is the schema descriptor for average_score field.
	weeklyreportDescAverageScore := weeklyreportFields[4].Descriptor()
	// weeklyreport.DefaultAverageScore holds the default value on creation for the average_score field.
	weeklyreport.DefaultAverageScore = weeklyreportDescAverageScore.Default.(float64)
	// weeklyreportDescMostImproved is the schema descriptor for most_improved field.
	weeklyreportDescMostImproved := weeklyreportFields[5].Descriptor()
	// weeklyreport.DefaultMostImproved holds the default value on creation for the most_improved field.
	weeklyreport.DefaultMostImproved = weeklyreportDescMostImproved.Default.(string)
	// weeklyreportDescNeedsWork is the schema descriptor for needs_work field.
	weeklyreportDescNeedsWork := weeklyreportFields[6].Descriptor()
	// weeklyreport.DefaultNeedsWork holds the default value on creation for the needs_work field.
	weeklyreport.DefaultNeedsWork = weeklyreportDescNeedsWork.Default.(string)
	// weeklyreportDescSummary is the schema descriptor for summary field.
	weeklyreportDescSummary := weeklyreportFields[7].Descriptor()
	// weeklyreport.DefaultSummary holds the default value on creation for the summary field.
	weeklyreport.DefaultSummary = weeklyreportDescSummary.Default.(string)
	// weeklyreportDescID is the schema descriptor for id field.
	weeklyreportDescID := weeklyreportMixinFields0[0].Descriptor()
	// weeklyreport.DefaultID holds the default value on creation for the id field.
	weeklyreport.DefaultID = weeklyreportDescID.Default.(func() uuid.UUID)
	workMixin := schema.Work{}.Mixin()
	workMixinFields0 := workMixin[0].Fields()
	_ = workMixinFields0
	workMixinFields1 := workMixin[1].Fields()
	_ = workMixinFields1
	workFields := schema.Work{}.Fields()
	_ = workFields
	// workDescCreatedAt is the schema descriptor for created_at field.
	workDescCreatedAt := workMixinFields1[0].Descriptor()
	// work.DefaultCreatedAt holds the default value on creation for the created_at field.
	work.DefaultCreatedAt = workDescCreatedAt.Default.(func() time.Time)
	// workDescUpdatedAt is the schema descriptor for updated_at field.
	workDescUpdatedAt := workMixinFields1[1].Descriptor()
	// work.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	work.DefaultUpdatedAt = workDescUpdatedAt.Default.(func() time.Time)
	// work.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	work.UpdateDefaultUpdatedAt = workDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workDescTitle is the schema descriptor for title field.
	workDescTitle := workFields[2].Descriptor()
	// work.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	work.TitleValidator = workDescTitle.Validators[0].(func(string) error)
	// workDescKind is the schema descriptor for kind field.
	workDescKind := workFields[3].Descriptor()
	// work.DefaultKind holds the default value on creation for the kind field.
	work.DefaultKind = workDescKind.Default.(string)
	// workDescComment is the schema descriptor for comment field.
	workDescComment := workFields[5].Descriptor()
	// work.DefaultComment holds the default value on creation for the comment field.
	work.DefaultComment = workDescComment.Default.(string)
	// workDescScore is the schema descriptor for score field.
	workDescScore := workFields[6].Descriptor()
	// work.DefaultScore holds the default value on creation for the score field.
	work.DefaultScore = workDescScore.Default.(float64)
	// workDescID is the schema descriptor for id field.
	workDescID := workMixinFields0[0].Descriptor()
	// work.DefaultID holds the default value on creation for the id field.
	work.DefaultID = workDescID.Default.(func() uuid.UUID)
}
