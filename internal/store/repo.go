package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/chat"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// User is a parent account.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Child is a learner profile.
type Child struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"userId"`
	Nickname     string         `json:"nickname"`
	Grade        string         `json:"grade"`
	Interests    []string       `json:"interests"`
	AvatarURL    string         `json:"avatarUrl,omitempty"`
	Level        int            `json:"level"`
	XP           int            `json:"xp"`
	Streak       int            `json:"streak"`
	LastActiveOn *time.Time     `json:"lastActiveOn,omitempty"`
	GlobalTitle  string         `json:"globalTitle"`
	Scores       ability.Scores `json:"scores"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NewChild holds the fields needed to create a Child.
type NewChild struct {
	UserID    uuid.UUID
	Nickname  string
	Grade     string
	Interests []string
	AvatarURL string
	Title     string
}

// ChildUpdate holds optional profile changes. Nil fields are left as-is.
type ChildUpdate struct {
	Nickname  *string
	Grade     *string
	Interests []string
	AvatarURL *string
}

// ProgressUpdate is the post-task progression state of a child.
type ProgressUpdate struct {
	Scores       ability.Scores
	XP           int
	Level        int
	Title        string
	Streak       int
	LastActiveOn time.Time
}

// Assessment is a stored diagnostic run.
type Assessment struct {
	ID          uuid.UUID      `json:"id"`
	ChildID     uuid.UUID      `json:"childId"`
	Kind        string         `json:"type"`
	Responses   []string       `json:"responses"`
	Analysis    string         `json:"aiAnalysis"`
	Scores      ability.Scores `json:"scores"`
	Suggestions []string       `json:"suggestions"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Assessment kinds.
const (
	AssessmentInitial  = "initial"
	AssessmentPeriodic = "periodic"
)

// Task is generated activity content.
type Task struct {
	ID              uuid.UUID `json:"id"`
	Ability         string    `json:"ability"`
	Difficulty      int       `json:"difficulty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Prompt          string    `json:"prompt"`
	Constraints     []string  `json:"constraints"`
	ExpectedMinutes int       `json:"expectedMinutes"`
}

// TaskRecord is one attempt at a task.
type TaskRecord struct {
	ID             uuid.UUID       `json:"id"`
	ChildID        uuid.UUID       `json:"childId"`
	TaskID         uuid.UUID       `json:"taskId"`
	Status         string          `json:"status"`
	Submission     string          `json:"submission,omitempty"`
	TimeSpentSecs  int             `json:"timeSpent"`
	StartedAt      time.Time       `json:"startedAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	Scores         *ability.Scores `json:"scores,omitempty"`
	Feedback       string          `json:"aiFeedback,omitempty"`
	Suggestions    []string        `json:"suggestions,omitempty"`
	ExemplarAnswer string          `json:"exemplarAnswer,omitempty"`
	XPEarned       int             `json:"xpEarned"`
	Task           *Task           `json:"task,omitempty"`
}

// Task record statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Completion is the evaluated outcome written to a TaskRecord.
type Completion struct {
	Submission     string
	TimeSpentSecs  int
	CompletedAt    time.Time
	Scores         ability.Scores
	Feedback       string
	Suggestions    []string
	ExemplarAnswer string
	XPEarned       int
}

// Badge is a catalog entry.
type Badge struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Criteria    string    `json:"criteria"`
}

// BadgeAward is a badge earned by a child.
type BadgeAward struct {
	Badge
	ChildID   uuid.UUID `json:"childId"`
	AwardedAt time.Time `json:"awardedAt"`
}

// Theme is a co-creation theme.
type Theme struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prompt      string    `json:"prompt"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Active reports whether the theme accepts contributions at t.
// The end date is inclusive of the whole day.
func (t Theme) Active(at time.Time) bool {
	return !at.Before(t.StartDate) && at.Before(t.EndDate.AddDate(0, 0, 1))
}

// ThemeSummary is a theme with participation counts.
type ThemeSummary struct {
	Theme
	ContributionCount int  `json:"contributionCount"`
	ParticipantCount  int  `json:"participantCount"`
	IsActive          bool `json:"isActive"`
}

// Contribution is a child's piece of a co-created story.
type Contribution struct {
	ID        uuid.UUID `json:"id"`
	ChildID   uuid.UUID `json:"childId"`
	ThemeID   uuid.UUID `json:"themeId"`
	Kind      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeeklyReport is the parent-facing weekly summary.
type WeeklyReport struct {
	ID               uuid.UUID         `json:"id"`
	ChildID          uuid.UUID         `json:"childId"`
	WeekStart        time.Time         `json:"weekStart"`
	WeekEnd          time.Time         `json:"weekEnd"`
	TasksCompleted   int               `json:"tasksCompleted"`
	AverageScore     float64           `json:"averageScore"`
	MostImproved     string            `json:"mostImproved"`
	NeedsWork        string            `json:"needsWork"`
	Summary          string            `json:"summary"`
	Insights         map[string]string `json:"insights"`
	Suggestions      []string          `json:"suggestions"`
	RecommendedGames []string          `json:"familyGames"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// GrowthRecord aggregates one day of activity.
type GrowthRecord struct {
	ID             uuid.UUID      `json:"id"`
	ChildID        uuid.UUID      `json:"childId"`
	Date           time.Time      `json:"date"`
	TasksCompleted int            `json:"tasksCompleted"`
	XPEarned       int            `json:"xpEarned"`
	Averages       ability.Scores `json:"averages"`
}

// Work is an archived submission.
type Work struct {
	ID           uuid.UUID  `json:"id"`
	ChildID      uuid.UUID  `json:"childId"`
	TaskRecordID *uuid.UUID `json:"taskRecordId,omitempty"`
	Title        string     `json:"title"`
	Kind         string     `json:"type"`
	Content      string     `json:"content"`
	Comment      string     `json:"aiComment"`
	Score        float64    `json:"score"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CoachSession is the conversation for one task attempt.
type CoachSession struct {
	ID           uuid.UUID   `json:"id"`
	ChildID      uuid.UUID   `json:"childId"`
	TaskRecordID uuid.UUID   `json:"taskRecordId"`
	Messages     []chat.Turn `json:"messages"`
	TurnCount    int         `json:"turnCount"`
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// UserRepo manages parent accounts.
type UserRepo interface {
	// Create stores a new user. Returns ErrConflict if the phone is taken.
	Create(ctx context.Context, phone, passwordHash string) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ChildRepo manages learner profiles.
type ChildRepo interface {
	Create(ctx context.Context, c NewChild) (*Child, error)
	Get(ctx context.Context, id uuid.UUID) (*Child, error)

	// GetOwned returns the child only if it belongs to userID.
	GetOwned(ctx context.Context, userID, id uuid.UUID) (*Child, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]Child, error)
	Update(ctx context.Context, id uuid.UUID, u ChildUpdate) (*Child, error)
	SetScores(ctx context.Context, id uuid.UUID, s ability.Scores) (*Child, error)
	ApplyProgress(ctx context.Context, id uuid.UUID, p ProgressUpdate) (*Child, error)
}

// AssessmentRepo stores diagnostic runs.
type AssessmentRepo interface {
	Create(ctx context.Context, a Assessment) (*Assessment, error)
	CountByChild(ctx context.Context, childID uuid.UUID) (int, error)
	ListByChild(ctx context.Context, childID uuid.UUID, limit int) ([]Assessment, error)
}

// TaskRepo stores tasks and attempts.
type TaskRepo interface {
	CreateTask(ctx context.Context, t Task) (*Task, error)
	StartRecord(ctx context.Context, childID, taskID uuid.UUID, at time.Time) (*TaskRecord, error)

	// GetRecordOwned returns the record, with its task, only if its child
	// belongs to userID.
	GetRecordOwned(ctx context.Context, userID, id uuid.UUID) (*TaskRecord, error)

	// LatestInProgress returns the newest in-progress record started at or
	// after since, or nil if none exist.
	LatestInProgress(ctx context.Context, childID uuid.UUID, since time.Time) (*TaskRecord, error)

	Complete(ctx context.Context, id uuid.UUID, c Completion) (*TaskRecord, error)

	// CompletedBetween returns completed records in [from, to), oldest first.
	CompletedBetween(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]TaskRecord, error)
}

// BadgeRepo manages the badge catalog and awards.
type BadgeRepo interface {
	// Ensure creates or refreshes a catalog entry by key.
	Ensure(ctx context.Context, b Badge) error
	ListBadges(ctx context.Context) ([]Badge, error)

	// Award grants the badge with key to the child. Returns ErrConflict if
	// already awarded.
	Award(ctx context.Context, childID uuid.UUID, key string, at time.Time) (*BadgeAward, error)
	ListAwards(ctx context.Context, childID uuid.UUID) ([]BadgeAward, error)
}

// CoCreateRepo manages co-creation themes and contributions.
type CoCreateRepo interface {
	// EnsureTheme creates the theme unless one with the same title exists.
	EnsureTheme(ctx context.Context, t Theme) error
	GetTheme(ctx context.Context, id uuid.UUID) (*Theme, error)
	ListThemes(ctx context.Context, at time.Time) ([]ThemeSummary, error)
	AddContribution(ctx context.Context, c Contribution) (*Contribution, error)
	CountByChild(ctx context.Context, childID uuid.UUID) (int, error)
}

// ReportRepo stores weekly reports.
type ReportRepo interface {
	// Save upserts the report for (ChildID, WeekStart).
	Save(ctx context.Context, r WeeklyReport) (*WeeklyReport, error)

	// Latest returns the most recent report for a child, or nil.
	Latest(ctx context.Context, childID uuid.UUID) (*WeeklyReport, error)
}

// GrowthRepo stores per-day growth aggregates.
type GrowthRepo interface {
	// AddTask folds one completed task into the record for day.
	AddTask(ctx context.Context, childID uuid.UUID, day time.Time, xp int, sample ability.Scores) (*GrowthRecord, error)

	// Range returns records with from <= date < to, oldest first.
	Range(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]GrowthRecord, error)
}

// WorkRepo archives finished pieces.
type WorkRepo interface {
	Create(ctx context.Context, w Work) (*Work, error)
	Recent(ctx context.Context, childID uuid.UUID, limit int) ([]Work, error)
}

// CoachRepo stores coach conversations.
type CoachRepo interface {
	// Find returns the session for a task attempt, or nil.
	Find(ctx context.Context, childID, taskRecordID uuid.UUID) (*CoachSession, error)

	// Save upserts the session for (ChildID, TaskRecordID).
	Save(ctx context.Context, s CoachSession) (*CoachSession, error)
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
