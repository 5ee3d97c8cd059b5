// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expression_score", Type: field.TypeFloat64, Default: 3},
		{Name: "logic_score", Type: field.TypeFloat64, Default: 3},
		{Name: "exploration_score", Type: field.TypeFloat64, Default: 3},
		{Name: "creativity_score", Type: field.TypeFloat64, Default: 3},
		{Name: "habit_score", Type: field.TypeFloat64, Default: 3},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"initial", "periodic"}},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "analysis", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessments_childs_assessments",
				Columns:    []*schema.Column{AssessmentsColumns[12]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_child_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[12]},
			},
		},
	}
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "criteria", Type: field.TypeString, Default: ""},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badge_created_at",
				Unique:  false,
				Columns: []*schema.Column{BadgesColumns[1]},
			},
		},
	}
	// BadgeAwardsColumns holds the columns for the "badge_awards" table.
	BadgeAwardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "awarded_at", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeUUID},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// BadgeAwardsTable holds the schema information for the "badge_awards" table.
	BadgeAwardsTable = &schema.Table{
		Name:       "badge_awards",
		Columns:    BadgeAwardsColumns,
		PrimaryKey: []*schema.Column{BadgeAwardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "badge_awards_badges_awards",
				Columns:    []*schema.Column{BadgeAwardsColumns[2]},
				RefColumns: []*schema.Column{BadgesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "badge_awards_childs_badge_awards",
				Columns:    []*schema.Column{BadgeAwardsColumns[3]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "badgeaward_child_id_badge_id",
				Unique:  true,
				Columns: []*schema.Column{BadgeAwardsColumns[3], BadgeAwardsColumns[2]},
			},
		},
	}
	// ChildsColumns holds the columns for the "childs" table.
	ChildsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expression_score", Type: field.TypeFloat64, Default: 3},
		{Name: "logic_score", Type: field.TypeFloat64, Default: 3},
		{Name: "exploration_score", Type: field.TypeFloat64, Default: 3},
		{Name: "creativity_score", Type: field.TypeFloat64, Default: 3},
		{Name: "habit_score", Type: field.TypeFloat64, Default: 3},
		{Name: "nickname", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "interests", Type: field.TypeJSON, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active_on", Type: field.TypeTime, Nullable: true},
		{Name: "global_title", Type: field.TypeString, Default: ""},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ChildsTable holds the schema information for the "childs" table.
	ChildsTable = &schema.Table{
		Name:       "childs",
		Columns:    ChildsColumns,
		PrimaryKey: []*schema.Column{ChildsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "childs_users_children",
				Columns:    []*schema.Column{ChildsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "child_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChildsColumns[1]},
			},
			{
				Name:    "child_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChildsColumns[17]},
			},
		},
	}
	// CoCreationContributionsColumns holds the columns for the "co_creation_contributions" table.
	CoCreationContributionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"idea", "character", "plot", "ending", "drawing"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "child_id", Type: field.TypeUUID},
		{Name: "theme_id", Type: field.TypeUUID},
	}
	// CoCreationContributionsTable holds the schema information for the "co_creation_contributions" table.
	CoCreationContributionsTable = &schema.Table{
		Name:       "co_creation_contributions",
		Columns:    CoCreationContributionsColumns,
		PrimaryKey: []*schema.Column{CoCreationContributionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "co_creation_contributions_childs_contributions",
				Columns:    []*schema.Column{CoCreationContributionsColumns[5]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "co_creation_contributions_co_creation_themes_contributions",
				Columns:    []*schema.Column{CoCreationContributionsColumns[6]},
				RefColumns: []*schema.Column{CoCreationThemesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cocreationcontribution_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoCreationContributionsColumns[1]},
			},
			{
				Name:    "cocreationcontribution_theme_id",
				Unique:  false,
				Columns: []*schema.Column{CoCreationContributionsColumns[6]},
			},
			{
				Name:    "cocreationcontribution_child_id",
				Unique:  false,
				Columns: []*schema.Column{CoCreationContributionsColumns[5]},
			},
		},
	}
	// CoCreationThemesColumns holds the columns for the "co_creation_themes" table.
	CoCreationThemesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
	}
	// CoCreationThemesTable holds the schema information for the "co_creation_themes" table.
	CoCreationThemesTable = &schema.Table{
		Name:       "co_creation_themes",
		Columns:    CoCreationThemesColumns,
		PrimaryKey: []*schema.Column{CoCreationThemesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cocreationtheme_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoCreationThemesColumns[1]},
			},
		},
	}
	// CoachSessionsColumns holds the columns for the "coach_sessions" table.
	CoachSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_record_id", Type: field.TypeUUID},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// CoachSessionsTable holds the schema information for the "coach_sessions" table.
	CoachSessionsTable = &schema.Table{
		Name:       "coach_sessions",
		Columns:    CoachSessionsColumns,
		PrimaryKey: []*schema.Column{CoachSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "coach_sessions_childs_coach_sessions",
				Columns:    []*schema.Column{CoachSessionsColumns[6]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "coachsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoachSessionsColumns[1]},
			},
			{
				Name:    "coachsession_child_id_task_record_id",
				Unique:  true,
				Columns: []*schema.Column{CoachSessionsColumns[6], CoachSessionsColumns[3]},
			},
		},
	}
	// GrowthRecordsColumns holds the columns for the "growth_records" table.
	GrowthRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeTime},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "average_expression_score", Type: field.TypeFloat64, Default: 0},
		{Name: "average_logic_score", Type: field.TypeFloat64, Default: 0},
		{Name: "average_exploration_score", Type: field.TypeFloat64, Default: 0},
		{Name: "average_creativity_score", Type: field.TypeFloat64, Default: 0},
		{Name: "average_habit_score", Type: field.TypeFloat64, Default: 0},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// GrowthRecordsTable holds the schema information for the "growth_records" table.
	GrowthRecordsTable = &schema.Table{
		Name:       "growth_records",
		Columns:    GrowthRecordsColumns,
		PrimaryKey: []*schema.Column{GrowthRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "growth_records_childs_growth_records",
				Columns:    []*schema.Column{GrowthRecordsColumns[11]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "growthrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{GrowthRecordsColumns[1]},
			},
			{
				Name:    "growthrecord_child_id_date",
				Unique:  true,
				Columns: []*schema.Column{GrowthRecordsColumns[11], GrowthRecordsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ability", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_minutes", Type: field.TypeInt, Default: 10},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
		},
	}
	// TaskRecordsColumns holds the columns for the "task_records" table.
	TaskRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed"}, Default: "in_progress"},
		{Name: "submission", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "expression_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "logic_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "exploration_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "creativity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "habit_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "exemplar_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "child_id", Type: field.TypeUUID},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskRecordsTable holds the schema information for the "task_records" table.
	TaskRecordsTable = &schema.Table{
		Name:       "task_records",
		Columns:    TaskRecordsColumns,
		PrimaryKey: []*schema.Column{TaskRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_records_childs_task_records",
				Columns:    []*schema.Column{TaskRecordsColumns[17]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "task_records_tasks_records",
				Columns:    []*schema.Column{TaskRecordsColumns[18]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRecordsColumns[1]},
			},
			{
				Name:    "taskrecord_child_id_status",
				Unique:  false,
				Columns: []*schema.Column{TaskRecordsColumns[17], TaskRecordsColumns[3]},
			},
			{
				Name:    "taskrecord_completed_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRecordsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"parent", "admin"}, Default: "parent"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// WeeklyReportsColumns holds the columns for the "weekly_reports" table.
	WeeklyReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "week_start", Type: field.TypeTime},
		{Name: "week_end", Type: field.TypeTime},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "most_improved", Type: field.TypeString, Default: ""},
		{Name: "needs_work", Type: field.TypeString, Default: ""},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "insights", Type: field.TypeJSON, Nullable: true},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "recommended_games", Type: field.TypeJSON, Nullable: true},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// WeeklyReportsTable holds the schema information for the "weekly_reports" table.
	WeeklyReportsTable = &schema.Table{
		Name:       "weekly_reports",
		Columns:    WeeklyReportsColumns,
		PrimaryKey: []*schema.Column{WeeklyReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "weekly_reports_childs_weekly_reports",
				Columns:    []*schema.Column{WeeklyReportsColumns[13]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "weeklyreport_created_at",
				Unique:  false,
				Columns: []*schema.Column{WeeklyReportsColumns[1]},
			},
			{
				Name:    "weeklyreport_child_id_week_start",
				Unique:  true,
				Columns: []*schema.Column{WeeklyReportsColumns[13], WeeklyReportsColumns[3]},
			},
		},
	}
	// WorksColumns holds the columns for the "works" table.
	WorksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_record_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "task"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// WorksTable holds the schema information for the "works" table.
	WorksTable = &schema.Table{
		Name:       "works",
		Columns:    WorksColumns,
		PrimaryKey: []*schema.Column{WorksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "works_childs_works",
				Columns:    []*schema.Column{WorksColumns[9]},
				RefColumns: []*schema.Column{ChildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "work_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorksColumns[1]},
			},
			{
				Name:    "work_child_id",
				Unique:  false,
				Columns: []*schema.Column{WorksColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		BadgesTable,
		BadgeAwardsTable,
		ChildsTable,
		CoCreationContributionsTable,
		CoCreationThemesTable,
		CoachSessionsTable,
		GrowthRecordsTable,
		LlmRequestEventsTable,
		TasksTable,
		TaskRecordsTable,
		UsersTable,
		WeeklyReportsTable,
		WorksTable,
	}
)

func init() {
	AssessmentsTable.ForeignKeys[0].RefTable = ChildsTable
	BadgeAwardsTable.ForeignKeys[0].RefTable = BadgesTable
	BadgeAwardsTable.ForeignKeys[1].RefTable = ChildsTable
	ChildsTable.ForeignKeys[0].RefTable = UsersTable
	CoCreationContributionsTable.ForeignKeys[0].RefTable = ChildsTable
	CoCreationContributionsTable.ForeignKeys[1].RefTable = CoCreationThemesTable
	CoachSessionsTable.ForeignKeys[0].RefTable = ChildsTable
	GrowthRecordsTable.ForeignKeys[0].RefTable = ChildsTable
	TaskRecordsTable.ForeignKeys[0].RefTable = ChildsTable
	TaskRecordsTable.ForeignKeys[1].RefTable = TasksTable
	WeeklyReportsTable.ForeignKeys[0].RefTable = ChildsTable
	WorksTable.ForeignKeys[0].RefTable = ChildsTable
}
