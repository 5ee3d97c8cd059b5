package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/budai/internal/llm"
	"github.com/abhisek/budai/internal/store"
)

func event(id int, purpose string) store.LLMRequestEventRecord {
	return store.LLMRequestEventRecord{ID: id, LLMRequestEventData: store.LLMRequestEventData{Purpose: purpose}}
}

func TestFilterByPurpose(t *testing.T) {
	events := []store.LLMRequestEventRecord{
		event(5, llm.PurposeCoach),
		event(4, llm.PurposeDailyTask),
		event(3, llm.PurposeCoach),
		event(2, llm.PurposeCoach),
	}

	assert.Len(t, filterByPurpose(events, "", 1), 4, "no purpose keeps the query result")

	got := filterByPurpose(events, llm.PurposeCoach, 2)
	assert.Equal(t, []int{5, 3}, []int{got[0].ID, got[1].ID})
	assert.Len(t, got, 2)

	assert.Empty(t, filterByPurpose(events, llm.PurposeWeeklyReport, 10))
}

func TestTaskText(t *testing.T) {
	assert.Empty(t, taskText(nil))
	assert.Equal(t, "月亮故事：讲一个关于月亮的故事", taskText(&store.Task{Title: "月亮故事", Prompt: "讲一个关于月亮的故事"}))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
}

func TestVersionString(t *testing.T) {
	assert.True(t, strings.HasPrefix(versionString(), "budai "))
}
