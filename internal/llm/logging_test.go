package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/budai/internal/store"
)

type recordingEventRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, "mock", repo, nil)

	ctx := WithPurpose(context.Background(), PurposeDailyTask)
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Schema:   &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, PurposeDailyTask, ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Contains(t, ev.RequestBody, "[system]\nsys")
	assert.Contains(t, ev.RequestBody, "[schema: s]")
	assert.Equal(t, `{"ok":true}`, ev.ResponseBody)
}

func TestLogging_RecordsFailureAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	repo := &recordingEventRepo{err: errors.New("db down")}
	p := WithLogging(mock, "mock", repo, zap.New(core))

	_, err := p.Generate(WithPurpose(context.Background(), PurposeCoach), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "boom", repo.events[0].ErrorMessage)

	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to record LLM request event").Len())
}

func TestLogging_Blocked(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &recordingEventRepo{}
	p := WithLogging(NewMockProvider(MockResponse{StopReason: StopBlocked}), "mock", repo, zap.New(core))

	_, err := p.Generate(WithPurpose(context.Background(), PurposeCoach), Request{})
	var blocked *ErrContentBlocked
	require.ErrorAs(t, err, &blocked)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	entries := logs.FilterMessage("llm output blocked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, StopBlocked, entries[0].ContextMap()["reason"])
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`"x"`)}), "mock", nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())

	assert.Equal(t, Provider(slowProvider{}), WithTimeout(slowProvider{}, 0))
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err = NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.OpenRouter.Model, p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: "nope"}, nil, nil)
	assert.Error(t, err)

	_, err = NewProvider(ctx, Config{Provider: "openai"}, nil, nil)
	assert.Error(t, err, "missing api key")
}
