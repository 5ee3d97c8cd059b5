package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var evalJSON = json.RawMessage(`{"feedback":"讲得很清楚"}`)

func TestRetry_Attempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	ok := MockResponse{Content: evalJSON}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   any
		wantCalls int
	}{
		{"first attempt", []MockResponse{ok}, nil, 1},
		{"transient then success", []MockResponse{down, ok}, nil, 2},
		{"rate limit honours retry-after", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, ok,
		}, nil, 2},
		{"all attempts fail", []MockResponse{down, down, down, ok}, &ErrProviderUnavailable{}, 3},
		{"truncated output not retried", []MockResponse{
			{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"feed`)}}, ok,
		}, &ErrMaxTokensExceeded{}, 1},
		{"blocked output not retried", []MockResponse{
			{Err: &ErrContentBlocked{Reason: "SAFETY"}}, ok,
		}, &ErrContentBlocked{}, 1},
		{"invalid response retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			ok,
		}, &ErrInvalidResponse{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})

			assert.Equal(t, tt.wantCalls, mock.CallCount())
			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.JSONEq(t, string(evalJSON), string(resp.Content))
			case *ErrProviderUnavailable:
				assert.ErrorAs(t, err, &want)
			case *ErrMaxTokensExceeded:
				assert.ErrorAs(t, err, &want)
			case *ErrContentBlocked:
				assert.ErrorAs(t, err, &want)
			case *ErrInvalidResponse:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: evalJSON},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := retryConfig()
	cfg.InitialWait = time.Second
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	assert.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_StopsBeforeDeadline(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Hour, Err: errors.New("429")}},
		MockResponse{Content: evalJSON},
	)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cfg := retryConfig()
	cfg.MaxWait = 2 * time.Hour
	start := time.Now()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_NoSleepAfterLastAttempt(t *testing.T) {
	for _, n := range []int{0, -1, 1} {
		mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
		cfg := RetryConfig{MaxAttempts: n, InitialWait: 300 * time.Millisecond, MaxWait: time.Second, Multiplier: 2}

		start := time.Now()
		_, err := WithRetry(mock, cfg).Generate(context.Background(), Request{})
		assert.Error(t, err)
		assert.Equal(t, 1, mock.CallCount(), "max attempts %d", n)
		assert.Less(t, time.Since(start), 200*time.Millisecond, "max attempts %d", n)
	}
}

func TestRetry_RetryAfterCappedByMaxWait(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Hour, Err: errors.New("429")}},
		MockResponse{Content: evalJSON},
	)
	r := WithRetry(mock, retryConfig()).(*RetryProvider)
	assert.Equal(t, 10*time.Millisecond, r.backoff(0, &ErrRateLimit{RetryAfter: time.Hour}))

	start := time.Now()
	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, string(evalJSON), string(resp.Content))
	assert.Equal(t, 2, mock.CallCount())
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), retryConfig()).ModelID())
}
