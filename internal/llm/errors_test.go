package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryAfter(t *testing.T) {
	withHeader := func(v string) *http.Response {
		return &http.Response{Header: http.Header{"Retry-After": []string{v}}}
	}

	assert.Zero(t, retryAfter(nil))
	assert.Zero(t, retryAfter(&http.Response{Header: http.Header{}}))
	assert.Equal(t, 7*time.Second, retryAfter(withHeader("7")))
	assert.Zero(t, retryAfter(withHeader("soon")))

	future := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	d := retryAfter(withHeader(future))
	assert.Greater(t, d, 20*time.Second)
	assert.LessOrEqual(t, d, 30*time.Second)
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("429")
	assert.Equal(t, "rate limited: 429", (&ErrRateLimit{Err: cause}).Error())
	assert.Contains(t, (&ErrRateLimit{RetryAfter: time.Second, Err: cause}).Error(), "retry after 1s")
	assert.ErrorIs(t, &ErrRateLimit{Err: cause}, cause)
	assert.Equal(t, "LLM output blocked", (&ErrContentBlocked{}).Error())
	assert.Equal(t, "LLM provider unavailable", (&ErrProviderUnavailable{}).Error())
}
