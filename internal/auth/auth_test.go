package auth

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"13800138000", true},
		{"19912345678", true},
		{"12800138000", false},
		{"1380013800", false},
		{"138001380001", false},
		{"2380013800a", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), tt.phone)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	require.NoError(t, CheckPassword(hash, "secret1"))
	assert.ErrorIs(t, CheckPassword(hash, "secret2"), ErrPasswordMismatch)
}

func TestValidPassword(t *testing.T) {
	assert.False(t, ValidPassword("12345"))
	assert.True(t, ValidPassword("123456"))
	assert.True(t, ValidPassword("密码密码密码"))

	assert.False(t, PasswordTooLong(strings.Repeat("a", MaxPasswordBytes)))
	assert.True(t, PasswordTooLong(strings.Repeat("密", 25)), "75 bytes")
}

func TestTokenIssueVerify(t *testing.T) {
	m := NewTokenManager("test-secret", 0)
	id := uuid.New()

	tok, err := m.Issue(id, "parent")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "parent", claims.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	tok, err := m.Issue(uuid.New(), "parent")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("test-secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCodeStore(t *testing.T) {
	s := NewCodeStore()
	code, err := s.Issue("13800138000")
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)

	assert.ErrorIs(t, s.Verify("13800138000", "bad"), ErrCodeInvalid)
	require.NoError(t, s.Verify("13800138000", code))
	assert.ErrorIs(t, s.Verify("13800138000", code), ErrCodeMissing, "codes are single use")
}

func TestCodeStore_Expiry(t *testing.T) {
	s := NewCodeStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	code, err := s.Issue("13800138000")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(CodeTTL + time.Second) }
	err = s.Verify("13800138000", code)
	assert.True(t, errors.Is(err, ErrCodeExpired))
}

func TestCodeStore_Concurrent(t *testing.T) {
	s := NewCodeStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := s.Issue("13800138000")
			if err == nil {
				_ = s.Verify("13800138000", code)
			}
		}()
	}
	wg.Wait()
}
