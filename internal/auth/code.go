package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Verification code parameters.
const (
	CodeLength = 6
	CodeTTL    = 5 * time.Minute
)

var (
	ErrCodeMissing = errors.New("verification code not found")
	ErrCodeExpired = errors.New("verification code expired")
	ErrCodeInvalid = errors.New("verification code invalid")
)

type pendingCode struct {
	code      string
	expiresAt time.Time
}

// CodeStore keeps outstanding verification codes in memory, one per phone.
// Codes are single use.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]pendingCode
	ttl   time.Duration
	now   func() time.Time
}

// NewCodeStore creates an empty CodeStore.
func NewCodeStore() *CodeStore {
	return &CodeStore{
		codes: make(map[string]pendingCode),
		ttl:   CodeTTL,
		now:   time.Now,
	}
}

// Issue generates a fresh code for phone, replacing any earlier one.
func (s *CodeStore) Issue(phone string) (string, error) {
	code, err := randomDigits(CodeLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.codes[phone] = pendingCode{code: code, expiresAt: s.now().Add(s.ttl)}
	return code, nil
}

// Verify checks code for phone and consumes it on success. An expired code
// is removed.
func (s *CodeStore) Verify(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.codes[phone]
	if !ok {
		return ErrCodeMissing
	}
	if s.now().After(p.expiresAt) {
		delete(s.codes, phone)
		return ErrCodeExpired
	}
	if p.code != code {
		return ErrCodeInvalid
	}
	delete(s.codes, phone)
	return nil
}

func (s *CodeStore) sweepLocked() {
	now := s.now()
	for phone, p := range s.codes {
		if now.After(p.expiresAt) {
			delete(s.codes, phone)
		}
	}
}

func randomDigits(n int) (string, error) {
	buf := make([]byte, n)
	ten := big.NewInt(10)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
