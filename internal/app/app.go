// Package app implements the use-cases behind each HTTP route: input
// validation, ownership checks, persistence and content generation.
package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/auth"
	"github.com/abhisek/budai/internal/badges"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

// Options tunes the business rules.
type Options struct {
	RequireVerification bool
	DevCodes            bool    // return issued codes to the caller
	Weight              float64 // share of a new sample in rolling scores
	TaskXP              int
	CoachMaxTurns       int
}

// DefaultOptions returns the production rule set.
func DefaultOptions() Options {
	return Options{
		Weight:        0.3,
		TaskXP:        100,
		CoachMaxTurns: 20,
	}
}

// App wires stores, content generation and identity together.
type App struct {
	store  *store.Store
	tutor  *tutor.Service
	badges *badges.Service
	tokens *auth.TokenManager
	codes  *auth.CodeStore
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// New creates an App.
func New(s *store.Store, t *tutor.Service, tokens *auth.TokenManager, codes *auth.CodeStore, opts Options, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if codes == nil {
		codes = auth.NewCodeStore()
	}
	return &App{
		store:  s,
		tutor:  t,
		badges: badges.NewService(s.Badges(), s.Children(), s.CoCreate(), logger.Named("badges")),
		tokens: tokens,
		codes:  codes,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// Tokens returns the token manager used to authenticate requests.
func (a *App) Tokens() *auth.TokenManager { return a.tokens }
