package badges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/store"
)

// Service seeds the badge catalog and awards badges to children.
type Service struct {
	badges   store.BadgeRepo
	children store.ChildRepo
	cocreate store.CoCreateRepo
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a badge Service.
func NewService(badges store.BadgeRepo, children store.ChildRepo, cocreate store.CoCreateRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		badges:   badges,
		children: children,
		cocreate: cocreate,
		logger:   logger,
		now:      time.Now,
	}
}

// Seed writes the catalog to the store. Safe to call on every start.
func (s *Service) Seed(ctx context.Context) error {
	for _, d := range catalog {
		err := s.badges.Ensure(ctx, store.Badge{
			Key:         string(d.Key),
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
			Criteria:    d.Criteria,
		})
		if err != nil {
			return fmt.Errorf("seed badge catalog: %w", err)
		}
	}
	return nil
}

// StatsFor gathers the badge inputs for a child.
func (s *Service) StatsFor(ctx context.Context, childID uuid.UUID) (Stats, error) {
	c, err := s.children.Get(ctx, childID)
	if err != nil {
		return Stats{}, fmt.Errorf("load child: %w", err)
	}
	n, err := s.cocreate.CountByChild(ctx, childID)
	if err != nil {
		return Stats{}, fmt.Errorf("count contributions: %w", err)
	}
	return Stats{Streak: c.Streak, Scores: c.Scores, Contributions: n}, nil
}

// CheckAndAward grants every badge the child now qualifies for and has not
// yet received. It returns only the newly granted awards.
//
// Failures are logged and swallowed: a missed badge is picked up on the
// next check, so callers never fail a request over it.
func (s *Service) CheckAndAward(ctx context.Context, childID uuid.UUID) []store.BadgeAward {
	st, err := s.StatsFor(ctx, childID)
	if err != nil {
		s.logger.Warn("badge check skipped", zap.Stringer("child_id", childID), zap.Error(err))
		return nil
	}

	eligible := Eligible(st)
	if len(eligible) == 0 {
		return nil
	}

	existing, err := s.badges.ListAwards(ctx, childID)
	if err != nil {
		s.logger.Warn("list badge awards", zap.Stringer("child_id", childID), zap.Error(err))
		return nil
	}
	have := make(map[string]bool, len(existing))
	for _, a := range existing {
		have[a.Key] = true
	}

	var awarded []store.BadgeAward
	now := s.now()
	for _, d := range eligible {
		if have[string(d.Key)] {
			continue
		}
		a, err := s.badges.Award(ctx, childID, string(d.Key), now)
		if err != nil {
			if !errors.Is(err, store.ErrConflict) {
				s.logger.Warn("award badge",
					zap.Stringer("child_id", childID),
					zap.String("badge", string(d.Key)),
					zap.Error(err))
			}
			continue
		}
		s.logger.Info("badge awarded",
			zap.Stringer("child_id", childID),
			zap.String("badge", string(d.Key)))
		awarded = append(awarded, *a)
	}
	return awarded
}
