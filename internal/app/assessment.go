package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

// assessmentHistory caps ListAssessments.
const assessmentHistory = 20

// AssessmentResult is returned by SubmitAssessment.
type AssessmentResult struct {
	Assessment *store.Assessment `json:"assessment"`
	Result     *tutor.Assessment `json:"assessmentResult"`
	Child      *store.Child      `json:"child"`
}

// SubmitAssessment scores a child's responses. The first assessment sets
// the child's scores outright; later ones are blended in.
func (a *App) SubmitAssessment(ctx context.Context, userID uuid.UUID, childID string, responses []string) (*AssessmentResult, error) {
	responses = cleanList(responses)
	if strings.TrimSpace(childID) == "" || len(responses) == 0 {
		return nil, invalid("请提供孩子ID和评估回答")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	n, err := a.store.Assessments().CountByChild(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	res := a.tutor.Assess(ctx, tutor.AssessInput{
		Age:       tutor.AgeForGrade(c.Grade),
		Grade:     c.Grade,
		Responses: responses,
	})

	kind, scores := store.AssessmentInitial, res.Scores
	if n > 0 {
		kind = store.AssessmentPeriodic
		scores = ability.Blend(c.Scores, res.Scores, a.opts.Weight)
	}

	out := &AssessmentResult{Result: res}
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		var err error
		out.Assessment, err = tx.Assessments().Create(ctx, store.Assessment{
			ChildID:     c.ID,
			Kind:        kind,
			Responses:   responses,
			Analysis:    res.Analysis,
			Scores:      res.Scores,
			Suggestions: res.Suggestions,
		})
		if err != nil {
			return err
		}
		out.Child, err = tx.Children().SetScores(ctx, c.ID, scores)
		return err
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("assessment recorded",
		zap.Stringer("child_id", c.ID),
		zap.String("kind", kind),
		zap.Bool("fallback", res.Fallback))
	return out, nil
}

// ListAssessments returns the child's most recent assessments.
func (a *App) ListAssessments(ctx context.Context, userID uuid.UUID, childID string) ([]store.Assessment, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, invalid("请提供孩子ID")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	return a.store.Assessments().ListByChild(ctx, c.ID, assessmentHistory)
}
