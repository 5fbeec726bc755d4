package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// Progress is one user's completion ratio over the current catalog.
type Progress struct {
	TotalQuestions int
	CorrectAnswers int
	Percent        int
}

// Progress returns the current user's completion percentage: the share of
// catalog questions answered correctly, rounded to the nearest integer.
// An empty catalog yields 0 percent. Both counters are read inside one
// transaction so the ratio cannot mix two catalog generations.
func (s *Service) Progress(ctx context.Context) (Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Progress{}, domain.ErrUnauthorized
	}

	var p Progress

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		total, err := s.flashcards.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count flashcards: %w", err)
		}

		correct, err := s.answers.CountCorrectByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count correct answers: %w", err)
		}

		p = Progress{
			TotalQuestions: total,
			CorrectAnswers: correct,
			Percent:        domain.Percent(correct, total),
		}
		return nil
	})
	if err != nil {
		return Progress{}, err
	}

	return p, nil
}
