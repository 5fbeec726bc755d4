package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// SubmitAnswer evaluates the submitted answer against the flashcard and
// records the outcome as the user's single answer record for that card.
// A flashcard already answered correctly is locked: the submission is
// rejected with domain.ErrAlreadyCorrect and nothing is written. An
// incorrect record may be overwritten by later submissions in either
// direction.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*domain.UserAnswer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var recorded *domain.UserAnswer

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.flashcards.GetByID(txCtx, input.FlashcardID)
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}

		status := domain.EvaluateAnswer(input.Answer, card.Answer)

		// The store enforces the lock again via a guarded upsert, so a
		// concurrent correct submission cannot slip through between the
		// evaluation and the write.
		recorded, err = s.answers.Record(txCtx, userID, card.ID, input.Answer, status)
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("answer submitted",
		"user_id", userID,
		"flashcard_id", input.FlashcardID,
		"status", recorded.Status,
	)

	return recorded, nil
}
