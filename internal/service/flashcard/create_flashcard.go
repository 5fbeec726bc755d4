package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// CreateFlashcard adds a new flashcard to the shared catalog.
// A question that already exists results in domain.ErrDuplicateQuestion and
// leaves the catalog unchanged.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (*domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.flashcards.Create(ctx, input.Question, input.Answer)
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.Info("flashcard created", "flashcard_id", card.ID)

	return card, nil
}
