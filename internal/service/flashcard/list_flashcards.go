package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// ListFlashcards returns the full catalog in insertion order, questions and
// answers included.
func (s *Service) ListFlashcards(ctx context.Context) ([]domain.Flashcard, error) {
	cards, err := s.flashcards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}
