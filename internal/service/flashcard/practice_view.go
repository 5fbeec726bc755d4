package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// PracticeView returns every flashcard annotated with the current user's
// answer status. Flashcards the user never answered surface as NOT_ANSWERED.
func (s *Service) PracticeView(ctx context.Context) ([]domain.FlashcardWithStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.flashcards.ListWithStatusFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("practice view: %w", err)
	}

	return cards, nil
}
