package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// ResetProgress deletes all of the current user's answer records and
// returns how many were removed. Resetting an empty history succeeds with
// zero deletions; every question becomes answerable again afterwards.
// Correctness locks are per record, so they vanish with the records.
func (s *Service) ResetProgress(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	deleted, err := s.answers.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("reset progress: %w", err)
	}

	s.log.Info("progress reset", "user_id", userID, "deleted", deleted)

	return deleted, nil
}
