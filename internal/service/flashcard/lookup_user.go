package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// LookupUser resolves a user by email, for session setup before the
// practice loop starts.
func (s *Service) LookupUser(ctx context.Context, input LookupUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return user, nil
}

// ListUsers returns all registered users in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
