// Package flashcard implements the quiz engine business logic: catalog
// management, answer evaluation, per-user progress and pool statistics.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ListAll(ctx context.Context) ([]domain.Flashcard, error)
	Count(ctx context.Context) (int, error)
	ListWithStatusFor(ctx context.Context, userID uuid.UUID) ([]domain.FlashcardWithStatus, error)
	Create(ctx context.Context, question, answer string) (*domain.Flashcard, error)
}

type answerRepo interface {
	CountCorrectByUser(ctx context.Context, userID uuid.UUID) (int, error)
	PoolCounts(ctx context.Context) (domain.PoolCounts, error)
	Record(ctx context.Context, userID, flashcardID uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the flashcard quiz business logic.
type Service struct {
	flashcards flashcardRepo
	answers    answerRepo
	users      userRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new flashcard service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	answers answerRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		flashcards: flashcards,
		answers:    answers,
		users:      users,
		tx:         tx,
		log:        log.With("service", "flashcard"),
	}
}
