package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Hand-written func-field mocks for the service's private interfaces.
// Unset funcs panic, which surfaces unexpected calls immediately.

type flashcardRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ListAllFunc           func(ctx context.Context) ([]domain.Flashcard, error)
	CountFunc             func(ctx context.Context) (int, error)
	ListWithStatusForFunc func(ctx context.Context, userID uuid.UUID) ([]domain.FlashcardWithStatus, error)
	CreateFunc            func(ctx context.Context, question, answer string) (*domain.Flashcard, error)

	mu          sync.Mutex
	getByIDN    int
	listAllN    int
	countN      int
	listStatusN int
	createN     int
}

func (m *flashcardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	m.mu.Lock()
	m.getByIDN++
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *flashcardRepoMock) ListAll(ctx context.Context) ([]domain.Flashcard, error) {
	m.mu.Lock()
	m.listAllN++
	m.mu.Unlock()
	return m.ListAllFunc(ctx)
}

func (m *flashcardRepoMock) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	m.countN++
	m.mu.Unlock()
	return m.CountFunc(ctx)
}

func (m *flashcardRepoMock) ListWithStatusFor(ctx context.Context, userID uuid.UUID) ([]domain.FlashcardWithStatus, error) {
	m.mu.Lock()
	m.listStatusN++
	m.mu.Unlock()
	return m.ListWithStatusForFunc(ctx, userID)
}

func (m *flashcardRepoMock) Create(ctx context.Context, question, answer string) (*domain.Flashcard, error) {
	m.mu.Lock()
	m.createN++
	m.mu.Unlock()
	return m.CreateFunc(ctx, question, answer)
}

func (m *flashcardRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createN
}

type answerRepoMock struct {
	CountCorrectByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	PoolCountsFunc         func(ctx context.Context) (domain.PoolCounts, error)
	RecordFunc             func(ctx context.Context, userID, flashcardID uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error)
	DeleteAllByUserFunc    func(ctx context.Context, userID uuid.UUID) (int64, error)

	mu      sync.Mutex
	recordN int
	deleteN int
}

func (m *answerRepoMock) CountCorrectByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.CountCorrectByUserFunc(ctx, userID)
}

func (m *answerRepoMock) PoolCounts(ctx context.Context) (domain.PoolCounts, error) {
	return m.PoolCountsFunc(ctx)
}

func (m *answerRepoMock) Record(ctx context.Context, userID, flashcardID uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
	m.mu.Lock()
	m.recordN++
	m.mu.Unlock()
	return m.RecordFunc(ctx, userID, flashcardID, submitted, status)
}

func (m *answerRepoMock) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.deleteN++
	m.mu.Unlock()
	return m.DeleteAllByUserFunc(ctx, userID)
}

func (m *answerRepoMock) RecordCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordN
}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListFunc       func(ctx context.Context) ([]domain.User, error)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFunc(ctx)
}

// txManagerMock runs the callback directly on the caller's context.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
