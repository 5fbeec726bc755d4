package flashcard

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

func TestService_SubmitAnswer_Correct(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	card := &domain.Flashcard{ID: cardID, Question: "2+2", Answer: "4"}

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			if id != cardID {
				t.Errorf("unexpected card ID: got %v, want %v", id, cardID)
			}
			return card, nil
		},
	}
	mockAnswers := &answerRepoMock{
		RecordFunc: func(ctx context.Context, uid, fid uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
			if uid != userID {
				t.Errorf("unexpected userID: got %v, want %v", uid, userID)
			}
			if status != domain.AnswerStatusCorrect {
				t.Errorf("status: got %v, want correct", status)
			}
			return &domain.UserAnswer{UserID: uid, FlashcardID: fid, Answer: submitted, Status: status}, nil
		},
	}

	svc := &Service{
		flashcards: mockCards,
		answers:    mockAnswers,
		tx:         &txManagerMock{},
		log:        slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)

	got, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{FlashcardID: cardID, Answer: "4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.AnswerStatusCorrect {
		t.Errorf("status: got %v, want correct", got.Status)
	}
	if n := mockAnswers.RecordCalls(); n != 1 {
		t.Errorf("Record calls: got %d, want 1", n)
	}
}

func TestService_SubmitAnswer_CaseSensitiveMismatch(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	card := &domain.Flashcard{ID: cardID, Question: "capital of France", Answer: "Paris"}

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			return card, nil
		},
	}
	mockAnswers := &answerRepoMock{
		RecordFunc: func(ctx context.Context, uid, fid uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
			if status != domain.AnswerStatusIncorrect {
				t.Errorf("status: got %v, want incorrect", status)
			}
			return &domain.UserAnswer{UserID: uid, FlashcardID: fid, Answer: submitted, Status: status}, nil
		},
	}

	svc := &Service{
		flashcards: mockCards,
		answers:    mockAnswers,
		tx:         &txManagerMock{},
		log:        slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)

	// "paris" differs from the stored "Paris" only in case, and the
	// comparison is exact.
	got, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{FlashcardID: cardID, Answer: "paris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.AnswerStatusIncorrect {
		t.Errorf("status: got %v, want incorrect", got.Status)
	}
}

func TestService_SubmitAnswer_AlreadyCorrect(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			return &domain.Flashcard{ID: cardID, Question: "2+2", Answer: "4"}, nil
		},
	}
	mockAnswers := &answerRepoMock{
		RecordFunc: func(ctx context.Context, uid, fid uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
			return nil, domain.ErrAlreadyCorrect
		},
	}

	svc := &Service{
		flashcards: mockCards,
		answers:    mockAnswers,
		tx:         &txManagerMock{},
		log:        slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)

	_, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{FlashcardID: cardID, Answer: "4"})
	if !errors.Is(err, domain.ErrAlreadyCorrect) {
		t.Errorf("error: got %v, want ErrAlreadyCorrect", err)
	}
}

func TestService_SubmitAnswer_UnknownFlashcard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			return nil, domain.ErrNotFound
		},
	}
	mockAnswers := &answerRepoMock{
		RecordFunc: func(ctx context.Context, uid, fid uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
			t.Error("Record must not be called for an unknown flashcard")
			return nil, nil
		},
	}

	svc := &Service{
		flashcards: mockCards,
		answers:    mockAnswers,
		tx:         &txManagerMock{},
		log:        slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)

	_, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{FlashcardID: uuid.New(), Answer: "4"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
	if n := mockAnswers.RecordCalls(); n != 0 {
		t.Errorf("Record calls: got %d, want 0", n)
	}
}

func TestService_SubmitAnswer_NoUserID(t *testing.T) {
	t.Parallel()

	svc := &Service{log: slog.Default()}

	_, err := svc.SubmitAnswer(context.Background(), SubmitAnswerInput{FlashcardID: uuid.New(), Answer: "4"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error: got %v, want ErrUnauthorized", err)
	}
}

func TestService_SubmitAnswer_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := &Service{log: slog.Default()}

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{FlashcardID: uuid.Nil, Answer: "4"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error: got %v, want ErrValidation", err)
	}
}
