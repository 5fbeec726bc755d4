package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a question with a single canonical answer, shared by all
// users. Question text is unique across the catalog.
type Flashcard struct {
	ID        uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FlashcardWithStatus pairs a flashcard with one user's answer status.
// Flashcards the user never answered carry AnswerStatusNotAnswered.
type FlashcardWithStatus struct {
	Flashcard
	Status AnswerStatus
}
