package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnswerStatus is the per-user status of a flashcard.
//
// Only "correct" and "incorrect" are ever persisted; "not_answered" is
// derived from the absence of a record.
type AnswerStatus string

const (
	AnswerStatusNotAnswered AnswerStatus = "not_answered"
	AnswerStatusCorrect     AnswerStatus = "correct"
	AnswerStatusIncorrect   AnswerStatus = "incorrect"
)

func (s AnswerStatus) String() string { return string(s) }

func (s AnswerStatus) IsValid() bool {
	switch s {
	case AnswerStatusNotAnswered, AnswerStatusCorrect, AnswerStatusIncorrect:
		return true
	}
	return false
}

// IsFinal reports whether the status is terminal. A correct answer can
// never be resubmitted or overwritten.
func (s AnswerStatus) IsFinal() bool { return s == AnswerStatusCorrect }

// Label returns the display form of the status (NOT_ANSWERED, CORRECT,
// INCORRECT) used by the practice overview.
func (s AnswerStatus) Label() string { return strings.ToUpper(string(s)) }

// EvaluateAnswer scores a submitted answer against the canonical one.
// Case-sensitive exact match; no trimming or normalization.
func EvaluateAnswer(submitted, canonical string) AnswerStatus {
	if submitted == canonical {
		return AnswerStatusCorrect
	}
	return AnswerStatusIncorrect
}

// UserAnswer is one user's answer to one flashcard. At most one record
// exists per (user, flashcard) pair; it is created on first submission
// and updated in place while the status is still incorrect.
type UserAnswer struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FlashcardID uuid.UUID
	Answer      string
	Status      AnswerStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
