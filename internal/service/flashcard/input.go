package flashcard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

const (
	maxQuestionLen = 500
	maxAnswerLen   = 500
)

// CreateFlashcardInput holds the parameters for creating a flashcard.
type CreateFlashcardInput struct {
	Question string
	Answer   string
}

// Validate checks all fields and collects all errors.
func (i *CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	} else if len(i.Question) > maxQuestionLen {
		errs = append(errs, domain.FieldError{Field: "question", Message: "too long (max 500)"})
	}
	if strings.TrimSpace(i.Answer) == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	} else if len(i.Answer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds the parameters for submitting an answer.
type SubmitAnswerInput struct {
	FlashcardID uuid.UUID
	Answer      string
}

// Validate checks all fields and collects all errors.
// An empty answer is allowed: submitting nothing is an incorrect answer,
// not a validation failure.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if len(i.Answer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LookupUserInput holds the parameters for looking up a user by email.
type LookupUserInput struct {
	Email string
}

// Validate checks all fields and collects all errors.
func (i *LookupUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
