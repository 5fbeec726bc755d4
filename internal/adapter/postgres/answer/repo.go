// Package answer implements the per-user answer store using PostgreSQL.
// The correctness ratchet lives here: a guarded upsert refuses to touch a
// record whose status is already 'correct'.
package answer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const columns = "id, user_id, flashcard_id, answer, status, created_at, updated_at"

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new answer repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for the guarded upsert and the aggregate view
// ---------------------------------------------------------------------------

// recordSQL creates-or-updates the single record for (user, flashcard).
// The WHERE clause on the conflict update is the ratchet: a row whose
// status is already 'correct' is never touched, and the statement then
// returns no rows. Combined with the unique constraint this makes the
// read-then-write submit sequence safe under concurrent submissions.
const recordSQL = `
INSERT INTO user_answers (id, user_id, flashcard_id, answer, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (user_id, flashcard_id) DO UPDATE
SET answer     = EXCLUDED.answer,
    status     = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at
WHERE user_answers.status <> 'correct'
RETURNING ` + columns

// poolCountsSQL computes all three pool-wide counters in one read so they
// can never disagree with each other. A question with only incorrect
// answers counts as answered but is excluded from the correct count by
// the FILTER clause.
const poolCountsSQL = `
SELECT count(DISTINCT f.id)                                                 AS total_questions,
       count(DISTINCT ua.flashcard_id)                                      AS answered_questions,
       count(DISTINCT ua.flashcard_id) FILTER (WHERE ua.status = 'correct') AS correct_questions
FROM flashcards f
LEFT JOIN user_answers ua ON ua.flashcard_id = f.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the answer record for (user, flashcard).
// Returns domain.ErrNotFound when the user never answered the flashcard.
func (r *Repo) Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.UserAnswer, error) {
	sql, args, err := qb.Select(columns).
		From("user_answers").
		Where(squirrel.Eq{"user_id": userID, "flashcard_id": flashcardID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get answer query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	ans, err := scanAnswer(row)
	if err != nil {
		return nil, postgres.MapError(err, "answer")
	}

	return ans, nil
}

// ListByUser returns all of a user's answer records in insertion order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserAnswer, error) {
	sql, args, err := qb.Select(columns).
		From("user_answers").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list answers query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "answers")
	}
	defer rows.Close()

	answers, err := scanAnswers(rows)
	if err != nil {
		return nil, postgres.MapError(err, "answers")
	}

	return answers, nil
}

// CountCorrectByUser returns how many flashcards the user answered correctly.
func (r *Repo) CountCorrectByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("count(*)").
		From("user_answers").
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.AnswerStatusCorrect)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count correct query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "answers")
	}

	return count, nil
}

// PoolCounts returns the pool-wide distinct-question counters in a single
// consistent read.
func (r *Repo) PoolCounts(ctx context.Context) (domain.PoolCounts, error) {
	var c domain.PoolCounts
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, poolCountsSQL).
		Scan(&c.TotalQuestions, &c.AnsweredQuestions, &c.CorrectQuestions)
	if err != nil {
		return domain.PoolCounts{}, postgres.MapError(err, "pool counts")
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Record persists the outcome of a submission as the single record for
// (user, flashcard), creating it on first submission and overwriting it
// while the stored status is still rewritable.
// Returns domain.ErrAlreadyCorrect when the stored record is already
// correct; the record is left unchanged.
func (r *Repo) Record(ctx context.Context, userID, flashcardID uuid.UUID, submitted string, status domain.AnswerStatus) (*domain.UserAnswer, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, recordSQL, uuid.New(), userID, flashcardID, submitted, string(status), now)

	ans, err := scanAnswer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("flashcard %s: %w", flashcardID, domain.ErrAlreadyCorrect)
		}
		return nil, postgres.MapError(err, "answer")
	}

	return ans, nil
}

// DeleteAllByUser removes every answer record for the user in one
// statement. Deleting an empty history is a no-op, not an error.
func (r *Repo) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	sql, args, err := qb.Delete("user_answers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete answers query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "answers")
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAnswer(row pgx.Row) (*domain.UserAnswer, error) {
	var a domain.UserAnswer
	var status string
	if err := row.Scan(&a.ID, &a.UserID, &a.FlashcardID, &a.Answer, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = domain.AnswerStatus(status)
	return &a, nil
}

func scanAnswers(rows pgx.Rows) ([]domain.UserAnswer, error) {
	var answers []domain.UserAnswer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if answers == nil {
		answers = []domain.UserAnswer{}
	}

	return answers, nil
}
