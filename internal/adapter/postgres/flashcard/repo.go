// Package flashcard implements the flashcard catalog repository using
// PostgreSQL. Simple CRUD uses squirrel builders; the practice-view join
// uses raw SQL.
package flashcard

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const columns = "id, question, answer, created_at, updated_at"

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new flashcard repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for the practice view (requires a JOIN)
// ---------------------------------------------------------------------------

// listWithStatusSQL joins the catalog with one user's answers. Flashcards
// without a record for that user surface as 'not_answered'.
const listWithStatusSQL = `
SELECT f.id, f.question, f.answer, f.created_at, f.updated_at,
       COALESCE(ua.status, 'not_answered') AS status
FROM flashcards f
LEFT JOIN user_answers ua ON ua.flashcard_id = f.id AND ua.user_id = $1
ORDER BY f.created_at, f.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	sql, args, err := qb.Select(columns).
		From("flashcards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	card, err := scanFlashcard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard")
	}

	return card, nil
}

// ListAll returns every flashcard in insertion order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Flashcard, error) {
	sql, args, err := qb.Select(columns).
		From("flashcards").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "flashcards")
	}
	defer rows.Close()

	cards, err := scanFlashcards(rows)
	if err != nil {
		return nil, postgres.MapError(err, "flashcards")
	}

	return cards, nil
}

// Count returns the total number of flashcards in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := qb.Select("count(*)").From("flashcards").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count flashcards query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "flashcards")
	}

	return count, nil
}

// ListWithStatusFor returns every flashcard in insertion order, annotated
// with the given user's answer status.
func (r *Repo) ListWithStatusFor(ctx context.Context, userID uuid.UUID) ([]domain.FlashcardWithStatus, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listWithStatusSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "practice view")
	}
	defer rows.Close()

	var result []domain.FlashcardWithStatus
	for rows.Next() {
		var fs domain.FlashcardWithStatus
		var status string
		if err := rows.Scan(&fs.ID, &fs.Question, &fs.Answer, &fs.CreatedAt, &fs.UpdatedAt, &status); err != nil {
			return nil, postgres.MapError(err, "practice view")
		}
		fs.Status = domain.AnswerStatus(status)
		result = append(result, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "practice view")
	}

	if result == nil {
		result = []domain.FlashcardWithStatus{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new flashcard and returns the persisted record.
// A duplicate question results in domain.ErrDuplicateQuestion; the catalog
// is left unchanged.
func (r *Repo) Create(ctx context.Context, question, answer string) (*domain.Flashcard, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := qb.Insert("flashcards").
		Columns("id", "question", "answer", "created_at", "updated_at").
		Values(uuid.New(), question, answer, now, now).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create flashcard query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	card, err := scanFlashcard(row)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("flashcard %q: %w", question, domain.ErrDuplicateQuestion)
		}
		return nil, postgres.MapError(err, "flashcard")
	}

	return card, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanFlashcard(row pgx.Row) (*domain.Flashcard, error) {
	var f domain.Flashcard
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func scanFlashcards(rows pgx.Rows) ([]domain.Flashcard, error) {
	var cards []domain.Flashcard
	for rows.Next() {
		var f domain.Flashcard
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}

	return cards, nil
}
