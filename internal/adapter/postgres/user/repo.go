// Package user implements the user repository using PostgreSQL.
// This engine only reads users; cmd/seeder is the single writer.
package user

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

const columns = "id, name, email, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByEmail returns the user with the given email.
// Returns domain.ErrNotFound for unknown emails.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := qb.Select(columns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return u, nil
}

// List returns all users in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	sql, args, err := qb.Select(columns).
		From("users").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "users")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users")
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}

// Create inserts a new user. A duplicate email results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := qb.Insert("users").
		Columns("id", "name", "email", "created_at", "updated_at").
		Values(uuid.New(), name, email, now, now).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	u, err := scanUser(row)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "user")
	}

	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
