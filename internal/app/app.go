package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	answerrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/answer"
	flashcardrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/flashcard"
	userrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/user"
	"github.com/quizdeck/quizdeck-backend/internal/cli"
	"github.com/quizdeck/quizdeck-backend/internal/config"
	flashcardsvc "github.com/quizdeck/quizdeck-backend/internal/service/flashcard"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the repositories and the flashcard service, and
// hands control to the interactive CLI on the given streams.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	svc := flashcardsvc.NewService(
		logger,
		flashcardrepo.New(pool),
		answerrepo.New(pool),
		userrepo.New(pool),
		txm,
	)

	return cli.New(logger, svc, in, out).Run(ctx)
}
