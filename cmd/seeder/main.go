// Command seeder inserts the demo users used by the interactive session.
// It is idempotent: users that already exist are skipped.
//
// Flags:
//
//	--migrate  apply pending migrations before seeding
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/quizdeck/quizdeck-backend/internal/adapter/postgres"
	userrepo "github.com/quizdeck/quizdeck-backend/internal/adapter/postgres/user"
	"github.com/quizdeck/quizdeck-backend/internal/app"
	"github.com/quizdeck/quizdeck-backend/internal/config"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

var seedUsers = []struct {
	name  string
	email string
}{
	{name: "Munshif", email: "munshif@test.com"},
	{name: "Jhone", email: "jhone@test.com"},
}

func main() {
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *migrateFlag {
		if err := postgres.Migrate(ctx, cfg.Database); err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)

	for _, u := range seedUsers {
		created, err := users.Create(ctx, u.name, u.email)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				logger.Info("user already seeded", slog.String("email", u.email))
				continue
			}
			logger.Error("seed user", slog.String("email", u.email), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("user seeded", slog.String("email", created.Email), slog.String("user_id", created.ID.String()))
	}

	logger.Info("seeding completed")
}
