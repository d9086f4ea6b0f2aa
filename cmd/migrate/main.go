// Command migrate applies pending goose migrations and exits. Migrations are
// read from database.migrations_dir when it exists, otherwise the copies
// embedded in the binary are used.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stash-backend/internal/app"
	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var source fs.FS = migrations.FS
	if info, err := os.Stat(cfg.Database.MigrationsDir); err == nil && info.IsDir() {
		source = os.DirFS(cfg.Database.MigrationsDir)
	}

	if err := postgres.Migrate(ctx, cfg.Database.DSN, source, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations up to date")
}
