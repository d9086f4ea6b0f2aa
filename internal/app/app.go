package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	collectionrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/collection"
	itemrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/item"
	userrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stash-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/stash-backend/internal/adapter/provider/metadata"
	"github.com/heartmarshall/stash-backend/internal/auth"
	"github.com/heartmarshall/stash-backend/internal/config"
	authsvc "github.com/heartmarshall/stash-backend/internal/service/auth"
	collectionsvc "github.com/heartmarshall/stash-backend/internal/service/collection"
	"github.com/heartmarshall/stash-backend/internal/service/entitlement"
	exportsvc "github.com/heartmarshall/stash-backend/internal/service/export"
	"github.com/heartmarshall/stash-backend/internal/service/insight"
	itemsvc "github.com/heartmarshall/stash-backend/internal/service/item"
	usersvc "github.com/heartmarshall/stash-backend/internal/service/user"
	"github.com/heartmarshall/stash-backend/internal/transport/rest"
)

// completer is the text-completion client used by the insight service.
type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves the HTTP API until ctx is
// cancelled or SIGINT/SIGTERM is received.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("llm_enabled", cfg.LLM.Enabled()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, pool, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories, providers, services and handlers on top of
// pool and returns the HTTP router.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	users := userrepo.New(pool)
	items := itemrepo.New(pool)
	collections := collectionrepo.New(pool)

	// External providers.
	fetcher := metadata.NewFetcher(cfg.Metadata, logger)

	var llmClient completer
	if cfg.LLM.Enabled() {
		llmClient = llm.NewClient(cfg.LLM, logger)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	entitlements := entitlement.NewService(logger, users, items, collections, cfg.Plan)
	authService := authsvc.NewService(logger, users, jwtMgr, cfg.Auth)
	itemService := itemsvc.NewService(logger, items, collections, fetcher, entitlements)
	collectionService := collectionsvc.NewService(logger, collections, items, txm, entitlements)
	insightService := insight.NewService(logger, items, collections, entitlements, llmClient)
	userService := usersvc.NewService(logger, users, txm)
	exportService := exportsvc.NewService(logger, items, collections, txm, entitlements)

	return rest.NewRouter(logger, *cfg, authService, rest.Handlers{
		Health:     rest.NewHealthHandler(pool, Version),
		Auth:       rest.NewAuthHandler(authService, logger),
		Item:       rest.NewItemHandler(itemService, logger),
		Collection: rest.NewCollectionHandler(collectionService, logger),
		Insight:    rest.NewInsightHandler(insightService, logger),
		User:       rest.NewUserHandler(userService, entitlements, logger),
		Export:     rest.NewExportHandler(exportService, logger),
	})
}
