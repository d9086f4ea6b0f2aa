// Command promote grants or revokes the Pro plan for a user by email
// address. It is used for support and manual billing corrections.
//
// Usage:
//
//	promote --email=user@example.com
//	promote --email=user@example.com --revoke
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	collectionrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/collection"
	itemrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/item"
	userrepo "github.com/heartmarshall/stash-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stash-backend/internal/app"
	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/entitlement"
	usersvc "github.com/heartmarshall/stash-backend/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to change")
	revoke := flag.Bool("revoke", false, "cancel Pro instead of granting it")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--revoke]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	userService := usersvc.NewService(logger, users, postgres.NewTxManager(pool))
	plans := entitlement.NewService(logger, users, itemrepo.New(pool), collectionrepo.New(pool), cfg.Plan)

	user, err := userService.FindByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("find user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *revoke {
		user, err = plans.Cancel(ctx, user)
	} else {
		user, err = plans.Upgrade(ctx, user)
	}
	if err != nil {
		logger.Error("change plan", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %q is now on the %s plan.\n", user.Email, user.PlanType)
}
