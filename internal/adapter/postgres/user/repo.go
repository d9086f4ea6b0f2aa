// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, password_hash, name, plan_type, is_pro, pro_expires_at, preferences, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	createSQL = `
INSERT INTO users (id, email, password_hash, name, plan_type, is_pro, pro_expires_at, preferences, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + userColumns

	updatePlanSQL = `
UPDATE users
SET plan_type = $2, is_pro = $3, pro_expires_at = $4, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

	updatePreferencesSQL = `
UPDATE users
SET preferences = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	prefs, err := marshalPreferences(u.Preferences)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", u.ID, err)
	}

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.PasswordHash, u.Name, string(u.PlanType), u.IsPro, u.ProExpiresAt,
		prefs, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdatePlan sets both plan flags and the pro expiry in one statement.
func (r *Repo) UpdatePlan(ctx context.Context, id uuid.UUID, plan domain.PlanType, isPro bool, expiresAt *time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updatePlanSQL, id, string(plan), isPro, expiresAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdatePreferences replaces the stored preferences.
func (r *Repo) UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	prefs, err := marshalPreferences(p)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}

	u, err := scanUser(q.QueryRow(ctx, updatePreferencesSQL, id, prefs))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// preferencesJSON is the JSONB shape of domain.Preferences.
type preferencesJSON struct {
	SaveTypes           []string `json:"save_types"`
	Goals               []string `json:"goals"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
}

func marshalPreferences(p domain.Preferences) ([]byte, error) {
	b, err := json.Marshal(preferencesJSON{
		SaveTypes:           nonNil(p.SaveTypes),
		Goals:               nonNil(p.Goals),
		OnboardingCompleted: p.OnboardingCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	return b, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u     domain.User
		plan  string
		prefs []byte
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &plan, &u.IsPro, &u.ProExpiresAt,
		&prefs, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.PlanType = domain.PlanType(plan)

	var pj preferencesJSON
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &pj); err != nil {
			return nil, fmt.Errorf("unmarshal preferences: %w", err)
		}
	}
	u.Preferences = domain.Preferences{
		SaveTypes:           nonNil(pj.SaveTypes),
		Goals:               nonNil(pj.Goals),
		OnboardingCompleted: pj.OnboardingCompleted,
	}

	return &u, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
