package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a free-plan user and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.PlanFree)
}

// SeedProUser creates a pro-plan user and returns it.
func SeedProUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.PlanPro)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, plan domain.PlanType) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$testhashtesthashtesthashtesthashtesthashtesthash",
		Name:         "Test User " + suffix,
		PlanType:     plan,
		IsPro:        plan == domain.PlanPro,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, plan_type, is_pro, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.Name, string(user.PlanType), user.IsPro, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCollection creates a collection owned by userID.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Collection {
	t.Helper()

	c := domain.Collection{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collections (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.UserID, c.Name, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection: %v", err)
	}

	return c
}

// SeedItem creates an item owned by userID with the given tags and
// collections. createdAt may be zero for now.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, tags []string, collections []uuid.UUID, createdAt time.Time) domain.SavedItem {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if tags == nil {
		tags = []string{}
	}
	if collections == nil {
		collections = []uuid.UUID{}
	}

	item := domain.SavedItem{
		ID:          uuid.New(),
		UserID:      userID,
		URL:         "https://example.com/" + uniqueSuffix(),
		Title:       title,
		Platform:    domain.DefaultPlatform,
		ContentType: domain.DefaultContentType,
		Tags:        tags,
		Collections: collections,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}
	item.UpdatedAt = item.CreatedAt

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, user_id, url, title, platform, content_type, tags, collections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.UserID, item.URL, item.Title, item.Platform, item.ContentType,
		item.Tags, item.Collections, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}
