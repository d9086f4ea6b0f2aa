// Package collection implements the collection repository using PostgreSQL.
package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Item counts are derived from items.collections with a single aggregation
// joined to the collection rows.
const countedSelect = `
SELECT c.id, c.user_id, c.name, c.is_auto, c.created_at, COALESCE(n.cnt, 0)
FROM collections c
LEFT JOIN (
    SELECT cid, count(*) AS cnt
    FROM items i, unnest(i.collections) AS cid
    WHERE i.user_id = $1
    GROUP BY cid
) n ON n.cid = c.id
WHERE c.user_id = $1`

const (
	getByIDSQL = countedSelect + ` AND c.id = $2`

	getByNameSQL = countedSelect + ` AND lower(c.name) = lower($2)
ORDER BY c.created_at, c.id
LIMIT 1`

	listSQL = countedSelect + `
ORDER BY c.created_at, c.id`

	createSQL = `
INSERT INTO collections (id, user_id, name, is_auto, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, name, is_auto, created_at`

	renameSQL = `
UPDATE collections SET name = $3
WHERE id = $1 AND user_id = $2
RETURNING id`

	deleteSQL = `DELETE FROM collections WHERE id = $1 AND user_id = $2`

	countByUserSQL = `SELECT count(*) FROM collections WHERE user_id = $1`

	countOwnedSQL = `SELECT count(*) FROM collections WHERE user_id = $1 AND id = ANY($2::uuid[])`
)

// GetByID returns a collection owned by userID with its item count.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCollection(q.QueryRow(ctx, getByIDSQL, userID, id))
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}
	return c, nil
}

// GetByName finds a collection by name, case-insensitively.
func (r *Repo) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCollection(q.QueryRow(ctx, getByNameSQL, userID, name))
	if err != nil {
		return nil, postgres.MapError(err, "collection "+name, userID)
	}
	return c, nil
}

// List returns every collection of the user in creation order.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Collection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return out, nil
}

// Create inserts a new collection. A new collection has no items.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Collection
	err := q.QueryRow(ctx, createSQL, c.ID, c.UserID, c.Name, c.IsAuto, c.CreatedAt).
		Scan(&out.ID, &out.UserID, &out.Name, &out.IsAuto, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "collection", c.ID)
	}
	return &out, nil
}

// Rename changes the collection name and returns the updated collection.
func (r *Repo) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var got uuid.UUID
	if err := q.QueryRow(ctx, renameSQL, id, userID, name).Scan(&got); err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes a collection. Item references are not touched here.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.MapError(postgres.ExecOne(ctx, q, deleteSQL, id, userID), "collection", id)
}

// CountByUser returns the number of collections owned by the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}
	return n, nil
}

// CountOwned returns how many of ids are collections owned by the user.
func (r *Repo) CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countOwnedSQL, userID, ids).Scan(&n); err != nil {
		return 0, fmt.Errorf("count owned collections: %w", err)
	}
	return n, nil
}

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var c domain.Collection
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.IsAuto, &c.CreatedAt, &c.ItemCount); err != nil {
		return nil, err
	}
	return &c, nil
}
