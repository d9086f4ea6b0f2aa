// Package item implements the saved-item repository using PostgreSQL.
// Tags and collection ids are stored as arrays on the item row; derived LLM
// output is stored as JSONB.
package item

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Repo provides saved-item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var itemColumns = []string{
	"id", "user_id", "url", "title", "thumbnail_url", "platform", "content_type", "notes",
	"tags", "collections", "ai_summary", "extracted_ideas", "action_items", "suggested_collection",
	"created_at", "updated_at",
}

var returningItem = "RETURNING " + strings.Join(itemColumns, ", ")

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const (
	countByUserSQL = `SELECT count(*) FROM items WHERE user_id = $1`

	deleteSQL = `DELETE FROM items WHERE id = $1 AND user_id = $2`

	listTagsSQL = `
SELECT DISTINCT tag
FROM items, unnest(tags) AS tag
WHERE user_id = $1
ORDER BY tag`

	removeCollectionSQL = `
UPDATE items
SET collections = array_remove(collections, $2::uuid), updated_at = now()
WHERE user_id = $1 AND $2::uuid = ANY(collections)`

	statsTotalsSQL = `
SELECT count(*), count(*) FILTER (WHERE created_at >= $2)
FROM items
WHERE user_id = $1`

	statsPlatformsSQL = `
SELECT platform, count(*)
FROM items
WHERE user_id = $1
GROUP BY platform`

	statsTopTagsSQL = `
SELECT tag, count(*) AS n
FROM items, unnest(tags) AS tag
WHERE user_id = $1
GROUP BY tag
ORDER BY n DESC, tag
LIMIT $2`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.SavedItem, error) {
	query, args, err := psql.Select(itemColumns...).From("items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	item, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return item, nil
}

// List returns the user's items matching the exact-match filter, ordered by
// created_at. The result is capped at domain.MaxListItems.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.ItemFilter) ([]domain.SavedItem, error) {
	b := psql.Select(itemColumns...).From("items").Where(sq.Eq{"user_id": userID})

	if f.Platform != nil {
		b = b.Where(sq.Eq{"platform": *f.Platform})
	}
	if f.CollectionID != nil {
		b = b.Where(sq.Expr("?::uuid = ANY(collections)", *f.CollectionID))
	}
	if f.Tag != nil {
		b = b.Where(sq.Expr("?::text = ANY(tags)", *f.Tag))
	}

	if f.Newest {
		b = b.OrderBy("created_at DESC", "id DESC")
	} else {
		b = b.OrderBy("created_at ASC", "id ASC")
	}
	b = b.Limit(capLimit(f.Limit))

	return r.queryItems(ctx, b, "list items")
}

// ListAll returns every item of the user, oldest first, without a cap.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SavedItem, error) {
	b := psql.Select(itemColumns...).From("items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")

	return r.queryItems(ctx, b, "list all items")
}

// ListCreatedBetween returns up to limit items created in [from, to), newest
// first. A zero from means no lower bound.
func (r *Repo) ListCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.SavedItem, error) {
	b := psql.Select(itemColumns...).From("items").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Lt{"created_at": to})
	if !from.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": from})
	}
	b = b.OrderBy("created_at DESC", "id DESC").Limit(capLimit(limit))

	return r.queryItems(ctx, b, "list items by date")
}

// SampleCreatedBefore returns up to limit random items created before the
// given time.
func (r *Repo) SampleCreatedBefore(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]domain.SavedItem, error) {
	b := psql.Select(itemColumns...).From("items").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("random()").
		Limit(capLimit(limit))

	return r.queryItems(ctx, b, "sample old items")
}

// Search performs a case-insensitive substring match over the fields enabled
// in q. url and platform are always searched. Newest first.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, q domain.SearchQuery) ([]domain.SavedItem, error) {
	pattern := "%" + escapeLike(q.Text) + "%"

	or := sq.Or{
		sq.ILike{"url": pattern},
		sq.ILike{"platform": pattern},
	}
	if q.InTitles {
		or = append(or, sq.ILike{"title": pattern})
	}
	if q.InNotes {
		or = append(or, sq.ILike{"notes": pattern})
	}
	if q.InTags {
		or = append(or, sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE ?)", pattern))
	}

	b := psql.Select(itemColumns...).From("items").
		Where(sq.Eq{"user_id": userID}).
		Where(or)

	if q.Platform != nil {
		b = b.Where(sq.Eq{"platform": *q.Platform})
	}
	if q.CollectionID != nil {
		b = b.Where(sq.Expr("?::uuid = ANY(collections)", *q.CollectionID))
	}

	b = b.OrderBy("created_at DESC", "id DESC").Limit(capLimit(q.Limit))

	return r.queryItems(ctx, b, "search items")
}

// CountByUser returns the number of items owned by the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// ListTags returns the distinct tags across the user's items, sorted.
// Returns an empty slice (not nil) when the user has no tags.
func (r *Repo) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTagsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// Stats aggregates totals, platform breakdown and the most used tags.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID, weekStart time.Time, topTags int) (domain.ItemStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stats := domain.ItemStats{
		Platforms: make(map[string]int),
		TopTags:   make([]domain.TagCount, 0),
	}

	if err := q.QueryRow(ctx, statsTotalsSQL, userID, weekStart).Scan(&stats.Total, &stats.ThisWeek); err != nil {
		return stats, fmt.Errorf("item stats totals: %w", err)
	}

	rows, err := q.Query(ctx, statsPlatformsSQL, userID)
	if err != nil {
		return stats, fmt.Errorf("item stats platforms: %w", err)
	}
	for rows.Next() {
		var (
			platform string
			n        int
		)
		if err := rows.Scan(&platform, &n); err != nil {
			rows.Close()
			return stats, fmt.Errorf("scan platform count: %w", err)
		}
		stats.Platforms[platform] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("item stats platforms: %w", err)
	}

	rows, err = q.Query(ctx, statsTopTagsSQL, userID, topTags)
	if err != nil {
		return stats, fmt.Errorf("item stats tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return stats, fmt.Errorf("scan tag count: %w", err)
		}
		stats.TopTags = append(stats.TopTags, tc)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("item stats tags: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, it *domain.SavedItem) (*domain.SavedItem, error) {
	summary, ideas, actions, err := marshalInsights(it)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", it.ID, err)
	}

	query, args, err := psql.Insert("items").
		Columns(itemColumns...).
		Values(
			it.ID, it.UserID, it.URL, it.Title, it.ThumbnailURL, it.Platform, it.ContentType, it.Notes,
			nonNilStrings(it.Tags), nonNilIDs(it.Collections), summary, ideas, actions, it.SuggestedCollection,
			it.CreatedAt, it.UpdatedAt,
		).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return created, nil
}

// Update applies a partial update to an item owned by userID.
func (r *Repo) Update(ctx context.Context, userID, itemID uuid.UUID, u domain.ItemUpdate) (*domain.SavedItem, error) {
	if u.IsEmpty() {
		return r.GetByID(ctx, userID, itemID)
	}

	b := psql.Update("items").Set("updated_at", sq.Expr("now()"))
	if u.Title != nil {
		b = b.Set("title", *u.Title)
	}
	if u.Notes != nil {
		b = b.Set("notes", *u.Notes)
	}
	if u.Tags != nil {
		b = b.Set("tags", u.Tags)
	}
	if u.Collections != nil {
		b = b.Set("collections", u.Collections)
	}

	return r.updateOne(ctx, b, userID, itemID)
}

// SetAISummary stores the generated summary bullets.
func (r *Repo) SetAISummary(ctx context.Context, userID, itemID uuid.UUID, summary []string) (*domain.SavedItem, error) {
	return r.setJSON(ctx, userID, itemID, "ai_summary", nonNilStrings(summary))
}

// SetExtractedIdeas stores the extracted ideas.
func (r *Repo) SetExtractedIdeas(ctx context.Context, userID, itemID uuid.UUID, ideas []domain.ExtractedIdea) (*domain.SavedItem, error) {
	if ideas == nil {
		ideas = []domain.ExtractedIdea{}
	}
	return r.setJSON(ctx, userID, itemID, "extracted_ideas", ideas)
}

// SetActionItems stores the action items.
func (r *Repo) SetActionItems(ctx context.Context, userID, itemID uuid.UUID, actions []domain.ActionItem) (*domain.SavedItem, error) {
	if actions == nil {
		actions = []domain.ActionItem{}
	}
	return r.setJSON(ctx, userID, itemID, "action_items", actions)
}

// SetSuggestedCollection stores the suggested collection name.
func (r *Repo) SetSuggestedCollection(ctx context.Context, userID, itemID uuid.UUID, name string) (*domain.SavedItem, error) {
	b := psql.Update("items").
		Set("suggested_collection", name).
		Set("updated_at", sq.Expr("now()"))
	return r.updateOne(ctx, b, userID, itemID)
}

// Delete removes an item owned by userID.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.MapError(postgres.ExecOne(ctx, q, deleteSQL, itemID, userID), "item", itemID)
}

// RemoveCollection pulls the collection id out of every item of the user.
// Returns the number of items changed.
func (r *Repo) RemoveCollection(ctx context.Context, userID, collectionID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeCollectionSQL, userID, collectionID)
	if err != nil {
		return 0, fmt.Errorf("remove collection %s from items: %w", collectionID, err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) setJSON(ctx context.Context, userID, itemID uuid.UUID, column string, v any) (*domain.SavedItem, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("item %s: marshal %s: %w", itemID, column, err)
	}

	b := psql.Update("items").
		Set(column, raw).
		Set("updated_at", sq.Expr("now()"))
	return r.updateOne(ctx, b, userID, itemID)
}

func (r *Repo) updateOne(ctx context.Context, b sq.UpdateBuilder, userID, itemID uuid.UUID) (*domain.SavedItem, error) {
	query, args, err := b.
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return updated, nil
}

func (r *Repo) queryItems(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.SavedItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]domain.SavedItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanItem(row pgx.Row) (*domain.SavedItem, error) {
	var (
		it                     domain.SavedItem
		summary, ideas, action []byte
	)

	err := row.Scan(
		&it.ID, &it.UserID, &it.URL, &it.Title, &it.ThumbnailURL, &it.Platform, &it.ContentType, &it.Notes,
		&it.Tags, &it.Collections, &summary, &ideas, &action, &it.SuggestedCollection,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(summary, &it.AISummary); err != nil {
		return nil, fmt.Errorf("ai_summary: %w", err)
	}
	if err := unmarshalJSON(ideas, &it.ExtractedIdeas); err != nil {
		return nil, fmt.Errorf("extracted_ideas: %w", err)
	}
	if err := unmarshalJSON(action, &it.ActionItems); err != nil {
		return nil, fmt.Errorf("action_items: %w", err)
	}

	it.Tags = nonNilStrings(it.Tags)
	it.Collections = nonNilIDs(it.Collections)
	it.AISummary = nonNilStrings(it.AISummary)
	if it.ExtractedIdeas == nil {
		it.ExtractedIdeas = []domain.ExtractedIdea{}
	}
	if it.ActionItems == nil {
		it.ActionItems = []domain.ActionItem{}
	}

	return &it, nil
}

func marshalInsights(it *domain.SavedItem) (summary, ideas, actions []byte, err error) {
	if summary, err = json.Marshal(nonNilStrings(it.AISummary)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal ai_summary: %w", err)
	}
	ideaList := it.ExtractedIdeas
	if ideaList == nil {
		ideaList = []domain.ExtractedIdea{}
	}
	if ideas, err = json.Marshal(ideaList); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal extracted_ideas: %w", err)
	}
	actionList := it.ActionItems
	if actionList == nil {
		actionList = []domain.ActionItem{}
	}
	if actions, err = json.Marshal(actionList); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal action_items: %w", err)
	}
	return summary, ideas, actions, nil
}

func unmarshalJSON(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func capLimit(limit int) uint64 {
	if limit <= 0 || limit > domain.MaxListItems {
		return domain.MaxListItems
	}
	return uint64(limit)
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
