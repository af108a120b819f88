package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// ClickStore records bookmark clicks and answers the aggregate queries.
type ClickStore struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

func NewClickStore(pool *pgxpool.Pool, log logger.Logger) *ClickStore {
	return &ClickStore{pool: pool, log: log}
}

func (s *ClickStore) Insert(ctx context.Context, c *domain.BookmarkClick) error {
	start := time.Now()
	defer logSlow(s.log, "click.insert", start)

	_, err := s.pool.Exec(ctx, `
	INSERT INTO bookmark_click (id, bookmark_id, url, title, favicon, clicked_at)
	VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.BookmarkID, c.URL, c.Title, c.Favicon, c.ClickedAt)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// Recent returns distinct bookmarks ordered by their latest click. The
// snapshot columns are taken from that latest click row.
func (s *ClickStore) Recent(ctx context.Context, limit int) ([]domain.RecentBookmark, error) {
	start := time.Now()
	defer logSlow(s.log, "click.recent", start)

	rows, err := s.pool.Query(ctx, `
	SELECT bookmark_id, url, title, favicon, clicked_at
	FROM (
		SELECT DISTINCT ON (bookmark_id) bookmark_id, url, title, favicon, clicked_at
		FROM bookmark_click
		ORDER BY bookmark_id, clicked_at DESC, id DESC
	) latest
	ORDER BY clicked_at DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RecentBookmark, 0, limit)
	for rows.Next() {
		var b domain.RecentBookmark
		if err := rows.Scan(&b.BookmarkID, &b.URL, &b.Title, &b.Favicon, &b.LastClickedAt); err != nil {
			return nil, fmt.Errorf("scan recent bookmark: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent bookmarks: %w", err)
	}
	return out, nil
}

// TopClicked ranks bookmarks by click count since the given instant
// (all time when nil). Ties go to the most recently clicked bookmark.
func (s *ClickStore) TopClicked(ctx context.Context, since *time.Time, limit int) ([]domain.TopBookmark, error) {
	start := time.Now()
	defer logSlow(s.log, "click.top", start)

	rows, err := s.pool.Query(ctx, `
	WITH filtered AS (
		SELECT id, bookmark_id, url, title, favicon, clicked_at
		FROM bookmark_click
		WHERE ($1::timestamptz IS NULL OR clicked_at >= $1)
	), ranked AS (
		SELECT bookmark_id, url, title, favicon, clicked_at,
			COUNT(*) OVER (PARTITION BY bookmark_id) AS click_count,
			ROW_NUMBER() OVER (PARTITION BY bookmark_id ORDER BY clicked_at DESC, id DESC) AS rn
		FROM filtered
	)
	SELECT bookmark_id, url, title, favicon, click_count, clicked_at
	FROM ranked
	WHERE rn = 1
	ORDER BY click_count DESC, clicked_at DESC
	LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top clicked bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TopBookmark, 0, limit)
	for rows.Next() {
		var b domain.TopBookmark
		if err := rows.Scan(&b.BookmarkID, &b.URL, &b.Title, &b.Favicon, &b.ClickCount, &b.LastClickedAt); err != nil {
			return nil, fmt.Errorf("scan top bookmark: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top clicked bookmarks: %w", err)
	}
	return out, nil
}
