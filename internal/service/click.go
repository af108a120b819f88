package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

// aggregateLimit caps the recent and top clicked rankings.
const aggregateLimit = 10

type ClickRepository interface {
	Insert(ctx context.Context, c *domain.BookmarkClick) error
	Recent(ctx context.Context, limit int) ([]domain.RecentBookmark, error)
	TopClicked(ctx context.Context, since *time.Time, limit int) ([]domain.TopBookmark, error)
}

type TrackClickInput struct {
	BookmarkID string  `json:"bookmarkId" validate:"required"`
	URL        string  `json:"url" validate:"required"`
	Title      string  `json:"title"`
	Favicon    *string `json:"favicon"`
}

type TopClickedInput struct {
	Period string `json:"period" validate:"omitempty,oneof=week month all"`
}

// ClickService records bookmark clicks and ranks them.
type ClickService struct {
	repo  ClickRepository
	hub   signal.Hub
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewClickService(repo ClickRepository, hub signal.Hub, log logger.Logger, now func() time.Time) *ClickService {
	if now == nil {
		now = time.Now
	}
	return &ClickService{
		repo:  repo,
		hub:   hub,
		log:   log.With(logger.String("service", "clicks")),
		now:   now,
		newID: uuid.NewString,
	}
}

// TrackClick appends one click row. Repeated clicks are all kept.
func (s *ClickService) TrackClick(ctx context.Context, in TrackClickInput) (*domain.BookmarkClick, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	c := &domain.BookmarkClick{
		ID:         s.newID(),
		BookmarkID: in.BookmarkID,
		URL:        in.URL,
		Title:      in.Title,
		Favicon:    in.Favicon,
		ClickedAt:  s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	s.log.Debug("click tracked", logger.String("bookmark_id", c.BookmarkID))
	bump(ctx, s.hub, signal.TopicBookmarks, s.log)
	return c, nil
}

func (s *ClickService) GetRecentBookmarks(ctx context.Context) ([]domain.RecentBookmark, error) {
	return s.repo.Recent(ctx, aggregateLimit)
}

// GetTopClickedBookmarks ranks bookmarks over a rolling window ending now.
// An empty period means all time.
func (s *ClickService) GetTopClickedBookmarks(ctx context.Context, in TopClickedInput) ([]domain.TopBookmark, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	period := domain.Period(in.Period)
	if period == "" {
		period = domain.PeriodAll
	}
	return s.repo.TopClicked(ctx, period.Since(s.now().UTC()), aggregateLimit)
}
