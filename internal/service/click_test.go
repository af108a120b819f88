package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/keepdash/internal/apperr"
	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

func newClickService(repo ClickRepository, hub signal.Hub) *ClickService {
	s := NewClickService(repo, hub, logger.NewNop(), func() time.Time { return fixedNow })
	s.newID = func() string { return "click-1" }
	return s
}

func TestTrackClick(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClickRepository)
	hub := signal.NewMemory()
	repo.On("Insert", ctx, mock.MatchedBy(func(c *domain.BookmarkClick) bool {
		return c.ID == "click-1" &&
			c.BookmarkID == "bm1" &&
			c.URL == "https://go.dev" &&
			c.Title == "" &&
			c.Favicon == nil &&
			c.ClickedAt.Equal(fixedNow)
	})).Return(nil)

	got, err := newClickService(repo, hub).TrackClick(ctx, TrackClickInput{BookmarkID: "bm1", URL: "https://go.dev"})
	require.NoError(t, err)
	assert.Equal(t, "bm1", got.BookmarkID)

	snap, _ := hub.Snapshot(ctx)
	assert.Equal(t, int64(1), snap[signal.TopicBookmarks])
	assert.Equal(t, int64(0), snap[signal.TopicTasks])
	repo.AssertExpectations(t)
}

func TestTrackClickValidation(t *testing.T) {
	tests := []struct {
		name   string
		in     TrackClickInput
		fields []string
	}{
		{name: "empty", in: TrackClickInput{}, fields: []string{"bookmarkId", "url"}},
		{name: "missing url", in: TrackClickInput{BookmarkID: "bm1"}, fields: []string{"url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockClickRepository)
			_, err := newClickService(repo, nil).TrackClick(context.Background(), tt.in)
			require.Error(t, err)

			ae, ok := err.(*apperr.Error)
			require.True(t, ok)
			for _, f := range tt.fields {
				assert.Contains(t, ae.Details, f)
			}
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestGetRecentBookmarks(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClickRepository)
	want := []domain.RecentBookmark{{BookmarkID: "bm1", LastClickedAt: fixedNow}}
	repo.On("Recent", ctx, 10).Return(want, nil)

	got, err := newClickService(repo, nil).GetRecentBookmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetTopClickedBookmarksPeriods(t *testing.T) {
	ctx := context.Background()
	week := fixedNow.Add(-7 * 24 * time.Hour)
	month := fixedNow.Add(-30 * 24 * time.Hour)

	tests := []struct {
		period string
		since  *time.Time
	}{
		{period: "", since: nil},
		{period: "all", since: nil},
		{period: "week", since: &week},
		{period: "month", since: &month},
	}
	for _, tt := range tests {
		t.Run("period="+tt.period, func(t *testing.T) {
			repo := new(MockClickRepository)
			repo.On("TopClicked", ctx, mock.MatchedBy(func(s *time.Time) bool {
				if tt.since == nil {
					return s == nil
				}
				return s != nil && s.Equal(*tt.since)
			}), 10).Return([]domain.TopBookmark{}, nil)

			_, err := newClickService(repo, nil).GetTopClickedBookmarks(ctx, TopClickedInput{Period: tt.period})
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetTopClickedBookmarksRejectsUnknownPeriod(t *testing.T) {
	_, err := newClickService(new(MockClickRepository), nil).
		GetTopClickedBookmarks(context.Background(), TopClickedInput{Period: "year"})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}
