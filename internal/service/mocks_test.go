package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/karakeep"
	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) List(ctx context.Context, status *domain.TaskStatus, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Current(ctx context.Context) (*domain.Task, error) {
	args := m.Called(ctx)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Start(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	args := m.Called(ctx, id, at)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Pause(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Complete(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	args := m.Called(ctx, id, at)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	args := m.Called(ctx, id, patch)
	return taskOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func taskOrNil(v any) *domain.Task {
	if v == nil {
		return nil
	}
	return v.(*domain.Task)
}

type MockClickRepository struct {
	mock.Mock
}

func (m *MockClickRepository) Insert(ctx context.Context, c *domain.BookmarkClick) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClickRepository) Recent(ctx context.Context, limit int) ([]domain.RecentBookmark, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentBookmark), args.Error(1)
}

func (m *MockClickRepository) TopClicked(ctx context.Context, since *time.Time, limit int) ([]domain.TopBookmark, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopBookmark), args.Error(1)
}

type MockBookmarkSource struct {
	mock.Mock
}

func (m *MockBookmarkSource) SearchBookmarks(ctx context.Context, query string, limit int) (*karakeep.BookmarksResponse, error) {
	args := m.Called(ctx, query, limit)
	return bookmarksOrNil(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkSource) GetBookmarks(ctx context.Context, f karakeep.BookmarkFilters, cursor string, limit int) (*karakeep.BookmarksResponse, error) {
	args := m.Called(ctx, f, cursor, limit)
	return bookmarksOrNil(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkSource) GetListBookmarks(ctx context.Context, listID string, f karakeep.ListFilters, cursor string, limit int) (*karakeep.BookmarksResponse, error) {
	args := m.Called(ctx, listID, f, cursor, limit)
	return bookmarksOrNil(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkSource) GetLists(ctx context.Context) (*karakeep.ListsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*karakeep.ListsResponse), args.Error(1)
}

func (m *MockBookmarkSource) GetTags(ctx context.Context) (*karakeep.TagsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*karakeep.TagsResponse), args.Error(1)
}

func bookmarksOrNil(v any) *karakeep.BookmarksResponse {
	if v == nil {
		return nil
	}
	return v.(*karakeep.BookmarksResponse)
}

// failingHub always fails, to check that signals are best effort.
type failingHub struct{}

func (failingHub) Bump(context.Context, signal.Topic) (int64, error) {
	return 0, context.DeadlineExceeded
}

func (failingHub) Snapshot(context.Context) (map[signal.Topic]int64, error) {
	return nil, context.DeadlineExceeded
}
