package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/karakeep"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/service"
	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

// Tasks is what the task handlers need from the task service.
type Tasks interface {
	GetTasks(ctx context.Context, in service.GetTasksInput) ([]domain.Task, error)
	GetCurrentTask(ctx context.Context) (*domain.Task, error)
	CreateTask(ctx context.Context, in service.CreateTaskInput) (*domain.Task, error)
	StartTask(ctx context.Context, in service.TaskIDInput) (*domain.Task, error)
	PauseTask(ctx context.Context, in service.TaskIDInput) (*domain.Task, error)
	CompleteTask(ctx context.Context, in service.TaskIDInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, in service.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, in service.TaskIDInput) error
}

type Clicks interface {
	TrackClick(ctx context.Context, in service.TrackClickInput) (*domain.BookmarkClick, error)
	GetRecentBookmarks(ctx context.Context) ([]domain.RecentBookmark, error)
	GetTopClickedBookmarks(ctx context.Context, in service.TopClickedInput) ([]domain.TopBookmark, error)
}

type Bookmarks interface {
	SearchBookmarks(ctx context.Context, in service.SearchBookmarksInput) ([]karakeep.Bookmark, error)
	GetBookmarks(ctx context.Context, in service.GetBookmarksInput) (*karakeep.BookmarksResponse, error)
	GetBookmarksByList(ctx context.Context, in service.ListBookmarksInput) ([]karakeep.Bookmark, error)
	GetLists(ctx context.Context) ([]karakeep.List, error)
	GetTags(ctx context.Context) ([]karakeep.Tag, error)
}

// Check is one readiness dependency, ex: postgres or redis.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	AllowedCIDRS   []string         // IPs allowed to access healthz/readyz endpoints
	AllowedOrigins []string         // CORS origins, empty disables CORS
	TrustProxy     bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RequestTimeout time.Duration    // per-request timeout, 0 disables it
	Password       string           // shared login secret
	LoginBurst     int              // login attempts per IP before throttling
	LoginPerMinute int              // login attempts refilled per IP per minute
	Tasks          Tasks
	Clicks         Clicks
	Bookmarks      Bookmarks
	Signals        signal.Hub
	ReadyChecks    []Check
}
