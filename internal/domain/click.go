package domain

import "time"

// BookmarkClick is one recorded interaction with an external bookmark.
// Rows are append-only; url, title and favicon are a snapshot taken at
// click time since the bookmark itself lives in Karakeep.
type BookmarkClick struct {
	ID         string    `json:"id"`
	BookmarkID string    `json:"bookmarkId"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Favicon    *string   `json:"favicon"`
	ClickedAt  time.Time `json:"clickedAt"`
}

// RecentBookmark is a distinct bookmark with the snapshot of its latest click.
type RecentBookmark struct {
	BookmarkID    string    `json:"bookmarkId"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Favicon       *string   `json:"favicon"`
	LastClickedAt time.Time `json:"lastClickedAt"`
}

// TopBookmark is a bookmark ranked by click count within a period.
type TopBookmark struct {
	BookmarkID    string    `json:"bookmarkId"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Favicon       *string   `json:"favicon"`
	ClickCount    int64     `json:"clickCount"`
	LastClickedAt time.Time `json:"lastClickedAt"`
}

// Period is the time window of the top clicked ranking.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Since returns the lower bound of the window relative to now, or nil
// when the period is unbounded. Windows are rolling, not calendar aligned.
func (p Period) Since(now time.Time) *time.Time {
	var d time.Duration
	switch p {
	case PeriodWeek:
		d = 7 * 24 * time.Hour
	case PeriodMonth:
		d = 30 * 24 * time.Hour
	default:
		return nil
	}
	since := now.Add(-d)
	return &since
}
