package service

import (
	"context"

	"github.com/MrSnakeDoc/keepdash/internal/karakeep"
)

const (
	defaultSearchLimit = 20
	defaultListLimit   = 50
)

// BookmarkSource is the subset of the Karakeep client the dashboard reads.
type BookmarkSource interface {
	SearchBookmarks(ctx context.Context, query string, limit int) (*karakeep.BookmarksResponse, error)
	GetBookmarks(ctx context.Context, f karakeep.BookmarkFilters, cursor string, limit int) (*karakeep.BookmarksResponse, error)
	GetListBookmarks(ctx context.Context, listID string, f karakeep.ListFilters, cursor string, limit int) (*karakeep.BookmarksResponse, error)
	GetLists(ctx context.Context) (*karakeep.ListsResponse, error)
	GetTags(ctx context.Context) (*karakeep.TagsResponse, error)
}

type SearchBookmarksInput struct {
	Q     string `json:"q" validate:"required"`
	Limit *int   `json:"limit" validate:"omitempty,min=1,max=100"`
}

type GetBookmarksInput struct {
	Archived   *bool    `json:"archived"`
	Favourited *bool    `json:"favourited"`
	Lists      []string `json:"lists" validate:"omitempty,dive,required"`
	Cursor     string   `json:"cursor"`
	Limit      *int     `json:"limit" validate:"omitempty,min=1,max=100"`
}

type ListBookmarksInput struct {
	ListID string `json:"listId" validate:"required"`
	Limit  *int   `json:"limit" validate:"omitempty,min=1,max=100"`
}

// BookmarkService is a validated pass-through to Karakeep.
// Transport failures surface unchanged, there is no retry or cache.
type BookmarkService struct {
	source BookmarkSource
}

func NewBookmarkService(source BookmarkSource) *BookmarkService {
	return &BookmarkService{source: source}
}

func (s *BookmarkService) SearchBookmarks(ctx context.Context, in SearchBookmarksInput) ([]karakeep.Bookmark, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	resp, err := s.source.SearchBookmarks(ctx, in.Q, intOr(in.Limit, defaultSearchLimit))
	if err != nil {
		return nil, err
	}
	return nonNil(resp.Bookmarks), nil
}

// GetBookmarks keeps the cursor so callers can page.
func (s *BookmarkService) GetBookmarks(ctx context.Context, in GetBookmarksInput) (*karakeep.BookmarksResponse, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	f := karakeep.BookmarkFilters{
		Archived:   in.Archived,
		Favourited: in.Favourited,
		Lists:      in.Lists,
	}
	resp, err := s.source.GetBookmarks(ctx, f, in.Cursor, intOr(in.Limit, 0))
	if err != nil {
		return nil, err
	}
	resp.Bookmarks = nonNil(resp.Bookmarks)
	return resp, nil
}

func (s *BookmarkService) GetBookmarksByList(ctx context.Context, in ListBookmarksInput) ([]karakeep.Bookmark, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	resp, err := s.source.GetListBookmarks(ctx, in.ListID, karakeep.ListFilters{}, "", intOr(in.Limit, defaultListLimit))
	if err != nil {
		return nil, err
	}
	return nonNil(resp.Bookmarks), nil
}

func (s *BookmarkService) GetLists(ctx context.Context) ([]karakeep.List, error) {
	resp, err := s.source.GetLists(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(resp.Lists), nil
}

func (s *BookmarkService) GetTags(ctx context.Context) ([]karakeep.Tag, error) {
	resp, err := s.source.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(resp.Tags), nil
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
