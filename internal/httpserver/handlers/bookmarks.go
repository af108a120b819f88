package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/service"
)

func SearchBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		bookmarks, err := d.Bookmarks.SearchBookmarks(r.Context(), service.SearchBookmarksInput{
			Q:     r.URL.Query().Get("q"),
			Limit: limit,
		})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarks)
	}
}

func GetBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := service.GetBookmarksInput{
			Lists:  queryList(r, "lists"),
			Cursor: r.URL.Query().Get("cursor"),
		}
		var err error
		if in.Archived, err = queryBool(r, "archived"); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if in.Favourited, err = queryBool(r, "favourited"); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if in.Limit, err = queryInt(r, "limit"); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		resp, err := d.Bookmarks.GetBookmarks(r.Context(), in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func GetBookmarksByList(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		bookmarks, err := d.Bookmarks.GetBookmarksByList(r.Context(), service.ListBookmarksInput{
			ListID: chi.URLParam(r, "listId"),
			Limit:  limit,
		})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarks)
	}
}

func GetLists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lists, err := d.Bookmarks.GetLists(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, lists)
	}
}

func GetTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := d.Bookmarks.GetTags(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, tags)
	}
}

func GetRecentBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent, err := d.Clicks.GetRecentBookmarks(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, recent)
	}
}

func GetTopClickedBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := d.Clicks.GetTopClickedBookmarks(r.Context(), service.TopClickedInput{
			Period: r.URL.Query().Get("period"),
		})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, top)
	}
}

func TrackClick(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.TrackClickInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		click, err := d.Clicks.TrackClick(r.Context(), in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, click)
	}
}
