package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.GetBookmarks(d))
		r.Get("/search", handlers.SearchBookmarks(d))
		r.Get("/recent", handlers.GetRecentBookmarks(d))
		r.Get("/top", handlers.GetTopClickedBookmarks(d))
		r.Post("/clicks", handlers.TrackClick(d))
	})

	r.Get("/api/lists", handlers.GetLists(d))
	r.Get("/api/lists/{listId}/bookmarks", handlers.GetBookmarksByList(d))
	r.Get("/api/tags", handlers.GetTags(d))
}
