package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/handlers"
)

func init() { Register(registerSignals) }

func registerSignals(r chi.Router, d deps.Deps) {
	r.Get("/api/signals", handlers.Signals(d))
}
