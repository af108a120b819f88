package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/handlers"
)

func init() { Register(registerTasks) }

func registerTasks(r chi.Router, d deps.Deps) {
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", handlers.GetTasks(d))
		r.Post("/", handlers.CreateTask(d))
		r.Get("/current", handlers.GetCurrentTask(d))

		r.Route("/{taskId}", func(r chi.Router) {
			r.Patch("/", handlers.UpdateTask(d))
			r.Delete("/", handlers.DeleteTask(d))
			r.Post("/start", handlers.StartTask(d))
			r.Post("/pause", handlers.PauseTask(d))
			r.Post("/complete", handlers.CompleteTask(d))
		})
	})
}
