package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	throttle := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.LoginBurst,
		RefillPerIPPerMin: d.LoginPerMinute,
		MaxEntries:        10_000,
		TrustProxy:        d.TrustProxy,
	})

	r.Get("/", handlers.LoginPage(d))
	r.With(throttle).Post("/", handlers.Login(d))
	r.Get("/dashboard", handlers.Dashboard(d))

	logout := handlers.Logout(d)
	r.Get("/api/auth/logout", logout)
	r.Post("/api/auth/logout", logout)
}
