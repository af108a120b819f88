package handlers

import (
	"bytes"
	"crypto/subtle"
	"embed"
	"html/template"
	"net/http"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	msgPasswordRequired = "Password is required"
	msgInvalidPassword  = "Invalid password"

	// dashboardPoll is how often the dashboard checks /api/signals.
	dashboardPoll = 3000
)

type loginPage struct {
	Error string
}

type dashboardPage struct {
	PollMillis int
}

// render executes the named template into a buffer first so a template
// error never leaves a half written page.
func render(w http.ResponseWriter, log logger.Logger, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("failed to render page", logger.String("page", name), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func LoginPage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, d.Logger, http.StatusOK, "login.html", loginPage{})
	}
}

// Login checks the shared password and sets the session cookie.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		password := r.PostFormValue("password")

		if password == "" {
			render(w, d.Logger, http.StatusBadRequest, "login.html", loginPage{Error: msgPasswordRequired})
			return
		}
		if subtle.ConstantTimeCompare([]byte(password), []byte(d.Password)) != 1 {
			d.Logger.Warn("login rejected", logger.String("request_path", r.URL.Path))
			render(w, d.Logger, http.StatusUnauthorized, "login.html", loginPage{Error: msgInvalidPassword})
			return
		}

		http.SetCookie(w, session.Cookie(session.NewToken()))
		d.Logger.Info("login succeeded")
		http.Redirect(w, r, session.DashboardPath, http.StatusSeeOther)
	}
}

// Logout drops the cookie on the client. Tokens are not tracked server side.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, session.ClearCookie())
		http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
	}
}

func Dashboard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, d.Logger, http.StatusOK, "dashboard.html", dashboardPage{PollMillis: dashboardPoll})
	}
}
