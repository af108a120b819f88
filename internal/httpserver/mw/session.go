package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/session"
)

// Session gates every request on the presence of the session cookie.
// Anonymous requests to private paths go to the login page, signed-in
// requests to the login page go to the dashboard.
func Session(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch d := session.Decide(r.URL.Path, session.HasToken(r)); d {
			case session.RedirectLogin:
				log.Debugf("Session: no token for %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
			case session.RedirectDashboard:
				http.Redirect(w, r, session.DashboardPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
