// Package session holds the cookie gate rules. Tokens are opaque and not
// stored anywhere: presence of the cookie is the whole check.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "session"
	MaxAge     = 365 * 24 * time.Hour

	LoginPath     = "/"
	DashboardPath = "/dashboard"
	LogoutPath    = "/api/auth/logout"
)

// Decision is the outcome of the gate for one request.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDashboard:
		return "redirect_dashboard"
	}
	return "unknown"
}

// public paths are matched exactly.
var public = map[string]struct{}{
	LoginPath:  {},
	LogoutPath: {},
}

// Decide applies the gate rules to a request path.
func Decide(path string, hasToken bool) Decision {
	_, isPublic := public[path]
	switch {
	case !hasToken && !isPublic:
		return RedirectLogin
	case hasToken && path == LoginPath:
		return RedirectDashboard
	default:
		return Allow
	}
}

// HasToken reports whether r carries a non-empty session cookie.
func HasToken(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	return err == nil && c.Value != ""
}

// NewToken mints a random opaque token.
func NewToken() string {
	return uuid.NewString()
}

// Cookie builds the session cookie for token.
func Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(MaxAge / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie on the client.
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
