package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/keepdash/internal/apperr"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
)

// Signals returns the change counters. The dashboard polls it and reloads
// a panel when its counter moved.
func Signals(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := d.Signals.Snapshot(r.Context())
		if err != nil {
			writeError(w, d.Logger, apperr.Wrap(apperr.CodeInternal, "failed to read signals", err))
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}
