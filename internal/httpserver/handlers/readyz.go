package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

const readyTimeout = 2 * time.Second

type checkStatus struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready  bool                   `json:"ready"`
	Checks map[string]checkStatus `json:"checks"`
}

// Readyz pings every backing service concurrently and answers 503 when
// any of them fails.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		resp := readyzResponse{Ready: true, Checks: make(map[string]checkStatus, len(d.ReadyChecks))}
		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for _, c := range d.ReadyChecks {
			wg.Add(1)
			go func(c deps.Check) {
				defer wg.Done()
				st := checkStatus{OK: true}
				if err := c.Ping(ctx); err != nil {
					st = checkStatus{OK: false, Error: err.Error()}
					d.Logger.Warn("readiness check failed", logger.String("check", c.Name), logger.Error(err))
				}
				mu.Lock()
				resp.Checks[c.Name] = st
				if !st.OK {
					resp.Ready = false
				}
				mu.Unlock()
			}(c)
		}
		wg.Wait()

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
