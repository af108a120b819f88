package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var (
	registry []entry // behind the session gate
	probes   []entry // outside the gate
)

// Register a gated registrar with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// RegisterProbe adds a registrar mounted outside the session gate.
func RegisterProbe(reg Registrar, mws ...Middleware) {
	probes = append(probes, entry{reg: reg, mws: mws})
}

// RegisterAll mounts the gated routes. Called once from NewRouter.
func RegisterAll(r chi.Router, d deps.Deps) {
	mount(r, d, registry)
}

// RegisterProbes mounts the probe routes. Called once from NewRouter.
func RegisterProbes(r chi.Router, d deps.Deps) {
	mount(r, d, probes)
}

func mount(r chi.Router, d deps.Deps, entries []entry) {
	for _, e := range entries {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		e.reg(r.With(e.mws...), d)
	}
}
