package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lc/internal/httpserver/mw"
)

func init() { Register(registerShortcuts) }

func registerShortcuts(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/shortcuts", handlers.Shortcuts(d))
}
