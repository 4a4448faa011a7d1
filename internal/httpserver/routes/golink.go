package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lc/internal/httpserver/mw"
)

func init() { Register(registerGoLink) }

func registerGoLink(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateBurst,
			RefillPerIPPerMin: d.RatePerMin,
			MaxEntries:        4096,
			TrustProxy:        d.TrustProxy,
		}),
	).Get("/go/{name}", handlers.GoLink(d))
}
