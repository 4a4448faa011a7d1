package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/httpserver/metrics"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

// GoLink redirects /go/{name} to the URL of a URL shortcut.
// Other shortcut types are refused: the server never spawns a process.
func GoLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := chi.URLParam(r, "name")

		cfg, err := loadShortcuts(d)
		if err != nil {
			d.Logger.Error("failed to load shortcuts", logger.Error(err))
			d.Metrics.Redirect(metrics.ResultError)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "shortcut file unreadable"})
			return
		}

		shortcut, ok := cfg.Lookup(name)
		if !ok {
			usage, uerr := d.Usage.GetUsageCounts(ctx)
			if uerr != nil {
				d.Logger.Debug("usage counts unavailable for suggestions", logger.Error(uerr))
			}
			d.Metrics.Redirect(metrics.ResultNotFound)
			writeJSON(w, http.StatusNotFound, errorResponse{
				Error:       "shortcut not defined",
				Name:        name,
				Suggestions: domain.Suggest(name, cfg, usage),
			})
			return
		}

		if !shortcut.IsURL() {
			d.Logger.Info("refusing to redirect to a non-URL shortcut",
				logger.String("name", name),
				logger.String("type", shortcut.Type().String()))
			d.Metrics.Redirect(metrics.ResultNotURL)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: "shortcut is a " + shortcut.Type().String() + ", not a URL",
				Name:  name,
			})
			return
		}

		// Best effort: a down usage store must not break redirects
		if err := d.Usage.IncrementUsage(ctx, name); err != nil {
			d.Logger.Warn("failed to record usage",
				logger.String("name", name),
				logger.Error(err))
		}

		d.Logger.Info("redirecting",
			logger.String("name", name),
			logger.String("url", shortcut.Path))
		d.Metrics.Redirect(metrics.ResultRedirect)
		http.Redirect(w, r, shortcut.Path, http.StatusFound)
	}
}
