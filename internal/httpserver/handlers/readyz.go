package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

type readyzResponse struct {
	Ready     bool   `json:"ready"`
	Shortcuts int    `json:"shortcuts"`
	Malformed int    `json:"malformed_lines,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Readyz reports whether the shortcut file can be read.
// Malformed lines do not make the server unready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := d.Shortcuts.Load()
		bad := domain.MalformedLines(err)

		if err != nil && len(bad) == 0 {
			d.Logger.Warn("shortcut file unreadable",
				logger.String("file", d.Shortcuts.Path()),
				logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready: false,
				Error: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:     true,
			Shortcuts: len(cfg),
			Malformed: len(bad),
		})
	}
}
