package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

type shortcutView struct {
	Name string              `json:"name"`
	Type domain.ShortcutType `json:"type"`
	Path string              `json:"path"`
}

// loadShortcuts reads the file, logging malformed lines instead of failing.
func loadShortcuts(d deps.Deps) (domain.Configuration, error) {
	cfg, err := d.Shortcuts.Load()
	if err == nil {
		return cfg, nil
	}

	bad := domain.MalformedLines(err)
	if len(bad) == 0 {
		return nil, err
	}
	for _, b := range bad {
		d.Logger.Warn("malformed shortcut line skipped",
			logger.String("file", d.Shortcuts.Path()),
			logger.Int("line", b.Line))
	}
	return cfg, nil
}

// Shortcuts lists every shortcut, sorted by name.
func Shortcuts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := loadShortcuts(d)
		if err != nil {
			d.Logger.Error("failed to load shortcuts", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "shortcut file unreadable"})
			return
		}

		sorted := cfg.Sorted()
		views := make([]shortcutView, 0, len(sorted))
		for _, s := range sorted {
			views = append(views, shortcutView{Name: s.Name, Type: s.Type(), Path: s.Path})
		}

		writeJSON(w, http.StatusOK, views)
	}
}
