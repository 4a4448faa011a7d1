package homepage

import (
	"errors"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/lc/internal/domain"
)

// ErrNoBookmarks is returned when a bookmarks file holds no usable entry.
var ErrNoBookmarks = errors.New("no valid bookmarks found in config")

// Mapper converts Homepage bookmarks to shortcuts.
type Mapper struct{}

// NewMapper creates a new bookmark mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapShortcuts flattens every group into shortcuts, in file order.
// The shortcut name is the bookmark abbr, or the bookmark name when abbr is empty.
// Entries without href are skipped, and the first bookmark wins on a name clash.
func (m *Mapper) MapShortcuts(config BookmarksConfig) ([]domain.Shortcut, error) {
	shortcuts := make([]domain.Shortcut, 0)
	seen := make(map[string]struct{})

	for _, group := range config {
		for _, groupName := range sortedKeys(group) {
			for _, bookmarkMap := range group[groupName] {
				for _, bookmarkName := range sortedKeys(bookmarkMap) {
					entries := bookmarkMap[bookmarkName]
					if len(entries) == 0 {
						continue
					}
					entry := entries[0]

					href := strings.TrimSpace(entry.Href)
					if href == "" || href == `""` {
						continue
					}

					name := shortcutName(entry.Abbr, bookmarkName)
					if name == "" {
						continue
					}
					if _, dup := seen[name]; dup {
						continue
					}
					seen[name] = struct{}{}

					shortcuts = append(shortcuts, domain.Shortcut{Name: name, Path: href})
				}
			}
		}
	}

	if len(shortcuts) == 0 {
		return nil, ErrNoBookmarks
	}

	return shortcuts, nil
}

// shortcutName picks abbr over the bookmark name.
// ':' is dropped since it delimits name from path in the shortcut file.
func shortcutName(abbr, bookmarkName string) string {
	name := strings.TrimSpace(abbr)
	if name == "" {
		name = strings.TrimSpace(bookmarkName)
	}
	return strings.TrimSpace(strings.ReplaceAll(name, ":", ""))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
