package domain

import (
	"fmt"
	"regexp"
)

// Search returns the shortcuts whose name or path matches pattern, ignoring case,
// ordered by name.
func Search(cfg Configuration, pattern string) ([]Shortcut, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}

	matches := make([]Shortcut, 0)
	for _, s := range cfg.Sorted() {
		if re.MatchString(s.Name) || re.MatchString(s.Path) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}
