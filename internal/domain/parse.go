package domain

import (
	"errors"
	"strings"
)

// CommentPrefix starts a comment line in the shortcut file.
const CommentPrefix = "#"

// ParseLine splits a line on its first ':' into a Shortcut.
// The path is trimmed, then one leading and one trailing '"' are removed.
func ParseLine(line string) (Shortcut, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return Shortcut{}, &MalformedLineError{Text: line}
	}

	name := strings.TrimSpace(line[:idx])
	path := strings.TrimSpace(line[idx+1:])
	path = strings.TrimPrefix(path, `"`)
	path = strings.TrimSuffix(path, `"`)

	return Shortcut{Name: name, Path: path}, nil
}

// IsSkippable reports whether a line is blank or a comment.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}

// ParseConfiguration builds a Configuration from lines, later names overwriting earlier ones.
// Malformed lines are skipped; the returned error joins one MalformedLineError per bad line
// and the Configuration still holds every valid entry.
func ParseConfiguration(lines []string) (Configuration, error) {
	cfg := make(Configuration, len(lines))
	var errs []error

	for i, line := range lines {
		if IsSkippable(line) {
			continue
		}

		shortcut, err := ParseLine(line)
		if err != nil {
			var mle *MalformedLineError
			if errors.As(err, &mle) {
				mle.Line = i + 1
			}
			errs = append(errs, err)
			continue
		}

		cfg[shortcut.Name] = shortcut
	}

	return cfg, errors.Join(errs...)
}
