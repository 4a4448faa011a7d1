package domain

import (
	"sort"
	"strings"
)

// ShortcutType is the launch strategy derived from a shortcut path.
type ShortcutType int

const (
	// Executable is a path ending in .exe, spawned directly.
	Executable ShortcutType = iota
	// DiskLocation is any other file or folder.
	DiskLocation
	// URL is a path starting with http.
	URL
	// Verbatim is a literal command line prefixed with !.
	Verbatim
)

const (
	// VerbatimPrefix marks a literal command line.
	VerbatimPrefix = "!"
	// MonitorPrefix follows VerbatimPrefix to stream the child's output.
	MonitorPrefix = "?"
	// URLPrefix marks a URL shortcut.
	URLPrefix = "http"
	// ExecutableSuffix marks an executable shortcut.
	ExecutableSuffix = ".exe"
)

func (t ShortcutType) String() string {
	switch t {
	case Executable:
		return "Executable"
	case DiskLocation:
		return "DiskLocation"
	case URL:
		return "URL"
	case Verbatim:
		return "Verbatim"
	default:
		return "Unknown"
	}
}

// MarshalText lets JSON and YAML encoders print the type by name.
func (t ShortcutType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Classify maps a path to its ShortcutType. First match wins:
// "!" prefix, "http" prefix, ".exe" suffix, otherwise a disk location.
func Classify(path string) ShortcutType {
	switch {
	case strings.HasPrefix(path, VerbatimPrefix):
		return Verbatim
	case strings.HasPrefix(path, URLPrefix):
		return URL
	case strings.HasSuffix(path, ExecutableSuffix):
		return Executable
	default:
		return DiskLocation
	}
}

// Shortcut is a named launch target as written in the shortcut file.
type Shortcut struct {
	// Name is the lookup key, trimmed.
	Name string `json:"name" yaml:"name"`

	// Path is the raw target, trimmed and unquoted.
	Path string `json:"path" yaml:"path"`
}

// Type is recomputed from Path on every call.
func (s Shortcut) Type() ShortcutType {
	return Classify(s.Path)
}

// IsURL reports whether the shortcut opens in a browser.
func (s Shortcut) IsURL() bool {
	return s.Type() == URL
}

// IsExecutable reports whether the shortcut is spawned directly.
func (s Shortcut) IsExecutable() bool {
	return s.Type() == Executable
}

// Line renders the shortcut in the shortcut file format.
func (s Shortcut) Line() string {
	return s.Name + ": " + s.Path
}

// Configuration maps shortcut names to shortcuts.
type Configuration map[string]Shortcut

// Lookup returns the shortcut registered under name.
func (c Configuration) Lookup(name string) (Shortcut, bool) {
	s, ok := c[name]
	return s, ok
}

// Sorted returns all shortcuts ordered by name.
func (c Configuration) Sorted() []Shortcut {
	shortcuts := make([]Shortcut, 0, len(c))
	for _, s := range c {
		shortcuts = append(shortcuts, s)
	}
	sort.Slice(shortcuts, func(i, j int) bool {
		return shortcuts[i].Name < shortcuts[j].Name
	})
	return shortcuts
}

// Names returns all shortcut names ordered alphabetically.
func (c Configuration) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
