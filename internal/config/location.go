package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// ShortcutFileName is the shortcut file inside the configuration directory.
	ShortcutFileName = "Configurations.yaml"
	// SettingsFileName holds optional opener overrides.
	SettingsFileName = "settings.toml"
)

// ShortcutFileHeader is written to a freshly created shortcut file.
const ShortcutFileHeader = `# Format: <Name>: <Path>
# Notes:
#   Use ! to start verbatim
#   Use !? to monitor process outputs

# Configurations
`

// Location tells the rest of the program where its files live.
// It is resolved once at startup; nothing is created until Ensure is called.
type Location struct {
	Dir string
}

// NewLocation builds a Location rooted at dir.
func NewLocation(dir string) Location {
	return Location{Dir: dir}
}

// ShortcutFile is the path of Configurations.yaml.
func (l Location) ShortcutFile() string {
	return filepath.Join(l.Dir, ShortcutFileName)
}

// SettingsFile is the path of settings.toml.
func (l Location) SettingsFile() string {
	return filepath.Join(l.Dir, SettingsFileName)
}

// Ensure creates the directory and a shortcut file with the boilerplate header
// when they are missing. Existing files are never touched.
func (l Location) Ensure() error {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := l.ShortcutFile()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create shortcut file: %w", err)
	}

	if _, err := f.WriteString(ShortcutFileHeader); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write shortcut file header: %w", err)
	}
	return f.Close()
}
