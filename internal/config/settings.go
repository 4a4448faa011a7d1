package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// PathPlaceholder is replaced by the target path in opener arguments.
const PathPlaceholder = "{path}"

// CommandTemplate describes how to start an opener program.
type CommandTemplate struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Settings are optional overrides read from settings.toml.
// A nil section keeps the platform default.
type Settings struct {
	Reveal *CommandTemplate `toml:"reveal"`
	Open   *CommandTemplate `toml:"open"`
}

// LoadSettings decodes settings.toml. A missing file yields empty Settings.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to stat settings file: %w", err)
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown settings key %q", undecoded[0].String())
	}

	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Reveal != nil && s.Reveal.Command == "" {
		return fmt.Errorf("settings: [reveal] requires a command")
	}
	if s.Open != nil && s.Open.Command == "" {
		return fmt.Errorf("settings: [open] requires a command")
	}
	return nil
}
