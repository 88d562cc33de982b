// Package config loads optional defaults from a TOML file. The file
// is entirely optional: a missing file yields a zero config, and
// every field is a pointer so the caller can tell "unset" from an
// explicit value when merging with command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File holds the user-configurable defaults. Flags given on the
// command line take precedence over every field here.
type File struct {
	// NoLogo disables the logo column.
	NoLogo *bool `toml:"no_logo"`

	// Logo overrides the logo vendor (same values as --logo).
	Logo *string `toml:"logo"`

	// Gap is the number of spaces between logo and info columns.
	Gap *int `toml:"gap"`

	// Width is the wrap budget for the flags block.
	Width *int `toml:"width"`
}

// Path returns the expected config file location,
// $XDG_CONFIG_HOME/cpufetch/config.toml or the platform equivalent.
// Returns "" when no user config directory can be determined.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cpufetch", "config.toml")
}

// Load reads the config file at Path. A missing file is not an
// error; a malformed one is, so the caller can warn and continue
// with defaults.
func Load() (*File, error) {
	path := Path()
	if path == "" {
		return &File{}, nil
	}
	return LoadPath(path)
}

// LoadPath reads and decodes one specific config file.
func LoadPath(path string) (*File, error) {
	var cfg File
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
