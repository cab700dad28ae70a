package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hashvatar/pkg/hashvatar"
)

// Config holds render defaults loaded from an optional TOML file, so
// recurring choices (a tone palette, a preferred mode) don't have to be
// repeated on every invocation. Flags always win over config values.
type Config struct {
	Mode     string   `toml:"mode"`
	Size     int      `toml:"size"`
	Scale    float64  `toml:"scale"`
	DotScale int      `toml:"dot_scale"`
	Tones    []string `toml:"tones"`
}

// defaultConfigPath returns the per-user config location,
// e.g. ~/.config/hashvatar/config.toml on Linux.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hashvatar", "config.toml")
}

// loadConfig reads a TOML config from path, or from the default
// location when path is empty. A missing file is not an error; a
// malformed one is.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills unset option fields from the config.
func (c Config) apply(opts *hashvatar.Options) {
	if opts.Mode == "" && hashvatar.Mode(c.Mode).Valid() {
		opts.Mode = hashvatar.Mode(c.Mode)
	}
	if opts.Size == 0 && c.Size > 0 {
		opts.Size = c.Size
	}
	if opts.PixelRatio == 0 && c.Scale > 0 {
		opts.PixelRatio = c.Scale
	}
	if opts.DotScale == 0 && c.DotScale > 0 {
		opts.DotScale = c.DotScale
	}
	if len(opts.Tones) == 0 {
		opts.Tones = c.Tones
	}
}
