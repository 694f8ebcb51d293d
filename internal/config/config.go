// Package config loads optional radix.toml defaults.
//
// The file is looked up by walking from the working directory towards the
// filesystem root, the same way tools find their project manifest. A missing
// file is not an error; the zero Config means "no defaults".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/PocketPi/radix/internal/width"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "radix.toml"

// ErrConfig reports an unreadable or invalid config file.
var ErrConfig = errors.New("invalid config")

// Config is the decoded radix.toml.
type Config struct {
	Path    string        `toml:"-"`
	Output  OutputConfig  `toml:"output"`
	Notices NoticesConfig `toml:"notices"`
}

// OutputConfig holds output defaults; empty strings and zero width mean
// "use the built-in default".
type OutputConfig struct {
	Width  int    `toml:"width"`
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// NoticesConfig controls notice printing.
type NoticesConfig struct {
	Quiet bool `toml:"quiet"`
}

// RequestedWidth returns the configured default width, Unset if none.
func (c Config) RequestedWidth() width.Width {
	if c.Output.Width == 0 {
		return width.Unset
	}
	// Load already validated it.
	w, _ := width.FromBits(c.Output.Width)
	return w
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest radix.toml. The zero Config is
// returned when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if !ok {
		return Config{}, nil
	}
	return Load(path)
}

// Load decodes and validates the file at path.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: failed to parse TOML: %w", ErrConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "width") {
		if _, err := width.FromBits(cfg.Output.Width); err != nil {
			return Config{}, fmt.Errorf("%w: %s: [output].width: %w", ErrConfig, path, err)
		}
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch cfg.Output.Format {
	case "", "pretty", "json":
	default:
		return Config{}, fmt.Errorf("%w: %s: [output].format must be pretty or json, got %q", ErrConfig, path, cfg.Output.Format)
	}
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%w: %s: [output].color must be auto, on or off, got %q", ErrConfig, path, cfg.Output.Color)
	}
	cfg.Path = path
	return cfg, nil
}
