package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PocketPi/radix/internal/width"
)

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", FileName, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `# defaults
[output]
width = 32
format = "JSON"
color = "off"

[notices]
quiet = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestedWidth() != width.W32 {
		t.Fatalf("RequestedWidth() = %v, want 32", cfg.RequestedWidth())
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" || !cfg.Notices.Quiet {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad width":   "[output]\nwidth = 12\n",
		"zero width":  "[output]\nwidth = 0\n",
		"bad format":  "[output]\nformat = \"xml\"\n",
		"bad color":   "[output]\ncolor = \"sometimes\"\n",
		"unknown key": "[output]\nradix = 16\n",
		"bad toml":    "[output\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), data)
			if _, err := Load(path); !errors.Is(err, ErrConfig) {
				t.Fatalf("Load error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nwidth = 16\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.RequestedWidth() != width.W16 {
		t.Fatalf("RequestedWidth() = %v, want 16", cfg.RequestedWidth())
	}
}

func TestDiscoverMissing(t *testing.T) {
	dir := t.TempDir()
	path, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		// a radix.toml above the temp dir would make this test meaningless
		t.Skipf("found unrelated %s", path)
	}
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.RequestedWidth() != width.Unset || cfg.Path != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}
