package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PocketPi/radix/internal/version"
)

func TestVersionCommand(t *testing.T) {
	orig := version.GitCommit
	version.GitCommit = "abc123"
	defer func() { version.GitCommit = orig }()

	res := execute(t, "version", "--hash")
	if res.err != nil {
		t.Fatalf("error: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "radix ") || !strings.Contains(res.stdout, "commit: abc123\n") {
		t.Fatalf("stdout = %q", res.stdout)
	}
	if strings.Contains(res.stdout, "\x1b[") {
		t.Fatalf("buffer output should not be coloured: %q", res.stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	res := execute(t, "version", "--full", "--format", "json")
	if res.err != nil {
		t.Fatalf("error: %v", res.err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatalf("invalid JSON %q: %v", res.stdout, err)
	}
	if payload.Tool != "radix" || payload.Version == "" || payload.BuildDate == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestVersionBadFormat(t *testing.T) {
	res := execute(t, "version", "--format", "yaml")
	if res.err == nil || exitCode(res.err) != exitUsage {
		t.Fatalf("expected usage error, got %v", res.err)
	}
}

func TestColorMode(t *testing.T) {
	for in, want := range map[string]colorMode{"": colorModeAuto, "AUTO": colorModeAuto, "on": colorModeOn, " off ": colorModeOff} {
		got, err := readColorMode(in)
		if err != nil || got != want {
			t.Fatalf("readColorMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readColorMode("always"); err == nil {
		t.Fatalf("readColorMode(always) expected error")
	}
	var buf strings.Builder
	if shouldColor(colorModeAuto, &buf) {
		t.Fatalf("auto mode must not colour a non-file writer")
	}
}

func TestVersionHonoursConfigColor(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "radix.toml"), []byte("[output]\ncolor = \"on\"\n"), 0o600); err != nil {
		t.Fatalf("write radix.toml: %v", err)
	}

	res := executeHere(t, "version")
	if res.err != nil {
		t.Fatalf("error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "\x1b[") {
		t.Fatalf("config color not applied to version: %q", res.stdout)
	}

	res = executeHere(t, "version", "--color", "off")
	if res.err != nil || strings.Contains(res.stdout, "\x1b[") {
		t.Fatalf("--color off should override config: err=%v stdout=%q", res.err, res.stdout)
	}
}
