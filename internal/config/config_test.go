package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
default = "xdg-open"
columns = ["name", "size"]

[apps]
nvim = ["txt", "md", "go"]
feh = ["png", "jpg"]
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Default != "xdg-open" {
		t.Errorf("expected default xdg-open, got %q", cfg.Default)
	}
	if len(cfg.Apps["nvim"]) != 3 {
		t.Errorf("expected 3 nvim extensions, got %v", cfg.Apps["nvim"])
	}
	if len(cfg.Columns) != 2 {
		t.Errorf("expected 2 columns, got %v", cfg.Columns)
	}
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Default != "" || len(cfg.Apps) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "default = [broken\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestAppFor(t *testing.T) {
	cfg := &Config{
		Default: "xdg-open",
		Apps: map[string][]string{
			"nvim": {"txt", "MD"},
		},
	}

	if app, ok := cfg.AppFor("txt"); !ok || app != "nvim" {
		t.Errorf("expected nvim for txt, got %q (%v)", app, ok)
	}
	// Extension matching is case-insensitive on both sides.
	if app, ok := cfg.AppFor("md"); !ok || app != "nvim" {
		t.Errorf("expected nvim for md, got %q (%v)", app, ok)
	}
	if app, ok := cfg.AppFor("png"); !ok || app != "xdg-open" {
		t.Errorf("expected default for png, got %q (%v)", app, ok)
	}

	empty := &Config{}
	if _, ok := empty.AppFor("txt"); ok {
		t.Error("expected no app from empty config")
	}
}
