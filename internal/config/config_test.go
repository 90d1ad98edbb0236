package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"evosim/internal/sims/evolution"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("embedded yaml = %+v, want %+v", cfg, Default())
	}
	engine, err := cfg.EngineConfig(nil)
	if err != nil {
		t.Fatalf("EngineConfig: %v", err)
	}
	if engine != evolution.DefaultConfig() {
		t.Fatalf("engine config = %+v, want evolution defaults", engine)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	data := []byte("world:\n  width: 20\n  seed: 42\npolicy:\n  death_refund: true\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Fatalf("source = %q, want %q", source, path)
	}
	if cfg.World.Width != 20 || cfg.World.Height != 48 || cfg.World.Seed != 42 {
		t.Fatalf("world section = %+v", cfg.World)
	}
	if !cfg.Policy.DeathRefund || cfg.Log.Level != "debug" {
		t.Fatalf("policy/log not applied: %+v %+v", cfg.Policy, cfg.Log)
	}
	if cfg.Generation != Default().Generation {
		t.Fatalf("missing section should keep defaults, got %+v", cfg.Generation)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if _, source, err := Load(""); err != nil || source != SourceEmbedded {
		t.Fatalf("no files: source %q err %v, want embedded", source, err)
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("world:\n  width: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := Load("")
	if err != nil || source != LocalPath || cfg.World.Width != 30 {
		t.Fatalf("local file: source %q width %d err %v", source, cfg.World.Width, err)
	}

	userPath := filepath.Join(home, ".evosim", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("world:\n  width: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err = Load("")
	if err != nil || source != userPath || cfg.World.Width != 40 {
		t.Fatalf("user file: source %q width %d err %v", source, cfg.World.Width, err)
	}

	// A broken user file falls through to the local one.
	if err := os.WriteFile(userPath, []byte("world: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, source, _ = Load(""); source != LocalPath {
		t.Fatalf("broken user file: source %q, want %q", source, LocalPath)
	}
}

func TestEngineConfigValidates(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 5
	if _, err := cfg.EngineConfig(nil); !errors.Is(err, evolution.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	cfg = Default()
	cfg.Generation.CellChance = 0
	if _, err := cfg.EngineConfig(nil); !errors.Is(err, evolution.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	// Overrides are applied before validation.
	engine, err := cfg.EngineConfig(map[string]string{"cell_chance": "3", "w": "12"})
	if err != nil {
		t.Fatalf("overrides should repair the config: %v", err)
	}
	if engine.Params.CellChance != 3 || engine.Width != 12 {
		t.Fatalf("overrides not applied: %+v", engine)
	}
}

func TestTickInterval(t *testing.T) {
	if d := (ViewerConfig{TickMS: 33}).TickInterval(); d != 33*time.Millisecond {
		t.Fatalf("tick = %v", d)
	}
	if d := (ViewerConfig{}).TickInterval(); d != time.Millisecond {
		t.Fatalf("zero tick = %v", d)
	}
}
