package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"evosim/internal/config"
	"evosim/internal/sims/evolution"
)

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides([]string{"seed=7", " cell_chance = 4", "seed=9", "death_refund="})
	if err != nil {
		t.Fatalf("parseOverrides: %v", err)
	}
	want := map[string]string{"seed": "9", "cell_chance": "4", "death_refund": ""}
	if len(got) != len(want) {
		t.Fatalf("overrides = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("overrides[%q] = %q, want %q", k, got[k], v)
		}
	}
	for _, bad := range []string{"seed", "=4"} {
		if _, err := parseOverrides([]string{bad}); err == nil {
			t.Fatalf("parseOverrides(%q) should fail", bad)
		}
	}
	if got, err := parseOverrides(nil); got != nil || err != nil {
		t.Fatalf("empty overrides = %v, %v", got, err)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(io.Discard, "warn")
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v", logger.GetLevel())
	}
	if _, err := newLogger(io.Discard, "loud"); err == nil {
		t.Fatal("unknown level should fail")
	}
}

func TestRunHeadlessReportsTallies(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 10, 10, 42
	var out bytes.Buffer
	logger, _ := newLogger(io.Discard, "debug")
	summary, err := runHeadless(context.Background(), &out, logger, cfg, headlessOptions{Generations: 30, ReportEvery: 10})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"gen 10: live 12 dying 0 born 5",
		"gen 20: live 14 dying 0 born 0",
		"gen 30: live 15 dying 1 born 2",
	}
	if len(lines) != 4 {
		t.Fatalf("output:\n%s", out.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[3], "seed 42 generation 30: ") {
		t.Fatalf("summary = %q", lines[3])
	}
	if summary.Generation != 30 || summary.Census.TotalEnergy() != 2155 || summary.Interrupted {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestRunHeadlessStopsWhenCancelled(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 10, 10, 42
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, _ := newLogger(io.Discard, "")
	summary, err := runHeadless(ctx, io.Discard, logger, cfg, headlessOptions{Generations: 30})
	if err != nil {
		t.Fatalf("cancellation is not an error: %v", err)
	}
	if !summary.Interrupted || summary.Generation != 0 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestRunHeadlessStopsOnExtinction(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.Seed = 1
	logger, _ := newLogger(io.Discard, "")
	summary, err := runHeadless(context.Background(), io.Discard, logger, cfg, headlessOptions{Generations: 1000, StopOnExtinction: true})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Generation != 296 || summary.Census.Cells != 0 {
		t.Fatalf("summary = %+v, want extinction at 296", summary)
	}
}

func TestParamsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evosim.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"params", "--config", path, "--width", "10", "--height", "10", "--seed", "42", "--set", "death_refund=true"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("params: %v", err)
	}
	text := out.String()
	for _, want := range []string{"World size: 10x10", "Seed: 42", "Live cells: 11", "Death refund: true"} {
		if !strings.Contains(text, want) {
			t.Fatalf("params output missing %q:\n%s", want, text)
		}
	}
}

func TestEffectiveFile(t *testing.T) {
	engine := evolution.DefaultConfig()
	engine.Seed = 5
	engine.Params.DeathRefund = true
	f := effectiveFile(config.Default(), engine)
	if f.World.Seed != 5 || !f.Policy.DeathRefund || f.Viewer != config.Default().Viewer {
		t.Fatalf("effective file = %+v", f)
	}
}
