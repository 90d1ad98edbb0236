package evolution

import (
	"slices"
	"testing"
	"time"

	"evosim/internal/core"
)

func newTestSession(t *testing.T, autoStart bool) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 10, 10, 42
	cfg.Params.GenerationBudget = 60
	s, err := NewSession(cfg, 1, autoStart)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionGeneratesThenSteps(t *testing.T) {
	s := newTestSession(t, false)
	now := time.Unix(100, 0)
	if s.Step(now) {
		t.Fatal("stepping while generating must do nothing")
	}
	s.ToggleAuto()
	if s.Auto() {
		t.Fatal("auto mode cannot be switched on while generating")
	}
	if s.Tick(now) || s.Phase() != PhaseGenerating {
		t.Fatal("first slice of 60 tiles should leave the world generating")
	}
	s.Tick(now)
	if s.Phase() != PhaseSimulating || s.Auto() {
		t.Fatalf("phase = %v auto = %v after the second slice", s.Phase(), s.Auto())
	}
	if s.Tick(now) {
		t.Fatal("ticks without auto mode must not advance")
	}
	if !s.Step(now) || s.World().Generation() != 1 {
		t.Fatal("step should advance once the world is ready")
	}
	if s.Step(now.Add(core.DefaultAnimation - time.Millisecond)) {
		t.Fatal("step inside the animation window must be refused")
	}
	if !s.Step(now.Add(core.DefaultAnimation)) {
		t.Fatal("step after the window should advance")
	}
}

func TestSessionAutoStartAndFrames(t *testing.T) {
	s := newTestSession(t, true)
	now := time.Unix(100, 0)
	s.Tick(now)
	s.Tick(now)
	if !s.Auto() {
		t.Fatal("autoStart should enable auto mode after generation")
	}
	if !s.Tick(now) {
		t.Fatal("auto tick should advance")
	}
	cases := []struct {
		after time.Duration
		want  int
	}{
		{0, 0},
		{124 * time.Millisecond, 0},
		{125 * time.Millisecond, 1},
		{375 * time.Millisecond, 3},
		{499 * time.Millisecond, 3},
		{500 * time.Millisecond, -1},
	}
	for _, tc := range cases {
		if got := s.Frame(now.Add(tc.after)); got != tc.want {
			t.Fatalf("Frame(+%v) = %d, want %d", tc.after, got, tc.want)
		}
	}
}

func TestSessionRegenerateReplays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 12, 12
	s, err := NewSession(cfg, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(100, 0)
	s.Tick(now)
	first := slices.Clone(s.World().Tiles())
	s.Step(now)
	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseGenerating || s.World().Generation() != 0 {
		t.Fatal("regenerate should restart generation")
	}
	s.Tick(now)
	if !slices.Equal(first, s.World().Tiles()) {
		t.Fatal("regenerating must replay the resolved seed")
	}
	if s.Pacer().Speed() != 2 {
		t.Fatal("regenerate keeps the playback speed")
	}
}
