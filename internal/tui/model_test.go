package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

func testOptions() Options {
	cfg := evolution.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 20, 12, 42
	cfg.Params.GenerationBudget = 100
	return Options{Engine: cfg, Speed: 1, Tick: time.Millisecond, Width: 10, Height: 10}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func generated(t *testing.T, opts Options) (Model, time.Time) {
	t.Helper()
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	clock := time.Unix(1000, 0)
	m.now = func() time.Time { return clock }
	// 240 tiles at 100 per slice.
	for i := 0; i < 3; i++ {
		if m.Phase() != evolution.PhaseGenerating {
			t.Fatalf("finished generating after %d ticks", i)
		}
		m, _ = update(t, m, TickMsg(clock))
	}
	if m.Phase() != evolution.PhaseSimulating || !m.World().Ready() {
		t.Fatal("world should be generated after three ticks")
	}
	return m, clock
}

func TestGenerationSpreadsOverTicks(t *testing.T) {
	m, _ := generated(t, testOptions())
	if m.Auto() {
		t.Fatal("auto mode should stay off without AutoStart")
	}
	if m.World().Tally().Live == 0 {
		t.Fatal("expected seeded cells")
	}
}

func TestStepRespectsAnimationWindow(t *testing.T) {
	m, clock := generated(t, testOptions())
	m, _ = update(t, m, runes("n"))
	if m.World().Generation() != 1 {
		t.Fatalf("generation = %d after one step", m.World().Generation())
	}
	m, _ = update(t, m, runes("n"))
	if m.World().Generation() != 1 {
		t.Fatal("a step inside the animation window must be ignored")
	}
	clock = clock.Add(core.DefaultAnimation)
	m.now = func() time.Time { return clock }
	m, _ = update(t, m, runes("n"))
	if m.World().Generation() != 2 {
		t.Fatalf("generation = %d after the window closed", m.World().Generation())
	}
}

func TestAutoModeAdvancesOnTicks(t *testing.T) {
	m, clock := generated(t, testOptions())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Auto() {
		t.Fatal("space should start auto mode")
	}
	m, _ = update(t, m, runes("+"))
	m, _ = update(t, m, runes("+"))
	// Speed 4: 125ms windows.
	for i := 0; i < 8; i++ {
		m, _ = update(t, m, TickMsg(clock.Add(time.Duration(i)*125*time.Millisecond)))
	}
	if m.World().Generation() != 8 {
		t.Fatalf("generation = %d, want 8", m.World().Generation())
	}
	m, _ = update(t, m, TickMsg(clock.Add(7*125*time.Millisecond+time.Millisecond)))
	if m.World().Generation() != 8 {
		t.Fatal("tick inside the window must not advance")
	}
}

func TestAutoStartOption(t *testing.T) {
	opts := testOptions()
	opts.AutoStart = true
	m, _ := generated(t, opts)
	if !m.Auto() {
		t.Fatal("AutoStart should switch auto mode on after generation")
	}
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	m, err := NewModel(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, runes("n"))
	if m.World().Generation() != 0 {
		t.Fatal("stepping before generation finishes must do nothing")
	}
	if !strings.Contains(m.View(), "Generating world") {
		t.Fatal("generating view should show progress")
	}
}

func TestCursorAndViewport(t *testing.T) {
	m, _ := generated(t, testOptions())
	// 10x10 terminal leaves a 10x6 grid.
	if v := m.Viewport(); v != (core.Rect{X: 0, Y: 0, W: 10, H: 6}) {
		t.Fatalf("viewport = %+v", v)
	}
	right := tea.KeyMsg{Type: tea.KeyRight}
	for i := 0; i < 12; i++ {
		m, _ = update(t, m, right)
	}
	if x, _ := m.Cursor(); x != 12 {
		t.Fatalf("cursor x = %d", x)
	}
	if v := m.Viewport(); v.X != 3 {
		t.Fatalf("viewport should follow the cursor, got %+v", v)
	}
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, right)
	}
	if x, _ := m.Cursor(); x != 19 {
		t.Fatalf("cursor should stop at the edge, got %d", x)
	}
	if v := m.Viewport(); v.X != 10 {
		t.Fatalf("viewport should clamp at the edge, got %+v", v)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	if v := m.Viewport(); v != (core.Rect{X: 0, Y: 0, W: 20, H: 12}) {
		t.Fatalf("viewport after resize = %+v", v)
	}
}

func TestRegenerateReplaysSeed(t *testing.T) {
	m, _ := generated(t, testOptions())
	before := append([]evolution.Tile(nil), m.World().Tiles()...)
	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, runes("r"))
	if m.Phase() != evolution.PhaseGenerating || m.World().Generation() != 0 {
		t.Fatal("regenerate should start a fresh world")
	}
	for m.Phase() == evolution.PhaseGenerating {
		m, _ = update(t, m, TickMsg(time.Unix(2000, 0)))
	}
	after := m.World().Tiles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tile %d differs after regenerate", i)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := generated(t, testOptions())
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m, _ := generated(t, testOptions())
	m, _ = update(t, m, runes("n"))
	view := m.View()
	for _, want := range []string{"World 20x12", "Seed 42", "Generation 1", "Live ", "X: 0; Y: 0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
