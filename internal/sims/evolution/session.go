package evolution

import (
	"time"

	"evosim/internal/core"
)

// Animation timing for viewers: each advance plays AnimationFrames frames
// at AnimationFPS, which fills the pacer's window at speed 1.
const (
	AnimationFPS    = 8
	AnimationFrames = 4
)

// Phase is a session's top-level state.
type Phase int

const (
	PhaseGenerating Phase = iota
	PhaseSimulating
)

func (p Phase) String() string {
	if p == PhaseSimulating {
		return "simulating"
	}
	return "generating"
}

// Session drives one world for an interactive viewer: a generator slice per
// tick until the world is ready, then advances gated by the pacer, either on
// request or automatically.
type Session struct {
	cfg       Config
	world     *World
	gen       *Generator
	pacer     *core.Pacer
	phase     Phase
	auto      bool
	autoStart bool
}

// NewSession creates the world for cfg. A zero seed is resolved once here,
// so Regenerate replays the same world.
func NewSession(cfg Config, speed int, autoStart bool) (*Session, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:       world.Config(),
		world:     world,
		gen:       world.NewGenerator(),
		pacer:     core.NewPacer(core.DefaultAnimation, speed),
		autoStart: autoStart,
	}, nil
}

func (s *Session) World() *World         { return s.world }
func (s *Session) Generator() *Generator { return s.gen }
func (s *Session) Pacer() *core.Pacer    { return s.pacer }
func (s *Session) Phase() Phase          { return s.phase }
func (s *Session) Auto() bool            { return s.auto }

// Tick runs one generator slice while generating, or an auto-advance when
// one is due. It reports whether the world advanced a generation.
func (s *Session) Tick(now time.Time) bool {
	switch s.phase {
	case PhaseGenerating:
		if s.gen.Step() == Done {
			s.phase = PhaseSimulating
			s.auto = s.autoStart
		}
	case PhaseSimulating:
		if s.auto {
			return s.Step(now)
		}
	}
	return false
}

// Step advances one generation unless the world is still generating or the
// previous animation is still playing.
func (s *Session) Step(now time.Time) bool {
	if s.phase != PhaseSimulating || s.pacer.Busy(now) {
		return false
	}
	s.world.Advance()
	s.pacer.Start(now)
	return true
}

// ToggleAuto flips auto-advance. It has no effect while generating.
func (s *Session) ToggleAuto() {
	if s.phase == PhaseSimulating {
		s.auto = !s.auto
	}
}

// Regenerate replaces the world with a fresh one from the same config and
// resolved seed.
func (s *Session) Regenerate() error {
	world, err := NewWithConfig(s.cfg)
	if err != nil {
		return err
	}
	s.world = world
	s.gen = world.NewGenerator()
	s.phase = PhaseGenerating
	s.auto = false
	return nil
}

// Frame returns the animation frame to draw at now, or -1 when no
// animation is playing.
func (s *Session) Frame(now time.Time) int {
	if !s.pacer.Busy(now) {
		return -1
	}
	f := s.pacer.Frame(now, AnimationFPS)
	if f >= AnimationFrames {
		f = AnimationFrames - 1
	}
	return f
}
