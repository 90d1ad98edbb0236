package core

import "time"

const (
	// DefaultAnimation is the length of one advance animation at speed 1.
	DefaultAnimation = 500 * time.Millisecond
	// MinSpeed and MaxSpeed bound the playback multiplier.
	MinSpeed = 1
	MaxSpeed = 8
)

// Pacer gates advances behind a per-advance animation window. Each advance
// opens a window of base/speed; the next advance is allowed once it closes.
// Callers pass the current time so replays and tests stay deterministic.
type Pacer struct {
	base    time.Duration
	speed   int
	started time.Time
}

// NewPacer constructs a Pacer with the given base window and speed.
func NewPacer(base time.Duration, speed int) *Pacer {
	if base <= 0 {
		base = DefaultAnimation
	}
	p := &Pacer{base: base, speed: MinSpeed}
	p.SetSpeed(speed)
	return p
}

// SetSpeed clamps and applies a playback multiplier.
func (p *Pacer) SetSpeed(speed int) {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	p.speed = speed
}

// Speed returns the current multiplier.
func (p *Pacer) Speed() int { return p.speed }

// Faster doubles the speed up to MaxSpeed.
func (p *Pacer) Faster() { p.SetSpeed(p.speed * 2) }

// Slower halves the speed down to MinSpeed.
func (p *Pacer) Slower() { p.SetSpeed(p.speed / 2) }

// Window returns the animation length at the current speed.
func (p *Pacer) Window() time.Duration { return p.base / time.Duration(p.speed) }

// Start opens an animation window at now.
func (p *Pacer) Start(now time.Time) { p.started = now }

// Busy reports whether an animation window is still open at now. A window
// that has elapsed is closed as a side effect.
func (p *Pacer) Busy(now time.Time) bool {
	if p.started.IsZero() {
		return false
	}
	if now.Sub(p.started) >= p.Window() {
		p.started = time.Time{}
		return false
	}
	return true
}

// Frame returns the animation frame index at now for an animation drawn at
// fps frames per second at speed 1. Idle pacers report frame 0.
func (p *Pacer) Frame(now time.Time, fps int) int {
	if p.started.IsZero() || fps <= 0 {
		return 0
	}
	perFrame := time.Second / time.Duration(fps*p.speed)
	if perFrame <= 0 {
		return 0
	}
	return int(now.Sub(p.started) / perFrame)
}
