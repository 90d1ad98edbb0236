// Package app is the ebiten viewer. It is only functional when built with
// the ebiten tag; other builds get a Run that reports ErrNoGUI.
package app

import (
	"errors"

	"evosim/internal/sims/evolution"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: GUI support requires building with -tags ebiten")

// Options configures the GUI viewer.
type Options struct {
	Engine    evolution.Config
	Scale     int // pixels per tile
	Speed     int
	AutoStart bool
	HUDWidth  int
}

const (
	minScale        = 1
	maxScale        = 32
	defaultHUDWidth = 220
	maxWindowW      = 1280
	maxWindowH      = 800
)

func (o Options) withDefaults() Options {
	if o.Scale < minScale {
		o.Scale = minScale
	}
	if o.Scale > maxScale {
		o.Scale = maxScale
	}
	if o.HUDWidth <= 0 {
		o.HUDWidth = defaultHUDWidth
	}
	return o
}

// WindowSize returns the initial window size for opts: the whole world at
// its scale plus the panel, capped to a desktop-friendly size.
func WindowSize(opts Options) (int, int) {
	opts = opts.withDefaults()
	w := min(opts.Engine.Width*opts.Scale, maxWindowW-opts.HUDWidth) + opts.HUDWidth
	h := min(opts.Engine.Height*opts.Scale, maxWindowH)
	return w, h
}
