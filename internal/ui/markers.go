// Package ui draws the ebiten viewer's side panel and event animations.
// Geometry and marker selection live in untagged files so they can be tested
// without a graphics context.
package ui

import (
	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

// Marker is an event to animate on tile (X, Y).
type Marker struct {
	X, Y      int
	Kind      evolution.EventKind
	Direction evolution.Direction
}

// EventMarkers lists the events of the latest generation inside view, in
// row-major order.
func EventMarkers(w *evolution.World, view core.Rect) []Marker {
	var out []Marker
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			e := w.EventAt(x, y)
			if e.Kind == evolution.EventNone {
				continue
			}
			out = append(out, Marker{X: x, Y: y, Kind: e.Kind, Direction: e.Direction})
		}
	}
	return out
}

// Progress maps an animation frame to the share of the animation shown.
// Frame -1 (idle) counts as finished.
func Progress(frame int) float64 {
	if frame < 0 || frame >= evolution.AnimationFrames {
		return 1
	}
	return float64(frame+1) / float64(evolution.AnimationFrames)
}

// TileCenter returns the pixel centre of tile (x, y) for a view drawn at
// (offsetX, offsetY) with scale pixels per tile.
func TileCenter(x, y int, view core.Rect, scale, offsetX, offsetY int) (float64, float64) {
	half := float64(scale) / 2
	return float64(offsetX+(x-view.X)*scale) + half, float64(offsetY+(y-view.Y)*scale) + half
}

// DivisionSegment returns the line a division animation draws: from the
// parent's centre towards its child, grown to progress.
func DivisionSegment(m Marker, view core.Rect, scale, offsetX, offsetY int, progress float64) (x1, y1, x2, y2 float64) {
	x1, y1 = TileCenter(m.X, m.Y, view, scale, offsetX, offsetY)
	dx, dy := m.Direction.Offset()
	span := float64(scale) * clamp01(progress)
	return x1, y1, x1 + float64(dx)*span, y1 + float64(dy)*span
}

// PickTile maps a pixel to the tile under it, if the pixel is inside view.
func PickTile(px, py int, view core.Rect, scale, offsetX, offsetY int) (int, int, bool) {
	if scale <= 0 || px < offsetX || py < offsetY {
		return 0, 0, false
	}
	tx := (px - offsetX) / scale
	ty := (py - offsetY) / scale
	if tx >= view.W || ty >= view.H {
		return 0, 0, false
	}
	return view.X + tx, view.Y + ty, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
