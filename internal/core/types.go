package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Rect is a tile-space rectangle, used for viewports.
type Rect struct {
	X, Y int
	W, H int
}

// ClampViewport fits a w*h viewport anchored at (x, y) inside a grid of the
// given size. Oversized viewports shrink to the grid.
func ClampViewport(size Size, x, y, w, h int) Rect {
	if w > size.W {
		w = size.W
	}
	if h > size.H {
		h = size.H
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if x > size.W-w {
		x = size.W - w
	}
	if y > size.H-h {
		y = size.H - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}
