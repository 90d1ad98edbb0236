package core

// Grid stores a 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid wraps data as a w*h grid. The slice must hold exactly w*h values;
// allocation is left to the caller so it can report failures its own way.
func NewGrid[T any](w, h int, data []T) *Grid[T] {
	if len(data) != w*h {
		panic("core: grid data does not match dimensions")
	}
	return &Grid[T]{W: w, H: h, data: data}
}

// Data exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Data() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// At returns a pointer to the value at (x, y).
func (g *Grid[T]) At(x, y int) *T { return &g.data[y*g.W+x] }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Offset moves (x, y) by (dx, dy) and reports whether the result is inside
// the grid. Edges do not wrap.
func (g *Grid[T]) Offset(x, y, dx, dy int) (int, int, bool) {
	nx, ny := x+dx, y+dy
	return nx, ny, g.InBounds(nx, ny)
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }
