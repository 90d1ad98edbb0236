package evolution

// Progress is the outcome of one generator slice.
type Progress uint8

const (
	InProgress Progress = iota
	Done
)

func (p Progress) String() string {
	if p == Done {
		return "done"
	}
	return "in progress"
}

// Generator fills a world's tiles a slice at a time so a render loop can
// spread a large world over many frames. Its cursor lives here rather than
// in the world, so several worlds can be generated independently.
type Generator struct {
	world   *World
	x, y    int
	visited int
	done    bool
}

// NewGenerator returns a generator positioned at the first tile.
func (w *World) NewGenerator() *Generator {
	return &Generator{world: w}
}

// Step visits at most GenerationBudget tiles, x outer and y inner, and
// reports Done once every tile has been visited. Further calls after Done
// return Done without touching the world.
func (g *Generator) Step() Progress {
	if g.done {
		return Done
	}
	w := g.world
	budget := w.cfg.Params.GenerationBudget
	ops := 0
	for ; g.x < w.w; g.x++ {
		for ; g.y < w.h; g.y++ {
			ops++
			if ops > budget {
				return InProgress
			}
			w.seedTile(w.tiles.At(g.x, g.y))
			g.visited++
		}
		g.y = 0
	}
	g.x, g.y = 0, 0
	g.done = true
	w.finishGeneration()
	return Done
}

// Fraction reports the share of tiles visited so far, in [0, 1].
func (g *Generator) Fraction() float64 {
	total := g.world.Size().Area()
	if total == 0 || g.done {
		return 1
	}
	return float64(g.visited) / float64(total)
}

// Generate runs the generator to completion.
func (w *World) Generate() {
	g := w.NewGenerator()
	for g.Step() != Done {
	}
}

// seedTile draws the tile's energy and, one time in CellChance, a cell.
// Energy i is chosen with weight C+1-i for i in [0, C], by walking the
// weights down from a uniform draw below their sum. A tile consumes one draw
// for energy, one for the cell roll and one more when a cell is placed.
func (w *World) seedTile(t *Tile) {
	p := w.cfg.Params
	c := p.EnergyCap
	base := w.rng.Uint32n((c + 1) * (c + 2) / 2)
	for i := uint32(0); i <= c; i++ {
		if base <= c-i {
			t.Energy = i
			break
		}
		base -= c + 1 - i
	}
	t.Cell = Cell{}
	t.Event = noEvent
	if w.rng.Uint32n(p.CellChance) == 0 {
		t.Cell.Energy = w.rng.Uint32n(p.CellEnergyMax-p.CellEnergyMin+1) + p.CellEnergyMin
	}
}

func (w *World) finishGeneration() {
	var live uint32
	for _, t := range w.tiles.Data() {
		if t.Cell.Alive() {
			live++
		}
	}
	w.tally = Tallies{Live: live}
	w.ready = true
}
