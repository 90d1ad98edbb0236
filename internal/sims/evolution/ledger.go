package evolution

// Census is a scan of the grid's current contents.
type Census struct {
	Cells       uint32
	TileEnergy  uint64
	CellEnergy  uint64
	OldestAge   uint32
	RichestTile uint32
}

// TotalEnergy sums tile and cell energy.
func (c Census) TotalEnergy() uint64 { return c.TileEnergy + c.CellEnergy }

// Census scans every tile. It is independent of the tallies, which only
// describe what Advance did.
func (w *World) Census() Census {
	var c Census
	for _, t := range w.tiles.Data() {
		c.TileEnergy += uint64(t.Energy)
		if t.Energy > c.RichestTile {
			c.RichestTile = t.Energy
		}
		if !t.Cell.Alive() {
			continue
		}
		c.Cells++
		c.CellEnergy += uint64(t.Cell.Energy)
		if t.Cell.Age > c.OldestAge {
			c.OldestAge = t.Cell.Age
		}
	}
	return c
}

// EventCounts tallies the per-tile events of the latest generation, indexed
// by EventKind.
func (w *World) EventCounts() [4]uint32 {
	var counts [4]uint32
	for _, t := range w.tiles.Data() {
		counts[t.Event.Kind]++
	}
	return counts
}

// EventAt returns the event recorded on (x, y) by the latest generation.
func (w *World) EventAt(x, y int) Event { return w.tiles.At(x, y).Event }

// EachTile calls fn for every tile in row-major order.
func (w *World) EachTile(fn func(x, y int, t Tile)) {
	data := w.tiles.Data()
	for i, t := range data {
		fn(i%w.w, i/w.w, t)
	}
}
