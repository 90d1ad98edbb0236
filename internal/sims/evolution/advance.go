package evolution

import "math"

// Transition rule constants. The rule is fixed; only generation and the
// death refund are configurable.
const (
	richTileEnergy    = 100
	fertileTileEnergy = 50
	elderAge          = 40
	matureAge         = 20

	metabolicCost = 1

	divisionEnergy = 10
	divisionAge    = 10
)

// harvestFor returns the energy a cell of the given age would pull from a
// tile holding tileEnergy, before clamping to what the tile has.
func harvestFor(tileEnergy, age uint32) uint32 {
	var h uint32 = 1
	switch {
	case tileEnergy >= richTileEnergy:
		h = 3
	case tileEnergy >= fertileTileEnergy:
		h = 2
	}
	switch {
	case age >= elderAge:
		h += 2
	case age >= matureAge:
		h++
	}
	return h
}

// Advance runs one full generation and returns its tallies.
//
// Events from the previous generation are cleared first. Then a single pass
// visits tiles x outer, y inner, mutating in place: a cell ages, harvests,
// pays its metabolic cost and either dies or, if rich and old enough, divides
// into the richest empty neighbour. A child placed on a tile later in the
// pass is visited again in the same call, so it ends the call aged 1.
func (w *World) Advance() Tallies {
	w.gen++
	data := w.tiles.Data()
	for i := range data {
		data[i].Event = noEvent
	}

	var t Tallies
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			tile := w.tiles.At(x, y)
			if !tile.Cell.Alive() {
				continue
			}
			tile.Cell.Age++

			harvest := harvestFor(tile.Energy, tile.Cell.Age)
			if harvest > tile.Energy {
				harvest = tile.Energy
			}
			tile.Energy -= harvest
			tile.Cell.Energy += harvest
			tile.Cell.Energy -= metabolicCost

			if tile.Cell.Energy == 0 {
				w.die(tile)
				t.Dying++
				continue
			}
			t.Live++

			if tile.Cell.Energy < divisionEnergy || tile.Cell.Age < divisionAge {
				continue
			}
			dir, child := w.divisionTarget(x, y)
			if child == nil {
				continue
			}
			tile.Cell.Energy /= 2
			tile.Cell.Age = 0
			child.Cell = Cell{Energy: tile.Cell.Energy}
			tile.Event = Event{Kind: EventDivision, Direction: dir}
			child.Event = Event{Kind: EventBirth, Direction: dir}
			t.Born++
		}
	}
	w.tally = t
	return t
}

func (w *World) die(tile *Tile) {
	if w.cfg.Params.DeathRefund {
		if tile.Energy > math.MaxUint32-tile.Cell.Age {
			tile.Energy = math.MaxUint32
		} else {
			tile.Energy += tile.Cell.Age
		}
	}
	tile.Cell = Cell{}
	tile.Event = Event{Kind: EventDeath, Direction: DirectionNone}
}

// divisionTarget picks the empty neighbour of (x, y) with the most tile
// energy, checking Up, Right, Down, Left. Ties keep the earlier direction.
func (w *World) divisionTarget(x, y int) (Direction, *Tile) {
	var best *Tile
	dir := DirectionNone
	for d := DirectionUp; d < DirectionNone; d++ {
		dx, dy := d.Offset()
		nx, ny, ok := w.tiles.Offset(x, y, dx, dy)
		if !ok {
			continue
		}
		n := w.tiles.At(nx, ny)
		if n.Cell.Alive() {
			continue
		}
		if best == nil || n.Energy > best.Energy {
			best = n
			dir = d
		}
	}
	return dir, best
}
