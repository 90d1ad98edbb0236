package evolution

import (
	"fmt"
	"unsafe"

	"evosim/internal/core"
	rng "evosim/pkg/core"
)

// Direction names an orthogonal neighbour. The order Up, Right, Down, Left
// is also the division priority and the animation rotation index.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
	DirectionNone
)

var directionOffsets = [4][2]int{
	DirectionUp:    {0, -1},
	DirectionRight: {1, 0},
	DirectionDown:  {0, 1},
	DirectionLeft:  {-1, 0},
}

// Offset returns the (dx, dy) step for d. DirectionNone does not move.
func (d Direction) Offset() (int, int) {
	if d >= DirectionNone {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "none"
	}
}

// EventKind tags what happened on a tile during the latest generation.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventDeath
	EventBirth
	EventDivision
)

func (k EventKind) String() string {
	switch k {
	case EventDeath:
		return "death"
	case EventBirth:
		return "birth"
	case EventDivision:
		return "division"
	default:
		return "none"
	}
}

// Event is the per-tile record of the latest generation. The engine only
// writes it; renderers read it to pick animations.
type Event struct {
	Kind      EventKind
	Direction Direction
}

var noEvent = Event{Kind: EventNone, Direction: DirectionNone}

// Cell is the organism living on a tile. Energy 0 means no cell.
type Cell struct {
	Age    uint32
	Energy uint32
}

// Alive reports whether the cell exists.
func (c Cell) Alive() bool { return c.Energy != 0 }

// Tile is one grid square: an environmental energy pool plus at most one cell.
type Tile struct {
	Energy uint32
	Cell   Cell
	Event  Event
}

// Tallies counts what happened during the latest generation.
type Tallies struct {
	Live  uint32
	Dying uint32
	Born  uint32
}

// World owns the tile grid, the generation counter and the RNG that
// generated it.
type World struct {
	cfg Config

	w, h  int
	gen   uint32
	tiles *core.Grid[Tile]
	tally Tallies
	ready bool

	rng *rng.RNG

	display []uint8
}

// New creates a world with the default parameters.
func New(w, h int, seed uint32) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and allocates a zeroed world. The RNG is
// seeded here, once per world; a zero seed resolves to the current time and
// the resolved value is recorded in the world's config.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tiles, err := allocTiles(cfg.Width*cfg.Height, cfg.Params.MaxWorldBytes)
	if err != nil {
		return nil, fmt.Errorf("allocating %dx%d world: %w", cfg.Width, cfg.Height, err)
	}
	r := rng.NewRNG(cfg.Seed)
	cfg.Seed = r.Resolved()
	return &World{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		tiles: core.NewGrid(cfg.Width, cfg.Height, tiles),
		rng:   r,
	}, nil
}

// TileBytes is the in-memory size of one tile.
const TileBytes = uint64(unsafe.Sizeof(Tile{}))

func allocTiles(n int, limit uint64) (tiles []Tile, err error) {
	if limit > 0 && uint64(n)*TileBytes > limit {
		return nil, fmt.Errorf("%w: %d tiles need %d bytes, limit is %d", ErrOutOfMemory, n, uint64(n)*TileBytes, limit)
	}
	defer func() {
		if r := recover(); r != nil {
			tiles = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]Tile, n), nil
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration with the resolved seed.
func (w *World) Config() Config { return w.cfg }

// Seed returns the resolved seed.
func (w *World) Seed() uint32 { return w.cfg.Seed }

// Generation returns the number of completed advances.
func (w *World) Generation() uint32 { return w.gen }

// Ready reports whether generation has finished.
func (w *World) Ready() bool { return w.ready }

// TileAt returns a copy of the tile at (x, y).
func (w *World) TileAt(x, y int) Tile { return *w.tiles.At(x, y) }

// Tiles exposes the row-major tile slice (index y*width+x) for read access.
func (w *World) Tiles() []Tile { return w.tiles.Data() }

// SetTile overwrites the tile at (x, y). It exists for building scenarios
// and is not used by the engine.
func (w *World) SetTile(x, y int, t Tile) { *w.tiles.At(x, y) = t }

// Tally returns the tallies of the latest generation.
func (w *World) Tally() Tallies { return w.tally }
