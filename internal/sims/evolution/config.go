package evolution

import (
	"errors"
	"fmt"
	"strconv"
)

// Dimension bounds for a world on either axis.
const (
	MinDimension = 10
	MaxDimension = 65535
)

var (
	// ErrInvalidDimensions reports a width or height outside
	// [MinDimension, MaxDimension].
	ErrInvalidDimensions = errors.New("evolution: invalid world dimensions")
	// ErrInvalidConfig reports generation parameters that cannot be used.
	ErrInvalidConfig = errors.New("evolution: invalid config")
	// ErrOutOfMemory reports that the tile grid could not be allocated.
	ErrOutOfMemory = errors.New("evolution: out of memory")
)

// Params holds the tunables for world generation and the death policy. The
// transition rule itself is fixed.
type Params struct {
	// EnergyCap is the highest environmental energy a tile can be generated
	// with.
	EnergyCap uint32
	// CellChance seeds a cell on one tile in CellChance, on average.
	CellChance uint32
	// CellEnergyMin and CellEnergyMax bound a seeded cell's energy.
	CellEnergyMin uint32
	CellEnergyMax uint32
	// GenerationBudget is the number of tiles a single generator slice visits.
	GenerationBudget int
	// DeathRefund returns a dying cell's age to its tile's energy pool.
	DeathRefund bool
	// MaxWorldBytes caps the tile grid allocation; 0 disables the check.
	MaxWorldBytes uint64
}

// Config controls a world's dimensions, seed and parameters.
type Config struct {
	Width  int
	Height int

	// Seed 0 is replaced by a time-derived seed when the world is created.
	Seed uint32

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Seed:   0,
		Params: Params{
			EnergyCap:        75,
			CellChance:       10,
			CellEnergyMin:    5,
			CellEnergyMax:    10,
			GenerationBudget: 1000000,
			DeathRefund:      false,
			MaxWorldBytes:    4 << 30,
		},
	}
}

// Validate checks the dimensions and parameters. Dimension failures wrap
// ErrInvalidDimensions, everything else wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension || c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be %d..%d)", ErrInvalidDimensions, c.Width, c.Height, MinDimension, MaxDimension)
	}
	p := c.Params
	if p.CellChance == 0 {
		return fmt.Errorf("%w: cell_chance must be positive", ErrInvalidConfig)
	}
	if p.CellEnergyMin == 0 || p.CellEnergyMax < p.CellEnergyMin {
		return fmt.Errorf("%w: cell energy range %d..%d", ErrInvalidConfig, p.CellEnergyMin, p.CellEnergyMax)
	}
	if p.GenerationBudget <= 0 {
		return fmt.Errorf("%w: generation_budget must be positive", ErrInvalidConfig)
	}
	// Keeps the weight sum (C+1)(C+2)/2 inside uint32.
	if p.EnergyCap > 65534 {
		return fmt.Errorf("%w: energy_cap %d too large", ErrInvalidConfig, p.EnergyCap)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields present in kv. Unparseable values are ignored.
func (c *Config) Apply(kv map[string]string) {
	if kv == nil {
		return
	}
	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := kv["energy_cap"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Params.EnergyCap = uint32(parsed)
		}
	}
	if v, ok := kv["cell_chance"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Params.CellChance = uint32(parsed)
		}
	}
	if v, ok := kv["cell_energy_min"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Params.CellEnergyMin = uint32(parsed)
		}
	}
	if v, ok := kv["cell_energy_max"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Params.CellEnergyMax = uint32(parsed)
		}
	}
	if c.Params.CellEnergyMax < c.Params.CellEnergyMin {
		c.Params.CellEnergyMax = c.Params.CellEnergyMin
	}
	if v, ok := kv["generation_budget"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.GenerationBudget = parsed
		}
	}
	if v, ok := kv["death_refund"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DeathRefund = parsed
		}
	}
	if v, ok := kv["max_world_bytes"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Params.MaxWorldBytes = parsed
		}
	}
}
