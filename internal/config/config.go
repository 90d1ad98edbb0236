// Package config loads the YAML configuration shared by the evosim
// commands and converts it into engine and viewer settings.
package config

import (
	"fmt"
	"time"

	"evosim/internal/sims/evolution"
)

// File mirrors the layout of evosim.yaml.
type File struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Policy     PolicyConfig     `yaml:"policy"`
	Limits     LimitsConfig     `yaml:"limits"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Log        LogConfig        `yaml:"log"`
}

// WorldConfig sets the grid dimensions and seed. Seed 0 means time-derived.
type WorldConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   uint32 `yaml:"seed"`
}

// GenerationConfig tunes initial tile energy and cell seeding.
type GenerationConfig struct {
	EnergyCap     uint32 `yaml:"energy_cap"`
	CellChance    uint32 `yaml:"cell_chance"`
	CellEnergyMin uint32 `yaml:"cell_energy_min"`
	CellEnergyMax uint32 `yaml:"cell_energy_max"`
	Budget        int    `yaml:"budget"` // tiles per generator slice
}

// PolicyConfig holds the optional transition rule behaviours.
type PolicyConfig struct {
	DeathRefund bool `yaml:"death_refund"`
}

// LimitsConfig bounds resource use.
type LimitsConfig struct {
	MaxWorldBytes uint64 `yaml:"max_world_bytes"`
}

// ViewerConfig is shared by the terminal and ebiten viewers.
type ViewerConfig struct {
	Speed     int  `yaml:"speed"`      // animation speed, 1..8
	TickMS    int  `yaml:"tick_ms"`    // terminal refresh interval
	CellScale int  `yaml:"cell_scale"` // ebiten pixels per tile
	AutoStart bool `yaml:"auto_start"`
}

// LogConfig selects the log level by name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration the embedded YAML describes.
func Default() File {
	engine := evolution.DefaultConfig()
	return File{
		World: WorldConfig{
			Width:  engine.Width,
			Height: engine.Height,
			Seed:   engine.Seed,
		},
		Generation: GenerationConfig{
			EnergyCap:     engine.Params.EnergyCap,
			CellChance:    engine.Params.CellChance,
			CellEnergyMin: engine.Params.CellEnergyMin,
			CellEnergyMax: engine.Params.CellEnergyMax,
			Budget:        engine.Params.GenerationBudget,
		},
		Policy: PolicyConfig{DeathRefund: engine.Params.DeathRefund},
		Limits: LimitsConfig{MaxWorldBytes: engine.Params.MaxWorldBytes},
		Viewer: ViewerConfig{
			Speed:     1,
			TickMS:    33,
			CellScale: 8,
		},
		Log: LogConfig{Level: "info"},
	}
}

// EngineConfig converts the file into an engine configuration, applies
// key=value overrides in the engine's FromMap vocabulary and validates the
// result.
func (f File) EngineConfig(overrides map[string]string) (evolution.Config, error) {
	cfg := evolution.Config{
		Width:  f.World.Width,
		Height: f.World.Height,
		Seed:   f.World.Seed,
		Params: evolution.Params{
			EnergyCap:        f.Generation.EnergyCap,
			CellChance:       f.Generation.CellChance,
			CellEnergyMin:    f.Generation.CellEnergyMin,
			CellEnergyMax:    f.Generation.CellEnergyMax,
			GenerationBudget: f.Generation.Budget,
			DeathRefund:      f.Policy.DeathRefund,
			MaxWorldBytes:    f.Limits.MaxWorldBytes,
		},
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// TickInterval returns the terminal refresh interval, never below 1ms.
func (v ViewerConfig) TickInterval() time.Duration {
	if v.TickMS < 1 {
		return time.Millisecond
	}
	return time.Duration(v.TickMS) * time.Millisecond
}
