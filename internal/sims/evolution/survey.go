package evolution

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PopulationResult captures telemetry from a deterministic headless run.
type PopulationResult struct {
	Seed uint32
	// InitialCells is the number of cells seeded by generation.
	InitialCells uint32
	// PeakLive is the highest live tally seen, and PeakGeneration when it
	// was first reached.
	PeakLive       uint32
	PeakGeneration uint32
	// Births and Deaths accumulate the per-generation tallies.
	Births uint64
	Deaths uint64
	// ExtinctAt is the generation after which no cell was left, or 0 if the
	// population survived the run.
	ExtinctAt uint32
	// Final is the census after the last generation.
	Final Census
	// GenerationsRun counts the advances actually executed.
	GenerationsRun uint32
}

// PopulationRun generates a world from cfg and advances it up to
// generations times, stopping early on extinction or when ctx is done.
func PopulationRun(ctx context.Context, cfg Config, generations int) (PopulationResult, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return PopulationResult{}, err
	}
	world.Generate()

	res := PopulationResult{
		Seed:         world.Seed(),
		InitialCells: world.Tally().Live,
		PeakLive:     world.Tally().Live,
	}
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t := world.Advance()
		res.GenerationsRun++
		res.Births += uint64(t.Born)
		res.Deaths += uint64(t.Dying)
		if t.Live > res.PeakLive {
			res.PeakLive = t.Live
			res.PeakGeneration = world.Generation()
		}
		if t.Live == 0 {
			res.ExtinctAt = world.Generation()
			break
		}
	}
	res.Final = world.Census()
	return res, nil
}

// SeedSweep runs PopulationRun for every seed using up to workers
// goroutines. Results keep the order of seeds. Seed 0 is not special here:
// each run resolves it independently.
func SeedSweep(ctx context.Context, cfg Config, seeds []uint32, generations, workers int) ([]PopulationResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]PopulationResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			c := cfg
			c.Seed = seed
			res, err := PopulationRun(ctx, c, generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
