// evo-sweep runs many seeds headlessly in parallel and prints population
// statistics per seed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"evosim/internal/sims/evolution"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	generations := flag.Int("generations", 500, "generations to advance per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	width := flag.Int("width", 64, "world width")
	height := flag.Int("height", 48, "world height")
	seedSpec := flag.String("seeds", "1-16", "seeds to run, e.g. 1-16,42,100-110")
	sortBy := flag.String("sort", "seed", "order results by: seed, peak, extinct, births")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "evo-sweep",
	})

	seeds, err := parseSeeds(*seedSpec)
	if err != nil {
		logger.Fatal("bad -seeds", "error", err)
	}

	cfg := evolution.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	kv := map[string]string{}
	for _, o := range overrides {
		k, v, ok := strings.Cut(o, "=")
		if !ok {
			logger.Warn("ignoring override", "value", o)
			continue
		}
		kv[k] = v
	}
	cfg.Apply(kv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweep started", "seeds", len(seeds), "generations", *generations, "workers", *workers, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	start := time.Now()
	results, err := evolution.SeedSweep(ctx, cfg, seeds, *generations, *workers)
	if err != nil {
		logger.Fatal("sweep failed", "error", err)
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := sortResults(results, *sortBy); err != nil {
		logger.Fatal("bad -sort", "error", err)
	}
	printResults(os.Stdout, results, *generations)
}

// parseSeeds expands a comma-separated list of seeds and inclusive ranges.
func parseSeeds(list string) ([]uint32, error) {
	var seeds []uint32
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", part, err)
		}
		last := first
		if isRange {
			last, err = strconv.ParseUint(strings.TrimSpace(hi), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("seed range %q: %w", part, err)
			}
			if last < first {
				return nil, fmt.Errorf("seed range %q is reversed", part)
			}
		}
		for s := first; s <= last; s++ {
			seeds = append(seeds, uint32(s))
		}
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds in %q", list)
	}
	return seeds, nil
}

func sortResults(results []evolution.PopulationResult, by string) error {
	var less func(a, b evolution.PopulationResult) bool
	switch by {
	case "seed":
		less = func(a, b evolution.PopulationResult) bool { return a.Seed < b.Seed }
	case "peak":
		less = func(a, b evolution.PopulationResult) bool { return a.PeakLive > b.PeakLive }
	case "extinct":
		// Survivors last, earliest extinction first.
		less = func(a, b evolution.PopulationResult) bool {
			if (a.ExtinctAt == 0) != (b.ExtinctAt == 0) {
				return b.ExtinctAt == 0
			}
			return a.ExtinctAt < b.ExtinctAt
		}
	case "births":
		less = func(a, b evolution.PopulationResult) bool { return a.Births > b.Births }
	default:
		return fmt.Errorf("unknown sort key %q", by)
	}
	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
	return nil
}

func printResults(w io.Writer, results []evolution.PopulationResult, generations int) {
	survived := 0
	var extinctSum uint64
	for _, r := range results {
		extinct := "survived"
		if r.ExtinctAt > 0 {
			extinct = fmt.Sprintf("extinct@%d", r.ExtinctAt)
			extinctSum += uint64(r.ExtinctAt)
		} else {
			survived++
		}
		fmt.Fprintf(w, "seed %d: initial %d peak %d@%d births %d deaths %d %s final cells %d energy %d\n",
			r.Seed, r.InitialCells, r.PeakLive, r.PeakGeneration, r.Births, r.Deaths, extinct, r.Final.Cells, r.Final.TotalEnergy())
	}
	fmt.Fprintf(w, "\n%d/%d seeds survived %d generations", survived, len(results), generations)
	if died := len(results) - survived; died > 0 {
		fmt.Fprintf(w, ", mean extinction at %.1f", float64(extinctSum)/float64(died))
	}
	fmt.Fprintln(w)
}
