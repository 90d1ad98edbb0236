package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"evosim/internal/sims/evolution"
)

func TestParseSeeds(t *testing.T) {
	got, err := parseSeeds("1-3, 42,7-7")
	if err != nil {
		t.Fatalf("parseSeeds: %v", err)
	}
	if want := []uint32{1, 2, 3, 42, 7}; !slices.Equal(got, want) {
		t.Fatalf("seeds = %v, want %v", got, want)
	}
	for _, bad := range []string{"", "5-1", "x", "1-y", " , "} {
		if _, err := parseSeeds(bad); err == nil {
			t.Fatalf("parseSeeds(%q) should fail", bad)
		}
	}
}

func TestSortResults(t *testing.T) {
	results := []evolution.PopulationResult{
		{Seed: 3, PeakLive: 10, ExtinctAt: 0, Births: 5},
		{Seed: 1, PeakLive: 30, ExtinctAt: 50, Births: 9},
		{Seed: 2, PeakLive: 20, ExtinctAt: 20, Births: 1},
	}
	seedsOf := func() []uint32 {
		var out []uint32
		for _, r := range results {
			out = append(out, r.Seed)
		}
		return out
	}
	cases := map[string][]uint32{
		"seed":    {1, 2, 3},
		"peak":    {1, 2, 3},
		"extinct": {2, 1, 3},
		"births":  {1, 3, 2},
	}
	for by, want := range cases {
		if err := sortResults(results, by); err != nil {
			t.Fatal(err)
		}
		if got := seedsOf(); !slices.Equal(got, want) {
			t.Fatalf("sort by %s = %v, want %v", by, got, want)
		}
	}
	if err := sortResults(results, "mood"); err == nil {
		t.Fatal("unknown sort key should fail")
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, []evolution.PopulationResult{
		{Seed: 1, InitialCells: 306, PeakLive: 363, PeakGeneration: 35, Births: 742, Deaths: 1048, ExtinctAt: 296},
		{Seed: 3, InitialCells: 40, PeakLive: 50, PeakGeneration: 46},
	}, 500)
	out := buf.String()
	if !strings.Contains(out, "seed 1: initial 306 peak 363@35 births 742 deaths 1048 extinct@296") {
		t.Fatalf("missing seed 1 line:\n%s", out)
	}
	if !strings.Contains(out, "1/2 seeds survived 500 generations, mean extinction at 296.0") {
		t.Fatalf("missing summary:\n%s", out)
	}
}
