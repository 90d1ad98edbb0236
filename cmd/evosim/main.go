// evosim runs the cellular evolution simulation.
//
// Usage:
//
//	evosim run       - Generate a world and advance it headlessly
//	evosim tui       - Watch the world in the terminal
//	evosim gui       - Watch the world in a window (requires -tags ebiten)
//	evosim params    - Print a world's parameters or the effective config
//
// Global flags:
//
//	--config <path>       - Config YAML (default search: ~/.evosim, ./configs, embedded)
//	--width, --height     - World size
//	--seed <value>        - RNG seed (0 = time-derived)
//	--set key=value       - Engine override, repeatable
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagWidth    int
	flagHeight   int
	flagSeed     uint32
	flagSet      []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "evosim",
	Short: "evosim - a tile-world evolution simulation",
	Long: `evosim grows a world of energy tiles seeded with single cells. Each
generation cells age, harvest tile energy, pay a metabolic cost and either
die or divide into the richest empty neighbour.

Available commands:
  run      - Advance a world headlessly and report tallies
  tui      - Terminal viewer
  gui      - Window viewer (build with -tags ebiten)
  params   - Print world parameters or the effective config

Examples:
  evosim run --seed 42 --generations 500
  evosim tui --width 120 --height 40
  evosim run --set death_refund=true --set cell_chance=5
  evosim params --dump`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "World width (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "World height (default from config)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = time-derived)")
	rootCmd.PersistentFlags().StringArrayVar(&flagSet, "set", nil, "Engine override in key=value form (repeatable)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(paramsCmd)
}
