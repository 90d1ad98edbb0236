package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"evosim/internal/config"
	"evosim/internal/sims/evolution"
)

var (
	flagParamsGenerations int
	flagDump              bool
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print world parameters",
	Long: `Generate a world, optionally advance it, and print its parameter
snapshot. With --dump, print the effective configuration as YAML instead.

Examples:
  evosim params --seed 42
  evosim params --seed 42 --generations 30
  evosim params --dump > configs/evosim.yaml`,
	RunE: runParams,
}

func init() {
	paramsCmd.Flags().IntVar(&flagParamsGenerations, "generations", 0, "Generations to advance before printing")
	paramsCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the effective config as YAML")
}

func runParams(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagDump {
		data, err := config.Marshal(effectiveFile(s.file, s.engine))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	world, err := evolution.NewWithConfig(s.engine)
	if err != nil {
		return err
	}
	world.Generate()
	for range flagParamsGenerations {
		world.Advance()
	}
	for _, line := range world.Parameters().Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}

// effectiveFile folds the merged engine config back into the file layout so
// --set overrides show up in --dump.
func effectiveFile(f config.File, engine evolution.Config) config.File {
	f.World = config.WorldConfig{Width: engine.Width, Height: engine.Height, Seed: engine.Seed}
	f.Generation = config.GenerationConfig{
		EnergyCap:     engine.Params.EnergyCap,
		CellChance:    engine.Params.CellChance,
		CellEnergyMin: engine.Params.CellEnergyMin,
		CellEnergyMax: engine.Params.CellEnergyMax,
		Budget:        engine.Params.GenerationBudget,
	}
	f.Policy.DeathRefund = engine.Params.DeathRefund
	f.Limits.MaxWorldBytes = engine.Params.MaxWorldBytes
	return f
}
