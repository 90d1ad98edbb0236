package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"evosim/internal/config"
	"evosim/internal/sims/evolution"
)

// settings is everything a command needs after config, flags and overrides
// have been merged.
type settings struct {
	file   config.File
	source string
	engine evolution.Config
	logger *log.Logger
}

// loadSettings merges the config file with the global flags that were set
// on the command line.
func loadSettings(cmd *cobra.Command) (settings, error) {
	file, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		file.World.Width = flagWidth
	}
	if flags.Changed("height") {
		file.World.Height = flagHeight
	}
	if flags.Changed("seed") {
		file.World.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		file.Log.Level = flagLogLevel
	}

	logger, err := newLogger(os.Stderr, file.Log.Level)
	if err != nil {
		return settings{}, err
	}
	overrides, err := parseOverrides(flagSet)
	if err != nil {
		return settings{}, err
	}
	engine, err := file.EngineConfig(overrides)
	if err != nil {
		return settings{}, err
	}
	logger.Debug("config loaded", "source", source, "overrides", len(overrides))
	return settings{file: file, source: source, engine: engine, logger: logger}, nil
}

// newLogger builds the command logger at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "evosim",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// parseOverrides turns repeated key=value flags into a map. Later values win.
func parseOverrides(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
