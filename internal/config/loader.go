package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/evosim.yaml"

// SourceEmbedded names the built-in defaults in Load's source result.
const SourceEmbedded = "embedded"

// Load reads the evosim configuration and reports where it came from.
// Search order: customPath -> ~/.evosim/config.yaml -> ./configs/evosim.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (File, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Broken optional files are skipped, not fatal.
	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. for `evosim params --dump`.
func Marshal(cfg File) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the per-user config path, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".evosim", "config.yaml")
}
