package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Loader finds and parses the configuration file.
type Loader struct {
	UserPath  string // Per-user file; empty skips it
	LocalPath string // Working directory file; empty skips it
}

// DefaultLoader searches ~/.scoundrel/config.yaml and then
// ./configs/scoundrel.yaml.
func DefaultLoader() Loader {
	return Loader{
		UserPath:  userConfigPath("config.yaml"),
		LocalPath: filepath.Join("configs", "scoundrel.yaml"),
	}
}

// Load loads the configuration with the default search paths.
func Load(customPath string) (Config, string, error) {
	return DefaultLoader().Load(customPath)
}

// Load returns the configuration and where it came from.
// Search order: customPath -> UserPath -> LocalPath -> embedded default -> builtin.
// A custom path that cannot be read, parsed or validated is an error. Other
// files are skipped when they are missing or broken.
func (l Loader) Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{l.UserPath, l.LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// loadFile reads, parses and validates a single file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the builtin defaults, so omitted fields keep
// their default values.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scoundrel", filename)
}
