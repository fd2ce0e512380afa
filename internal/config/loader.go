package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath returns the default configuration file path: ~/.supatools/config.yaml.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// DataDir returns the supatools data directory: ~/.supatools.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".supatools"
	}
	return filepath.Join(home, ".supatools")
}

// Load reads and parses the config file at path, then applies .env files and
// the process environment on top.
// If path is empty, ConfigPath() is used. A missing file is not an error.
// On parse failure it logs a warning and continues from DefaultConfig().
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	dotenv := []string{".env", filepath.Join(filepath.Dir(path), ".env")}
	return load(path, dotenv, os.LookupEnv)
}

// LoadFile reads only the config file at path over DefaultConfig(), without
// the .env and environment overlays. Use it when the result is written back
// with Save.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			slog.Warn("failed to parse config, using defaults", "path", path, "err", err)
			cfg = DefaultConfig()
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

func load(path string, dotenvPaths []string, lookup lookupFunc) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	fileEnv, err := readDotEnvFiles(dotenvPaths...)
	if err != nil {
		return nil, err
	}
	applyEnv(&cfg, chainLookup(lookup, fileEnv))

	if err := cfg.Transport.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes cfg to path as YAML (or indented JSON for a .json path).
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
