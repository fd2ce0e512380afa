// Package config defines the configuration schema for supatools.
//
// Keys use camelCase in both YAML and JSON config files. Every value can be
// overridden from the environment (see env.go).
package config

import (
	"log/slog"
	"strings"

	"github.com/crystaldolphin/supatools/internal/config/backend"
	"github.com/crystaldolphin/supatools/internal/config/transport"
)

// ServerInfo is what the MCP server reports about itself during initialize.
type ServerInfo struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

func defaultServerInfo() ServerInfo {
	return ServerInfo{Name: "supatools", Version: "2.0.1"}
}

// LogConfig controls the process logger. Logs always go to stderr.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text or json
}

func defaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: "text"}
}

// SlogLevel maps Level onto slog, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ---- Root config -----------------------------------------------------------

// Config is the root configuration object. It is loaded once at startup and
// never mutated afterwards.
type Config struct {
	Supabase  backend.BackendConfig     `yaml:"supabase" json:"supabase"`
	Transport transport.TransportConfig `yaml:"transport" json:"transport"`
	Server    ServerInfo                `yaml:"server" json:"server"`
	Log       LogConfig                 `yaml:"log" json:"log"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Supabase:  backend.DefaultBackendConfig(),
		Transport: transport.DefaultTransportConfig(),
		Server:    defaultServerInfo(),
		Log:       defaultLogConfig(),
	}
}
