// Package cmd implements the supatools CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/supatools/internal/config"
	"github.com/crystaldolphin/supatools/internal/container"
	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
)

var (
	configPath string
	logLevel   string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "supatools",
	Short: cmdutils.Logo + " supatools: Supabase tools over MCP",
	Long: cmdutils.Logo + " supatools exposes Supabase tables, storage, edge functions and\n" +
		"project listing as Model Context Protocol tools.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = config.DefaultConfig().Server.Version

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigPath(), "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadConfig reads the config file named by --config and applies --log-level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// setup loads config, installs the logger and wires the services.
func setup() (*config.Config, *container.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := setupLogging(cfg.Log, os.Stderr)

	c, err := container.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}
