package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
	"github.com/crystaldolphin/supatools/internal/shared/stringutils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolved configuration",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	fmt.Printf("%s supatools Status\n\n", cmdutils.Logo)

	_, statErr := os.Stat(configPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:    %s %s\n", configPath, cfgMark)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	url := cfg.Supabase.URL
	if url == "" {
		url = "(not set)"
	}
	fmt.Printf("Server:    %s %s\n\n", cfg.Server.Name, cfg.Server.Version)

	fmt.Println("Supabase:")
	fmt.Printf("  %-16s %s\n", "URL", url)
	fmt.Printf("  %-16s %s\n", "Key", stringutils.Mask(cfg.Supabase.Key))
	fmt.Printf("  %-16s %s\n", "Access token", stringutils.Mask(cfg.Supabase.AccessToken))
	fmt.Printf("  %-16s %s\n", "Management API", cfg.Supabase.ManagementURL)
	fmt.Printf("  %-16s %s\n\n", "Timeout", cfg.Supabase.Timeout())

	fmt.Println("Transport:")
	fmt.Printf("  %-16s %s\n", "Kind", cfg.Transport.Kind)
	fmt.Printf("  %-16s %s\n", "Address", cfg.Transport.Addr())
	if cfg.Transport.BaseURL != "" {
		fmt.Printf("  %-16s %s\n", "Base URL", cfg.Transport.BaseURL)
	}
	fmt.Printf("\nLog:       %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
	return nil
}
