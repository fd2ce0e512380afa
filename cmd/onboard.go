package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/supatools/internal/config"
	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := configPath

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
		fmt.Printf("Press Enter to refresh (keep existing values) or Ctrl+C to cancel: ")
		fmt.Scanln()
		if err := refreshConfig(cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	fmt.Printf("\n%s supatools is ready!\n\n", cmdutils.Logo)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Set supabase.url and supabase.key in %s\n", cfgPath)
	fmt.Println("     or export SUPABASE_URL and SUPABASE_KEY")
	fmt.Println("  2. For list_projects, set SUPABASE_ACCESS_TOKEN")
	fmt.Println("     Get one at: https://supabase.com/dashboard/account/tokens")
	fmt.Println("  3. Serve: supatools serve")
	return nil
}

// refreshConfig rewrites the file at path with current defaults filled in.
// Only the file's own values are kept; .env and environment overrides are
// never persisted.
func refreshConfig(path string) error {
	existing, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	return config.Save(existing, path)
}
