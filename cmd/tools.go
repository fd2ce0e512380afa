package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog as JSON",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func runTools(_ *cobra.Command, _ []string) error {
	_, c, err := setup()
	if err != nil {
		return err
	}

	entries, err := c.Dispatcher().Catalog()
	if err != nil {
		return err
	}
	return cmdutils.PrintJSON(os.Stdout, map[string]any{"tools": entries})
}
