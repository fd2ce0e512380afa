package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
)

var callArgs string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Run one tool and print its response",
	Example: `  supatools call read_records --args '{"table":"todos","filter":{"done":false}}'
  supatools call list_projects`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callArgs, "args", "{}", "Tool arguments as a JSON object")
}

func runCall(_ *cobra.Command, args []string) error {
	raw, err := parseArgs(callArgs)
	if err != nil {
		return err
	}

	_, c, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := c.Dispatcher().Invoke(ctx, args[0], raw)
	if err != nil {
		return err
	}
	cmdutils.PrintResponse(os.Stdout, env.Text())
	return nil
}

// parseArgs decodes the --args flag. JSON null means no arguments.
func parseArgs(s string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %w", err)
	}
	return raw, nil
}
