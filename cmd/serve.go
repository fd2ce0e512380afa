package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/supatools/internal/config/transport"
	"github.com/crystaldolphin/supatools/internal/shared/cmdutils"
)

var (
	serveTransport string
	serveAddr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveTransport, "transport", "t", "", "Transport: stdio, sse or ws (default from config)")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address host:port for sse and ws (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, c, err := setup()
	if err != nil {
		return err
	}

	tc := cfg.Transport
	if serveTransport != "" {
		tc.Kind = serveTransport
	}
	if serveAddr != "" {
		host, port, err := parseAddr(serveAddr)
		if err != nil {
			return err
		}
		tc.Host, tc.Port = host, port
	}
	if err := tc.Validate(); err != nil {
		return err
	}

	if tc.Kind != transport.Stdio {
		fmt.Fprintf(os.Stderr, "%s Starting supatools %s server on %s...\n", cmdutils.Logo, tc.Kind, tc.Addr())
	}

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// End of stdin also ends the run.
		defer stop()
		return c.Server().Serve(gctx, tc, os.Stdin, os.Stdout)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down", "transport", tc.Kind)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Server stopped", "err", err)
		return err
	}
	return nil
}

// parseAddr splits host:port. An empty host means all interfaces.
func parseAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port in --addr %q", addr)
	}
	return host, port, nil
}
