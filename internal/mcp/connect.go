package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/supatools/internal/config/transport"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the transport selected by tc until ctx is done or the transport
// fails. in and out are only used by the stdio transport.
func (s *Server) Serve(ctx context.Context, tc transport.TransportConfig, in io.Reader, out io.Writer) error {
	switch tc.Kind {
	case transport.Stdio:
		return s.ServeStdio(ctx, in, out)
	case transport.SSE:
		baseURL := tc.BaseURL
		if baseURL == "" {
			baseURL = "http://" + tc.Addr()
		}
		return s.ServeSSE(ctx, tc.Addr(), baseURL)
	case transport.WebSocket:
		return s.ServeWebSocket(ctx, tc.Addr())
	}
	return fmt.Errorf("unknown transport %q", tc.Kind)
}

// ServeStdio reads newline-delimited JSON-RPC from in and writes replies to
// out. It returns nil when in is exhausted or ctx is canceled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("MCP server listening", "transport", transport.Stdio)
	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ServeSSE serves the SSE transport on addr. baseURL is the address clients
// are told to post messages to.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sse := server.NewSSEServer(s.mcp, server.WithBaseURL(baseURL))

	s.logger.Info("MCP server listening", "transport", transport.SSE, "addr", addr, "baseUrl", baseURL)
	return listenAndServe(ctx, addr, sse)
}

// ServeWebSocket serves the WebSocket transport on addr. Every text frame is
// one JSON-RPC message.
func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	s.logger.Info("MCP server listening", "transport", transport.WebSocket, "addr", addr)
	return listenAndServe(ctx, addr, s.WebSocketHandler())
}

// listenAndServe serves h on addr until it fails or ctx is done. Request
// contexts derive from ctx, so long-lived streams end on shutdown.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
