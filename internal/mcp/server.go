// Package mcp exposes the tool dispatcher as a Model Context Protocol server
// over stdio, SSE or WebSocket.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/crystaldolphin/supatools/internal/config"
	"github.com/crystaldolphin/supatools/internal/schema"
	"github.com/crystaldolphin/supatools/internal/tools"
)

// Invoker lists and runs tools. *tools.Dispatcher implements it.
type Invoker interface {
	Catalog() ([]tools.CatalogEntry, error)
	Invoke(ctx context.Context, name string, raw map[string]any) (schema.Envelope, error)
}

// Server is an MCP server whose tools are served by an Invoker.
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger
}

// NewServer registers every catalog entry of inv as an MCP tool.
func NewServer(info config.ServerInfo, inv Invoker, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := inv.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	s := server.NewMCPServer(info.Name, info.Version, server.WithToolCapabilities(false))
	for _, e := range entries {
		s.AddTool(mcpgo.NewToolWithRawSchema(e.Name, e.Description, e.InputSchema), toolHandler(inv, e.Name))
		logger.Debug("MCP tool registered", "tool", e.Name)
	}
	logger.Info("MCP server ready", "name", info.Name, "version", info.Version, "tools", len(entries))

	return &Server{mcp: s, logger: logger}, nil
}

// HandleMessage processes one JSON-RPC message and returns the reply, or nil
// for notifications.
func (s *Server) HandleMessage(ctx context.Context, msg json.RawMessage) mcpgo.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, msg)
}
