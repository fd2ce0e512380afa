package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/crystaldolphin/supatools/internal/schema"
)

// toolHandler forwards an MCP tools/call to inv. A returned error becomes a
// JSON-RPC error response, so a failed call never carries partial content.
func toolHandler(inv Invoker, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		env, err := inv.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			return nil, err
		}
		return toResult(env), nil
	}
}

func toResult(env schema.Envelope) *mcpgo.CallToolResult {
	content := make([]mcpgo.Content, 0, len(env.Content))
	for _, c := range env.Content {
		content = append(content, mcpgo.NewTextContent(c.Text))
	}
	return &mcpgo.CallToolResult{Content: content}
}
