package tools

import (
	"context"

	"github.com/crystaldolphin/supatools/internal/schema"
)

func NewInvokeFunctionTool(fn FunctionInvoker) Tool {
	return newTool(schema.ToolInvokeFunction, func(ctx context.Context, a schema.InvokeFunctionArgs) (any, error) {
		// A nil map must not reach Invoke as a non-nil interface.
		var body any
		if a.Params != nil {
			body = a.Params
		}
		return fn.Invoke(ctx, a.Function, body, a.Options)
	})
}

// NewListProjectsTool lists projects with the management token. It does not
// touch the project client.
func NewListProjectsTool(pl ProjectLister) Tool {
	return newTool(schema.ToolListProjects, func(ctx context.Context, _ schema.ListProjectsArgs) (any, error) {
		return pl.ListProjects(ctx)
	})
}
