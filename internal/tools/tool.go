package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crystaldolphin/supatools/internal/schema"
	"github.com/crystaldolphin/supatools/internal/supabase"
)

// Tool is one callable tool. Run receives arguments that schema.Decode has
// already validated and typed for this tool.
type Tool interface {
	Definition() schema.Definition
	Run(ctx context.Context, args schema.Args) (any, error)
}

// RecordStore executes PostgREST queries.
type RecordStore interface {
	Execute(ctx context.Context, q supabase.Query) (json.RawMessage, error)
}

// ObjectStore reads and writes Storage objects.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, body []byte, opts supabase.UploadOptions) (supabase.UploadResult, error)
	Download(ctx context.Context, bucket, path string) (supabase.Blob, error)
}

// FunctionInvoker calls Edge Functions.
type FunctionInvoker interface {
	Invoke(ctx context.Context, name string, body any, opts supabase.InvokeOptions) (any, error)
}

// ProjectLister lists projects through the Management API.
type ProjectLister interface {
	ListProjects(ctx context.Context) (json.RawMessage, error)
}

// typedTool adapts a function over one concrete Args type to Tool.
type typedTool[A schema.Args] struct {
	def schema.Definition
	run func(ctx context.Context, args A) (any, error)
}

func newTool[A schema.Args](name schema.ToolName, run func(context.Context, A) (any, error)) *typedTool[A] {
	def, ok := schema.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("tools: no schema for %q", name))
	}
	return &typedTool[A]{def: def, run: run}
}

func (t *typedTool[A]) Definition() schema.Definition { return t.def }

func (t *typedTool[A]) Run(ctx context.Context, args schema.Args) (any, error) {
	a, ok := args.(A)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected arguments %T", t.def.Name, args)
	}
	return t.run(ctx, a)
}
