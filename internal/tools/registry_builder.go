package tools

import "github.com/crystaldolphin/supatools/internal/schema"

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	tools map[schema.ToolName]Tool
	order []schema.ToolName
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{tools: make(map[schema.ToolName]Tool)}
}

// WithTool adds a tool and returns the builder, enabling chaining. A tool
// with a name already present replaces the earlier one in place.
func (b *RegistryBuilder) WithTool(tool Tool) *RegistryBuilder {
	name := tool.Definition().Name
	if _, ok := b.tools[name]; !ok {
		b.order = append(b.order, name)
	}
	b.tools[name] = tool

	return b
}

// Build produces an immutable Registry from the accumulated tools.
func (b *RegistryBuilder) Build() *Registry {
	tools := make(map[schema.ToolName]Tool, len(b.tools))
	for k, v := range b.tools {
		tools[k] = v
	}
	order := make([]schema.ToolName, len(b.order))
	copy(order, b.order)
	return &Registry{tools: tools, order: order}
}

// Backends are the services the built-in tools call.
type Backends struct {
	Records   RecordStore
	Objects   ObjectStore
	Functions FunctionInvoker
	Projects  ProjectLister
}

// NewDefaultRegistry registers every built-in tool against b.
func NewDefaultRegistry(b Backends) *Registry {
	return NewRegistryBuilder().
		WithTool(NewCreateRecordTool(b.Records)).
		WithTool(NewReadRecordsTool(b.Records)).
		WithTool(NewUpdateRecordTool(b.Records)).
		WithTool(NewDeleteRecordTool(b.Records)).
		WithTool(NewUploadFileTool(b.Objects)).
		WithTool(NewDownloadFileTool(b.Objects)).
		WithTool(NewInvokeFunctionTool(b.Functions)).
		WithTool(NewListProjectsTool(b.Projects)).
		Build()
}
