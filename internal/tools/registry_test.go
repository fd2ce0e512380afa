package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/supatools/internal/schema"
)

func TestRegistryBuilder_KeepsInsertionOrder(t *testing.T) {
	f := &fakeBackend{}
	reg := NewRegistryBuilder().
		WithTool(NewListProjectsTool(f)).
		WithTool(NewCreateRecordTool(f)).
		Build()

	var names []schema.ToolName
	for _, d := range reg.Definitions() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []schema.ToolName{schema.ToolListProjects, schema.ToolCreateRecord}, names)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryBuilder_ReplaceKeepsPosition(t *testing.T) {
	first := &fakeBackend{}
	second := &fakeBackend{}
	reg := NewRegistryBuilder().
		WithTool(NewListProjectsTool(first)).
		WithTool(NewReadRecordsTool(first)).
		WithTool(NewListProjectsTool(second)).
		Build()
	require.Equal(t, 2, reg.Len())
	assert.Equal(t, schema.ToolListProjects, reg.Definitions()[0].Name)

	tool, ok := reg.Get(schema.ToolListProjects)
	require.True(t, ok)
	_, err := tool.Run(context.Background(), schema.ListProjectsArgs{})
	require.NoError(t, err)
	assert.Equal(t, 0, first.listCalls)
	assert.Equal(t, 1, second.listCalls)
}

func TestRegistryBuilder_BuildIsolated(t *testing.T) {
	b := NewRegistryBuilder().WithTool(NewListProjectsTool(&fakeBackend{}))
	reg := b.Build()
	b.WithTool(NewCreateRecordTool(&fakeBackend{}))

	assert.Equal(t, 1, reg.Len())
	_, ok := reg.Get(schema.ToolCreateRecord)
	assert.False(t, ok)
}

func TestDefaultRegistry_MatchesSchemaCatalog(t *testing.T) {
	reg := NewDefaultRegistry(Backends{})
	assert.Equal(t, schema.Definitions(), reg.Definitions())
}

func TestTool_RejectsForeignArgs(t *testing.T) {
	tool := NewCreateRecordTool(&fakeBackend{})
	_, err := tool.Run(context.Background(), schema.ListProjectsArgs{})
	assert.Error(t, err)
}
