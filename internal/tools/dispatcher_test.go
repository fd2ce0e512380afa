package tools

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/supatools/internal/schema"
	"github.com/crystaldolphin/supatools/internal/supabase"
)

func TestDispatcher_UnknownToolMakesNoCalls(t *testing.T) {
	f := &fakeBackend{}
	d := newTestDispatcher(f)

	env, err := d.Invoke(context.Background(), "drop_database", map[string]any{"table": "t"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.Equal(t, "Unknown tool: drop_database", err.Error())
	assert.Empty(t, env.Content)
	assert.Zero(t, f.calls())
}

func TestDispatcher_ValidationFailsClosed(t *testing.T) {
	f := &fakeBackend{}
	d := newTestDispatcher(f)

	_, err := d.Invoke(context.Background(), "create_record", map[string]any{"table": "t"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrValidation))
	assert.Zero(t, f.calls())
}

func TestDispatcher_CreateRecord(t *testing.T) {
	f := &fakeBackend{rows: json.RawMessage(`[{"id":1,"a":1}]`)}
	d := newTestDispatcher(f)

	env, err := d.Invoke(context.Background(), "create_record", map[string]any{
		"table": "t",
		"data":  map[string]any{"a": 1.0},
	})
	require.NoError(t, err)
	require.Len(t, env.Content, 1)
	assert.Equal(t, "text", env.Content[0].Type)
	assert.Equal(t, `[{"id":1,"a":1}]`, env.Text())

	require.Len(t, f.queries, 1)
	q := f.queries[0]
	assert.Equal(t, supabase.MethodInsert, q.Method())
	assert.Equal(t, "t", q.Table())
	assert.Equal(t, map[string]any{"a": 1.0}, q.Body())
	assert.Equal(t, "*", q.Columns())
}

func TestDispatcher_EmptyResultIsEmptyList(t *testing.T) {
	f := &fakeBackend{}
	d := newTestDispatcher(f)

	env, err := d.Invoke(context.Background(), "delete_record", map[string]any{"table": "t"})
	require.NoError(t, err)
	assert.Equal(t, "[]", env.Text())
}

func TestDispatcher_BackendErrorPreserved(t *testing.T) {
	backendErr := &supabase.BackendError{Op: "select", Status: 404, Code: "42P01", Message: "missing"}
	f := &fakeBackend{err: backendErr}
	d := newTestDispatcher(f)

	env, err := d.Invoke(context.Background(), "read_records", map[string]any{"table": "nope"})
	require.Error(t, err)
	assert.Empty(t, env.Content)
	assert.Same(t, backendErr, err)
	assert.Equal(t, "backend", ErrorKind(err))
}

func TestDispatcher_ManagementErrorPreserved(t *testing.T) {
	mgmtErr := &supabase.ManagementAPIError{Status: 401, StatusText: "Unauthorized"}
	f := &fakeBackend{err: mgmtErr}
	d := newTestDispatcher(f)

	_, err := d.Invoke(context.Background(), "list_projects", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, supabase.ErrManagementAPI))
	assert.True(t, errors.Is(err, supabase.ErrBackend))
	assert.Equal(t, "management_api", ErrorKind(err))
}

func TestDispatcher_ListProjectsIdempotent(t *testing.T) {
	f := &fakeBackend{projects: json.RawMessage(`[{"id":"p1"}]`)}
	d := newTestDispatcher(f)

	first, err := d.Invoke(context.Background(), "list_projects", map[string]any{"random_string": "x"})
	require.NoError(t, err)
	second, err := d.Invoke(context.Background(), "list_projects", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, first.Text(), second.Text())
	assert.Equal(t, 2, f.listCalls)
}

func TestDispatcher_Concurrent(t *testing.T) {
	f := &fakeBackend{rows: json.RawMessage(`[]`)}
	d := newTestDispatcher(f)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Invoke(context.Background(), "read_records", map[string]any{"table": "t"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, f.calls())
}

func TestDispatcher_Catalog(t *testing.T) {
	d := newTestDispatcher(&fakeBackend{})

	entries, err := d.Catalog()
	require.NoError(t, err)
	require.Len(t, entries, 8)
	assert.Equal(t, "create_record", entries[0].Name)
	assert.Equal(t, "list_projects", entries[7].Name)
	for _, e := range entries {
		assert.NotEmpty(t, e.Description, e.Name)
		assert.True(t, json.Valid(e.InputSchema), e.Name)
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "validation", ErrorKind(&schema.ValidationError{}))
	assert.Equal(t, "unknown_tool", ErrorKind(&UnknownToolError{Name: "x"}))
	assert.Equal(t, "canceled", ErrorKind(context.Canceled))
	assert.Equal(t, "internal", ErrorKind(errors.New("boom")))
}
