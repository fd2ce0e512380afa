package schema

import (
	"errors"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErr(t *testing.T, name ToolName, raw map[string]any) *ValidationError {
	t.Helper()
	def, ok := Lookup(name)
	require.True(t, ok)

	err := Validate(def, raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, name, verr.Tool)
	return verr
}

// validBags holds argument bags every tool must accept.
var validBags = []struct {
	name ToolName
	raw  map[string]any
}{
	{ToolCreateRecord, map[string]any{"table": "t", "data": map[string]any{"a": 1.0}}},
	{ToolCreateRecord, map[string]any{"table": "t", "data": map[string]any{}, "returning": []any{"id", "name"}}},
	{ToolReadRecords, map[string]any{"table": "t"}},
	{ToolReadRecords, map[string]any{"table": "t", "select": []any{"id"}, "filter": map[string]any{"age": map[string]any{"gt": 18.0}}}},
	{ToolUpdateRecord, map[string]any{"table": "t", "data": map[string]any{"a": 2.0}, "filter": map[string]any{"id": 1.0}}},
	{ToolDeleteRecord, map[string]any{"table": "t", "filter": map[string]any{"id": 1.0}, "returning": []any{}}},
	{ToolUploadFile, map[string]any{"bucket": "b", "path": "p.txt", "file": "hello"}},
	{ToolUploadFile, map[string]any{"bucket": "b", "path": "p", "file": map[string]any{"x": 1.0}, "options": map[string]any{"upsert": true, "contentType": "text/csv"}}},
	{ToolDownloadFile, map[string]any{"bucket": "b", "path": "p"}},
	{ToolInvokeFunction, map[string]any{"function": "hello"}},
	{ToolInvokeFunction, map[string]any{"function": "hello", "params": map[string]any{"n": 1.0}, "options": map[string]any{"headers": map[string]any{"X-A": "1"}, "responseType": "text"}}},
	{ToolListProjects, map[string]any{}},
	{ToolListProjects, map[string]any{"random_string": "x"}},
	{ToolListProjects, nil},
}

func TestValidate_AcceptsValidBags(t *testing.T) {
	for _, tc := range validBags {
		t.Run(string(tc.name), func(t *testing.T) {
			def, _ := Lookup(tc.name)
			assert.NoError(t, Validate(def, tc.raw))
		})
	}
}

// The advertised schemas must accept the same bags under a full JSON Schema
// validator as under Validate.
func TestValidate_AgreesWithResolvedSchemas(t *testing.T) {
	resolved := make(map[ToolName]*jsonschema.Resolved)
	for _, def := range Definitions() {
		rs, err := def.Input.Resolve(nil)
		require.NoError(t, err, def.Name)
		resolved[def.Name] = rs
	}

	for _, tc := range validBags {
		t.Run(string(tc.name), func(t *testing.T) {
			raw := tc.raw
			if raw == nil {
				raw = map[string]any{}
			}
			assert.NoError(t, resolved[tc.name].Validate(raw))
		})
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	verr := validationErr(t, ToolCreateRecord, map[string]any{"data": map[string]any{}})
	assert.Equal(t, "table", verr.Field)
	assert.Equal(t, "missing", verr.Reason)
	assert.Equal(t, "string", verr.Expected)
}

func TestValidate_NilBagFailsOnFirstRequiredField(t *testing.T) {
	verr := validationErr(t, ToolUploadFile, nil)
	assert.Equal(t, "bucket", verr.Field)
}

func TestValidate_ReportsFirstViolationInDeclarationOrder(t *testing.T) {
	// Both table and data are wrong; table is declared first.
	verr := validationErr(t, ToolCreateRecord, map[string]any{"table": 5.0, "data": "nope"})
	assert.Equal(t, "table", verr.Field)
	assert.Equal(t, "number", verr.Reason)
}

func TestValidate_WrongTypes(t *testing.T) {
	cases := []struct {
		name     string
		tool     ToolName
		raw      map[string]any
		field    string
		expected string
	}{
		{"data not object", ToolCreateRecord, map[string]any{"table": "t", "data": []any{}}, "data", "object"},
		{"returning element", ToolCreateRecord, map[string]any{"table": "t", "data": map[string]any{}, "returning": []any{"id", 3.0}}, "returning[1]", "string"},
		{"select not list", ToolReadRecords, map[string]any{"table": "t", "select": "id"}, "select", "array of string"},
		{"filter not object", ToolDeleteRecord, map[string]any{"table": "t", "filter": "id=1"}, "filter", "object"},
		{"upsert not bool", ToolUploadFile, map[string]any{"bucket": "b", "path": "p", "file": "x", "options": map[string]any{"upsert": "yes"}}, "options.upsert", "boolean"},
		{"header not string", ToolInvokeFunction, map[string]any{"function": "f", "options": map[string]any{"headers": map[string]any{"X-N": 1.0}}}, "options.headers.X-N", "string"},
		{"placeholder not string", ToolListProjects, map[string]any{"random_string": 1.0}, "random_string", "string"},
		{"null required", ToolUploadFile, map[string]any{"bucket": "b", "path": "p", "file": nil}, "file", "any value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verr := validationErr(t, tc.tool, tc.raw)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.expected, verr.Expected)
		})
	}
}

func TestValidate_UnknownResponseType(t *testing.T) {
	verr := validationErr(t, ToolInvokeFunction, map[string]any{
		"function": "f",
		"options":  map[string]any{"responseType": "xml"},
	})
	assert.Equal(t, "options.responseType", verr.Field)
	assert.Contains(t, verr.Expected, "arraybuffer")
	assert.Contains(t, verr.Error(), "xml")
}

func TestValidate_NullOptionalIsAbsent(t *testing.T) {
	def, _ := Lookup(ToolReadRecords)
	assert.NoError(t, Validate(def, map[string]any{"table": "t", "filter": nil, "select": nil}))
}

func TestValidate_IgnoresUndeclaredFields(t *testing.T) {
	def, _ := Lookup(ToolDownloadFile)
	assert.NoError(t, Validate(def, map[string]any{"bucket": "b", "path": "p", "extra": 1.0}))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Tool: ToolReadRecords, Field: "table", Expected: "string", Reason: "missing"}
	assert.Equal(t, `read_records: invalid arguments: required field "table" (string) is missing`, err.Error())

	err = &ValidationError{Tool: ToolReadRecords, Field: "select", Expected: "array of string", Reason: "string"}
	assert.Equal(t, `read_records: invalid arguments: field "select": expected array of string, got string`, err.Error())
}
