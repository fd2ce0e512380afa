package schema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/crystaldolphin/supatools/internal/supabase"
)

func str(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func obj(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Description: desc}
}

func strList(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string"},
		Description: desc,
	}
}

func enum(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func input(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: props, Required: required}
}

var definitions = []Definition{
	{
		Name:        ToolCreateRecord,
		Description: "Create a new record in a Supabase table",
		Input: input([]string{"table", "data"}, map[string]*jsonschema.Schema{
			"table":     str("Table name"),
			"data":      obj("Record data"),
			"returning": strList("Fields to return (optional)"),
		}),
	},
	{
		Name:        ToolReadRecords,
		Description: "Read records from a Supabase table",
		Input: input([]string{"table"}, map[string]*jsonschema.Schema{
			"table":  str("Table name"),
			"select": strList("Fields to select (optional)"),
			"filter": obj("Filter conditions (optional). A scalar value means equality; " +
				`an object such as {"gt": 18} applies each operator to the field.`),
		}),
	},
	{
		Name:        ToolUpdateRecord,
		Description: "Update records in a Supabase table",
		Input: input([]string{"table", "data"}, map[string]*jsonschema.Schema{
			"table":     str("Table name"),
			"data":      obj("Update data"),
			"filter":    obj("Equality filter conditions (optional)"),
			"returning": strList("Fields to return (optional)"),
		}),
	},
	{
		Name:        ToolDeleteRecord,
		Description: "Delete records from a Supabase table",
		Input: input([]string{"table"}, map[string]*jsonschema.Schema{
			"table":     str("Table name"),
			"filter":    obj("Equality filter conditions (optional)"),
			"returning": strList("Fields to return (optional)"),
		}),
	},
	{
		Name:        ToolUploadFile,
		Description: "Upload a file to Supabase Storage",
		Input: input([]string{"bucket", "path", "file"}, map[string]*jsonschema.Schema{
			"bucket": str("Storage bucket name"),
			"path":   str("File path in bucket"),
			"file": {Description: "File to upload: a string is stored as UTF-8 text, " +
				`{"base64": "..."} is decoded to bytes, anything else is stored as JSON`},
			"options": {
				Type:        "object",
				Description: "Upload options (optional)",
				Properties: map[string]*jsonschema.Schema{
					"cacheControl": {Type: "string"},
					"contentType":  {Type: "string"},
					"upsert":       {Type: "boolean"},
				},
			},
		}),
	},
	{
		Name:        ToolDownloadFile,
		Description: "Download a file from Supabase Storage",
		Input: input([]string{"bucket", "path"}, map[string]*jsonschema.Schema{
			"bucket": str("Storage bucket name"),
			"path":   str("File path in bucket"),
		}),
	},
	{
		Name:        ToolInvokeFunction,
		Description: "Invoke a Supabase Edge Function",
		Input: input([]string{"function"}, map[string]*jsonschema.Schema{
			"function": str("Function name"),
			"params":   obj("Function parameters (optional)"),
			"options": {
				Type:        "object",
				Description: "Invocation options (optional)",
				Properties: map[string]*jsonschema.Schema{
					"headers": {
						Type:                 "object",
						AdditionalProperties: &jsonschema.Schema{Type: "string"},
					},
					"responseType": {
						Type: "string",
						Enum: enum(supabase.ResponseTypes()...),
					},
				},
			},
		}),
	},
	{
		Name:        ToolListProjects,
		Description: "List all Supabase projects",
		Input: input(nil, map[string]*jsonschema.Schema{
			"random_string": str("Dummy parameter for no-parameter tools"),
		}),
	},
}

var byName = func() map[ToolName]Definition {
	m := make(map[ToolName]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Name] = d
	}
	return m
}()

// Definitions returns every tool definition in catalog order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for name.
func Lookup(name ToolName) (Definition, bool) {
	d, ok := byName[name]
	return d, ok
}
