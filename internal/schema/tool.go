// Package schema is the single source of truth for the tools supatools
// exposes: their names, descriptions and input schemas, the validator that
// enforces those schemas, and the typed argument values produced from them.
package schema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolName is the canonical name of a tool.
type ToolName string

const (
	ToolCreateRecord   ToolName = "create_record"
	ToolReadRecords    ToolName = "read_records"
	ToolUpdateRecord   ToolName = "update_record"
	ToolDeleteRecord   ToolName = "delete_record"
	ToolUploadFile     ToolName = "upload_file"
	ToolDownloadFile   ToolName = "download_file"
	ToolInvokeFunction ToolName = "invoke_function"
	ToolListProjects   ToolName = "list_projects"
)

// Definition describes one tool. Definitions are built once and must be
// treated as read-only; the Input schema is shared between the validator and
// the advertised catalog.
type Definition struct {
	Name        ToolName
	Description string
	Input       *jsonschema.Schema
}

// InputJSON returns the input schema as JSON, in the shape MCP expects for
// a tool's inputSchema.
func (d Definition) InputJSON() (json.RawMessage, error) {
	return json.Marshal(d.Input)
}
