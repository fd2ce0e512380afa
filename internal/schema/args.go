package schema

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/crystaldolphin/supatools/internal/supabase"
)

// Args is the validated, typed form of a tool's argument bag. Exactly one
// concrete type exists per tool; handlers type-switch on it and never look
// at the raw bag again.
type Args interface {
	ToolName() ToolName
	isArgs()
}

// Filter maps a column to either a scalar (equality) or an object of
// operator → operand pairs.
type Filter map[string]any

type CreateRecordArgs struct {
	Table     string
	Data      map[string]any
	Returning []string
}

type ReadRecordsArgs struct {
	Table  string
	Select []string
	Filter Filter
}

type UpdateRecordArgs struct {
	Table     string
	Data      map[string]any
	Filter    Filter
	Returning []string
}

type DeleteRecordArgs struct {
	Table     string
	Filter    Filter
	Returning []string
}

type UploadFileArgs struct {
	Bucket  string
	Path    string
	File    any
	Options supabase.UploadOptions
}

type DownloadFileArgs struct {
	Bucket string
	Path   string
}

type InvokeFunctionArgs struct {
	Function string
	Params   map[string]any
	Options  supabase.InvokeOptions
}

// ListProjectsArgs carries the placeholder argument some MCP clients insist
// on sending to parameterless tools. It is never used.
type ListProjectsArgs struct {
	Placeholder string
}

func (CreateRecordArgs) ToolName() ToolName   { return ToolCreateRecord }
func (ReadRecordsArgs) ToolName() ToolName    { return ToolReadRecords }
func (UpdateRecordArgs) ToolName() ToolName   { return ToolUpdateRecord }
func (DeleteRecordArgs) ToolName() ToolName   { return ToolDeleteRecord }
func (UploadFileArgs) ToolName() ToolName     { return ToolUploadFile }
func (DownloadFileArgs) ToolName() ToolName   { return ToolDownloadFile }
func (InvokeFunctionArgs) ToolName() ToolName { return ToolInvokeFunction }
func (ListProjectsArgs) ToolName() ToolName   { return ToolListProjects }

func (CreateRecordArgs) isArgs()   {}
func (ReadRecordsArgs) isArgs()    {}
func (UpdateRecordArgs) isArgs()   {}
func (DeleteRecordArgs) isArgs()   {}
func (UploadFileArgs) isArgs()     {}
func (DownloadFileArgs) isArgs()   {}
func (InvokeFunctionArgs) isArgs() {}
func (ListProjectsArgs) isArgs()   {}

// Payload returns the bytes to upload and the content type implied by the
// shape of File. The content type is empty for plain strings, leaving the
// storage default in place.
func (a UploadFileArgs) Payload() ([]byte, string, error) {
	switch f := a.File.(type) {
	case string:
		return []byte(f), "", nil
	case []byte:
		return f, "application/octet-stream", nil
	case map[string]any:
		if enc, ok := f["base64"].(string); ok {
			data, err := base64.StdEncoding.DecodeString(enc)
			if err != nil {
				if data, err = base64.RawStdEncoding.DecodeString(enc); err != nil {
					return nil, "", fmt.Errorf("decode base64 file: %w", err)
				}
			}
			return data, "application/octet-stream", nil
		}
	}
	data, err := json.Marshal(a.File)
	if err != nil {
		return nil, "", fmt.Errorf("encode file: %w", err)
	}
	return data, "application/json", nil
}

// Decode validates raw against the named tool's schema and converts it into
// the tool's Args type.
func Decode(name ToolName, raw map[string]any) (Args, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no schema registered for tool %q", name)
	}
	if err := Validate(def, raw); err != nil {
		return nil, err
	}

	switch name {
	case ToolCreateRecord:
		return CreateRecordArgs{
			Table:     raw["table"].(string),
			Data:      raw["data"].(map[string]any),
			Returning: stringList(raw["returning"]),
		}, nil
	case ToolReadRecords:
		return ReadRecordsArgs{
			Table:  raw["table"].(string),
			Select: stringList(raw["select"]),
			Filter: filter(raw["filter"]),
		}, nil
	case ToolUpdateRecord:
		return UpdateRecordArgs{
			Table:     raw["table"].(string),
			Data:      raw["data"].(map[string]any),
			Filter:    filter(raw["filter"]),
			Returning: stringList(raw["returning"]),
		}, nil
	case ToolDeleteRecord:
		return DeleteRecordArgs{
			Table:     raw["table"].(string),
			Filter:    filter(raw["filter"]),
			Returning: stringList(raw["returning"]),
		}, nil
	case ToolUploadFile:
		args := UploadFileArgs{
			Bucket: raw["bucket"].(string),
			Path:   raw["path"].(string),
			File:   raw["file"],
		}
		if opts, ok := raw["options"].(map[string]any); ok {
			args.Options.CacheControl, _ = opts["cacheControl"].(string)
			args.Options.ContentType, _ = opts["contentType"].(string)
			args.Options.Upsert, _ = opts["upsert"].(bool)
		}
		if _, _, err := args.Payload(); err != nil {
			return nil, &ValidationError{Tool: name, Field: "file.base64", Expected: "base64 string", Reason: "undecodable data"}
		}
		return args, nil
	case ToolDownloadFile:
		return DownloadFileArgs{
			Bucket: raw["bucket"].(string),
			Path:   raw["path"].(string),
		}, nil
	case ToolInvokeFunction:
		args := InvokeFunctionArgs{Function: raw["function"].(string)}
		args.Params, _ = raw["params"].(map[string]any)
		if opts, ok := raw["options"].(map[string]any); ok {
			args.Options.ResponseType, _ = opts["responseType"].(string)
			if hdrs, ok := opts["headers"].(map[string]any); ok {
				args.Options.Headers = make(map[string]string, len(hdrs))
				for k, v := range hdrs {
					args.Options.Headers[k] = v.(string)
				}
			}
		}
		return args, nil
	case ToolListProjects:
		args := ListProjectsArgs{}
		args.Placeholder, _ = raw["random_string"].(string)
		return args, nil
	}
	return nil, fmt.Errorf("no decoder for tool %q", name)
}

func stringList(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, len(s))
		for i, e := range s {
			out[i] = e.(string)
		}
		return out
	}
	return nil
}

func filter(v any) Filter {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Filter(m)
}
