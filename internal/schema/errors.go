package schema

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid tool arguments")

// ValidationError reports the first argument that does not match a tool's
// input schema.
type ValidationError struct {
	Tool     ToolName
	Field    string // dotted path, e.g. "options.upsert"; empty for the bag itself
	Expected string // e.g. "string", "array of string", "one of [json text]"
	Reason   string // "missing", or a description of what was found
}

func (e *ValidationError) Error() string {
	field := e.Field
	if field == "" {
		field = "arguments"
	}
	if e.Reason == "missing" {
		return fmt.Sprintf("%s: invalid arguments: required field %q (%s) is missing", e.Tool, field, e.Expected)
	}
	return fmt.Sprintf("%s: invalid arguments: field %q: expected %s, got %s", e.Tool, field, e.Expected, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
