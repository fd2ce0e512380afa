package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// Validate checks a raw argument bag against the named tool's input schema
// and returns the first violation. A nil bag is treated as an empty object.
//
// Fields are visited in a fixed order: required fields in declaration order,
// then the remaining declared fields by name, then undeclared fields (only
// when the schema constrains them). Undeclared fields are otherwise ignored.
// An explicit null for an optional field counts as absent; for a required
// field it is a violation.
func Validate(def Definition, raw map[string]any) error {
	var v any = raw
	if raw == nil {
		v = map[string]any{}
	}
	if verr := validateValue(def.Input, "", v); verr != nil {
		verr.Tool = def.Name
		return verr
	}
	return nil
}

func validateValue(s *jsonschema.Schema, path string, v any) *ValidationError {
	if s == nil {
		return nil
	}
	if s.Type != "" && !hasType(s.Type, v) {
		return &ValidationError{Field: path, Expected: describe(s), Reason: describeValue(v)}
	}
	if len(s.Enum) > 0 && !inEnum(s.Enum, v) {
		return &ValidationError{Field: path, Expected: describe(s), Reason: fmt.Sprintf("%v", v)}
	}

	switch s.Type {
	case "object":
		return validateObject(s, path, v.(map[string]any))
	case "array":
		for i, item := range toSlice(v) {
			if verr := validateValue(s.Items, fmt.Sprintf("%s[%d]", path, i), item); verr != nil {
				return verr
			}
		}
	}
	return nil
}

func validateObject(s *jsonschema.Schema, path string, m map[string]any) *ValidationError {
	required := make(map[string]bool, len(s.Required))
	order := make([]string, 0, len(s.Properties))
	for _, name := range s.Required {
		required[name] = true
		order = append(order, name)
	}
	optional := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		if !required[name] {
			optional = append(optional, name)
		}
	}
	sort.Strings(optional)
	order = append(order, optional...)

	for _, name := range order {
		child := join(path, name)
		val, ok := m[name]
		if required[name] && !ok {
			return &ValidationError{Field: child, Expected: describe(s.Properties[name]), Reason: "missing"}
		}
		if !ok || (val == nil && !required[name]) {
			continue
		}
		if val == nil {
			return &ValidationError{Field: child, Expected: describe(s.Properties[name]), Reason: "null"}
		}
		if verr := validateValue(s.Properties[name], child, val); verr != nil {
			return verr
		}
	}

	if s.AdditionalProperties == nil {
		return nil
	}
	extra := make([]string, 0, len(m))
	for name := range m {
		if _, declared := s.Properties[name]; !declared {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		if verr := validateValue(s.AdditionalProperties, join(path, name), m[name]); verr != nil {
			return verr
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func hasType(typ string, v any) bool {
	switch typ {
	case "string":
		_, ok := v.(string)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		switch v.(type) {
		case []any, []string:
			return true
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		_, ok := toFloat(v)
		return ok
	case "integer":
		f, ok := toFloat(v)
		return ok && f == math.Trunc(f)
	case "null":
		return v == nil
	}
	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toSlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	}
	return nil
}

func inEnum(enum []any, v any) bool {
	for _, e := range enum {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}

func describe(s *jsonschema.Schema) string {
	if s == nil || (s.Type == "" && len(s.Enum) == 0) {
		return "any value"
	}
	if len(s.Enum) > 0 {
		return fmt.Sprintf("one of %v", s.Enum)
	}
	switch s.Type {
	case "array":
		if s.Items != nil && s.Items.Type != "" {
			return "array of " + s.Items.Type
		}
	case "object":
		if s.AdditionalProperties != nil && s.AdditionalProperties.Type != "" {
			return "object of " + s.AdditionalProperties.Type
		}
	}
	return s.Type
}

func describeValue(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any, []string:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
