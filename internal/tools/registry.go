package tools

import (
	"encoding/json"
	"fmt"

	"github.com/crystaldolphin/supatools/internal/schema"
)

// Registry holds a set of named tools in catalog order.
type Registry struct {
	tools map[schema.ToolName]Tool
	order []schema.ToolName
}

// Get returns the tool with the given name.
func (r *Registry) Get(name schema.ToolName) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) Len() int { return len(r.order) }

// Definitions returns the definition of every tool in catalog order.
func (r *Registry) Definitions() []schema.Definition {
	defs := make([]schema.Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// CatalogEntry is the advertised form of one tool.
type CatalogEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Catalog returns the advertised entry of every tool in catalog order.
func (r *Registry) Catalog() ([]CatalogEntry, error) {
	defs := r.Definitions()
	entries := make([]CatalogEntry, 0, len(defs))
	for _, d := range defs {
		input, err := d.InputJSON()
		if err != nil {
			return nil, fmt.Errorf("encode input schema of %s: %w", d.Name, err)
		}
		entries = append(entries, CatalogEntry{
			Name:        string(d.Name),
			Description: d.Description,
			InputSchema: input,
		})
	}
	return entries, nil
}
