package cmdutils

import (
	"encoding/json"
	"fmt"
	"io"
)

const Logo = "⚡"

// PrintResponse writes a tool response followed by a newline. Empty text
// writes nothing.
func PrintResponse(w io.Writer, text string) {
	if text == "" {
		return
	}

	fmt.Fprintln(w, text)
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
