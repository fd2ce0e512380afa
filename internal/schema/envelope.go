package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Content is one element of a tool response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Envelope is the uniform success response of every tool: exactly one text
// content element holding the JSON form of the result.
type Envelope struct {
	Content []Content `json:"content"`
}

// Text returns the text of the single content element.
func (e Envelope) Text() string {
	if len(e.Content) == 0 {
		return ""
	}
	return e.Content[0].Text
}

// NewEnvelope serializes result into an envelope.
//
// json.RawMessage results are compacted but otherwise kept byte-for-byte, so
// key order from the backend survives. A nil result, an empty body or JSON
// null becomes "[]". HTML characters are not escaped.
func NewEnvelope(result any) (Envelope, error) {
	text, err := serialize(result)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Content: []Content{{Type: "text", Text: text}}}, nil
}

func serialize(result any) (string, error) {
	if raw, ok := result.(json.RawMessage); ok {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return "[]", nil
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", fmt.Errorf("serialize result: %w", err)
		}
		return buf.String(), nil
	}
	if result == nil {
		return "[]", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("serialize result: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
