package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Response types understood by Invoke.
const (
	ResponseJSON        = "json"
	ResponseText        = "text"
	ResponseArrayBuffer = "arraybuffer"
)

// ResponseTypes lists every value accepted as InvokeOptions.ResponseType.
func ResponseTypes() []string {
	return []string{ResponseJSON, ResponseText, ResponseArrayBuffer}
}

// InvokeOptions are the per-call options of an Edge Function invocation.
type InvokeOptions struct {
	Headers map[string]string
	// ResponseType forces how the response body is decoded. When empty the
	// response Content-Type decides.
	ResponseType string
}

// Invoke calls the Edge Function name with body as its JSON payload. A nil
// body sends no payload.
//
// The result is a json.RawMessage for JSON responses, a string for text and
// a Blob for binary data.
func (c *Client) Invoke(ctx context.Context, name string, body any, opts InvokeOptions) (any, error) {
	const op = "invoke"

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &BackendError{Op: op, Err: fmt.Errorf("marshal body: %w", err)}
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, op, http.MethodPost, []string{"functions", "v1", name}, nil, payload)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, data, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("X-Relay-Error") == "true" {
		return nil, &BackendError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: "Relay Error invoking the Edge Function",
			Details: strings.TrimSpace(string(data)),
		}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &BackendError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: "Edge Function returned a non-2xx status code",
			Details: strings.TrimSpace(string(data)),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	switch responseKind(opts.ResponseType, contentType) {
	case ResponseJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return json.RawMessage(nil), nil
		}
		if !json.Valid(data) {
			return nil, &BackendError{Op: op, Status: resp.StatusCode, Message: "Edge Function returned invalid JSON"}
		}
		return json.RawMessage(data), nil
	case ResponseArrayBuffer:
		return NewBlob(data, contentType), nil
	default:
		return string(data), nil
	}
}

func responseKind(requested, contentType string) string {
	if requested != "" {
		return requested
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	switch mediaType {
	case "application/json":
		return ResponseJSON
	case "application/octet-stream":
		return ResponseArrayBuffer
	}
	return ResponseText
}
