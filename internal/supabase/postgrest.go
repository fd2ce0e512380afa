package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

var httpMethods = map[Method]string{
	MethodSelect: http.MethodGet,
	MethodInsert: http.MethodPost,
	MethodUpdate: http.MethodPatch,
	MethodDelete: http.MethodDelete,
}

// Execute runs q against /rest/v1 and returns the response rows as raw JSON.
// Mutations ask PostgREST to return the affected rows.
func (c *Client) Execute(ctx context.Context, q Query) (json.RawMessage, error) {
	op := string(q.method)
	method, ok := httpMethods[q.method]
	if !ok {
		return nil, &BackendError{Op: op, Message: fmt.Sprintf("unsupported query method %q", q.method)}
	}

	var body io.Reader
	if q.method == MethodInsert || q.method == MethodUpdate {
		data, err := json.Marshal(q.body)
		if err != nil {
			return nil, &BackendError{Op: op, Err: fmt.Errorf("marshal body: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, op, method, []string{"rest", "v1", q.table}, q.Values(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if q.method != MethodSelect {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, data, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, decodeError(op, resp.StatusCode, data)
	}
	if len(bytes.TrimSpace(data)) > 0 && !json.Valid(data) {
		return nil, &BackendError{Op: op, Status: resp.StatusCode, Message: "response is not valid JSON"}
	}
	return json.RawMessage(data), nil
}
