package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultManagementURL is the public Management API.
const DefaultManagementURL = "https://api.supabase.com"

// ManagementClient calls the account-level Management API with a personal
// access token. It shares nothing with Client.
type ManagementClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewManagementClient(baseURL, token string, httpClient *http.Client) *ManagementClient {
	if baseURL == "" {
		baseURL = DefaultManagementURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ManagementClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// ListProjects returns the projects visible to the token as a compact JSON
// array. A body that is valid JSON but not an array is wrapped into a
// one-element array.
func (m *ManagementClient) ListProjects(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/v1/projects", nil)
	if err != nil {
		return nil, &ManagementAPIError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &ManagementAPIError{Err: fmt.Errorf("HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &ManagementAPIError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ManagementAPIError{Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, &ManagementAPIError{Status: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	out := buf.Bytes()
	if len(out) == 0 || out[0] != '[' {
		out = append(append([]byte{'['}, out...), ']')
	}
	return json.RawMessage(out), nil
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = resp.Status
	}
	return text
}
