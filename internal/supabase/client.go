// Package supabase is a small HTTP client for the parts of Supabase the tool
// server talks to: PostgREST, Storage, Edge Functions and the Management API.
package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const clientInfo = "supatools"

// Client talks to one Supabase project. It is safe for concurrent use.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient builds a client for the project at baseURL authenticated with key.
// Missing values are reported by each call, not here, so that tools which do
// not need the project keep working.
func NewClient(baseURL, key string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the project URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) newRequest(
	ctx context.Context,
	op, method string,
	elems []string,
	query url.Values,
	body io.Reader,
) (*http.Request, error) {
	if c.baseURL == "" || c.key == "" {
		return nil, &BackendError{Op: op, Err: ErrNotConfigured, Message: "SUPABASE_URL and SUPABASE_KEY must be set"}
	}
	endpoint, err := url.JoinPath(c.baseURL, elems...)
	if err != nil {
		return nil, &BackendError{Op: op, Err: fmt.Errorf("build url: %w", err)}
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &BackendError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("X-Client-Info", clientInfo)
	return req, nil
}

// do sends req and reads the whole body. Non-2xx statuses are returned
// as-is; callers decide how to report them.
func (c *Client) do(op string, req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &BackendError{Op: op, Err: fmt.Errorf("HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &BackendError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return resp, data, nil
}

func isSuccess(status int) bool { return status >= 200 && status < 300 }
