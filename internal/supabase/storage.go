package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultCacheControl = "3600"
	defaultContentType  = "text/plain;charset=UTF-8"
)

// UploadOptions mirrors the Storage upload options. Empty fields take the
// Storage defaults.
type UploadOptions struct {
	CacheControl string
	ContentType  string
	Upsert       bool
}

// UploadResult identifies a stored object.
type UploadResult struct {
	Path     string `json:"path"`
	ID       string `json:"id"`
	FullPath string `json:"fullPath"`
}

// Upload stores body at path in bucket. Without Upsert an existing object
// makes the call fail.
func (c *Client) Upload(ctx context.Context, bucket, path string, body []byte, opts UploadOptions) (UploadResult, error) {
	const op = "upload"
	path = cleanPath(path)

	req, err := c.newRequest(ctx, op, http.MethodPost, objectPath(bucket, path), nil, bytes.NewReader(body))
	if err != nil {
		return UploadResult{}, err
	}
	cacheControl := opts.CacheControl
	if cacheControl == "" {
		cacheControl = defaultCacheControl
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	req.Header.Set("Cache-Control", "max-age="+cacheControl)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Upsert", strconv.FormatBool(opts.Upsert))

	resp, data, err := c.do(op, req)
	if err != nil {
		return UploadResult{}, err
	}
	if !isSuccess(resp.StatusCode) {
		return UploadResult{}, decodeError(op, resp.StatusCode, data)
	}

	var out struct {
		ID  string `json:"Id"`
		Key string `json:"Key"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return UploadResult{}, &BackendError{Op: op, Status: resp.StatusCode, Message: "unexpected upload response", Err: err}
	}
	return UploadResult{Path: path, ID: out.ID, FullPath: out.Key}, nil
}

// Download fetches the object at path in bucket.
func (c *Client) Download(ctx context.Context, bucket, path string) (Blob, error) {
	const op = "download"
	req, err := c.newRequest(ctx, op, http.MethodGet, objectPath(bucket, cleanPath(path)), nil, nil)
	if err != nil {
		return Blob{}, err
	}

	resp, data, err := c.do(op, req)
	if err != nil {
		return Blob{}, err
	}
	if !isSuccess(resp.StatusCode) {
		return Blob{}, decodeError(op, resp.StatusCode, data)
	}
	return NewBlob(data, resp.Header.Get("Content-Type")), nil
}

func objectPath(bucket, path string) []string {
	elems := []string{"storage", "v1", "object", bucket}
	return append(elems, strings.Split(path, "/")...)
}

// cleanPath drops leading, trailing and repeated slashes.
func cleanPath(path string) string {
	parts := strings.Split(path, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}
