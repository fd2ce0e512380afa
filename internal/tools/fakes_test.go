package tools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/crystaldolphin/supatools/internal/supabase"
)

type upload struct {
	Bucket string
	Path   string
	Body   []byte
	Opts   supabase.UploadOptions
}

type invocation struct {
	Name string
	Body any
	Opts supabase.InvokeOptions
}

// fakeBackend implements every backend interface and records each call.
type fakeBackend struct {
	mu sync.Mutex

	queries     []supabase.Query
	uploads     []upload
	downloads   []string
	invocations []invocation
	listCalls   int

	rows     json.RawMessage
	uploaded supabase.UploadResult
	blob     supabase.Blob
	fnResult any
	projects json.RawMessage
	err      error
}

func (f *fakeBackend) Execute(_ context.Context, q supabase.Query) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeBackend) Upload(_ context.Context, bucket, path string, body []byte, opts supabase.UploadOptions) (supabase.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, upload{Bucket: bucket, Path: path, Body: body, Opts: opts})
	if f.err != nil {
		return supabase.UploadResult{}, f.err
	}
	return f.uploaded, nil
}

func (f *fakeBackend) Download(_ context.Context, bucket, path string) (supabase.Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, bucket+"/"+path)
	if f.err != nil {
		return supabase.Blob{}, f.err
	}
	return f.blob, nil
}

func (f *fakeBackend) Invoke(_ context.Context, name string, body any, opts supabase.InvokeOptions) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invocations = append(f.invocations, invocation{Name: name, Body: body, Opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return f.fnResult, nil
}

func (f *fakeBackend) ListProjects(context.Context) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries) + len(f.uploads) + len(f.downloads) + len(f.invocations) + f.listCalls
}

func newTestDispatcher(f *fakeBackend) *Dispatcher {
	reg := NewDefaultRegistry(Backends{Records: f, Objects: f, Functions: f, Projects: f})
	return NewDispatcher(reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newProjectsServer serves body for every Management API request.
func newProjectsServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
