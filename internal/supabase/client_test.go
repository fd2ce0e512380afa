package supabase

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKey = "service-key"

// recorded is one request seen by a fakeServer.
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeServer records requests and replies with a fixed response.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recorded

	status  int
	headers map[string]string
	body    string
}

func newFakeServer(t *testing.T, status int, body string, headers map[string]string) *fakeServer {
	t.Helper()
	fs := &fakeServer{status: status, body: body, headers: headers}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   data,
		})
		fs.mu.Unlock()

		for k, v := range fs.headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(fs.status)
		_, _ = io.WriteString(w, fs.body)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) only(t *testing.T) recorded {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.Len(t, fs.requests, 1)
	return fs.requests[0]
}

func (fs *fakeServer) all() []recorded {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recorded(nil), fs.requests...)
}

func (fs *fakeServer) client() *Client {
	return NewClient(fs.URL+"/", testKey, WithHTTPClient(fs.Client()))
}

func decodeJSON(t *testing.T, data []byte) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}
