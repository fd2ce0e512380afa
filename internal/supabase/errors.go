package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrBackend matches every failure reported by, or on the way to, a
	// Supabase service.
	ErrBackend = errors.New("supabase backend error")
	// ErrManagementAPI matches failures of the Management API only.
	ErrManagementAPI = errors.New("supabase management api error")
	// ErrNotConfigured is wrapped when the project URL or key is missing.
	ErrNotConfigured = errors.New("supabase client is not configured")
)

// BackendError is a failure from PostgREST, Storage or Edge Functions.
type BackendError struct {
	Op      string // e.g. "insert", "upload", "invoke"
	Status  int    // HTTP status; 0 when the request never completed
	Code    string
	Message string
	Details string
	Hint    string
	Err     error
}

func (e *BackendError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" && e.Status != 0 {
		msg = http.StatusText(e.Status)
	}

	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(msg)
	if e.Code != "" {
		fmt.Fprintf(&b, " (code %s)", e.Code)
	}
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString(" hint: ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

func (e *BackendError) Unwrap() error { return e.Err }

// ManagementAPIError is a failed call to the Management API. It matches both
// ErrManagementAPI and ErrBackend.
type ManagementAPIError struct {
	Status     int
	StatusText string
	Message    string
	Err        error
}

func (e *ManagementAPIError) Error() string {
	if e.StatusText != "" {
		return "Failed to list projects: " + e.StatusText
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return "Failed to list projects: " + msg
}

func (e *ManagementAPIError) Is(target error) bool {
	return target == ErrManagementAPI || target == ErrBackend
}

func (e *ManagementAPIError) Unwrap() error { return e.Err }

// errorBody covers both the PostgREST shape {code, message, details, hint}
// and the Storage shape {statusCode, error, message}.
type errorBody struct {
	Code       any    `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details"`
	Hint       string `json:"hint"`
	Error      string `json:"error"`
	StatusCode any    `json:"statusCode"`
}

func decodeError(op string, status int, body []byte) *BackendError {
	berr := &BackendError{Op: op, Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		berr.Message = strings.TrimSpace(string(body))
		if berr.Message == "" {
			berr.Message = http.StatusText(status)
		}
		return berr
	}

	berr.Code = stringify(eb.Code)
	berr.Message = eb.Message
	berr.Details = stringify(eb.Details)
	berr.Hint = eb.Hint
	if berr.Message == "" {
		berr.Message = eb.Error
	} else if eb.Error != "" && berr.Details == "" {
		berr.Details = eb.Error
	}
	if berr.Code == "" {
		berr.Code = stringify(eb.StatusCode)
	}
	if berr.Message == "" {
		berr.Message = http.StatusText(status)
	}
	return berr
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
