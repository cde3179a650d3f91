package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel error kinds for the Zeppelin HTTP status taxonomy.
// Use errors.Is() to check.
var (
	// ErrValidation signals a rejected request body or parameter (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing resource (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate resource (HTTP 409).
	ErrConflict = errors.New("conflict")
	// ErrServer signals a server-side failure (HTTP 5xx).
	ErrServer = errors.New("server error")
)

// Error is the typed error returned for any non-success API response.
// It carries the server's message and the HTTP status code, and unwraps
// to one of the sentinel kinds above when the status maps to one.
type Error struct {
	Message    string
	StatusCode int

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("zeppelin: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap returns the sentinel kind, or nil for unclassified statuses.
func (e *Error) Unwrap() error { return e.kind }

// Classify maps a non-success HTTP response to a taxonomy error.
// The mapping depends only on (status, body): 400, 404 and 409 map to their
// sentinels, any 5xx maps to ErrServer, and every other status >= 300 yields
// a bare *Error with no kind.
func Classify(status int, body []byte) error {
	var kind error
	switch {
	case status == 400:
		kind = ErrValidation
	case status == 404:
		kind = ErrNotFound
	case status == 409:
		kind = ErrConflict
	case status >= 500:
		kind = ErrServer
	}
	return &Error{
		Message:    extractMessage(body),
		StatusCode: status,
		kind:       kind,
	}
}

// extractMessage pulls the "error" field from a JSON error body.
// A malformed or non-JSON body degrades to the raw response text.
func extractMessage(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
		return parsed.Error
	}
	if len(bytes.TrimSpace(body)) > 0 {
		return string(body)
	}
	return "request failed"
}
