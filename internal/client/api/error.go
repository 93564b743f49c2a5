package api

import (
	"fmt"
	"net/http"
	"sort"
)

// Error is the normalized representation of any failed API call: non-2xx
// responses, transport failures, and undecodable bodies all collapse into
// it. A call either returns its typed payload or an *Error, never both.
type Error struct {
	// Status is the HTTP status code, or 0 for transport-level failures.
	Status int
	// Message is the server's top-level error message, if any.
	Message string
	// FieldErrors maps field names to their validation messages, in the
	// order the server sent them. Nil unless the failure was a
	// field-keyed validation error.
	FieldErrors map[string][]string

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.cause != nil:
		return e.cause.Error()
	case e.Status != 0:
		return fmt.Sprintf("request failed with status %d", e.Status)
	default:
		return "unexpected error"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// IsValidation reports whether the failure carries field-keyed messages.
func (e *Error) IsValidation() bool { return len(e.FieldErrors) > 0 }

// IsUnauthorized reports whether the server rejected the credential.
func (e *Error) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }

// IsNotFound reports whether the requested resource does not exist.
func (e *Error) IsNotFound() bool { return e.Status == http.StatusNotFound }

// fields returns the field names in deterministic order.
func (e *Error) fields() []string {
	names := make([]string, 0, len(e.FieldErrors))
	for name := range e.FieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// errorBody is the wire shape servers use for failures: a top-level
// message, field-keyed validation errors, or both.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
