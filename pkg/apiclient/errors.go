package apiclient

import "fmt"

// NetworkError reports a transport-level failure: the request could not be
// built or sent, or the response body could not be read.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response (HTTP %d): %v", e.Method, e.URL, e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaError reports valid JSON that does not match the expected record
// shape. Index is the offending element for list responses, or -1.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := "schema mismatch"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" in field %q", e.Field)
	}
	return msg + ": " + e.Reason
}

// Unwrap returns the underlying error, if any.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response. It is only returned by clients
// created with WithStatusCheck(true).
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: server returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
