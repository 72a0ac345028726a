package api

import (
	"context"
	"fmt"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/transport.go -pkg mocks . Transport

// Transport performs a single HTTP exchange against the dashboard backend.
//
// Implementations issue exactly one request of the given method against the
// configured base URL joined with endpoint, encoding body as JSON when it is
// non-nil. They return the decoded envelope for any response that carries
// one, even when the envelope reports a logical failure.
//
// Failures are reported with the typed failure union:
//   - *NetworkFailure when no response was received
//   - *HTTPFailure when a response arrived with an error status or without
//     a decodable envelope
//
// Implementations must not retry.
type Transport interface {
	Do(ctx context.Context, method, endpoint string, body any) (*RawEnvelope, error)
}

// NetworkFailure reports a request that never produced an HTTP response:
// DNS failures, refused connections, TLS errors, or cancellation.
type NetworkFailure struct {
	Method   string
	Endpoint string
	Err      error
}

// Error implements error.
func (f *NetworkFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Method, f.Endpoint, f.Err)
}

// Unwrap returns the underlying transport error.
func (f *NetworkFailure) Unwrap() error {
	return f.Err
}

// HTTPFailure reports a response with an error status or an undecodable body.
type HTTPFailure struct {
	Method     string
	Endpoint   string
	StatusCode int

	// Body is the raw response body.
	Body []byte

	// Message is the message extracted from the body, if any.
	Message string

	// FieldErrors are the per-field messages extracted from the body, if any.
	FieldErrors map[string][]string
}

// Error implements error.
func (f *HTTPFailure) Error() string {
	if f.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", f.Method, f.Endpoint, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s %s: request failed with status %d", f.Method, f.Endpoint, f.StatusCode)
}
