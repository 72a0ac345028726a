package api

import (
	"fmt"

	"github.com/jmgilman/go/errors"
)

// ErrorDescriptor is the normalized form of a failed API call.
//
// Descriptors are produced by Classify and ClassifyEnvelope and handed to
// exactly one consumer: a per-call error handler or the client's Reporter.
// A descriptor satisfies the error interface so it can be returned from
// batch steps and inspected with errors.As.
type ErrorDescriptor struct {
	// Kind is the category of the failure.
	Kind ErrorKind `json:"kind"`

	// Message is the user-facing message for the failure.
	Message string `json:"message"`

	// FieldErrors maps field names to their validation messages.
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`

	// StatusCode is the HTTP status of the failed response.
	// Zero when no HTTP error status was involved.
	StatusCode int `json:"statusCode,omitempty"`

	cause error
}

// Error implements error. The text is the user-facing message with its
// platform code and, when known, the HTTP status. The transport failure is
// left out; it is reachable through Unwrap.
func (d *ErrorDescriptor) Error() string {
	msg := d.Message
	if d.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, d.StatusCode)
	}
	return errors.New(d.Kind.Code(), msg).Error()
}

// Unwrap returns the transport failure the descriptor was built from, if any.
func (d *ErrorDescriptor) Unwrap() error {
	return d.cause
}

// PlatformError converts the descriptor into a platform error carrying the
// code for its kind. The status code and field errors are attached as context.
func (d *ErrorDescriptor) PlatformError() errors.PlatformError {
	var err errors.PlatformError
	if d.cause != nil {
		err = errors.Wrap(d.cause, d.Kind.Code(), d.Message)
	} else {
		err = errors.New(d.Kind.Code(), d.Message)
	}
	ctx := map[string]interface{}{"kind": string(d.Kind)}
	if d.StatusCode != 0 {
		ctx["status_code"] = d.StatusCode
	}
	if len(d.FieldErrors) > 0 {
		ctx["field_errors"] = d.FieldErrors
	}
	return errors.WithContextMap(err, ctx)
}

// Retryable reports whether the failure is transient according to the
// platform error classification. The facade itself never retries.
func (d *ErrorDescriptor) Retryable() bool {
	return errors.New(d.Kind.Code(), d.Message).Classification().IsRetryable()
}

// HasFieldErrors reports whether the descriptor carries per-field messages.
func (d *ErrorDescriptor) HasFieldErrors() bool {
	return len(d.FieldErrors) > 0
}

// copyFieldErrors returns an independent copy of a field error map.
// Returns nil for an empty map.
func copyFieldErrors(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for field, msgs := range in {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}
