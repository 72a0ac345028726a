package api

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Classifier turns failures into descriptors using a fixed message set.
type Classifier struct {
	messages Messages
}

// NewClassifier returns a classifier using the given messages.
func NewClassifier(messages Messages) *Classifier {
	return &Classifier{messages: messages}
}

var defaultClassifier = NewClassifier(DefaultMessages())

// Classify maps a failure to a descriptor using the default messages.
// See Classifier.Classify.
func Classify(err error) *ErrorDescriptor {
	return defaultClassifier.Classify(err)
}

// ClassifyEnvelope builds a descriptor for an unsuccessful envelope using the
// default messages. See Classifier.ClassifyEnvelope.
func ClassifyEnvelope(env *RawEnvelope, kind ErrorKind) *ErrorDescriptor {
	return defaultClassifier.ClassifyEnvelope(env, kind)
}

// Classify maps a failure to exactly one descriptor.
//
// Failures without an HTTP response are Network. HTTP failures are
// classified by status code:
//
//	400           Validation, server message, field errors passed through
//	401           Authentication, fixed message
//	403           Authorization, fixed message
//	404           NotFound, server message
//	500, 502, 503 ServerError, fixed message
//	other         Unknown, server message or the failure's own message
//
// Anything else is Unknown with the error's own message.
func (c *Classifier) Classify(err error) *ErrorDescriptor {
	if err == nil {
		return nil
	}

	var netErr *NetworkFailure
	if errors.As(err, &netErr) || isContextError(err) {
		return &ErrorDescriptor{
			Kind:    KindNetwork,
			Message: c.messages.Network,
			cause:   err,
		}
	}

	var httpErr *HTTPFailure
	if errors.As(err, &httpErr) {
		return c.classifyStatus(httpErr, err)
	}

	return &ErrorDescriptor{
		Kind:    KindUnknown,
		Message: firstNonEmpty(strings.TrimSpace(err.Error()), c.messages.Unknown),
		cause:   err,
	}
}

func (c *Classifier) classifyStatus(f *HTTPFailure, cause error) *ErrorDescriptor {
	d := &ErrorDescriptor{
		StatusCode: f.StatusCode,
		cause:      cause,
	}

	switch f.StatusCode {
	case http.StatusBadRequest:
		d.Kind = KindValidation
		d.Message = firstNonEmpty(f.Message, c.messages.Validation)
		d.FieldErrors = copyFieldErrors(f.FieldErrors)
	case http.StatusUnauthorized:
		d.Kind = KindAuthentication
		d.Message = c.messages.Authentication
	case http.StatusForbidden:
		d.Kind = KindAuthorization
		d.Message = c.messages.Authorization
	case http.StatusNotFound:
		d.Kind = KindNotFound
		d.Message = firstNonEmpty(f.Message, c.messages.NotFound)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		d.Kind = KindServerError
		d.Message = c.messages.ServerError
	default:
		d.Kind = KindUnknown
		d.Message = firstNonEmpty(f.Message, f.Error(), c.messages.Unknown)
	}

	return d
}

// ClassifyEnvelope builds a descriptor for an envelope that arrived with
// isSuccess=false. The kind is chosen by the caller since the envelope
// carries no status-derived category.
func (c *Classifier) ClassifyEnvelope(env *RawEnvelope, kind ErrorKind) *ErrorDescriptor {
	d := &ErrorDescriptor{
		Kind:    kind,
		Message: c.messages.generic(kind),
	}
	if env == nil {
		return d
	}
	if msg := strings.TrimSpace(env.Message); msg != "" {
		d.Message = msg
	}
	d.FieldErrors = copyFieldErrors(env.Errors)
	return d
}

// ToastText returns the notification text for a descriptor.
// Validation failures list every field message on its own line after the
// main message, fields in name order. All other kinds use the message as is.
func ToastText(d *ErrorDescriptor) string {
	if d == nil {
		return ""
	}
	if d.Kind != KindValidation || !d.HasFieldErrors() {
		return d.Message
	}

	fields := make([]string, 0, len(d.FieldErrors))
	for field := range d.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := []string{d.Message}
	for _, field := range fields {
		lines = append(lines, d.FieldErrors[field]...)
	}
	return strings.Join(lines, "\n")
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
