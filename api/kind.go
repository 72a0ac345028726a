package api

import "github.com/jmgilman/go/errors"

// ErrorKind categorizes a failed API call.
// The set of kinds is closed; every failure maps to exactly one of them.
type ErrorKind string

const (
	// KindNetwork indicates no response was received from the backend.
	KindNetwork ErrorKind = "Network"

	// KindValidation indicates the backend rejected the request payload.
	KindValidation ErrorKind = "Validation"

	// KindAuthentication indicates the session is missing or expired.
	KindAuthentication ErrorKind = "Authentication"

	// KindAuthorization indicates the caller lacks access to the resource.
	KindAuthorization ErrorKind = "Authorization"

	// KindNotFound indicates the requested resource does not exist.
	KindNotFound ErrorKind = "NotFound"

	// KindServerError indicates the backend failed or is unavailable.
	KindServerError ErrorKind = "ServerError"

	// KindUnknown indicates a failure that fits no other kind.
	KindUnknown ErrorKind = "Unknown"
)

// Kinds returns every ErrorKind.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindNetwork,
		KindValidation,
		KindAuthentication,
		KindAuthorization,
		KindNotFound,
		KindServerError,
		KindUnknown,
	}
}

// kindCodes maps each kind onto the platform error code used when a
// descriptor leaves the facade as a Go error.
var kindCodes = map[ErrorKind]errors.ErrorCode{
	KindNetwork:        errors.CodeNetwork,
	KindValidation:     errors.CodeInvalidInput,
	KindAuthentication: errors.CodeUnauthorized,
	KindAuthorization:  errors.CodeForbidden,
	KindNotFound:       errors.CodeNotFound,
	KindServerError:    errors.CodeUnavailable,
	KindUnknown:        errors.CodeUnknown,
}

// Code returns the platform error code for the kind.
// Unrecognized kinds map to errors.CodeUnknown.
func (k ErrorKind) Code() errors.ErrorCode {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return errors.CodeUnknown
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	return string(k)
}
