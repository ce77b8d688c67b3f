package errors

import "fmt"

// Error types for the intake service
var (
	// ErrAuthFailure is returned when the client-credentials grant against
	// the Kleos token endpoint fails. Fatal for the whole submission.
	ErrAuthFailure = &ServiceError{
		Code:    "AUTH_FAILURE",
		Message: "Failed to authenticate against the Kleos token endpoint",
		Status:  502,
	}

	// ErrUpstreamCall is returned when a Kleos API call fails at the
	// transport level or returns a non-2xx status.
	ErrUpstreamCall = &ServiceError{
		Code:    "UPSTREAM_CALL_FAILED",
		Message: "Kleos API call failed",
		Status:  502,
	}

	// ErrUpstreamData is returned when a Kleos API call succeeded but the
	// response is missing a field the pipeline needs (identity id, case id).
	ErrUpstreamData = &ServiceError{
		Code:    "UPSTREAM_DATA_MISSING",
		Message: "Kleos API response is missing an expected field",
		Status:  502,
	}

	// ErrInvalidRequest is used for syntactically invalid requests (missing or
	// malformed parameters) where a 400 response is appropriate.
	ErrInvalidRequest = &ServiceError{
		Code:    "INVALID_REQUEST",
		Message: "Invalid request",
		Status:  400,
	}

	ErrInternalServer = &ServiceError{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "Internal server error",
		Status:  500,
	}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with a ServiceError
func Wrap(err error, serviceErr *ServiceError) *ServiceError {
	return &ServiceError{
		Code:    serviceErr.Code,
		Message: serviceErr.Message,
		Status:  serviceErr.Status,
		Err:     err,
	}
}

// Is reports whether err carries the given code, unwrapping as needed.
func Is(err error, serviceErr *ServiceError) bool {
	for err != nil {
		if se, ok := err.(*ServiceError); ok && se.Code == serviceErr.Code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
