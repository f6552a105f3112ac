package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so clones still satisfy errors.Is against sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound        = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden       = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized    = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation      = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal        = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUpstream        = New("UPSTREAM_SERVICE_ERROR", http.StatusBadGateway, "upstream service unavailable")
	ErrMalformedReport = New("MALFORMED_REPORT", http.StatusBadGateway, "report generation failed")
	ErrRateLimited     = New("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	if err.Details != nil {
		clone.Details = make(map[string]interface{}, len(err.Details))
		for k, v := range err.Details {
			clone.Details[k] = v
		}
	}
	return &clone
}

// WithDetail returns a copy of err carrying an extra detail entry.
func WithDetail(err *Error, key string, value interface{}) *Error {
	clone := Clone(err, "")
	if clone == nil {
		return nil
	}
	if clone.Details == nil {
		clone.Details = map[string]interface{}{}
	}
	clone.Details[key] = value
	return clone
}

// Validation builds a validation error naming the offending field.
func Validation(field, message string) *Error {
	return WithDetail(Clone(ErrValidation, message), "field", field)
}

// TeamNotFound reports a team that has never submitted feedback.
func TeamNotFound(teamNumber int) *Error {
	return WithDetail(Clone(ErrNotFound, "no feedback found for the specified team number"), "teamNumber", teamNumber)
}

// Upstream wraps a failure of an outbound dependency. Callers may retry.
func Upstream(service string, err error) *Error {
	e := WithDetail(ErrUpstream, "service", service)
	e.Details["retryable"] = true
	e.Message = fmt.Sprintf("%s service unavailable", service)
	e.Err = err
	return e
}

// MalformedReport signals generated output that is not valid report JSON.
func MalformedReport(reason string, err error) *Error {
	e := Clone(ErrMalformedReport, "report generation failed: "+reason)
	e.Err = err
	return e
}
