package errors

import (
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrValidation ErrorCode = iota + 1000
	ErrUnauthorized
	ErrNotFound
	ErrStorage
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to the HTTP status the API returns for it.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func Validation(field, message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Field:   field,
		Message: message,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrUnauthorized,
		Message: message,
	}
}

// NotFound carries the exact message the API exposes; id lookups report the
// bare "not found" while the login path names the role it tried.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: message,
	}
}

// Storage wraps an underlying storage failure. The driver message is passed
// through verbatim; callers must not retry or translate it.
func Storage(err error) *AppError {
	return &AppError{
		Code:    ErrStorage,
		Message: err.Error(),
		Err:     err,
	}
}
