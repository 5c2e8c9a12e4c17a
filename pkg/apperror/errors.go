package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error independently of its HTTP status
type Kind string

const (
	KindValidation      Kind = "validation"
	KindPaymentMismatch Kind = "payment_mismatch"
	KindStoreWrite      Kind = "store_write"
	KindNotFound        Kind = "not_found"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindBadRequest      Kind = "bad_request"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int                    `json:"code"`
	Kind    Kind                   `json:"kind"`
	Message string                 `json:"message"`
	Errors  []FieldError           `json:"errors,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`

	cause error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying store or driver error
func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindForStatus(code),
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewPaymentMismatchError reports a settlement amount that differs from the
// pending balance. Amounts are passed already formatted for display.
func NewPaymentMismatchError(expected, received string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindPaymentMismatch,
		Message: fmt.Sprintf("Payment must equal the exact pending amount ₹%s", expected),
		Details: map[string]interface{}{
			"expected": expected,
			"received": received,
		},
	}
}

// NewStoreWriteError wraps a rejected insert, update or delete
func NewStoreWriteError(operation string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindStoreWrite,
		Message: "Failed to " + operation,
		cause:   cause,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}

func kindForStatus(code int) Kind {
	switch code {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusBadRequest:
		return KindBadRequest
	}
	return KindInternal
}
