package errors

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and machine readable code for an error
// alongside the wrapped cause.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Raw)
	}
	return e.Message
}

// Unwrap returns the wrapped cause
func (e *AppError) Unwrap() error {
	return e.Raw
}

// New creates an AppError with explicit status and code
func New(raw error, httpCode int, code ErrorCode, message string) *AppError {
	return &AppError{
		Raw:      raw,
		HTTPCode: httpCode,
		Code:     code,
		Message:  message,
	}
}

// BadRequest creates a 400 error
func BadRequest(raw error, message string) *AppError {
	return New(raw, http.StatusBadRequest, CodeBadRequest, message)
}

// Unauthorized creates a 401 error
func Unauthorized(raw error, message string) *AppError {
	return New(raw, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden creates a 403 error
func Forbidden(raw error, message string) *AppError {
	return New(raw, http.StatusForbidden, CodeForbidden, message)
}

// NotFound creates a 404 error
func NotFound(raw error, message string) *AppError {
	return New(raw, http.StatusNotFound, CodeNotFound, message)
}

// Conflict creates a 409 error
func Conflict(raw error, message string) *AppError {
	return New(raw, http.StatusConflict, CodeConflict, message)
}
