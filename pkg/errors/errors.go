package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Build pipeline errors
	ErrMissingInput ErrorCode = "MISSING_INPUT"
	ErrTraversal    ErrorCode = "TRAVERSAL"
	ErrStaging      ErrorCode = "STAGING"
	ErrCopy         ErrorCode = "COPY"
	ErrArchive      ErrorCode = "ARCHIVE"
)

// PackupError represents a structured error with code and details
type PackupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PackupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PackupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PackupError) Is(target error) bool {
	var targetErr *PackupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PackupError with the given code and message
func New(code ErrorCode, message string) *PackupError {
	return &PackupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PackupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PackupError {
	return &PackupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PackupError
func Wrap(err error, code ErrorCode, message string) *PackupError {
	if err == nil {
		return nil
	}
	return &PackupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PackupError {
	if err == nil {
		return nil
	}
	return &PackupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PackupError) WithDetail(key string, value interface{}) *PackupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PackupError) WithDetails(details map[string]interface{}) *PackupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var packupErr *PackupError
	if errors.As(err, &packupErr) {
		return packupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PackupError
func GetErrorCode(err error) ErrorCode {
	var packupErr *PackupError
	if errors.As(err, &packupErr) {
		return packupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PackupError
func GetErrorDetails(err error) map[string]interface{} {
	var packupErr *PackupError
	if errors.As(err, &packupErr) {
		return packupErr.Details
	}
	return nil
}
