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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"
	ErrCancelled      ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Store errors
	ErrConnect      ErrorCode = "CONNECT"
	ErrQuery        ErrorCode = "QUERY"
	ErrExec         ErrorCode = "EXEC"
	ErrTableMissing ErrorCode = "TABLE_MISSING"
	ErrConstraint   ErrorCode = "CONSTRAINT"

	// Console errors
	ErrRender      ErrorCode = "RENDER"
	ErrInputClosed ErrorCode = "INPUT_CLOSED"
)

// BasesError represents a structured error with code and details
type BasesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BasesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BasesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BasesError) Is(target error) bool {
	var targetErr *BasesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BasesError with the given code and message
func New(code ErrorCode, message string) *BasesError {
	return &BasesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BasesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BasesError {
	return &BasesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BasesError
func Wrap(err error, code ErrorCode, message string) *BasesError {
	if err == nil {
		return nil
	}
	return &BasesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BasesError {
	if err == nil {
		return nil
	}
	return &BasesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BasesError) WithDetail(key string, value interface{}) *BasesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BasesError) WithDetails(details map[string]interface{}) *BasesError {
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
	var basesErr *BasesError
	if errors.As(err, &basesErr) {
		return basesErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BasesError
func GetErrorCode(err error) ErrorCode {
	var basesErr *BasesError
	if errors.As(err, &basesErr) {
		return basesErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BasesError
func GetErrorDetails(err error) map[string]interface{} {
	var basesErr *BasesError
	if errors.As(err, &basesErr) {
		return basesErr.Details
	}
	return nil
}

// Message returns the user-facing text of err: the messages of the chain
// without error codes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var basesErr *BasesError
	if !errors.As(err, &basesErr) {
		return err.Error()
	}
	if basesErr.Wrapped != nil {
		return basesErr.Message + ": " + Message(basesErr.Wrapped)
	}
	return basesErr.Message
}
