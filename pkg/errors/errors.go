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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Argument errors
	ErrType            ErrorCode = "TYPE"
	ErrValue           ErrorCode = "VALUE"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Lookup errors
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrFolderNotFound ErrorCode = "FOLDER_NOT_FOUND"
	ErrStackUnderflow ErrorCode = "STACK_UNDERFLOW"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// MidirError represents a structured error with code and details
type MidirError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MidirError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MidirError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MidirError) Is(target error) bool {
	var targetErr *MidirError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MidirError with the given code and message
func New(code ErrorCode, message string) *MidirError {
	return &MidirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MidirError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MidirError {
	return &MidirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MidirError
func Wrap(err error, code ErrorCode, message string) *MidirError {
	if err == nil {
		return nil
	}
	return &MidirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MidirError {
	if err == nil {
		return nil
	}
	return &MidirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MidirError) WithDetail(key string, value interface{}) *MidirError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var midirErr *MidirError
	if errors.As(err, &midirErr) {
		return midirErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MidirError
func GetErrorCode(err error) ErrorCode {
	var midirErr *MidirError
	if errors.As(err, &midirErr) {
		return midirErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MidirError
func GetErrorDetails(err error) map[string]interface{} {
	var midirErr *MidirError
	if errors.As(err, &midirErr) {
		return midirErr.Details
	}
	return nil
}
