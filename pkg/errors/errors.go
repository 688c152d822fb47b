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
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Option errors
	ErrOptionNotFound ErrorCode = "OPTION_NOT_FOUND"
	ErrOptionFailed   ErrorCode = "OPTION_FAILED"

	// Variable file errors
	ErrMalformedVariable ErrorCode = "MALFORMED_VARIABLE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// TmplfillError represents a structured error with code and details
type TmplfillError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TmplfillError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TmplfillError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TmplfillError) Is(target error) bool {
	var targetErr *TmplfillError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TmplfillError with the given code and message
func New(code ErrorCode, message string) *TmplfillError {
	return &TmplfillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TmplfillError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TmplfillError {
	return &TmplfillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TmplfillError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *TmplfillError {
	if err == nil {
		return nil
	}
	return &TmplfillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TmplfillError {
	if err == nil {
		return nil
	}
	return &TmplfillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TmplfillError) WithDetail(key string, value interface{}) *TmplfillError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TmplfillError) WithDetails(details map[string]interface{}) *TmplfillError {
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
	var tfErr *TmplfillError
	if errors.As(err, &tfErr) {
		return tfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TmplfillError
func GetErrorCode(err error) ErrorCode {
	var tfErr *TmplfillError
	if errors.As(err, &tfErr) {
		return tfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TmplfillError
func GetErrorDetails(err error) map[string]interface{} {
	var tfErr *TmplfillError
	if errors.As(err, &tfErr) {
		return tfErr.Details
	}
	return nil
}

// IsConfigurationError reports whether err belongs to the configuration family
// (load, parse or validation failures of a settings document).
func IsConfigurationError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return true
	}
	return false
}

// IsFileAccessError reports whether err was raised while reading, writing or
// creating files and folders.
func IsFileAccessError(err error) bool {
	switch GetErrorCode(err) {
	case ErrFileNotFound, ErrFileAccess, ErrFileWrite, ErrDirCreate:
		return true
	}
	return false
}
