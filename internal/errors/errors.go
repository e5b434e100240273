// Package errors provides domain-specific error types for the devconf service.
//
// This package defines structured errors with error codes, making it easier to
// handle and test different failure conditions consistently across the
// application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeEnvironment indicates an operation attempted outside the
	// permitted (test/development) environment.
	ErrCodeEnvironment ErrorCode = "ENVIRONMENT_NOT_ALLOWED"

	// ErrCodePathEmpty indicates a required path argument was missing or blank.
	ErrCodePathEmpty ErrorCode = "PATH_EMPTY"

	// ErrCodePathHidden indicates a read attempted on a hidden path.
	ErrCodePathHidden ErrorCode = "PATH_HIDDEN"

	// ErrCodePathRestricted indicates a write attempted on a restricted path.
	ErrCodePathRestricted ErrorCode = "PATH_RESTRICTED"

	// ErrCodeNotFound indicates a path did not resolve within the document.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeNullValue indicates a resolved value was null/absent.
	ErrCodeNullValue ErrorCode = "NULL_VALUE"

	// ErrCodeDocumentMissing indicates the backing settings file does not exist.
	ErrCodeDocumentMissing ErrorCode = "DOCUMENT_MISSING"

	// ErrCodeParse indicates the backing settings file is not valid JSON.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeMutation indicates an unexpected fault during in-place tree mutation.
	ErrCodeMutation ErrorCode = "MUTATION_ERROR"

	// ErrCodeAudit indicates the change recorder failed. Never surfaced to
	// callers; logged internally only.
	ErrCodeAudit ErrorCode = "AUDIT_ERROR"

	// ErrCodeConfig indicates a service configuration error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewEnvironmentError creates an error for operations outside the allowed environment.
func NewEnvironmentError(message string) *Error {
	return New(ErrCodeEnvironment, message)
}

// NewPathEmptyError creates an error for a missing/blank path argument.
func NewPathEmptyError(message string) *Error {
	return New(ErrCodePathEmpty, message)
}

// NewPathHiddenError creates an error for a read of a hidden path.
func NewPathHiddenError(path string) *Error {
	return New(ErrCodePathHidden, fmt.Sprintf("path %q is hidden", path))
}

// NewPathRestrictedError creates an error for a write to a restricted path.
func NewPathRestrictedError(path string) *Error {
	return New(ErrCodePathRestricted, fmt.Sprintf("path %q is restricted and cannot be modified", path))
}

// NewNotFoundError creates an error for a path that does not resolve.
func NewNotFoundError(path string) *Error {
	return New(ErrCodeNotFound, fmt.Sprintf("configuration path %q not found", path))
}

// NewNullValueError creates an error for a resolved but absent value.
func NewNullValueError(path string) *Error {
	return New(ErrCodeNullValue, fmt.Sprintf("configuration path %q has no value", path))
}

// NewDocumentMissingError creates an error for a missing settings file.
func NewDocumentMissingError(path string) *Error {
	return New(ErrCodeDocumentMissing, fmt.Sprintf("settings file not found: %s", path))
}

// NewParseError creates an error for an unparsable settings file.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewMutationError creates an error for a fault during document mutation.
func NewMutationError(message string, cause error) *Error {
	return Wrap(ErrCodeMutation, message, cause)
}

// NewConfigError creates a new service configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}
