package tool

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ErrorCodeNotFound is returned for unknown tool names or absent target files.
	ErrorCodeNotFound = "NOT_FOUND"
	// ErrorCodeInvalidParams is returned when parameter validation fails.
	ErrorCodeInvalidParams = "INVALID_PARAMS"
	// ErrorCodeParseFailure is returned when a document header cannot be decoded.
	ErrorCodeParseFailure = "PARSE_FAILURE"
	// ErrorCodeIOFailure is returned when a filesystem read or write fails.
	ErrorCodeIOFailure = "IO_FAILURE"
	// ErrorCodeCollaboratorFailure is returned when a subprocess or network
	// collaborator fails.
	ErrorCodeCollaboratorFailure = "COLLABORATOR_FAILURE"
	// ErrorCodeExecutionFailed is the generic fallback for tool failures.
	ErrorCodeExecutionFailed = "EXECUTION_FAILED"
)

// Error is a structured failure that flows from tools and the registry to the
// caller without losing its machine-readable code.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	code := strings.TrimSpace(e.Code)
	msg := strings.TrimSpace(e.Message)
	switch {
	case code == "" && msg == "":
		return ErrorCodeExecutionFailed
	case code == "":
		return msg
	case msg == "":
		return code
	default:
		return fmt.Sprintf("%s: %s", code, msg)
	}
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError builds a structured error with the given code.
func NewError(code, format string, args ...any) *Error {
	cleanCode := strings.TrimSpace(code)
	if cleanCode == "" {
		cleanCode = ErrorCodeExecutionFailed
	}
	return &Error{
		Code:    cleanCode,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError builds a structured error around a cause. When the cause already
// carries a code it is preserved unless an explicit code is given.
func WrapError(code string, cause error, format string, args ...any) *Error {
	err := NewError(code, format, args...)
	err.Cause = cause
	if err.Message == "" && cause != nil {
		err.Message = cause.Error()
	}
	return err
}

// WithDetails attaches key/value context to an error and returns it.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e == nil || len(details) == 0 {
		return e
	}
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for key, value := range details {
		e.Details[key] = value
	}
	return e
}

// ErrorCode extracts the structured code from err, or "" when err is not a
// *Error.
func ErrorCode(err error) string {
	var toolErr *Error
	if errors.As(err, &toolErr) && toolErr != nil {
		return toolErr.Code
	}
	return ""
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	return ErrorCode(err) == ErrorCodeNotFound
}

// IsValidation reports whether err carries the INVALID_PARAMS code.
func IsValidation(err error) bool {
	return ErrorCode(err) == ErrorCodeInvalidParams
}
