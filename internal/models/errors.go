package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a domain error for exit-code mapping.
type ErrorCode string

const (
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Exit codes
const (
	ExitOK         = 0
	ExitRuntime    = 1
	ExitValidation = 2
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries a domain error with code.
func IsCode(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// ExitCode maps an error onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsCode(err, ErrCodeInvalid) || IsCode(err, ErrCodeConflict) {
		return ExitValidation
	}
	return ExitRuntime
}

func ErrTaskNotFound(ref string) *Error {
	return NewError(ErrCodeNotFound, "Task not found: "+ref)
}

func ErrProjectNotFound(slug string) *Error {
	return NewError(ErrCodeNotFound, "Project not found: "+slug)
}

func ErrAreaNotFound(name string) *Error {
	return NewError(ErrCodeNotFound, "Area not found: "+name)
}

func ErrInvalidDate(input string) *Error {
	return NewError(ErrCodeInvalid, "Invalid date format: "+input)
}

func ErrInvalidName(name string) *Error {
	return NewError(ErrCodeInvalid, fmt.Sprintf("Invalid name: %q", name))
}

func ErrDuplicateArea(name string) *Error {
	return NewError(ErrCodeConflict, "Area already exists: "+name)
}

// ErrConflictingFlags lists the scheduling flags that cannot be combined.
func ErrConflictingFlags(flags []string) *Error {
	return NewError(ErrCodeInvalid, "Conflicting flags: "+strings.Join(flags, ", "))
}
