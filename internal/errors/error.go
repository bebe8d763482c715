package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryUsage  Category = "usage"
	CategoryEffect Category = "effect"
	CategoryConfig Category = "config"
	CategoryRender Category = "render"
)

// HookError is a structured error with a stable code, a suggestion and an
// optional wrapped cause.
type HookError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually naming the component and slot.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HookError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a HookError with the same code.
func (e *HookError) Is(target error) bool {
	t, ok := target.(*HookError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *HookError) WithDetail(d string) *HookError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *HookError) WithDetailf(format string, args ...any) *HookError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HookError) WithSuggestion(s string) *HookError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *HookError) Wrap(err error) *HookError {
	e.Wrapped = err
	return e
}

// New creates a HookError from a registered error code.
func New(code string) *HookError {
	template, ok := registry[code]
	if !ok {
		return &HookError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HookError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Code returns the code of the first HookError in err's chain, or "".
func Code(err error) string {
	var he *HookError
	if errors.As(err, &he) {
		return he.Code
	}
	return ""
}

// FromPanic converts a recovered panic value into an error.
// HookErrors and plain errors are returned as-is.
func FromPanic(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return fmt.Errorf("panic: %v", v)
	}
}
