package errors

import (
	stderrors "errors"
	"fmt"
)

// FlowError is the unified pipekit error type.
type FlowError struct {
	// Code is a machine-readable error code.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Details contains additional context for the error.
	Details map[string]any
	// Cause is the underlying error that caused this error.
	Cause error
}

// Error returns the string representation of the error.
func (e *FlowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *FlowError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *FlowError) WithCause(cause error) *FlowError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *FlowError) WithDetail(key string, value any) *FlowError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new FlowError.
func New(code ErrorCode, message string) *FlowError {
	return &FlowError{Code: code, Message: message}
}

// Newf creates a new FlowError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *FlowError {
	return &FlowError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// --- Common Error Constructors ---

// Configuration creates a new FlowError for an absent or invalid option.
func Configuration(format string, args ...any) *FlowError {
	return Newf(ErrCodeConfiguration, format, args...)
}

// MissingOption creates a new configuration error for a required option
// that was not supplied.
func MissingOption(plugin, option string) *FlowError {
	return &FlowError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf("no %s supplied", option),
		Details: map[string]any{"plugin": plugin, "option": option},
	}
}

// Composition creates a new FlowError for an invalid sub-flow shape.
func Composition(format string, args ...any) *FlowError {
	return Newf(ErrCodeComposition, format, args...)
}

// Arity creates a new composition error for a context that required an
// exact number of plugins of one kind but observed another.
func Arity(kind string, want, got int) *FlowError {
	return &FlowError{
		Code:    ErrCodeComposition,
		Message: fmt.Sprintf("expected %d %s plugin(s), but got %d", want, kind, got),
		Details: map[string]any{"kind": kind, "want": want, "got": got},
	}
}

// Validation creates a new FlowError for a failed generator check.
func Validation(format string, args ...any) *FlowError {
	return Newf(ErrCodeValidation, format, args...)
}

// Load creates a new FlowError for an unreadable pipeline template.
func Load(source string, cause error) *FlowError {
	return &FlowError{
		Code:    ErrCodeLoad,
		Message: fmt.Sprintf("cannot load pipeline from %q", source),
		Details: map[string]any{"source": source},
		Cause:   cause,
	}
}

// --- Classification ---

// AsFlowError converts an error to a FlowError if possible.
func AsFlowError(err error) (*FlowError, bool) {
	var fe *FlowError
	if stderrors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// hasCode reports whether err is (or wraps) a FlowError with the code.
func hasCode(err error, code ErrorCode) bool {
	if fe, ok := AsFlowError(err); ok {
		return fe.Code == code
	}
	return false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return hasCode(err, ErrCodeConfiguration) }

// IsComposition reports whether err is a composition error.
func IsComposition(err error) bool { return hasCode(err, ErrCodeComposition) }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsSetup reports whether err belongs to the setup phase.
func IsSetup(err error) bool {
	if fe, ok := AsFlowError(err); ok {
		return IsSetupCode(fe.Code)
	}
	return false
}
