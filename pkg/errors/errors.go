// Package errors provides typed errors for devsetup
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrMissingTool indicates a required external tool is not on PATH
	ErrMissingTool
	// ErrCommand indicates an external command exited non-zero
	ErrCommand
	// ErrInternal indicates a filesystem or serialization failure
	ErrInternal
)

// Process exit codes. A failing external command propagates its own
// exit code instead of ExitInfraError.
const (
	ExitSuccess    = 0
	ExitInfraError = 1
)

// SetupError is the base error type for all devsetup errors
type SetupError struct {
	Type    ErrorType
	Message string
	Cause   error
	// Code is the exit code of the failing external command.
	// Only meaningful for ErrCommand.
	Code int
}

// Error returns the error message
func (e *SetupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *SetupError) Unwrap() error {
	return e.Cause
}

// New creates a new SetupError
func New(errType ErrorType, message string, cause error) *SetupError {
	return &SetupError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *SetupError {
	return New(ErrConfig, message, cause)
}

// MissingToolError creates an error for a required tool absent from PATH
func MissingToolError(tool string) *SetupError {
	return New(ErrMissingTool, fmt.Sprintf("required tool %q not found in PATH", tool), nil)
}

// CommandError creates an error for an external command that exited non-zero
func CommandError(command string, code int) *SetupError {
	return &SetupError{
		Type:    ErrCommand,
		Message: fmt.Sprintf("command %q exited with code %d", command, code),
		Code:    code,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var setupErr *SetupError
	if err == nil {
		return false
	}
	if errors.As(err, &setupErr) {
		return setupErr.Type == errType
	}
	return false
}

// ExitStatus maps an error to the process exit code.
// External command failures propagate the command's own exit code;
// everything else is an infrastructure error.
func ExitStatus(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var setupErr *SetupError
	if errors.As(err, &setupErr) && setupErr.Type == ErrCommand && setupErr.Code != 0 {
		return setupErr.Code
	}
	return ExitInfraError
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrMissingTool:
		return "MISSING_TOOL"
	case ErrCommand:
		return "COMMAND"
	case ErrInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
