// Package errors provides sentinel errors for the shipctl CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a configuration validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or tool was not found.
	ErrNotFound = errors.New("not found")

	// ErrEnvironmentCreation indicates the dependency sandbox could not be created.
	ErrEnvironmentCreation = errors.New("environment creation error")

	// ErrDependencyInstall indicates a package could not be installed into the sandbox.
	ErrDependencyInstall = errors.New("dependency install error")

	// ErrWrite indicates a deployment artifact could not be written.
	ErrWrite = errors.New("write error")
)

// DetailError captures structured error information with a remediation hint.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewEnvironmentCreationError creates a sandbox-creation error with details.
func NewEnvironmentCreationError(message, location, hint string) error {
	return &DetailError{
		Type:     "environment creation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrEnvironmentCreation,
	}
}

// NewDependencyInstallError creates a per-package install error.
// The package name and failure reason are carried as context.
func NewDependencyInstallError(name, reason string) error {
	return &DetailError{
		Type:    "dependency install failed",
		Message: fmt.Sprintf("could not install %s", name),
		Context: map[string]string{"package": name, "reason": reason},
		Hint:    "Check the package name and your network connection, then re-run 'shipctl verify'.",
		Cause:   ErrDependencyInstall,
	}
}

// NewWriteError creates an artifact write error.
func NewWriteError(path string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  fmt.Sprintf("could not write artifact %s", path),
		Location: path,
		Hint:     "Check that the output directory exists and is writable.",
		Cause:    fmt.Errorf("%w: %w", ErrWrite, cause),
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed indicates the command layer already rendered the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
