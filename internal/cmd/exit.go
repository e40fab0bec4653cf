package cmd

import (
	"errors"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
)

// Exit codes. Warnings never change the exit code: a verify run that
// completes with WARN diagnostics still exits 0.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates configuration validation failed.
	ExitValidationError = 2

	// ExitEnvironmentError indicates the dependency sandbox could not be created.
	ExitEnvironmentError = 3

	// ExitWriteError indicates a deployment artifact could not be written.
	ExitWriteError = 4

	// ExitNotFound indicates a required file or tool was not found.
	ExitNotFound = 5

	// ExitDependencyError indicates a dependency install failed in strict mode.
	ExitDependencyError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitEnvironmentError:
		return "Environment Error"
	case ExitWriteError:
		return "Write Error"
	case ExitNotFound:
		return "Not Found"
	case ExitDependencyError:
		return "Dependency Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrEnvironmentCreation):
		return ExitEnvironmentError
	case errors.Is(err, oerrors.ErrWrite):
		return ExitWriteError
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrDependencyInstall):
		return ExitDependencyError
	default:
		return ExitGeneralError
	}
}
