//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrEnvironmentCreation, ErrDependencyInstall)
	assert.NotEqual(t, ErrWrite, ErrEnvironmentCreation)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "write failed",
		Message:  "could not write artifact Dockerfile",
		Location: "/deploy/Dockerfile",
		Context:  map[string]string{"reason": "permission denied"},
		Hint:     "Check directory permissions",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: write failed")
	assert.Contains(t, output, "Location: /deploy/Dockerfile")
	assert.Contains(t, output, "reason: permission denied")
	assert.Contains(t, output, "could not write artifact Dockerfile")
	assert.Contains(t, output, "Hint: Check directory permissions")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewEnvironmentCreationError(t *testing.T) {
	err := NewEnvironmentCreationError(
		"venv module failed",
		"/srv/app/venv",
		"Install python3-venv",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrEnvironmentCreation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "environment creation failed", detail.Type)
	assert.Equal(t, "/srv/app/venv", detail.Location)
	assert.Equal(t, "Install python3-venv", detail.Hint)
}

func TestNewDependencyInstallError(t *testing.T) {
	err := NewDependencyInstallError("fastapi", "no matching distribution")

	assert.True(t, errors.Is(err, ErrDependencyInstall))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "fastapi", detail.Context["package"])
	assert.Equal(t, "no matching distribution", detail.Context["reason"])
}

func TestNewWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewWriteError("Procfile", cause)

	assert.True(t, errors.Is(err, ErrWrite))
	assert.Contains(t, err.Error(), "Procfile")
	assert.Contains(t, errors.Unwrap(err).Error(), "disk full")
}

func TestExitError(t *testing.T) {
	inner := Wrap(ErrWrite, "generate failed")
	exit := NewExitError(inner, 4)

	assert.Equal(t, 4, exit.Code)
	assert.True(t, errors.Is(exit, ErrWrite))
	assert.Equal(t, inner.Error(), exit.Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "config check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "config check failed")
}
