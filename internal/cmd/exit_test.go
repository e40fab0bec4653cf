package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitGeneralError},
		{name: "validation sentinel", err: oerrors.Wrap(oerrors.ErrValidation, "bad config"), want: ExitValidationError},
		{name: "environment sentinel", err: oerrors.Wrap(oerrors.ErrEnvironmentCreation, "no venv"), want: ExitEnvironmentError},
		{name: "write sentinel", err: oerrors.Wrap(oerrors.ErrWrite, "disk full"), want: ExitWriteError},
		{name: "not found sentinel", err: oerrors.Wrap(oerrors.ErrNotFound, "missing"), want: ExitNotFound},
		{name: "dependency sentinel", err: oerrors.Wrap(oerrors.ErrDependencyInstall, "pip failed"), want: ExitDependencyError},
		{name: "exit error wins", err: oerrors.NewExitError(errors.New("custom"), ExitWriteError), want: ExitWriteError},
		{name: "detail error unwraps to sentinel", err: oerrors.NewWriteError("Procfile", errors.New("denied")), want: ExitWriteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Environment Error", ExitCodeName(ExitEnvironmentError))
	assert.Equal(t, "Write Error", ExitCodeName(ExitWriteError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
