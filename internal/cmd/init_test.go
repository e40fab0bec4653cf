package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
)

func TestInitCreatesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shipctl.yaml")

	require.NoError(t, execute(t, "init", "--config", cfgPath))

	assert.FileExists(t, cfgPath)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "entryPoint: main")
	assert.Contains(t, string(content), "baseImage: python:3.11-slim")
	assert.Contains(t, string(content), "GEMINI_API_KEY")
}

func TestInitRefusesOverwrite(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shipctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("service: {}\n"), 0o644))

	err := execute(t, "init", "--config", cfgPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitForceOverwrites(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shipctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("stale: true\n"), 0o644))

	require.NoError(t, execute(t, "init", "--config", cfgPath, "--force"))

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
	assert.Contains(t, string(content), "entryPoint: main")
}

func TestInitOutputIsVettable(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shipctl.yaml")

	require.NoError(t, execute(t, "init", "--config", cfgPath))
	require.NoError(t, execute(t, "vet", "--config", cfgPath))
}
