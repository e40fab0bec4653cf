package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
)

// execute runs the root command with the given args, silencing cobra output.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	return root.Execute()
}

// missingConfig returns a --config path that does not exist, so tests run
// against the built-in defaults.
func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shipctl.yaml")
}

func TestNewGenerateCmd(t *testing.T) {
	cmd := NewGenerateCmd()

	assert.Equal(t, "generate", cmd.Use)
	assert.Contains(t, cmd.Aliases, "generate-deployment-artifacts")
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
	assert.NotNil(t, cmd.Flags().Lookup("entrypoint"))
	assert.NotNil(t, cmd.Flags().Lookup("port-var"))
	assert.NotNil(t, cmd.Flags().Lookup("base-image"))
}

func TestGenerateWritesCatalogue(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "generate", "--dir", dir, "--config", missingConfig(t))
	require.NoError(t, err)

	for _, name := range []string{"Procfile", "runtime.txt", ".env.example", "Dockerfile", ".dockerignore"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	procfile, err := os.ReadFile(filepath.Join(dir, "Procfile"))
	require.NoError(t, err)
	assert.Equal(t, "web: uvicorn main:app --host 0.0.0.0 --port $PORT\n", string(procfile))

	envExample, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, "GEMINI_API_KEY=your_gemini_api_key_here\n", string(envExample))
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfgPath := missingConfig(t)

	require.NoError(t, execute(t, "generate", "--dir", dir, "--config", cfgPath))

	first := make(map[string][]byte)
	for _, name := range []string{"Procfile", "runtime.txt", ".env.example", "Dockerfile", ".dockerignore"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		first[name] = content
	}

	require.NoError(t, execute(t, "generate", "--dir", dir, "--config", cfgPath))

	for name, content := range first {
		after, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, content, after, "%s must be byte-identical across runs", name)
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "generate", "--dir", dir, "--config", missingConfig(t),
		"--entrypoint", "server", "--port-var", "HTTP_PORT",
		"--base-image", "python:3.12-slim", "--secret", "GEMINI_API_KEY", "--secret", "MAPS_API_KEY")
	require.NoError(t, err)

	procfile, err := os.ReadFile(filepath.Join(dir, "Procfile"))
	require.NoError(t, err)
	assert.Equal(t, "web: uvicorn server:app --host 0.0.0.0 --port $HTTP_PORT\n", string(procfile))

	dockerfile, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(dockerfile), "FROM python:3.12-slim")
	assert.Contains(t, string(dockerfile), "--port $HTTP_PORT")

	envExample, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t,
		"GEMINI_API_KEY=your_gemini_api_key_here\nMAPS_API_KEY=your_maps_api_key_here\n",
		string(envExample))
}

func TestGenerateReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "shipctl.yaml")

	content := `
service:
  entryPoint: api
runtime:
  version: 3.12.1
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	require.NoError(t, execute(t, "generate", "--dir", dir, "--config", cfgPath))

	procfile, err := os.ReadFile(filepath.Join(dir, "Procfile"))
	require.NoError(t, err)
	assert.Contains(t, string(procfile), "uvicorn api:app")

	pin, err := os.ReadFile(filepath.Join(dir, "runtime.txt"))
	require.NoError(t, err)
	assert.Equal(t, "python-3.12.1\n", string(pin))
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	err := execute(t, "generate", "--dir", t.TempDir(), "--config", missingConfig(t),
		"--entrypoint", "main; rm -rf /")

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestGenerateWriteFailureAborts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "nested")

	err := execute(t, "generate", "--dir", dir, "--config", missingConfig(t))

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrWrite))
	assert.Equal(t, ExitWriteError, ExitCodeFromError(err))

	// All-or-nothing: nothing was written
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
