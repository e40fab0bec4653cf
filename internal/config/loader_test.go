package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "shipctl.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Service.EntryPoint)
	assert.Equal(t, "PORT", cfg.Service.PortVar)
	assert.Equal(t, 5*time.Minute, cfg.Verify.InstallTimeout)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipctl.yaml")

	content := `
service:
  entryPoint: server
  portVar: HTTP_PORT
runtime:
  baseImage: python:3.12-slim
secrets:
  - GEMINI_API_KEY
  - MAPS_API_KEY
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := NewLoader().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "server", cfg.Service.EntryPoint)
	assert.Equal(t, "HTTP_PORT", cfg.Service.PortVar)
	assert.Equal(t, "python:3.12-slim", cfg.Runtime.BaseImage)
	assert.Equal(t, []string{"GEMINI_API_KEY", "MAPS_API_KEY"}, cfg.Secrets)

	// Untouched values keep their defaults
	assert.Equal(t, "app", cfg.Service.AppObject)
	assert.Equal(t, "venv", cfg.Runtime.SandboxDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipctl.yaml")

	content := `
runtime:
  baseImage: python:3.12-slim
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	t.Setenv("SHIPCTL_BASE_IMAGE", "python:3.13-slim")
	t.Setenv("SHIPCTL_ENTRY_POINT", "svc")

	cfg, err := NewLoader().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "python:3.13-slim", cfg.Runtime.BaseImage)
	assert.Equal(t, "svc", cfg.Service.EntryPoint)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipctl.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("service: [not a map"), 0o644))

	_, err := NewLoader().Load(configPath)
	assert.Error(t, err)
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipctl.yaml")

	exists, err := ConfigFileExists(configPath)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configPath, []byte("{}"), 0o644))

	exists, err = ConfigFileExists(configPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDefaultConfigYAMLRoundTrip(t *testing.T) {
	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipctl.yaml")
	require.NoError(t, os.WriteFile(configPath, data, 0o644))

	cfg, err := NewLoader().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Service, cfg.Service)
	assert.Equal(t, DefaultConfig().Runtime, cfg.Runtime)
	assert.Equal(t, DefaultConfig().Verify, cfg.Verify)
}
