package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuddy/shipctl/internal/config"
)

func TestNewVerifyCmd(t *testing.T) {
	cmd := NewVerifyCmd()

	assert.Equal(t, "verify", cmd.Use)
	assert.Contains(t, cmd.Aliases, "verify-environment")
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("sandbox"))
	assert.NotNil(t, cmd.Flags().Lookup("requirements"))
	assert.NotNil(t, cmd.Flags().Lookup("strict"))
	assert.NotNil(t, cmd.Flags().Lookup("install-timeout"))
}

func TestApplyVerifyFlags(t *testing.T) {
	cmd := NewVerifyCmd()
	require.NoError(t, cmd.Flags().Set("sandbox", ".venv"))
	require.NoError(t, cmd.Flags().Set("strict", "true"))
	require.NoError(t, cmd.Flags().Set("install-timeout", "30s"))

	cfg := config.DefaultConfig()
	applyVerifyFlags(cmd, cfg)

	assert.Equal(t, ".venv", cfg.Runtime.SandboxDir)
	assert.True(t, cfg.Verify.Strict)
	assert.Equal(t, 30*time.Second, cfg.Verify.InstallTimeout)

	// Unset flags leave config values untouched
	assert.Equal(t, "requirements.txt", cfg.Runtime.Requirements)
}

func TestApplyVerifyFlagsUnchanged(t *testing.T) {
	cmd := NewVerifyCmd()

	cfg := config.DefaultConfig()
	cfg.Runtime.SandboxDir = "custom-venv"
	applyVerifyFlags(cmd, cfg)

	assert.Equal(t, "custom-venv", cfg.Runtime.SandboxDir,
		"config value must survive when the flag is not set")
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"verify", "generate", "init", "vet", "version"} {
		assert.True(t, names[want], "root should have %s subcommand", want)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
}
