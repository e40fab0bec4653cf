// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
)

// ServiceConfig describes the web service the artifacts are generated for.
type ServiceConfig struct {
	// EntryPoint is the service's entry module (the "main" in "uvicorn main:app").
	// Env: SHIPCTL_ENTRY_POINT, Default: "main"
	EntryPoint string `mapstructure:"entryPoint" yaml:"entryPoint"`

	// AppObject is the ASGI application object inside the entry module.
	// Default: "app"
	AppObject string `mapstructure:"appObject" yaml:"appObject"`

	// PortVar is the environment variable the service reads its listen port from.
	// Env: SHIPCTL_PORT_VAR, Default: "PORT"
	PortVar string `mapstructure:"portVar" yaml:"portVar"`

	// DefaultPort is the port declared in the container build file.
	// Default: 8000
	DefaultPort int `mapstructure:"defaultPort" yaml:"defaultPort"`
}

// RuntimeConfig describes the Python runtime and dependency sandbox.
type RuntimeConfig struct {
	// Version is the exact interpreter version pinned for the hosting platform.
	// Env: SHIPCTL_RUNTIME_VERSION, Default: "3.11.9"
	Version string `mapstructure:"version" yaml:"version"`

	// MinVersion is the minimum interpreter version accepted by verify.
	// Default: "3.9.0"
	MinVersion string `mapstructure:"minVersion" yaml:"minVersion"`

	// BaseImage is the container base image tag.
	// Env: SHIPCTL_BASE_IMAGE, Default: "python:3.11-slim"
	BaseImage string `mapstructure:"baseImage" yaml:"baseImage"`

	// SandboxDir is the virtual environment directory, relative to the project.
	// Env: SHIPCTL_SANDBOX_DIR, Default: "venv"
	SandboxDir string `mapstructure:"sandboxDir" yaml:"sandboxDir"`

	// Requirements is the dependency manifest file.
	// Default: "requirements.txt"
	Requirements string `mapstructure:"requirements" yaml:"requirements"`
}

// VerifyConfig contains verification behavior settings.
type VerifyConfig struct {
	// Strict escalates a dependency install failure to a non-zero exit.
	// Env: SHIPCTL_STRICT, Default: false
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// InstallTimeout bounds each per-package install subprocess.
	// Default: 5m
	InstallTimeout time.Duration `mapstructure:"installTimeout" yaml:"installTimeout"`
}

// Config represents the shipctl configuration.
// Both verify and generate read the one resolved Config so every generated
// artifact references identical entry point, port variable, and image values.
type Config struct {
	// Service contains service-specific settings.
	Service ServiceConfig `mapstructure:"service" yaml:"service"`

	// Runtime contains interpreter and sandbox settings.
	Runtime RuntimeConfig `mapstructure:"runtime" yaml:"runtime"`

	// Secrets lists environment variables the service needs at runtime.
	// Only presence is ever checked; values are never read or stored.
	Secrets []string `mapstructure:"secrets" yaml:"secrets"`

	// Exclude lists extra glob patterns for the build-exclusion list,
	// merged with the mandatory patterns.
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty"`

	// Verify contains verification behavior settings.
	Verify VerifyConfig `mapstructure:"verify" yaml:"verify"`
}

// DefaultConfig returns a Config with all default values populated,
// matching the service's existing structure.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			EntryPoint:  "main",
			AppObject:   "app",
			PortVar:     "PORT",
			DefaultPort: 8000,
		},
		Runtime: RuntimeConfig{
			Version:      "3.11.9",
			MinVersion:   "3.9.0",
			BaseImage:    "python:3.11-slim",
			SandboxDir:   "venv",
			Requirements: "requirements.txt",
		},
		Secrets: []string{"GEMINI_API_KEY"},
		Verify: VerifyConfig{
			Strict:         false,
			InstallTimeout: 5 * time.Minute,
		},
	}
}

// StartCommand returns the exact command a process supervisor uses to start
// the service, binding all interfaces on the configured port variable.
// The process manifest and the container build file both render this value,
// which keeps them consistent by construction.
func (c *Config) StartCommand() string {
	return fmt.Sprintf("uvicorn %s:%s --host 0.0.0.0 --port $%s",
		c.Service.EntryPoint, c.Service.AppObject, c.Service.PortVar)
}

var (
	moduleNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	envVarNameRe = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
)

// Validate checks the configuration for values the generator and verifier
// cannot work with. Used by 'shipctl vet'.
func (c *Config) Validate() error {
	if !moduleNameRe.MatchString(c.Service.EntryPoint) {
		return oerrors.NewValidationError(
			fmt.Sprintf("entry point %q is not a valid module name", c.Service.EntryPoint),
			"service.entryPoint",
			"Use the service's Python module name, e.g. 'main'.")
	}
	if !moduleNameRe.MatchString(c.Service.AppObject) {
		return oerrors.NewValidationError(
			fmt.Sprintf("app object %q is not a valid attribute name", c.Service.AppObject),
			"service.appObject",
			"Use the ASGI application attribute, e.g. 'app'.")
	}
	if !envVarNameRe.MatchString(c.Service.PortVar) {
		return oerrors.NewValidationError(
			fmt.Sprintf("port variable %q is not a valid environment variable name", c.Service.PortVar),
			"service.portVar",
			"Use an uppercase name like 'PORT'.")
	}
	if c.Service.DefaultPort < 1 || c.Service.DefaultPort > 65535 {
		return oerrors.NewValidationError(
			fmt.Sprintf("default port %d is out of range", c.Service.DefaultPort),
			"service.defaultPort",
			"Use a port between 1 and 65535.")
	}
	if _, err := semver.NewVersion(c.Runtime.Version); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("runtime version %q is not a valid version", c.Runtime.Version),
			"runtime.version",
			"Pin an exact interpreter version, e.g. '3.11.9'.")
	}
	if _, err := semver.NewVersion(c.Runtime.MinVersion); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("minimum runtime version %q is not a valid version", c.Runtime.MinVersion),
			"runtime.minVersion",
			"Use a version like '3.9.0'.")
	}
	if strings.TrimSpace(c.Runtime.BaseImage) == "" {
		return oerrors.NewValidationError(
			"base image is empty",
			"runtime.baseImage",
			"Set a base image tag, e.g. 'python:3.11-slim'.")
	}
	if strings.TrimSpace(c.Runtime.SandboxDir) == "" {
		return oerrors.NewValidationError(
			"sandbox directory is empty",
			"runtime.sandboxDir",
			"Set the virtual environment directory, e.g. 'venv'.")
	}
	if strings.TrimSpace(c.Runtime.Requirements) == "" {
		return oerrors.NewValidationError(
			"requirements file is empty",
			"runtime.requirements",
			"Set the dependency manifest path, e.g. 'requirements.txt'.")
	}
	for _, s := range c.Secrets {
		if !envVarNameRe.MatchString(s) {
			return oerrors.NewValidationError(
				fmt.Sprintf("secret %q is not a valid environment variable name", s),
				"secrets",
				"Use uppercase names like 'GEMINI_API_KEY'.")
		}
	}
	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("exclude pattern %q is not a valid glob", pattern),
				"exclude",
				"Use glob patterns like '*.log' or 'data/'.")
		}
	}
	return nil
}
