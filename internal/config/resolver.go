package config

import (
	"os"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "shipctl.yaml"

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SHIPCTL_CONFIG env, (3) ./shipctl.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) ResolveConfigPathResult {
	result := ResolveConfigPathResult{
		Shadowed: make(map[Source]string),
	}

	envValue := os.Getenv("SHIPCTL_CONFIG")

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = DefaultConfigFile
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = DefaultConfigFile
	default:
		result.ConfigPath = DefaultConfigFile
		result.Source = SourceDefault
	}

	return result
}
