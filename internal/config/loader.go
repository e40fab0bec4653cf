package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for shipctl configuration.
const envPrefix = "SHIPCTL"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("service.entryPoint", "SHIPCTL_ENTRY_POINT")
	_ = v.BindEnv("service.portVar", "SHIPCTL_PORT_VAR")
	_ = v.BindEnv("runtime.version", "SHIPCTL_RUNTIME_VERSION")
	_ = v.BindEnv("runtime.baseImage", "SHIPCTL_BASE_IMAGE")
	_ = v.BindEnv("runtime.sandboxDir", "SHIPCTL_SANDBOX_DIR")
	_ = v.BindEnv("runtime.requirements", "SHIPCTL_REQUIREMENTS")
	_ = v.BindEnv("verify.strict", "SHIPCTL_STRICT")

	// Defaults match the service's existing structure
	defaults := DefaultConfig()
	v.SetDefault("service.entryPoint", defaults.Service.EntryPoint)
	v.SetDefault("service.appObject", defaults.Service.AppObject)
	v.SetDefault("service.portVar", defaults.Service.PortVar)
	v.SetDefault("service.defaultPort", defaults.Service.DefaultPort)
	v.SetDefault("runtime.version", defaults.Runtime.Version)
	v.SetDefault("runtime.minVersion", defaults.Runtime.MinVersion)
	v.SetDefault("runtime.baseImage", defaults.Runtime.BaseImage)
	v.SetDefault("runtime.sandboxDir", defaults.Runtime.SandboxDir)
	v.SetDefault("runtime.requirements", defaults.Runtime.Requirements)
	v.SetDefault("secrets", defaults.Secrets)
	v.SetDefault("verify.strict", defaults.Verify.Strict)
	v.SetDefault("verify.installTimeout", defaults.Verify.InstallTimeout)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing config file is not an error; defaults and environment
// variables still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
		// Config file not found is OK, we'll use defaults + env vars
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	_, err := os.Stat(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
