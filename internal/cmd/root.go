// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/travelbuddy/shipctl/internal/config"
	"github.com/travelbuddy/shipctl/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	shipConfig    *config.Config
	resolvedPath  config.ResolveConfigPathResult
	configLoadErr error
)

// NewRootCmd creates the root command for the shipctl CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shipctl",
		Short: "Environment verifier and deployment artifact generator",
		Long: `shipctl prepares a runnable local environment for the Travel Buddy
service and generates the deployment configuration files needed to ship it.

It provides commands to:
  - Verify the local runtime, dependency sandbox, and required secrets
  - Generate the deployment artifact bundle (Procfile, runtime pin,
    secret template, Dockerfile, build exclusion list)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (env: SHIPCTL_CONFIG, default: ./shipctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)
	configLoadErr = nil

	resolvedPath = config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})

	output.Debug("resolved config path",
		"path", resolvedPath.ConfigPath,
		"source", resolvedPath.Source)
	for source, shadowed := range resolvedPath.Shadowed {
		output.Debug("shadowed by higher precedence",
			"shadowed_source", source,
			"shadowed_value", shadowed)
	}

	// Don't fail here; commands that don't need config (init, version)
	// must still work with a broken or absent config file.
	cfg, err := config.NewLoader().Load(resolvedPath.ConfigPath)
	if err != nil {
		output.Debug("config load error", "error", err)
		configLoadErr = err
		cfg = config.DefaultConfig()
	}
	shipConfig = cfg

	return nil
}

// GetConfig returns a copy of the loaded configuration, so per-command flag
// overrides never leak between invocations.
func GetConfig() *config.Config {
	if shipConfig == nil {
		return config.DefaultConfig()
	}
	copied := *shipConfig
	return &copied
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	return resolvedPath.ConfigPath
}

// requireConfig returns the loaded configuration, or the load error for
// commands that cannot run without a readable config file.
func requireConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, configLoadErr
	}
	return GetConfig(), nil
}
