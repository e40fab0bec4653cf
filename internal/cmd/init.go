package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/travelbuddy/shipctl/internal/config"
	oerrors "github.com/travelbuddy/shipctl/internal/errors"
	"github.com/travelbuddy/shipctl/internal/output"
)

var initForceFlag bool

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the shipctl configuration file.

Writes shipctl.yaml (or the path given with --config) with the defaults
matching the service's existing structure: entry point 'main', port
variable 'PORT', base image 'python:3.11-slim', and the GEMINI_API_KEY
secret requirement.

Examples:
  # Create ./shipctl.yaml
  shipctl init

  # Overwrite an existing configuration
  shipctl init --force`,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := GetConfigPath()

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return err
	}
	if exists && !initForceFlag {
		return oerrors.NewValidationError(
			"configuration already exists",
			configPath,
			"Use --force to overwrite existing configuration.")
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return oerrors.NewWriteError(configPath, err)
	}

	output.Println("Configuration initialized at " + configPath)
	output.Println("")
	output.Println("Next steps:")
	output.Println("  shipctl vet       validate the configuration")
	output.Println("  shipctl verify    check the local environment")
	output.Println("  shipctl generate  write the deployment artifacts")

	return nil
}
