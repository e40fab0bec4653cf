package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/travelbuddy/shipctl/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the shipctl configuration.

Checks performed:
  1. Config file parses (if present; defaults apply when absent)
  2. Entry point, app object, and port variable are well-formed
  3. Runtime version and minimum version are valid versions
  4. Base image, sandbox directory, and requirements path are set
  5. Secret names and exclusion globs are valid

The config path is resolved using precedence:
  --config flag > SHIPCTL_CONFIG env > ./shipctl.yaml

Examples:
  # Validate default configuration
  shipctl vet

  # Validate a custom config path
  shipctl vet --config deploy/shipctl.yaml`,
		RunE: runVet,
	}

	return cmd
}

func runVet(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	output.Println(output.FormatVetCheck("Start command well-formed", cfg.StartCommand()))
	output.Println(output.FormatVetCheck("Runtime pin valid", cfg.Runtime.Version))
	output.Println(output.FormatVetCheck("Base image set", cfg.Runtime.BaseImage))
	output.Println(output.FormatVetCheck("Sandbox directory set", cfg.Runtime.SandboxDir))
	output.Println(output.FormatVetCheck("Secrets named correctly", strings.Join(cfg.Secrets, ", ")))
	if len(cfg.Exclude) > 0 {
		output.Println(output.FormatVetCheck("Exclusion globs valid", fmt.Sprintf("%d extra patterns", len(cfg.Exclude))))
	}

	output.Println("")
	output.Println(output.FormatCheckmark("Configuration valid: " + GetConfigPath()))
	return nil
}
