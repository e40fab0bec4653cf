package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/travelbuddy/shipctl/internal/artifacts"
	"github.com/travelbuddy/shipctl/internal/config"
	oerrors "github.com/travelbuddy/shipctl/internal/errors"
	"github.com/travelbuddy/shipctl/internal/output"
)

// Generate command flags
var (
	generateDirFlag        string
	generateEntryPointFlag string
	generateAppObjectFlag  string
	generatePortVarFlag    string
	generateBaseImageFlag  string
	generateRuntimeFlag    string
	generateSecretFlags    []string
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"generate-deployment-artifacts", "gen"},
		Short:   "Generate deployment artifacts",
		Long: `Generate the deployment artifact bundle for the service.

Artifacts written (always overwritten, byte-identical for identical
configuration):
  Procfile        Process manifest with the service start command
  runtime.txt     Exact runtime version pin
  .env.example    Secret template, one NAME=placeholder per line
  Dockerfile      Container build file
  .dockerignore   Build exclusion list

All artifacts derive from one shared configuration, so the process manifest
and the container build file always agree on the entry point and port
variable. A failed write aborts the remaining writes; a half-consistent
deployment bundle is worse than no bundle.

Examples:
  # Generate into the current directory with defaults
  shipctl generate

  # Generate for a different entry module and base image
  shipctl generate --entrypoint server --base-image python:3.12-slim

  # Generate into a separate directory
  shipctl generate --dir ./deploy`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&generateDirFlag, "dir", "d", ".",
		"Directory to write artifacts into")
	cmd.Flags().StringVar(&generateEntryPointFlag, "entrypoint", "",
		"Service entry module (default from config)")
	cmd.Flags().StringVar(&generateAppObjectFlag, "app-object", "",
		"ASGI application object (default from config)")
	cmd.Flags().StringVar(&generatePortVarFlag, "port-var", "",
		"Port environment variable name (default from config)")
	cmd.Flags().StringVar(&generateBaseImageFlag, "base-image", "",
		"Container base image tag (default from config)")
	cmd.Flags().StringVar(&generateRuntimeFlag, "runtime-version", "",
		"Exact runtime version to pin (default from config)")
	cmd.Flags().StringArrayVar(&generateSecretFlags, "secret", nil,
		"Required secret variable (can be repeated; default from config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	output.Debug("generating artifacts",
		"dir", generateDirFlag,
		"entrypoint", cfg.Service.EntryPoint,
		"portVar", cfg.Service.PortVar,
		"baseImage", cfg.Runtime.BaseImage)

	rendered, err := artifacts.RenderAll(cfg)
	if err != nil {
		return err
	}

	written, err := artifacts.NewOsWriter().WriteAll(generateDirFlag, rendered)
	if err != nil {
		return &oerrors.ExitError{Code: ExitWriteError, Err: err}
	}

	absDir, absErr := filepath.Abs(generateDirFlag)
	if absErr != nil {
		absDir = generateDirFlag
	}

	output.Println(fmt.Sprintf("Generated deployment artifacts in %s\n", absDir))

	entries := make([]output.FileEntry, 0, len(rendered))
	for _, a := range rendered {
		entries = append(entries, output.FileEntry{
			Path:        "  " + a.Path,
			Description: a.Description,
		})
	}
	output.Print(output.RenderFileTree(entries, 20))

	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("%d artifacts written", len(written))))

	return nil
}

// applyGenerateFlags overrides config values with explicitly set flags.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("entrypoint") {
		cfg.Service.EntryPoint = generateEntryPointFlag
	}
	if cmd.Flags().Changed("app-object") {
		cfg.Service.AppObject = generateAppObjectFlag
	}
	if cmd.Flags().Changed("port-var") {
		cfg.Service.PortVar = generatePortVarFlag
	}
	if cmd.Flags().Changed("base-image") {
		cfg.Runtime.BaseImage = generateBaseImageFlag
	}
	if cmd.Flags().Changed("runtime-version") {
		cfg.Runtime.Version = generateRuntimeFlag
	}
	if cmd.Flags().Changed("secret") {
		cfg.Secrets = generateSecretFlags
	}
}
