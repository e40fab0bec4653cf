package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/travelbuddy/shipctl/internal/config"
	oerrors "github.com/travelbuddy/shipctl/internal/errors"
	"github.com/travelbuddy/shipctl/internal/output"
	"github.com/travelbuddy/shipctl/internal/verify"
)

// Verify command flags
var (
	verifySandboxFlag      string
	verifyRequirementsFlag string
	verifyStrictFlag       bool
	verifyTimeoutFlag      time.Duration
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify",
		Aliases: []string{"verify-environment"},
		Short:   "Verify local environment readiness",
		Long: `Verify that the local environment can run the service.

Checks performed:
  1. A compatible Python interpreter is installed
  2. The dependency sandbox (virtual environment) exists or can be created
  3. Declared dependencies install into the sandbox
  4. Required secret variables are present

The run always completes and prints a full report; warnings do not change
the exit code. The exit code is non-zero only when the sandbox cannot be
created, or when --strict is set and a dependency install fails.

Examples:
  # Verify with configuration from ./shipctl.yaml
  shipctl verify

  # Verify against a different sandbox directory
  shipctl verify --sandbox .venv

  # Treat a failed dependency install as fatal
  shipctl verify --strict`,
		RunE: runVerify,
	}

	cmd.Flags().StringVar(&verifySandboxFlag, "sandbox", "",
		"Dependency sandbox directory (default from config)")
	cmd.Flags().StringVar(&verifyRequirementsFlag, "requirements", "",
		"Dependency manifest file (default from config)")
	cmd.Flags().BoolVar(&verifyStrictFlag, "strict", false,
		"Exit non-zero when a dependency install fails")
	cmd.Flags().DurationVar(&verifyTimeoutFlag, "install-timeout", 0,
		"Per-package install timeout (default from config)")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	applyVerifyFlags(cmd, cfg)

	output.Debug("verifying environment",
		"sandbox", cfg.Runtime.SandboxDir,
		"requirements", cfg.Runtime.Requirements,
		"strict", cfg.Verify.Strict)

	v := verify.New(cfg)

	var report *verify.Report
	var runErr error
	err = output.RunWithSpinner(cmd.Context(), func() error {
		report, runErr = v.Run(cmd.Context())
		return nil
	}, output.WithTitle("Verifying environment..."))
	if err != nil {
		return err
	}

	printReport(report)

	if runErr != nil {
		return &oerrors.ExitError{Code: ExitEnvironmentError, Err: runErr, Printed: true}
	}

	if cfg.Verify.Strict && report.InstallFailed() {
		return &oerrors.ExitError{
			Code:    ExitDependencyError,
			Err:     oerrors.Wrap(oerrors.ErrDependencyInstall, "dependency install failed"),
			Printed: true,
		}
	}

	return nil
}

// applyVerifyFlags overrides config values with explicitly set flags.
func applyVerifyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("sandbox") {
		cfg.Runtime.SandboxDir = verifySandboxFlag
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Runtime.Requirements = verifyRequirementsFlag
	}
	if cmd.Flags().Changed("strict") {
		cfg.Verify.Strict = verifyStrictFlag
	}
	if cmd.Flags().Changed("install-timeout") {
		cfg.Verify.InstallTimeout = verifyTimeoutFlag
	}
}

// printReport renders the verification report, one line per check, with
// remediation hints under warn and fail entries.
func printReport(report *verify.Report) {
	for _, c := range report.Checks {
		output.Println(output.FormatCheckLine(string(c.Status), c.Name, c.Detail))
		if c.Hint != "" && c.Status != verify.StatusPass {
			output.Println(output.FormatHint(c.Hint))
		}
	}

	output.Println("")
	switch {
	case report.HasFailures():
		output.Println(output.FormatWarnmark(fmt.Sprintf("Environment check finished with problems (%d checks)", len(report.Checks))))
	case report.HasWarnings():
		output.Println(output.FormatWarnmark(fmt.Sprintf("Environment ready with warnings (%d checks)", len(report.Checks))))
	default:
		output.Println(output.FormatCheckmark(fmt.Sprintf("Environment ready (%d checks)", len(report.Checks))))
	}
}
