// Package verify implements the local environment readiness pipeline: runtime
// check, dependency sandbox creation, dependency install, and secret presence.
//
// The pipeline is linear and always reaches its terminal state: every problem
// below sandbox creation becomes a report entry instead of aborting the run,
// so one pass yields maximal diagnostic coverage. The sandbox location and
// its tool paths are explicit values threaded through each step; there is no
// process-global "activated environment" state.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"github.com/travelbuddy/shipctl/internal/config"
	oerrors "github.com/travelbuddy/shipctl/internal/errors"
	"github.com/travelbuddy/shipctl/internal/output"
)

// interpreterCandidates are tried in order when locating the runtime.
var interpreterCandidates = []string{"python3", "python"}

// pythonVersionRe matches interpreter version output like "Python 3.11.9".
var pythonVersionRe = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// Verifier checks local readiness to run the service.
type Verifier struct {
	cfg       *config.Config
	runner    Runner
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithRunner replaces the subprocess runner.
func WithRunner(r Runner) Option {
	return func(v *Verifier) { v.runner = r }
}

// WithFs replaces the filesystem.
func WithFs(fs afero.Fs) Option {
	return func(v *Verifier) { v.fs = fs }
}

// WithLookupEnv replaces the environment lookup used for secret checks.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(v *Verifier) { v.lookupEnv = fn }
}

// New creates a verifier for the given configuration.
func New(cfg *config.Config, opts ...Option) *Verifier {
	v := &Verifier{
		cfg:    cfg,
		runner: NewExecRunner(),
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes the full verification pipeline and returns the report.
//
// The returned error is non-nil only when the dependency sandbox could not be
// created (wrapping ErrEnvironmentCreation); every other problem is a report
// entry. Even on that fatal error the report is complete: the remaining
// checks still run before Run returns.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	interpreter := v.checkRuntime(ctx, report)

	var fatal error
	if interpreter == "" {
		report.add(Check{
			ID:     "sandbox",
			Name:   "dependency sandbox",
			Status: StatusFail,
			Detail: "no interpreter",
			Hint:   "Install Python " + v.cfg.Runtime.MinVersion + " or later, then re-run 'shipctl verify'.",
		})
		report.add(Check{
			ID:     "deps",
			Name:   "dependency install",
			Status: StatusWarn,
			Detail: "skipped",
		})
		fatal = oerrors.NewEnvironmentCreationError(
			"no usable Python interpreter found",
			v.cfg.Runtime.SandboxDir,
			"Install Python "+v.cfg.Runtime.MinVersion+" or later.")
	} else {
		if err := v.ensureSandbox(ctx, report, interpreter); err != nil {
			fatal = err
			report.add(Check{
				ID:     "deps",
				Name:   "dependency install",
				Status: StatusWarn,
				Detail: "skipped",
			})
		} else {
			v.installDependencies(ctx, report)
		}
	}

	v.checkSecrets(report)

	return report, fatal
}

// checkRuntime reports the installed interpreter version. Informational: a
// missing or old interpreter never aborts the pipeline by itself.
// Returns the interpreter command, or "" if none was found.
func (v *Verifier) checkRuntime(ctx context.Context, report *Report) string {
	for _, candidate := range interpreterCandidates {
		if _, err := v.runner.LookPath(candidate); err != nil {
			continue
		}

		out, err := v.runner.Run(ctx, candidate, "--version")
		if err != nil {
			continue
		}

		versionStr := pythonVersionRe.FindString(out)
		if versionStr == "" {
			continue
		}

		check := Check{
			ID:     "runtime",
			Name:   "runtime version",
			Status: StatusPass,
			Detail: fmt.Sprintf("Python %s (%s)", versionStr, candidate),
		}

		if below, err := v.belowMinimum(versionStr); err == nil && below {
			check.Status = StatusWarn
			check.Hint = fmt.Sprintf("Python %s or later is recommended; found %s.",
				v.cfg.Runtime.MinVersion, versionStr)
		}

		report.add(check)
		return candidate
	}

	report.add(Check{
		ID:     "runtime",
		Name:   "runtime version",
		Status: StatusFail,
		Detail: "not found",
		Hint:   "Install Python " + v.cfg.Runtime.MinVersion + " or later (e.g. 'brew install python@3.11' or 'apt install python3.11').",
	})
	return ""
}

// belowMinimum compares an interpreter version against the configured minimum.
func (v *Verifier) belowMinimum(versionStr string) (bool, error) {
	found, err := semver.NewVersion(versionStr)
	if err != nil {
		return false, err
	}
	constraint, err := semver.NewConstraint(">= " + v.cfg.Runtime.MinVersion)
	if err != nil {
		return false, err
	}
	return !constraint.Check(found), nil
}

// ensureSandbox creates the dependency sandbox if it does not already exist.
// Idempotent: an existing directory is left untouched and never recreated.
func (v *Verifier) ensureSandbox(ctx context.Context, report *Report, interpreter string) error {
	dir := v.cfg.Runtime.SandboxDir

	exists, err := afero.DirExists(v.fs, dir)
	if err == nil && exists {
		report.add(Check{
			ID:     "sandbox",
			Name:   "dependency sandbox",
			Status: StatusPass,
			Detail: dir + " (existing)",
		})
		return nil
	}

	output.Debug("creating sandbox", "dir", dir, "interpreter", interpreter)

	if _, err := v.runner.Run(ctx, interpreter, "-m", "venv", dir); err != nil {
		report.add(Check{
			ID:     "sandbox",
			Name:   "dependency sandbox",
			Status: StatusFail,
			Detail: dir,
			Hint:   "Check that the directory is writable and the venv module is available (on Debian: 'apt install python3-venv').",
		})
		return oerrors.NewEnvironmentCreationError(err.Error(), dir,
			"Check that the directory is writable and the venv module is available.")
	}

	report.add(Check{
		ID:     "sandbox",
		Name:   "dependency sandbox",
		Status: StatusPass,
		Detail: dir + " (created)",
	})
	return nil
}

// sandboxTool returns the path of a tool inside the sandbox. Explicit tool
// paths replace shell-style environment activation.
func (v *Verifier) sandboxTool(name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.cfg.Runtime.SandboxDir, "Scripts", name+".exe")
	}
	return filepath.Join(v.cfg.Runtime.SandboxDir, "bin", name)
}

// installDependencies installs each declared requirement into the sandbox.
// The first unsatisfiable package fails the step and skips the rest, but the
// pipeline continues to the secret checks.
func (v *Verifier) installDependencies(ctx context.Context, report *Report) {
	manifest := v.cfg.Runtime.Requirements

	f, err := v.fs.Open(manifest)
	if err != nil {
		report.add(Check{
			ID:     "deps",
			Name:   "dependency install",
			Status: StatusWarn,
			Detail: manifest + " not found",
			Hint:   "Create " + manifest + " listing the service's dependencies.",
		})
		return
	}
	defer f.Close()

	reqs, err := ParseRequirements(f)
	if err != nil {
		report.add(Check{
			ID:     "deps",
			Name:   "dependency install",
			Status: StatusWarn,
			Detail: "unreadable manifest",
			Hint:   err.Error(),
		})
		return
	}

	if len(reqs) == 0 {
		report.add(Check{
			ID:     "deps",
			Name:   "dependency install",
			Status: StatusPass,
			Detail: "no dependencies declared",
		})
		return
	}

	pip := v.sandboxTool("pip")
	for i, req := range reqs {
		if err := v.installOne(ctx, pip, req); err != nil {
			check := Check{
				ID:     "deps",
				Name:   "dependency install",
				Status: StatusFail,
				Detail: fmt.Sprintf("%s failed (%d of %d remaining skipped)", req.Name, len(reqs)-i-1, len(reqs)),
				Hint:   "Check the package name and your network connection, then re-run 'shipctl verify'.",
			}
			if detail := installReason(err); detail != "" {
				check.Hint = detail
			}
			report.add(check)
			return
		}
		output.Debug("installed dependency", "package", req.Name, "constraint", req.Constraint)
	}

	report.add(Check{
		ID:     "deps",
		Name:   "dependency install",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d packages", len(reqs)),
	})
}

// installOne installs a single requirement with the configured timeout.
func (v *Verifier) installOne(ctx context.Context, pip string, req Requirement) error {
	installCtx := ctx
	if timeout := v.cfg.Verify.InstallTimeout; timeout > 0 {
		var cancel context.CancelFunc
		installCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if _, err := v.runner.Run(installCtx, pip, "install", req.Raw); err != nil {
		return oerrors.NewDependencyInstallError(req.Name, err.Error())
	}
	return nil
}

// installReason extracts the per-package reason from an install error.
func installReason(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Context["reason"]
	}
	return ""
}

// checkSecrets verifies presence of each required secret. Values are never
// read beyond the presence test, and a missing secret is a warning with
// remediation text, not a failure.
func (v *Verifier) checkSecrets(report *Report) {
	lookup := v.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, name := range v.cfg.Secrets {
		value, ok := lookup(name)
		if ok && strings.TrimSpace(value) != "" {
			report.add(Check{
				ID:     "secret:" + name,
				Name:   "secret " + name,
				Status: StatusPass,
				Detail: "set",
			})
			continue
		}

		report.add(Check{
			ID:     "secret:" + name,
			Name:   "secret " + name,
			Status: StatusWarn,
			Detail: "not set",
			Hint:   secretHint(name),
		})
	}
}

// secretHint returns remediation text for a missing secret: how to set it
// and, where known, where to obtain a value.
func secretHint(name string) string {
	hint := fmt.Sprintf("Export %s or add it to your .env file before starting the service.", name)
	if name == "GEMINI_API_KEY" {
		hint += " Get a key at https://aistudio.google.com/app/apikey."
	}
	return hint
}
