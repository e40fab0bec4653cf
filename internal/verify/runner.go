package verify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts subprocess execution so the verification pipeline can be
// tested without a Python toolchain on the host.
type Runner interface {
	// LookPath finds an executable in PATH.
	LookPath(name string) (string, error)

	// Run executes a command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s: %w: %s", name, err, lastLine(output))
		}
		return output, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}

// lastLine extracts the final non-empty line of subprocess output, which for
// pip and venv failures carries the actionable message.
func lastLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
