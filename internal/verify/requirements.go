package verify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Requirement is one declared dependency from the manifest file.
type Requirement struct {
	// Name is the bare package name, without extras or constraints.
	Name string

	// Constraint is the version constraint as written ("==0.104.1", ">=2.0"),
	// empty if unconstrained.
	Constraint string

	// Raw is the full specifier line, passed verbatim to the installer.
	Raw string
}

// constraint operators in match order; two-character operators first.
var constraintOps = []string{"==", ">=", "<=", "~=", "!=", ">", "<"}

// ParseRequirements reads a pip-style requirements manifest. Comments, blank
// lines, and installer option lines are skipped; declaration order is
// preserved. The manifest is read-only input and is never modified.
func ParseRequirements(r io.Reader) ([]Requirement, error) {
	var reqs []Requirement

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		// Strip trailing comments, then surrounding whitespace
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}

		reqs = append(reqs, parseSpecifier(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}

	return reqs, nil
}

// parseSpecifier splits a requirement line into name and constraint.
func parseSpecifier(line string) Requirement {
	req := Requirement{Raw: line, Name: line}

	for _, op := range constraintOps {
		if i := strings.Index(line, op); i >= 0 {
			req.Name = strings.TrimSpace(line[:i])
			req.Constraint = strings.TrimSpace(line[i:])
			break
		}
	}

	// Drop extras from the name: "uvicorn[standard]" -> "uvicorn"
	if i := strings.Index(req.Name, "["); i >= 0 {
		req.Name = req.Name[:i]
	}

	return req
}
