package verify

// Status is the outcome of a single verification check.
type Status string

const (
	// StatusPass indicates the check succeeded.
	StatusPass Status = "pass"

	// StatusWarn indicates a non-fatal problem with a remediation hint.
	StatusWarn Status = "warn"

	// StatusFail indicates the check failed.
	StatusFail Status = "fail"
)

// Check is one entry of the verification report.
type Check struct {
	// ID identifies the check ("runtime", "sandbox", "deps", "secret:NAME").
	ID string

	// Name is the human-readable check name.
	Name string

	// Status is the check outcome.
	Status Status

	// Detail is a short value shown next to the name.
	Detail string

	// Hint is actionable remediation text for warn and fail entries.
	Hint string
}

// Report is the summary of a verifier run. It is constructed fresh each run,
// rendered by the command layer, and never persisted.
type Report struct {
	Checks []Check
}

// add appends a check entry.
func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
}

// Find returns the check with the given ID, if present.
func (r *Report) Find(id string) (Check, bool) {
	for _, c := range r.Checks {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}

// HasWarnings reports whether any check produced a warning.
func (r *Report) HasWarnings() bool {
	for _, c := range r.Checks {
		if c.Status == StatusWarn {
			return true
		}
	}
	return false
}

// HasFailures reports whether any check failed.
func (r *Report) HasFailures() bool {
	for _, c := range r.Checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

// InstallFailed reports whether the dependency install step failed.
func (r *Report) InstallFailed() bool {
	c, ok := r.Find("deps")
	return ok && c.Status == StatusFail
}
