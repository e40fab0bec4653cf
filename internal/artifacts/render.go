// Package artifacts renders and writes the deployment artifact catalogue.
//
// Templates are pure functions from the shared configuration to text:
// rendering never touches the filesystem, so every artifact body is directly
// unit-testable. Writing is a thin, separately-testable adapter (see writer.go).
package artifacts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/travelbuddy/shipctl/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SecretVar is one required secret rendered into the secret template.
type SecretVar struct {
	// Name is the environment variable name.
	Name string

	// Placeholder is the placeholder value, e.g. "your_gemini_api_key_here".
	Placeholder string
}

// TemplateData holds the data passed to template rendering. All fields derive
// from the one shared Config, so artifacts referencing the same logical value
// (start command, runtime version) stay mutually consistent.
type TemplateData struct {
	// StartCommand is the exact service start command, shared by the
	// process manifest and the container build file.
	StartCommand string

	// RuntimeVersion is the exact interpreter version pinned for the platform.
	RuntimeVersion string

	// BaseImage is the container base image tag.
	BaseImage string

	// Requirements is the dependency manifest file name.
	Requirements string

	// DefaultPort is the port exposed by the container build file.
	DefaultPort int

	// Secrets are the required secrets, in configuration order.
	Secrets []SecretVar

	// Exclusions are the build-exclusion patterns, in render order.
	Exclusions []string
}

// NewTemplateData derives template data from the shared configuration.
func NewTemplateData(cfg *config.Config) TemplateData {
	secrets := make([]SecretVar, 0, len(cfg.Secrets))
	for _, name := range cfg.Secrets {
		secrets = append(secrets, SecretVar{
			Name:        name,
			Placeholder: SecretPlaceholder(name),
		})
	}

	return TemplateData{
		StartCommand:   cfg.StartCommand(),
		RuntimeVersion: cfg.Runtime.Version,
		BaseImage:      cfg.Runtime.BaseImage,
		Requirements:   cfg.Runtime.Requirements,
		DefaultPort:    cfg.Service.DefaultPort,
		Secrets:        secrets,
		Exclusions:     ExclusionPatterns(cfg.Runtime.SandboxDir, cfg.Exclude),
	}
}

// SecretPlaceholder returns the placeholder value written to the secret
// template for a given variable name.
func SecretPlaceholder(name string) string {
	return "your_" + strings.ToLower(name) + "_here"
}

// mandatoryExclusions are always present in the build-exclusion list,
// regardless of configured extras: caches, isolated-environment directories,
// and local secret, database, and log files.
var mandatoryExclusions = []string{
	"__pycache__/",
	"*.py[cod]",
	".pytest_cache/",
	".mypy_cache/",
	".venv/",
	".env",
	"*.db",
	"*.sqlite3",
	"*.log",
	".git/",
}

// ExclusionPatterns merges the configured sandbox directory, the mandatory
// exclusion patterns, and any extras, in that order. Extras keep their given
// order; duplicates are dropped.
func ExclusionPatterns(sandboxDir string, extras []string) []string {
	patterns := make([]string, 0, len(mandatoryExclusions)+1+len(extras))
	seen := make(map[string]bool)

	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		patterns = append(patterns, p)
	}

	add(strings.TrimSuffix(sandboxDir, "/") + "/")
	for _, p := range mandatoryExclusions {
		add(p)
	}
	for _, p := range extras {
		add(p)
	}

	return patterns
}

// render parses and executes a single embedded template.
func render(name string, data TemplateData) ([]byte, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
