package artifacts

import (
	"github.com/travelbuddy/shipctl/internal/config"
)

// Artifact is a single rendered deployment configuration file.
type Artifact struct {
	// Path is the file's path relative to the output directory.
	Path string

	// Description explains the artifact's role, shown in generate output.
	Description string

	// Content is the rendered file body.
	Content []byte
}

// catalogEntry binds an output path to its embedded template.
type catalogEntry struct {
	path     string
	template string
	desc     string
}

// catalog is the fixed set of generated deployment files, in write order.
// Template files cannot start with a dot (embed skips them), so dotfile
// targets map from undotted template names.
var catalog = []catalogEntry{
	{path: "Procfile", template: "Procfile.tmpl", desc: "Process manifest"},
	{path: "runtime.txt", template: "runtime.txt.tmpl", desc: "Runtime version pin"},
	{path: ".env.example", template: "env.example.tmpl", desc: "Secret template"},
	{path: "Dockerfile", template: "Dockerfile.tmpl", desc: "Container build file"},
	{path: ".dockerignore", template: "dockerignore.tmpl", desc: "Build exclusion list"},
}

// Paths returns the catalogue's relative output paths in write order.
func Paths() []string {
	paths := make([]string, 0, len(catalog))
	for _, e := range catalog {
		paths = append(paths, e.path)
	}
	return paths
}

// RenderAll renders the full artifact catalogue from the shared
// configuration. Rendering is deterministic: identical configuration
// produces byte-identical artifacts in the same order.
func RenderAll(cfg *config.Config) ([]Artifact, error) {
	data := NewTemplateData(cfg)

	rendered := make([]Artifact, 0, len(catalog))
	for _, e := range catalog {
		content, err := render(e.template, data)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, Artifact{
			Path:        e.path,
			Description: e.desc,
			Content:     content,
		})
	}

	return rendered, nil
}
