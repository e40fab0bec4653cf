package artifacts

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/travelbuddy/shipctl/internal/errors"
	"github.com/travelbuddy/shipctl/internal/output"
)

// Writer persists rendered artifacts. It always overwrites, and each write
// goes through a temp-file-then-rename so a failed write never leaves a
// partially written artifact behind.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer backed by the given filesystem.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// NewOsWriter creates a writer backed by the operating system filesystem.
func NewOsWriter() *Writer {
	return NewWriter(afero.NewOsFs())
}

// Write atomically writes one artifact into dir.
func (w *Writer) Write(dir string, a Artifact) error {
	target := filepath.Join(dir, a.Path)
	tmp := target + ".tmp"

	if err := afero.WriteFile(w.fs, tmp, a.Content, 0o644); err != nil {
		return oerrors.NewWriteError(a.Path, err)
	}

	if err := w.fs.Rename(tmp, target); err != nil {
		_ = w.fs.Remove(tmp)
		return oerrors.NewWriteError(a.Path, err)
	}

	output.Debug("wrote artifact", "path", target, "bytes", len(a.Content))
	return nil
}

// WriteAll writes every artifact into dir in catalogue order. The first
// failed write aborts the remaining writes; a half-consistent deployment
// bundle is worse than no bundle. Returns the paths written so far.
func (w *Writer) WriteAll(dir string, artifacts []Artifact) ([]string, error) {
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := w.Write(dir, a); err != nil {
			return written, err
		}
		written = append(written, a.Path)
	}
	return written, nil
}
