// Package codegen persists the discovery tool's output as generated source.
package codegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/logging"
)

const (
	// ArtifactName is the fixed file name of the generated plugin list.
	ArtifactName = "zz_generated_gstplugins.go"
	// StampName records which inputs produced the current artifact.
	StampName = ".gstplugins.stamp"

	filePerm = 0o644
)

// Writer writes the discovery artifact into a build output directory.
type Writer struct {
	fs  afero.Fs
	dir string
}

var _ port.ArtifactStore = (*Writer)(nil)

// NewWriter creates a writer rooted at dir on fs.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// ArtifactPath returns the full path of the generated file.
func (w *Writer) ArtifactPath() string {
	return filepath.Join(w.dir, ArtifactName)
}

// Write stores artifact verbatim, replacing any previous content.
func (w *Writer) Write(ctx context.Context, artifact []byte) error {
	path := w.ArtifactPath()
	if err := afero.WriteFile(w.fs, path, artifact, filePerm); err != nil {
		return &port.DiscoveryError{
			Kind: port.DiscoveryErrorKindArtifactWriteFailed,
			Path: path,
			Err:  err,
		}
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("bytes", len(artifact)).
		Msg("wrote generated plugin list")
	return nil
}

// Stamp fingerprints the inputs the artifact is a pure function of: the
// probing tool's source and the target identifier.
func Stamp(toolSource []byte, target string) string {
	d := xxhash.New()
	_, _ = d.Write(toolSource)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(target)
	return strconv.FormatUint(d.Sum64(), 16)
}

// UpToDate reports whether the artifact exists and was produced from inputs
// matching stamp.
func (w *Writer) UpToDate(stamp string) (bool, error) {
	if _, err := w.fs.Stat(w.ArtifactPath()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	data, err := afero.ReadFile(w.fs, filepath.Join(w.dir, StampName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(string(data)) == stamp, nil
}

// WriteStamp records stamp beside the artifact.
func (w *Writer) WriteStamp(stamp string) error {
	path := filepath.Join(w.dir, StampName)
	if err := afero.WriteFile(w.fs, path, []byte(stamp+"\n"), filePerm); err != nil {
		return &port.DiscoveryError{
			Kind: port.DiscoveryErrorKindArtifactWriteFailed,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
