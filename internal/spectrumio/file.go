package spectrumio

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/PhilippHaizmann/SatSub/dsp/spectrum"
)

// FileSource reads spectra from paths on disk.
type FileSource struct {
	Reader Reader
	// Picker supplies a path when Fetch is called without one. It may be nil.
	Picker interface {
		PickPath(ctx context.Context) (string, error)
	}
}

// Fetch reads the spectrum at path, asking Picker for a path when path is
// empty.
func (fs FileSource) Fetch(ctx context.Context, path string) (spectrum.Spectrum, string, error) {
	if path == "" && fs.Picker != nil {
		p, err := fs.Picker.PickPath(ctx)
		if err != nil {
			return spectrum.Spectrum{}, "", err
		}
		path = p
	}
	if path == "" {
		return spectrum.Spectrum{}, "", ErrNoPath
	}
	s, err := fs.Reader.ReadFile(path)
	return s, path, err
}

// FileSink writes spectra below Dir, appending ".csv" to bare names.
type FileSink struct {
	Dir    string
	Writer Writer
}

// Persist writes s under name and returns the path written.
func (fs FileSink) Persist(_ context.Context, s spectrum.Spectrum, name string) (string, error) {
	path, err := fs.Path(name)
	if err != nil {
		return "", err
	}
	if err := fs.Writer.WriteFile(path, s); err != nil {
		return "", err
	}
	return path, nil
}

// Path resolves the destination for name.
func (fs FileSink) Path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNoPath
	}
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		name += ".csv"
	}
	if fs.Dir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(fs.Dir, name)
	}
	return name, nil
}
