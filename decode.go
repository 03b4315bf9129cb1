// SPDX-License-Identifier: EPL-2.0

package crossmix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stemstation/crossmix/audio"
	"github.com/stemstation/crossmix/formats/mp3"
	"github.com/stemstation/crossmix/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder
// registered under its usual file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	return r
}

// formatForPath derives the registry key from a file name.
func formatForPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// fileSource closes the underlying file together with the decoded
// source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (fs *fileSource) Close() error {
	srcErr := fs.Source.Close()
	if err := fs.f.Close(); err != nil {
		return err
	}
	return srcErr
}

// OpenFile opens and decodes the audio file at path, choosing the
// decoder by file extension.  Closing the returned source closes the
// file as well.
func OpenFile(registry *audio.Registry, path string) (audio.Source, error) {
	format := formatForPath(path)
	dec, ok := registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Decode decodes r with the decoder registered for format.
func Decode(registry *audio.Registry, format string, r io.Reader) (audio.Source, error) {
	dec, ok := registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return dec.Decode(r)
}
