// Package tinymat writes MATLAB Level-5 (".mat", v6-compatible) binary
// files: numeric N-D arrays, char arrays, logical arrays, struct arrays,
// and cell arrays, with strict 64-bit alignment and back-patched size
// fields. It does not read MAT files, and it does not write the
// HDF5-based MAT-v7.3 format, compressed elements, complex numbers, or
// sparse arrays.
package tinymat

import (
	"time"

	"github.com/scigolib/tinymat/internal/v5"
)

// File is a MAT-file open for writing.
type File struct {
	w *v5.Writer
}

// Create opens path for writing a MATLAB Level-5 MAT-file, applying the
// given options (spec.md §5 "File Lifecycle"). The header is written
// immediately, with its description composed per spec.md §6.1 from the
// producer token, the current UTC timestamp, and any user description.
func Create(path string, opts ...Option) (*File, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	desc := buildDescription(cfg, time.Now())
	w, err := v5.Open(path, desc, cfg.directToFile, cfg.bufferHint)
	if err != nil {
		return nil, err
	}
	return &File{w: w}, nil
}

// Close finalizes any struct or cell containers still open on f, in LIFO
// order, flushes the sink, and releases the underlying file. Close always
// attempts the flush and release even if an earlier write on f failed.
func (f *File) Close() error {
	return f.w.Close()
}

// Err reports the first error encountered by any write against f, if any.
// Once set, every subsequent operation on f is a no-op returning this
// error (spec.md §5 "Error semantics").
func (f *File) Err() error {
	return f.w.Err()
}

// IsOK reports whether f has not yet latched a write error, the direct
// Go rendering of spec.md §6.2's isOK() entry point.
func (f *File) IsOK() bool {
	return f.w.Err() == nil
}
