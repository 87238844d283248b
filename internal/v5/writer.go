package v5

// Writer is the File Lifecycle component (spec.md §2 item 1): it owns the
// Byte Sink, the open header, and the Container State stack, and it is the
// receiver every top-level and nested write operation in this package
// hangs off.
//
// Once any operation fails, Writer is poisoned: err is latched and every
// subsequent operation returns it without touching the sink again
// (spec.md §5 "Error semantics"). Close always still runs, to release the
// underlying resource.
type Writer struct {
	s     sink
	stack containerStack
	err   error
}

// NewWriter opens a Writer against s, having already written the MAT-file
// header.
func NewWriter(s sink, description string) (*Writer, error) {
	if err := writeHeader(s, description); err != nil {
		return nil, err
	}
	return &Writer{s: s}, nil
}

// Open builds the Byte Sink named by path in either direct-to-file or
// buffer-all-then-flush mode (spec.md §4.1) and returns a Writer with the
// header already written. bufferHint is ignored in direct-to-file mode.
func Open(path, description string, directToFile bool, bufferHint int) (*Writer, error) {
	var s sink
	if directToFile {
		fs, err := newFileSink(path)
		if err != nil {
			return nil, err
		}
		s = fs
	} else {
		s = newBufferSink(path, bufferHint)
	}
	return NewWriter(s, description)
}

// fail latches the first error seen and returns it. Later calls to fail
// with a different error keep the original: the first failure is the one
// that matters for diagnosing what went wrong.
func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

// Err reports the first error latched by the writer, if any.
func (w *Writer) Err() error { return w.err }

// Close finalizes any struct or cell frames still open, in LIFO order
// (spec.md §5 "Lifetimes": a File dropped with open containers auto-closes
// them before releasing the sink), flushes, and releases the sink. Close
// always attempts the flush and release step even if finalization failed,
// so the underlying file descriptor is never leaked.
func (w *Writer) Close() error {
	for !w.stack.empty() {
		f := w.stack.top()
		switch f.kind {
		case frameStruct:
			if err := finishStructFrame(w, f); err != nil {
				w.fail(err)
			}
		case frameCell:
			if err := finishCellFrame(w, f); err != nil {
				w.fail(err)
			}
		}
		w.stack.pop()
	}

	if err := w.s.flush(); err != nil {
		w.fail(err)
	}
	if err := w.s.close(); err != nil {
		w.fail(err)
	}
	return w.err
}
