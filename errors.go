package tinymat

import "github.com/scigolib/tinymat/internal/v5"

// OpenError indicates the underlying file (or its backing buffer's final
// flush target) could not be created.
type OpenError = v5.OpenError

// IOError indicates a write, seek, or read-back against the byte sink
// failed.
type IOError = v5.IOError

// InvariantViolation indicates the writer's protocol was violated: ending
// a container that was never opened, packing an oversized payload into a
// small element, or similar programmer error rather than an I/O failure.
type InvariantViolation = v5.InvariantViolation
