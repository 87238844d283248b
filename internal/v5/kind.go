package v5

import "math"

func float64bits(v float64) uint64 { return math.Float64bits(v) }
func float32bits(v float32) uint32 { return math.Float32bits(v) }

// Primitive enumerates the Go types the Matrix Encoder accepts directly.
// bool rides the same generic entry points as the numeric types: per
// spec.md §4.4, a logical array is a uint8 array with an extra array-flags
// bit set, not a distinct element width.
type Primitive interface {
	~float64 | ~float32 | ~int8 | ~uint8 | ~int16 | ~uint16 |
		~int32 | ~uint32 | ~int64 | ~uint64 | ~bool
}

// Kind is the (class_code, type_code, element_size) triple the "Variants
// vs. polymorphism" design note in spec.md §9 calls for: one small
// descriptor table driven by a type switch, instead of one hand-written
// writer per primitive type.
type Kind struct {
	TypeCode  uint32
	ClassCode uint32
	Size      int
	Logical   bool
}

// KindOf resolves the Kind for T via a type switch on its zero value. This
// is the one place in the encoder that knows about every supported Go
// primitive type; everything downstream works off the returned Kind.
func KindOf[T Primitive]() Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Kind{TypeCode: miDOUBLE, ClassCode: mxDOUBLE_CLASS, Size: 8}
	case float32:
		return Kind{TypeCode: miSINGLE, ClassCode: mxSINGLE_CLASS, Size: 4}
	case int8:
		return Kind{TypeCode: miINT8, ClassCode: mxINT8_CLASS, Size: 1}
	case uint8:
		return Kind{TypeCode: miUINT8, ClassCode: mxUINT8_CLASS, Size: 1}
	case int16:
		return Kind{TypeCode: miINT16, ClassCode: mxINT16_CLASS, Size: 2}
	case uint16:
		return Kind{TypeCode: miUINT16, ClassCode: mxUINT16_CLASS, Size: 2}
	case int32:
		return Kind{TypeCode: miINT32, ClassCode: mxINT32_CLASS, Size: 4}
	case uint32:
		return Kind{TypeCode: miUINT32, ClassCode: mxUINT32_CLASS, Size: 4}
	case int64:
		return Kind{TypeCode: miINT64, ClassCode: mxINT64_CLASS, Size: 8}
	case uint64:
		return Kind{TypeCode: miUINT64, ClassCode: mxUINT64_CLASS, Size: 8}
	case bool:
		// Logical: same on-disk element as uint8, flagged in array flags.
		return Kind{TypeCode: miUINT8, ClassCode: mxUINT8_CLASS, Size: 1, Logical: true}
	default:
		panic("v5: unreachable, Primitive constraint only admits the cases above")
	}
}

// encodeOne appends the little-endian bytes for a single primitive value
// to buf at the given byte offset.
func encodeOne[T Primitive](buf []byte, off int, v T) {
	switch val := any(v).(type) {
	case float64:
		putUint64(buf[off:], float64bits(val))
	case float32:
		putUint32(buf[off:], float32bits(val))
	case int8:
		buf[off] = byte(val)
	case uint8:
		buf[off] = val
	case int16:
		putUint16(buf[off:], uint16(val)) //nolint:gosec // bit pattern preserved
	case uint16:
		putUint16(buf[off:], val)
	case int32:
		putUint32(buf[off:], uint32(val)) //nolint:gosec // bit pattern preserved
	case uint32:
		putUint32(buf[off:], val)
	case int64:
		putUint64(buf[off:], uint64(val)) //nolint:gosec // bit pattern preserved
	case uint64:
		putUint64(buf[off:], val)
	case bool:
		if val {
			buf[off] = 1
		} else {
			buf[off] = 0
		}
	}
}

// encodeSlice encodes a whole []T in column-major order as bytes, ready to
// hand to writeElement.
func encodeSlice[T Primitive](data []T) []byte {
	k := KindOf[T]()
	buf := make([]byte, len(data)*k.Size)
	for i, v := range data {
		encodeOne(buf, i*k.Size, v)
	}
	return buf
}
