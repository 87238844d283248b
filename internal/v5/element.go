package v5

import "encoding/binary"

// pad returns the number of zero bytes needed to round n up to a multiple
// of 8 (spec.md §3).
func pad(n int) int {
	return (8 - n%8) % 8
}

// paddedLen8 is the effective length of an 8-bit string data element for
// envelope-size bookkeeping: the byte count rounded up to a multiple of 8,
// zero for an empty string (spec.md §4.3).
func paddedLen8(n int) int {
	if n == 0 {
		return 0
	}
	return n + pad(n)
}

// paddedLen16 is the same computation for a 16-bit string element, whose
// byte count on disk is 2×len (spec.md §4.3).
func paddedLen16(n int) int {
	return paddedLen8(2 * n)
}

func putUint16(p []byte, v uint16) { binary.LittleEndian.PutUint16(p, v) }
func putUint32(p []byte, v uint32) { binary.LittleEndian.PutUint32(p, v) }
func putUint64(p []byte, v uint64) { binary.LittleEndian.PutUint64(p, v) }

// writeZeros appends n zero bytes to the sink.
func writeZeros(s sink, n int) error {
	if n == 0 {
		return nil
	}
	_, err := s.write(make([]byte, n))
	return err
}

// writeElement emits a regular data element: an 8-byte tag (type code,
// byte length) followed by the payload and zero padding out to the next
// 8-byte boundary (spec.md §3).
func writeElement(s sink, typeCode uint32, payload []byte) error {
	tag := make([]byte, 8)
	putUint32(tag[0:4], typeCode)
	putUint32(tag[4:8], uint32(len(payload))) //nolint:gosec // payload sizes are caller-bounded
	if _, err := s.write(tag); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := s.write(payload); err != nil {
			return err
		}
	}
	return writeZeros(s, pad(len(payload)))
}

// writeSmallElement packs a type code and a payload of at most 4 bytes into
// a single 8-byte word: (type: u16, byte-length: u16, payload: 4 bytes).
// Used exclusively for the scalar field-name-length marker (spec.md §3).
func writeSmallElement(s sink, typeCode uint32, payload []byte) error {
	if len(payload) > 4 {
		return &InvariantViolation{Msg: "small element payload exceeds 4 bytes"}
	}
	word := make([]byte, 8)
	putUint16(word[0:2], uint16(typeCode))  //nolint:gosec // type codes fit in 16 bits
	putUint16(word[2:4], uint16(len(payload))) //nolint:gosec // bounded by the 4-byte check above
	copy(word[4:], payload)
	_, err := s.write(word)
	return err
}

// writeSmallInt32 writes a scalar int32 using the small-element form, the
// Field-Name-Length marker that precedes a struct's field-name table
// (spec.md §4.5).
func writeSmallInt32(s sink, v int32) error {
	payload := make([]byte, 4)
	putUint32(payload, uint32(v)) //nolint:gosec // field-name widths are small positive ints
	return writeSmallElement(s, miINT32, payload)
}

// writeStringElement8 emits an 8-bit string data element: raw bytes tagged
// miINT8, padded to 8 bytes (spec.md §4.3).
func writeStringElement8(s sink, data []byte) error {
	return writeElement(s, miINT8, data)
}

// widenLatin1 widens each byte of a Latin-1 input to a little-endian u16
// code unit. This is not true UTF-16 for codepoints above 0x7F — it widens
// bytes, not decodes them — and is preserved exactly as the original
// encoder behaves (spec.md §9 Open Questions).
func widenLatin1(data []byte) []byte {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		putUint16(out[i*2:i*2+2], uint16(b))
	}
	return out
}

// writeStringElement16 emits a 16-bit string data element: each byte of a
// Latin-1 input widened to a u16 code unit, tagged miUINT16, padded to 8
// bytes on the doubled byte count (spec.md §4.3).
func writeStringElement16(s sink, data []byte) error {
	return writeElement(s, miUINT16, widenLatin1(data))
}
