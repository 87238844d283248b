package v5

// headerSize is the fixed MAT-file header length (spec.md §6.1).
const headerSize = 128

// writeHeader emits the 128-byte MAT-file header: description, already
// composed by the caller (spec.md §6.1's default template plus any user
// suffix) and right-padded with spaces to 116 bytes, 8 reserved zero
// bytes, the u16 version 0x0100, and the little-endian marker "IM".
// Files written by this encoder are always little-endian regardless of
// host byte order (spec.md §9 "Host byte order").
func writeHeader(s sink, description string) error {
	buf := make([]byte, headerSize)

	desc := []byte(description)
	if len(desc) > 116 {
		desc = desc[:116]
	}
	copy(buf[0:116], desc)
	for i := len(desc); i < 116; i++ {
		buf[i] = ' '
	}
	// buf[116:124] stays zero: subsystem data offset, unused.

	putUint16(buf[124:126], 0x0100)
	copy(buf[126:128], "IM")

	_, err := s.write(buf)
	return err
}
