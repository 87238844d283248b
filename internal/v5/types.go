// Package v5 implements the MATLAB Level-5 MAT-file binary encoder: tags,
// data elements, matrix envelopes, and the struct/cell container protocol.
package v5

// MATLAB data element type codes (spec.md §3).
const (
	miINT8   = 1
	miUINT8  = 2
	miINT16  = 3
	miUINT16 = 4
	miINT32  = 5
	miUINT32 = 6
	miSINGLE = 7
	miDOUBLE = 9
	miINT64  = 12
	miUINT64 = 13
	miMATRIX = 14

	// Reserved by the format, never emitted by this encoder (spec.md §9
	// Open Questions): miCOMPRESSED payloads and non-Latin-1 Unicode
	// character data are out of scope (spec.md §1 Non-goals). Character
	// arrays widen Latin-1 bytes into miUINT16 code units, not miUTF16 —
	// that is what the original encoder actually emits.
	miCOMPRESSED = 15 //nolint:unused // reserved, documents the gap deliberately
	miUTF8       = 16 //nolint:unused // reserved
	miUTF16      = 17 //nolint:unused // reserved, see comment above
	miUTF32      = 18 //nolint:unused // reserved
)

// MATLAB array class codes (spec.md §3).
//
//nolint:revive // MATLAB's own naming convention, not ours to rename
const (
	mxCELL_CLASS   = 0x01
	mxSTRUCT_CLASS = 0x02
	mxCHAR_CLASS   = 0x04
	mxDOUBLE_CLASS = 0x06
	mxSINGLE_CLASS = 0x07
	mxINT8_CLASS   = 0x08
	mxUINT8_CLASS  = 0x09
	mxINT16_CLASS  = 0x0A
	mxUINT16_CLASS = 0x0B
	mxINT32_CLASS  = 0x0C
	mxUINT32_CLASS = 0x0D
	mxINT64_CLASS  = 0x0E
	mxUINT64_CLASS = 0x0F

	// mxLogicalFlag is OR-ed onto mxUINT8_CLASS in the array-flags word to
	// mark a logical array; it is not a class of its own.
	mxLogicalFlag = 0x0002 << 8
)
