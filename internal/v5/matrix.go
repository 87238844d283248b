package v5

// beginEnvelope emits steps 1-5 of the common matrix envelope construction
// (spec.md §4.4): the miMATRIX tag with a placeholder size, the array
// flags, the dimensions, and the name. It returns the offset of the size
// field, to be passed to endEnvelope once the class-specific body has been
// written.
//
// Per spec.md §4.4 "Side-effects on active struct frame", the child's name
// is recorded against the frame stack before anything is written, so every
// envelope writer — numeric, char, struct, cell — participates in the
// field-name table of a struct frame on top of the stack. An envelope
// written while a cell frame is on top contributes no name: the cell drops
// it (containerStack.addChildName).
func (w *Writer) beginEnvelope(classCode uint32, logical bool, dims []int32, name string) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.stack.addChildName(name)

	typeBuf := make([]byte, 4)
	putUint32(typeBuf, miMATRIX)
	if _, err := w.s.write(typeBuf); err != nil {
		return 0, w.fail(err)
	}
	sizeOffset := w.s.tell()
	if err := writeZeros(w.s, 4); err != nil {
		return 0, w.fail(err)
	}

	flagsWord := classCode
	if logical {
		flagsWord |= mxLogicalFlag
	}
	flagsPayload := make([]byte, 8)
	putUint32(flagsPayload[0:4], flagsWord)
	if err := writeElement(w.s, miUINT32, flagsPayload); err != nil {
		return 0, w.fail(err)
	}

	dimsPayload := make([]byte, len(dims)*4)
	for i, d := range dims {
		putUint32(dimsPayload[i*4:i*4+4], uint32(d)) //nolint:gosec // caller-owned dimension contract
	}
	if err := writeElement(w.s, miINT32, dimsPayload); err != nil {
		return 0, w.fail(err)
	}

	if err := writeStringElement8(w.s, []byte(name)); err != nil {
		return 0, w.fail(err)
	}

	return sizeOffset, nil
}

// endEnvelope backpatches the envelope's size field: the u32 at sizeOffset
// becomes end_offset − size_offset − 4 (spec.md §4.4 step 7).
func (w *Writer) endEnvelope(sizeOffset int64) error {
	if w.err != nil {
		return w.err
	}
	endOffset := w.s.tell()
	if err := w.s.seek(sizeOffset); err != nil {
		return w.fail(err)
	}
	sizeBuf := make([]byte, 4)
	putUint32(sizeBuf, uint32(endOffset-sizeOffset-4)) //nolint:gosec // envelope sizes fit comfortably in 32 bits
	if _, err := w.s.write(sizeBuf); err != nil {
		return w.fail(err)
	}
	return w.s.seek(endOffset)
}

// WriteEmptyMatrix writes the empty-matrix form required whenever data or
// dims is absent: a mxDOUBLE envelope named name, with dims [0, 0] and an
// empty double data element (spec.md §4.4, Testable Property 6).
func WriteEmptyMatrix(w *Writer, name string) error {
	sizeOffset, err := w.beginEnvelope(mxDOUBLE_CLASS, false, []int32{0, 0}, name)
	if err != nil {
		return err
	}
	if err := writeElement(w.s, miDOUBLE, nil); err != nil {
		return w.fail(err)
	}
	return w.endEnvelope(sizeOffset)
}

// WriteMatrixNDColMajor writes data, already in column-major order, as an
// N-dimensional numeric (or logical, for T=bool) array (spec.md §4.4).
func WriteMatrixNDColMajor[T Primitive](w *Writer, name string, data []T, dims []int32) error {
	if len(data) == 0 || len(dims) == 0 {
		return WriteEmptyMatrix(w, name)
	}
	k := KindOf[T]()
	sizeOffset, err := w.beginEnvelope(k.ClassCode, k.Logical, dims, name)
	if err != nil {
		return err
	}
	if err := writeElement(w.s, k.TypeCode, encodeSlice(data)); err != nil {
		return w.fail(err)
	}
	return w.endEnvelope(sizeOffset)
}

// WriteMatrixNDRowMajor writes data supplied in row-major order, converting
// to the format's column-major disk layout first. For rank ≤ 1 this is a
// no-op transposition (spec.md §4.4).
func WriteMatrixNDRowMajor[T Primitive](w *Writer, name string, data []T, dims []int32) error {
	if len(data) == 0 || len(dims) == 0 {
		return WriteEmptyMatrix(w, name)
	}
	return WriteMatrixNDColMajor(w, name, rowMajorToColMajor(data, dims), dims)
}

// rowMajorToColMajor reindexes data (row-major: last axis fastest) into
// the column-major order the format requires (first axis fastest). For
// rank 2 this is the ordinary matrix transpose; for higher rank it is the
// direct N-dimensional generalization, which leaves every higher-dim plane
// a contiguous sub-tensor because the per-axis stride ratios scale
// identically block by block.
func rowMajorToColMajor[T any](data []T, dims []int32) []T {
	n := len(dims)
	if n <= 1 {
		return data
	}

	rowStride := make([]int, n)
	rowStride[n-1] = 1
	for k := n - 2; k >= 0; k-- {
		rowStride[k] = rowStride[k+1] * int(dims[k+1])
	}
	colStride := make([]int, n)
	colStride[0] = 1
	for k := 1; k < n; k++ {
		colStride[k] = colStride[k-1] * int(dims[k-1])
	}

	out := make([]T, len(data))
	idx := make([]int, n)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == n {
			rowOff, colOff := 0, 0
			for k := 0; k < n; k++ {
				rowOff += idx[k] * rowStride[k]
				colOff += idx[k] * colStride[k]
			}
			out[colOff] = data[rowOff]
			return
		}
		for i := 0; i < int(dims[axis]); i++ {
			idx[axis] = i
			walk(axis + 1)
		}
	}
	walk(0)
	return out
}

// WriteString writes a character-array variable: a mxCHAR envelope with
// dims [1, len(s)] whose body is the Latin-1-widened 16-bit string data
// element (spec.md §4.4 step 6, §6.2 write_string).
func WriteString(w *Writer, name, s string) error {
	raw := []byte(s)
	sizeOffset, err := w.beginEnvelope(mxCHAR_CLASS, false, []int32{1, int32(len(raw))}, name) //nolint:gosec // string lengths fit comfortably in int32
	if err != nil {
		return err
	}
	if err := writeStringElement16(w.s, raw); err != nil {
		return w.fail(err)
	}
	return w.endEnvelope(sizeOffset)
}
