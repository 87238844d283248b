package v5

// fieldNameMaxWidth is the floor on a struct's field-name table column
// width, matching the original encoder's TinyMAT_combineStrings, which
// never emits a table narrower than 32 bytes even for short names.
const fieldNameMaxWidth = 32

// clampFieldName truncates name to fit within fieldNameMaxWidth bytes
// including its NUL terminator, one byte at a time from the end, exactly
// as the original encoder does rather than a single bounded slice.
func clampFieldName(name string) string {
	for len(name) > fieldNameMaxWidth-1 {
		name = name[:len(name)-1]
	}
	return name
}

// writeFieldNameTable emits a struct's Field-Name-Length small element
// (the table's column width, floored at fieldNameMaxWidth) followed by
// the Field-Names data element: each name clamped and right-padded with
// NUL to that width, concatenated, then zero-padded to an 8-byte boundary
// (spec.md §4.5, original_source/src/tinymatwriter.cpp TinyMAT_combineStrings).
func writeFieldNameTable(s sink, fields []string) error {
	clamped := make([]string, len(fields))
	width := fieldNameMaxWidth
	for i, f := range fields {
		c := clampFieldName(f)
		clamped[i] = c
		if l := len(c); l > width {
			width = l
		}
	}
	if err := writeSmallInt32(s, int32(width)); err != nil { //nolint:gosec // field-name widths are tiny
		return err
	}
	buf := make([]byte, width*len(clamped))
	for i, f := range clamped {
		copy(buf[i*width:], f)
	}
	return writeElement(s, miINT8, buf)
}

// StartStruct opens a 1x1 struct whose field names are not yet known: they
// accumulate as children are written (via containerStack.addChildName) and
// are spliced in on EndStruct (spec.md §4.5).
func StartStruct(w *Writer, name string) error {
	sizeOffset, err := w.beginEnvelope(mxSTRUCT_CLASS, false, []int32{1, 1}, name)
	if err != nil {
		return err
	}
	w.stack.push(&frame{kind: frameStruct, sizeOffset: sizeOffset, dataStart: w.s.tell()})
	return nil
}

// StartStructWithFields opens a 1x1 struct whose field names are supplied
// up front. The field-name table is written immediately, so EndStruct only
// needs to backpatch the envelope size — no read-back splice required.
func StartStructWithFields(w *Writer, name string, fields []string) error {
	sizeOffset, err := w.beginEnvelope(mxSTRUCT_CLASS, false, []int32{1, 1}, name)
	if err != nil {
		return err
	}
	if err := writeFieldNameTable(w.s, fields); err != nil {
		return w.fail(err)
	}
	w.stack.push(&frame{
		kind:         frameStruct,
		sizeOffset:   sizeOffset,
		dataStart:    w.s.tell(),
		fieldNames:   append([]string(nil), fields...),
		namesWritten: true,
	})
	return nil
}

// EndStruct closes the innermost open struct frame.
func EndStruct(w *Writer) error {
	if w.err != nil {
		return w.err
	}
	f := w.stack.top()
	if f == nil || f.kind != frameStruct {
		return w.fail(&InvariantViolation{Msg: "EndStruct with no open struct frame"})
	}
	if err := finishStructFrame(w, f); err != nil {
		return err
	}
	w.stack.pop()
	return nil
}

// finishStructFrame performs the splice: if the field-name table was not
// written up front, the body written since dataStart is read back into
// memory, the table is written in its place at dataStart, and the body is
// re-emitted verbatim, before the envelope size is backpatched
// (spec.md §4.5).
func finishStructFrame(w *Writer, f *frame) error {
	if f.namesWritten {
		return w.endEnvelope(f.sizeOffset)
	}

	endOffset := w.s.tell()
	body, err := w.s.readBack(f.dataStart, endOffset-f.dataStart)
	if err != nil {
		return w.fail(err)
	}
	if err := w.s.seek(f.dataStart); err != nil {
		return w.fail(err)
	}
	if err := writeFieldNameTable(w.s, f.fieldNames); err != nil {
		return w.fail(err)
	}
	if len(body) > 0 {
		if _, err := w.s.write(body); err != nil {
			return w.fail(err)
		}
	}
	return w.endEnvelope(f.sizeOffset)
}
