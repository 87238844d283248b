package v5

// StartCell opens a cell array envelope. dims defaults to [1,1] when the
// caller does not supply an explicit shape. No field-name bookkeeping
// happens here — a cell frame on top of the stack drops any child name
// rather than collecting it (spec.md §9, containerStack.addChildName).
func StartCell(w *Writer, name string, dims []int32) error {
	if len(dims) == 0 {
		dims = []int32{1, 1}
	}
	sizeOffset, err := w.beginEnvelope(mxCELL_CLASS, false, dims, name)
	if err != nil {
		return err
	}
	w.stack.push(&frame{kind: frameCell, sizeOffset: sizeOffset, dataStart: w.s.tell()})
	return nil
}

// EndCell closes the innermost open cell frame.
func EndCell(w *Writer) error {
	if w.err != nil {
		return w.err
	}
	f := w.stack.top()
	if f == nil || f.kind != frameCell {
		return w.fail(&InvariantViolation{Msg: "EndCell with no open cell frame"})
	}
	if err := finishCellFrame(w, f); err != nil {
		return err
	}
	w.stack.pop()
	return nil
}

// finishCellFrame backpatches the envelope size; a cell array has no
// field-name table to splice in.
func finishCellFrame(w *Writer, f *frame) error {
	return w.endEnvelope(f.sizeOffset)
}
