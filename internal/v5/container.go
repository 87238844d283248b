package v5

// frameKind distinguishes the two container types that can be open on the
// frame stack (spec.md §3 Container Frame).
type frameKind int

const (
	frameStruct frameKind = iota
	frameCell
)

// frame is an in-progress struct or cell: the offset of its envelope's
// size field (patched on close) and the offset where its child payloads
// begin. A struct frame additionally accumulates field names as children
// are appended (spec.md §4.5).
type frame struct {
	kind       frameKind
	sizeOffset int64
	dataStart  int64
	fieldNames []string
	// namesWritten is set when the field-name table was written up front
	// (StartStructWithFields), so finishStructFrame skips the read-back
	// splice and just backpatches the envelope size.
	namesWritten bool
}

// containerStack is the Container State component (spec.md §2 item 5): a
// stack of open struct/cell frames enabling nested composition and the
// struct-finalization splice.
type containerStack struct {
	frames []*frame
}

func (c *containerStack) push(f *frame) {
	c.frames = append(c.frames, f)
}

func (c *containerStack) pop() *frame {
	n := len(c.frames)
	f := c.frames[n-1]
	c.frames = c.frames[:n-1]
	return f
}

func (c *containerStack) top() *frame {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

func (c *containerStack) empty() bool { return len(c.frames) == 0 }

// addChildName records name against the frame stack per spec.md §9's
// addStructItemName open question: a name is recorded only when the
// *immediate* top frame is a Struct. A Cell on top drops the name
// entirely — it is never forwarded past the cell to an enclosing struct,
// matching the original encoder's stack.back()==Struct check.
func (c *containerStack) addChildName(name string) {
	top := c.top()
	if top != nil && top.kind == frameStruct {
		top.fieldNames = append(top.fieldNames, name)
	}
}
