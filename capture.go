package sickl

// Capture holds the process-wide mutable state for exactly one in-flight
// capture: the root Program node, a stack of blocks whose top is the
// container new statements attach to, and a monotonic symbol counter. Only
// one Capture may be active at a time; BeginCapture panics if one already
// is.
//
// The block stack is a plain slice, not a dedicated stack type — a slice
// with push/pop/top helpers is the simplest shape for this kind of LIFO
// bookkeeping.
type Capture struct {
	root    *Node
	blocks  []*Node
	nextSym int32
}

// activeCapture is the ambient single-capture-at-a-time state. It is not
// guarded by a mutex: the contract is "one capture at a time", not
// "concurrent captures are safe", and a mutex would suggest the latter.
var activeCapture *Capture

// current returns the active capture, aborting if none is in flight. Every
// expression-type operation that needs to emit a node goes through this.
func current() *Capture {
	if activeCapture == nil {
		abortf(CaptureMisuse, "no capture is active; call Parse (or BeginCapture) first")
	}
	return activeCapture
}

// BeginCapture allocates the root Program node, pushes it as the sole block,
// resets the symbol counter, and makes this the active capture.
func BeginCapture() *Capture {
	if activeCapture != nil {
		abortf(CaptureMisuse, "a capture is already active; captures cannot be nested or run concurrently")
	}
	root := NewNode(KindProgram, TypeVoid)
	c := &Capture{root: root, blocks: []*Node{root}}
	activeCapture = c
	return c
}

// EndCapture asserts the block stack contains exactly the root, snapshots
// the symbol count, and unbinds the ambient state.
func (c *Capture) EndCapture() int32 {
	if len(c.blocks) != 1 {
		abortf(CaptureMisuse, "end_capture called with %d block(s) still open; every open_block must be matched by close_block", len(c.blocks))
	}
	if activeCapture == c {
		activeCapture = nil
	}
	return c.nextSym
}

// Root returns the finalized Program node. Valid only after EndCapture.
func (c *Capture) Root() *Node { return c.root }

func (c *Capture) top() *Node { return c.blocks[len(c.blocks)-1] }

// NextSymbol returns and increments the monotonic symbol counter; symbols
// allocate 0, 1, 2, … without gaps.
func (c *Capture) NextSymbol() SymbolID {
	id := SymbolID(c.nextSym)
	c.nextSym++
	return id
}

// OpenBlock creates a child node of the given kind, attaches it to the
// current top block, and pushes it as the new top.
func (c *Capture) OpenBlock(kind NodeKind) *Node {
	child := NewNode(kind, TypeVoid)
	c.top().AddChild(child)
	c.blocks = append(c.blocks, child)
	return child
}

// CloseBlock pops the current top block. The stack must remain nonempty
// (the root is never popped by CloseBlock; EndCapture is what retires it).
func (c *Capture) CloseBlock() {
	if len(c.blocks) <= 1 {
		abortf(CaptureMisuse, "close_block called with no open block beyond the program root")
	}
	c.blocks = c.blocks[:len(c.blocks)-1]
}

// Emit appends a finished statement node to the current top block.
func (c *Capture) Emit(n *Node) {
	c.top().AddChild(n)
}

// If_ opens an If block with the captured condition as its first child.
func (c *Capture) If_(cond Bool) *Node {
	block := c.OpenBlock(KindIf)
	block.AddChild(cond.consume())
	return block
}

// ElseIf_ opens an ElseIf block with the captured condition as its first
// child. It is a sibling of the preceding If/ElseIf, not nested under it;
// the caller (the generated control-flow wrapper) is responsible for
// closing the previous block before opening this one.
func (c *Capture) ElseIf_(cond Bool) *Node {
	block := c.OpenBlock(KindElseIf)
	block.AddChild(cond.consume())
	return block
}

// Else_ opens an Else block (no condition child).
func (c *Capture) Else_() *Node {
	return c.OpenBlock(KindElse)
}

// While_ opens a While block with the captured condition as its first child.
func (c *Capture) While_(cond Bool) *Node {
	block := c.OpenBlock(KindWhile)
	block.AddChild(cond.consume())
	return block
}

// ForInRange_ opens a ForInRange block. it must currently be Invalid (never
// used before); a fresh symbol is allocated for it. The block's first three
// children are the iterator Var, the literal `from`, and the literal `to`.
func (c *Capture) ForInRange_(it *Int, from, to int32) *Node {
	if it.id != Invalid {
		abortf(CaptureMisuse, "for_in_range requires an iterator that has not been used before (id must be Invalid)")
	}
	it.id = c.NextSymbol()
	it.expr = NewVarNode(KindVar, TypeInt, it.id)

	block := c.OpenBlock(KindForInRange)
	block.AddChild(NewVarNode(KindVar, TypeInt, it.id))
	block.AddChild(NewLiteralNode(TypeInt, encodeInt32(from)))
	block.AddChild(NewLiteralNode(TypeInt, encodeInt32(to)))
	return block
}
