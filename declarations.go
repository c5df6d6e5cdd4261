package sickl

// Const* and Out* declare the named inputs/outputs a program exchanges with
// its caller. Each one may only be called while the matching
// ConstData/OutData block is open — the original enforces this by which
// BEGIN_CONST_DATA/BEGIN_OUT_DATA macro body the declaration textually sits
// inside; here it is a runtime check against the active block's kind, the
// same kind of guard capture.go uses for close_block/end_capture.

func (c *Capture) blockKind() NodeKind { return c.top().Kind }

func declareVar(want NodeKind, kind NodeKind, typ Type, name string) *Node {
	c := current()
	if c.blockKind() != want {
		abortf(CaptureMisuse, "%s declarations are only valid directly inside the %s block", kind, want)
	}
	id := c.NextSymbol()
	n := NewVarNode(kind, typ, id)
	n.Name = name
	c.Emit(n)
	return n
}

// Const declarations: only valid inside ConstData.

func ConstBool(name string) Bool {
	n := declareVar(KindConstData, KindConstVar, TypeBool, name)
	return Bool{id: n.Symbol, typ: TypeBool, expr: n}
}
func ConstInt(name string) Int {
	n := declareVar(KindConstData, KindConstVar, TypeInt, name)
	return Int{id: n.Symbol, typ: TypeInt, expr: n}
}
func ConstUInt(name string) UInt {
	n := declareVar(KindConstData, KindConstVar, TypeUInt, name)
	return UInt{id: n.Symbol, typ: TypeUInt, expr: n}
}
func ConstFloat(name string) Float {
	n := declareVar(KindConstData, KindConstVar, TypeFloat, name)
	return Float{id: n.Symbol, typ: TypeFloat, expr: n}
}
func ConstFloat2(name string) Float2 {
	n := declareVar(KindConstData, KindConstVar, TypeFloat2, name)
	return Float2{id: n.Symbol, typ: TypeFloat2, expr: n}
}
func ConstFloat3(name string) Float3 {
	n := declareVar(KindConstData, KindConstVar, TypeFloat3, name)
	return Float3{id: n.Symbol, typ: TypeFloat3, expr: n}
}
func ConstFloat4(name string) Float4 {
	n := declareVar(KindConstData, KindConstVar, TypeFloat4, name)
	return Float4{id: n.Symbol, typ: TypeFloat4, expr: n}
}
func ConstInt2(name string) Int2 {
	n := declareVar(KindConstData, KindConstVar, TypeInt2, name)
	return Int2{id: n.Symbol, typ: TypeInt2, expr: n}
}
func ConstInt3(name string) Int3 {
	n := declareVar(KindConstData, KindConstVar, TypeInt3, name)
	return Int3{id: n.Symbol, typ: TypeInt3, expr: n}
}
func ConstInt4(name string) Int4 {
	n := declareVar(KindConstData, KindConstVar, TypeInt4, name)
	return Int4{id: n.Symbol, typ: TypeInt4, expr: n}
}
func ConstUInt2(name string) UInt2 {
	n := declareVar(KindConstData, KindConstVar, TypeUInt2, name)
	return UInt2{id: n.Symbol, typ: TypeUInt2, expr: n}
}
func ConstUInt3(name string) UInt3 {
	n := declareVar(KindConstData, KindConstVar, TypeUInt3, name)
	return UInt3{id: n.Symbol, typ: TypeUInt3, expr: n}
}
func ConstUInt4(name string) UInt4 {
	n := declareVar(KindConstData, KindConstVar, TypeUInt4, name)
	return UInt4{id: n.Symbol, typ: TypeUInt4, expr: n}
}

func ConstBuffer1D[T BufferElem](name string) Buffer1D[T] {
	c := current()
	if c.blockKind() != KindConstData {
		abortf(CaptureMisuse, "ConstBuffer1D declarations are only valid directly inside the ConstData block")
	}
	id := c.NextSymbol()
	b := newBuffer1D[T](KindConstVar, id, name)
	c.Emit(b.consume())
	return b
}

func ConstBuffer2D[T BufferElem](name string) Buffer2D[T] {
	c := current()
	if c.blockKind() != KindConstData {
		abortf(CaptureMisuse, "ConstBuffer2D declarations are only valid directly inside the ConstData block")
	}
	id := c.NextSymbol()
	b := newBuffer2D[T](KindConstVar, id, name)
	c.Emit(b.consume())
	return b
}

// Out declarations: only valid inside OutData.

func OutBool(name string) Bool {
	n := declareVar(KindOutData, KindOutVar, TypeBool, name)
	return Bool{id: n.Symbol, typ: TypeBool, expr: n}
}
func OutInt(name string) Int {
	n := declareVar(KindOutData, KindOutVar, TypeInt, name)
	return Int{id: n.Symbol, typ: TypeInt, expr: n}
}
func OutUInt(name string) UInt {
	n := declareVar(KindOutData, KindOutVar, TypeUInt, name)
	return UInt{id: n.Symbol, typ: TypeUInt, expr: n}
}
func OutFloat(name string) Float {
	n := declareVar(KindOutData, KindOutVar, TypeFloat, name)
	return Float{id: n.Symbol, typ: TypeFloat, expr: n}
}
func OutFloat2(name string) Float2 {
	n := declareVar(KindOutData, KindOutVar, TypeFloat2, name)
	return Float2{id: n.Symbol, typ: TypeFloat2, expr: n}
}
func OutFloat3(name string) Float3 {
	n := declareVar(KindOutData, KindOutVar, TypeFloat3, name)
	return Float3{id: n.Symbol, typ: TypeFloat3, expr: n}
}
func OutFloat4(name string) Float4 {
	n := declareVar(KindOutData, KindOutVar, TypeFloat4, name)
	return Float4{id: n.Symbol, typ: TypeFloat4, expr: n}
}
func OutInt2(name string) Int2 {
	n := declareVar(KindOutData, KindOutVar, TypeInt2, name)
	return Int2{id: n.Symbol, typ: TypeInt2, expr: n}
}
func OutInt3(name string) Int3 {
	n := declareVar(KindOutData, KindOutVar, TypeInt3, name)
	return Int3{id: n.Symbol, typ: TypeInt3, expr: n}
}
func OutInt4(name string) Int4 {
	n := declareVar(KindOutData, KindOutVar, TypeInt4, name)
	return Int4{id: n.Symbol, typ: TypeInt4, expr: n}
}
func OutUInt2(name string) UInt2 {
	n := declareVar(KindOutData, KindOutVar, TypeUInt2, name)
	return UInt2{id: n.Symbol, typ: TypeUInt2, expr: n}
}
func OutUInt3(name string) UInt3 {
	n := declareVar(KindOutData, KindOutVar, TypeUInt3, name)
	return UInt3{id: n.Symbol, typ: TypeUInt3, expr: n}
}
func OutUInt4(name string) UInt4 {
	n := declareVar(KindOutData, KindOutVar, TypeUInt4, name)
	return UInt4{id: n.Symbol, typ: TypeUInt4, expr: n}
}

func OutBuffer1D[T BufferElem](name string) Buffer1D[T] {
	c := current()
	if c.blockKind() != KindOutData {
		abortf(CaptureMisuse, "OutBuffer1D declarations are only valid directly inside the OutData block")
	}
	id := c.NextSymbol()
	b := newBuffer1D[T](KindOutVar, id, name)
	c.Emit(b.consume())
	return b
}

func OutBuffer2D[T BufferElem](name string) Buffer2D[T] {
	c := current()
	if c.blockKind() != KindOutData {
		abortf(CaptureMisuse, "OutBuffer2D declarations are only valid directly inside the OutData block")
	}
	id := c.NextSymbol()
	b := newBuffer2D[T](KindOutVar, id, name)
	c.Emit(b.consume())
	return b
}

// Local* produce an unassigned placeholder value (id == Invalid, no symbol
// allocated yet) ready to be the target of a first Assign, or, for Int, the
// iterator argument to ForInRange. Unlike a bare `var x Int`, which would
// leave id at Go's zero value (0) and be mistaken for the real symbol 0,
// these make the Invalid state explicit.

func LocalBool() Bool   { return Bool{id: Invalid, typ: TypeBool} }
func LocalInt() Int     { return Int{id: Invalid, typ: TypeInt} }
func LocalUInt() UInt   { return UInt{id: Invalid, typ: TypeUInt} }
func LocalFloat() Float { return Float{id: Invalid, typ: TypeFloat} }

func LocalFloat2() Float2 { return Float2{id: Invalid, typ: TypeFloat2} }
func LocalFloat3() Float3 { return Float3{id: Invalid, typ: TypeFloat3} }
func LocalFloat4() Float4 { return Float4{id: Invalid, typ: TypeFloat4} }
func LocalInt2() Int2     { return Int2{id: Invalid, typ: TypeInt2} }
func LocalInt3() Int3     { return Int3{id: Invalid, typ: TypeInt3} }
func LocalInt4() Int4     { return Int4{id: Invalid, typ: TypeInt4} }
func LocalUInt2() UInt2   { return UInt2{id: Invalid, typ: TypeUInt2} }
func LocalUInt3() UInt3   { return UInt3{id: Invalid, typ: TypeUInt3} }
func LocalUInt4() UInt4   { return UInt4{id: Invalid, typ: TypeUInt4} }
