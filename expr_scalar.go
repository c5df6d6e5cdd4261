package sickl

// Scalar value types wrap a *Node that represents "the expression that
// currently produces this value." A value starts out either Invalid (made
// by a Local* constructor, never assigned) or Temp (the result of an operator, not yet bound
// to a name). The first Assign call on an Invalid value allocates a symbol
// and captures an Assignment node whose declared-ness the emitter later
// infers from first use (first-assignment-as-declaration). Reassigning an
// already-named value captures a plain Assignment against the existing Var.
// Assigning into a Member value captures an Assignment whose left child is
// the Member subtree itself, emitted as `parent.component = rhs` — the
// original's Member<BASE,PARENT> inherits its parent's operator= for
// exactly this (Interfaces.h), so no symbol is allocated for the
// projection; it is never more than a view onto the named parent vector.
//
// This mirrors the original's AST.h::is_primitive<T>/get_return_type<T>
// template pair, translated from templates to one small struct per scalar
// kind plus shared helper methods, the idiomatic Go substitute for the
// C++ partial-specialization trick.

// Bool is a captured boolean expression.
type Bool struct {
	id   SymbolID
	typ  Type
	expr *Node
}

// Int is a captured signed 32-bit integer expression.
type Int struct {
	id   SymbolID
	typ  Type
	expr *Node
}

// UInt is a captured unsigned 32-bit integer expression.
type UInt struct {
	id   SymbolID
	typ  Type
	expr *Node
}

// Float is a captured 32-bit floating point expression.
type Float struct {
	id   SymbolID
	typ  Type
	expr *Node
}

// BoolLit / IntLit / UIntLit / FloatLit build a Temp value wrapping a
// Literal node, the capture-time equivalent of a plain constant in source.
func BoolLit(v bool) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: NewLiteralNode(TypeBool, encodeBool(v))}
}

func IntLit(v int32) Int {
	return Int{id: Temp, typ: TypeInt, expr: NewLiteralNode(TypeInt, encodeInt32(v))}
}

func UIntLit(v uint32) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: NewLiteralNode(TypeUInt, encodeUInt32(v))}
}

func FloatLit(v float32) Float {
	return Float{id: Temp, typ: TypeFloat, expr: NewLiteralNode(TypeFloat, encodeFloat32(v))}
}

// newVar builds a value already bound to a freshly allocated symbol,
// the shape produced by Const/Out declarations (declarations.go).
func newBoolVar(kind NodeKind, id SymbolID) Bool {
	return Bool{id: id, typ: TypeBool, expr: NewVarNode(kind, TypeBool, id)}
}
func newIntVar(kind NodeKind, id SymbolID) Int {
	return Int{id: id, typ: TypeInt, expr: NewVarNode(kind, TypeInt, id)}
}
func newUIntVar(kind NodeKind, id SymbolID) UInt {
	return UInt{id: id, typ: TypeUInt, expr: NewVarNode(kind, TypeUInt, id)}
}
func newFloatVar(kind NodeKind, id SymbolID) Float {
	return Float{id: id, typ: TypeFloat, expr: NewVarNode(kind, TypeFloat, id)}
}

// consume returns the node representing this value's current expression.
// It is called exactly once per use site: operators consume their
// operands, If_/While_ consume the condition, Assign consumes the RHS.
func (b Bool) consume() *Node  { return b.expr }
func (i Int) consume() *Node   { return i.expr }
func (u UInt) consume() *Node  { return u.expr }
func (f Float) consume() *Node { return f.expr }

func (b Bool) Type() Type  { return b.typ }
func (i Int) Type() Type   { return i.typ }
func (u UInt) Type() Type  { return u.typ }
func (f Float) Type() Type { return f.typ }

// assignInto is the shared first-assignment-or-reassignment machinery. id
// is a pointer to the receiver's symbol slot so the first assignment can
// write the freshly allocated id back into it. self is the receiver's
// current expression node, needed only for the Member case: a member
// projection never owns a symbol, so the existing Member node itself
// becomes the assignment's target rather than a freshly built Var.
func assignInto(id *SymbolID, kind NodeKind, typ Type, self *Node, rhs *Node) *Node {
	c := current()
	if *id == Member {
		assign := NewNode(KindAssignment, typ)
		assign.AddChild(self)
		assign.AddChild(rhs)
		c.Emit(assign)
		return self
	}
	if *id == Invalid || *id == Temp {
		*id = c.NextSymbol()
	}
	varNode := NewVarNode(kind, typ, *id)
	assign := NewNode(KindAssignment, typ)
	assign.AddChild(varNode)
	assign.AddChild(rhs)
	c.Emit(assign)
	return NewVarNode(kind, typ, *id)
}

func (b *Bool) Assign(rhs Bool) {
	b.expr = assignInto(&b.id, KindVar, TypeBool, b.expr, rhs.consume())
}
func (i *Int) Assign(rhs Int) {
	i.expr = assignInto(&i.id, KindVar, TypeInt, i.expr, rhs.consume())
}
func (u *UInt) Assign(rhs UInt) {
	u.expr = assignInto(&u.id, KindVar, TypeUInt, u.expr, rhs.consume())
}
func (f *Float) Assign(rhs Float) {
	f.expr = assignInto(&f.id, KindVar, TypeFloat, f.expr, rhs.consume())
}

func binaryNode(kind NodeKind, typ Type, lhs, rhs *Node) *Node {
	n := NewNode(kind, typ)
	n.AddChild(lhs)
	n.AddChild(rhs)
	return n
}

func unaryNode(kind NodeKind, typ Type, operand *Node) *Node {
	n := NewNode(kind, typ)
	n.AddChild(operand)
	return n
}

// Logical

func (b Bool) And(o Bool) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(KindLogicalAnd, TypeBool, b.consume(), o.consume())}
}
func (b Bool) Or(o Bool) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(KindLogicalOr, TypeBool, b.consume(), o.consume())}
}
func (b Bool) Not() Bool {
	return Bool{id: Temp, typ: TypeBool, expr: unaryNode(KindLogicalNot, TypeBool, b.consume())}
}
func (b Bool) Equal(o Bool) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(KindEqual, TypeBool, b.consume(), o.consume())}
}
func (b Bool) NotEqual(o Bool) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(KindNotEqual, TypeBool, b.consume(), o.consume())}
}

// Int arithmetic/comparison/bitwise

func (i Int) Add(o Int) Int { return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindAdd, TypeInt, i.consume(), o.consume())} }
func (i Int) Sub(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindSubtract, TypeInt, i.consume(), o.consume())}
}
func (i Int) Mul(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindMultiply, TypeInt, i.consume(), o.consume())}
}
func (i Int) Div(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindDivide, TypeInt, i.consume(), o.consume())}
}
func (i Int) Mod(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindModulo, TypeInt, i.consume(), o.consume())}
}
func (i Int) Neg() Int {
	return Int{id: Temp, typ: TypeInt, expr: unaryNode(KindUnaryMinus, TypeInt, i.consume())}
}
func (i Int) BitAnd(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindBitwiseAnd, TypeInt, i.consume(), o.consume())}
}
func (i Int) BitOr(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindBitwiseOr, TypeInt, i.consume(), o.consume())}
}
func (i Int) BitXor(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindBitwiseXor, TypeInt, i.consume(), o.consume())}
}
func (i Int) BitNot() Int {
	return Int{id: Temp, typ: TypeInt, expr: unaryNode(KindBitwiseNot, TypeInt, i.consume())}
}
func (i Int) Shl(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindLeftShift, TypeInt, i.consume(), o.consume())}
}
func (i Int) Shr(o Int) Int {
	return Int{id: Temp, typ: TypeInt, expr: binaryNode(KindRightShift, TypeInt, i.consume(), o.consume())}
}

func (i Int) cmp(kind NodeKind, o Int) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(kind, TypeBool, i.consume(), o.consume())}
}
func (i Int) Equal(o Int) Bool        { return i.cmp(KindEqual, o) }
func (i Int) NotEqual(o Int) Bool     { return i.cmp(KindNotEqual, o) }
func (i Int) Less(o Int) Bool         { return i.cmp(KindLess, o) }
func (i Int) LessEqual(o Int) Bool    { return i.cmp(KindLessEqual, o) }
func (i Int) Greater(o Int) Bool      { return i.cmp(KindGreater, o) }
func (i Int) GreaterEqual(o Int) Bool { return i.cmp(KindGreaterEqual, o) }

func (i Int) ToFloat() Float {
	return Float{id: Temp, typ: TypeFloat, expr: unaryNode(KindCast, TypeFloat, i.consume())}
}
func (i Int) ToUInt() UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: unaryNode(KindCast, TypeUInt, i.consume())}
}

// UInt mirrors Int, minus signed negation.

func (u UInt) Add(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindAdd, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Sub(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindSubtract, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Mul(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindMultiply, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Div(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindDivide, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Mod(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindModulo, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) BitAnd(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindBitwiseAnd, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) BitOr(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindBitwiseOr, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) BitXor(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindBitwiseXor, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Shl(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindLeftShift, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) Shr(o UInt) UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: binaryNode(KindRightShift, TypeUInt, u.consume(), o.consume())}
}
func (u UInt) BitNot() UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: unaryNode(KindBitwiseNot, TypeUInt, u.consume())}
}

func (u UInt) cmp(kind NodeKind, o UInt) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(kind, TypeBool, u.consume(), o.consume())}
}
func (u UInt) Equal(o UInt) Bool        { return u.cmp(KindEqual, o) }
func (u UInt) NotEqual(o UInt) Bool     { return u.cmp(KindNotEqual, o) }
func (u UInt) Less(o UInt) Bool         { return u.cmp(KindLess, o) }
func (u UInt) LessEqual(o UInt) Bool    { return u.cmp(KindLessEqual, o) }
func (u UInt) Greater(o UInt) Bool      { return u.cmp(KindGreater, o) }
func (u UInt) GreaterEqual(o UInt) Bool { return u.cmp(KindGreaterEqual, o) }

func (u UInt) ToInt() Int {
	return Int{id: Temp, typ: TypeInt, expr: unaryNode(KindCast, TypeInt, u.consume())}
}
func (u UInt) ToFloat() Float {
	return Float{id: Temp, typ: TypeFloat, expr: unaryNode(KindCast, TypeFloat, u.consume())}
}

// Float arithmetic/comparison

func (f Float) Add(o Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: binaryNode(KindAdd, TypeFloat, f.consume(), o.consume())}
}
func (f Float) Sub(o Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: binaryNode(KindSubtract, TypeFloat, f.consume(), o.consume())}
}
func (f Float) Mul(o Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: binaryNode(KindMultiply, TypeFloat, f.consume(), o.consume())}
}
func (f Float) Div(o Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: binaryNode(KindDivide, TypeFloat, f.consume(), o.consume())}
}
func (f Float) Neg() Float {
	return Float{id: Temp, typ: TypeFloat, expr: unaryNode(KindUnaryMinus, TypeFloat, f.consume())}
}

func (f Float) cmp(kind NodeKind, o Float) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: binaryNode(kind, TypeBool, f.consume(), o.consume())}
}
func (f Float) Equal(o Float) Bool        { return f.cmp(KindEqual, o) }
func (f Float) NotEqual(o Float) Bool     { return f.cmp(KindNotEqual, o) }
func (f Float) Less(o Float) Bool         { return f.cmp(KindLess, o) }
func (f Float) LessEqual(o Float) Bool    { return f.cmp(KindLessEqual, o) }
func (f Float) Greater(o Float) Bool      { return f.cmp(KindGreater, o) }
func (f Float) GreaterEqual(o Float) Bool { return f.cmp(KindGreaterEqual, o) }

func (f Float) ToInt() Int {
	return Int{id: Temp, typ: TypeInt, expr: unaryNode(KindCast, TypeInt, f.consume())}
}
func (f Float) ToUInt() UInt {
	return UInt{id: Temp, typ: TypeUInt, expr: unaryNode(KindCast, TypeUInt, f.consume())}
}
