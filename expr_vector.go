package sickl

// Vector value types follow the same shape as the scalar ones in
// expr_scalar.go: an id (Invalid/Temp/Member/real symbol) plus the Node
// that currently produces the value. Construction always emits a
// Constructor node (original AST.h's constructor<T> template); member
// projection emits a Member node referencing the vector's own expression,
// not a clone of it — nodes are never mutated after construction, so
// sharing the pointer across the parent value and its Member children is
// safe.

type Float2 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type Float3 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type Float4 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type Int2 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type Int3 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type Int4 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type UInt2 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type UInt3 struct {
	id   SymbolID
	typ  Type
	expr *Node
}
type UInt4 struct {
	id   SymbolID
	typ  Type
	expr *Node
}

func constructorNode(typ Type, parts ...*Node) *Node {
	n := NewNode(KindConstructor, typ)
	for _, p := range parts {
		n.AddChild(p)
	}
	return n
}

func NewFloat2(x, y Float) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: constructorNode(TypeFloat2, x.consume(), y.consume())}
}
func NewFloat3(x, y, z Float) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: constructorNode(TypeFloat3, x.consume(), y.consume(), z.consume())}
}
func NewFloat4(x, y, z, w Float) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: constructorNode(TypeFloat4, x.consume(), y.consume(), z.consume(), w.consume())}
}
func NewInt2(x, y Int) Int2 {
	return Int2{id: Temp, typ: TypeInt2, expr: constructorNode(TypeInt2, x.consume(), y.consume())}
}
func NewInt3(x, y, z Int) Int3 {
	return Int3{id: Temp, typ: TypeInt3, expr: constructorNode(TypeInt3, x.consume(), y.consume(), z.consume())}
}
func NewInt4(x, y, z, w Int) Int4 {
	return Int4{id: Temp, typ: TypeInt4, expr: constructorNode(TypeInt4, x.consume(), y.consume(), z.consume(), w.consume())}
}
func NewUInt2(x, y UInt) UInt2 {
	return UInt2{id: Temp, typ: TypeUInt2, expr: constructorNode(TypeUInt2, x.consume(), y.consume())}
}
func NewUInt3(x, y, z UInt) UInt3 {
	return UInt3{id: Temp, typ: TypeUInt3, expr: constructorNode(TypeUInt3, x.consume(), y.consume(), z.consume())}
}
func NewUInt4(x, y, z, w UInt) UInt4 {
	return UInt4{id: Temp, typ: TypeUInt4, expr: constructorNode(TypeUInt4, x.consume(), y.consume(), z.consume(), w.consume())}
}

func (v Float2) consume() *Node { return v.expr }
func (v Float3) consume() *Node { return v.expr }
func (v Float4) consume() *Node { return v.expr }
func (v Int2) consume() *Node   { return v.expr }
func (v Int3) consume() *Node   { return v.expr }
func (v Int4) consume() *Node   { return v.expr }
func (v UInt2) consume() *Node  { return v.expr }
func (v UInt3) consume() *Node  { return v.expr }
func (v UInt4) consume() *Node  { return v.expr }

func (v Float2) Type() Type { return v.typ }
func (v Float3) Type() Type { return v.typ }
func (v Float4) Type() Type { return v.typ }
func (v Int2) Type() Type   { return v.typ }
func (v Int3) Type() Type   { return v.typ }
func (v Int4) Type() Type   { return v.typ }
func (v UInt2) Type() Type  { return v.typ }
func (v UInt3) Type() Type  { return v.typ }
func (v UInt4) Type() Type  { return v.typ }

func member(elementType Type, parent *Node, index int) Float {
	return Float{id: Member, typ: elementType, expr: NewMemberNode(elementType, parent, index)}
}
func memberInt(elementType Type, parent *Node, index int) Int {
	return Int{id: Member, typ: elementType, expr: NewMemberNode(elementType, parent, index)}
}
func memberUInt(elementType Type, parent *Node, index int) UInt {
	return UInt{id: Member, typ: elementType, expr: NewMemberNode(elementType, parent, index)}
}

func (v Float2) X() Float { return member(TypeFloat, v.consume(), 0) }
func (v Float2) Y() Float { return member(TypeFloat, v.consume(), 1) }
func (v Float3) X() Float { return member(TypeFloat, v.consume(), 0) }
func (v Float3) Y() Float { return member(TypeFloat, v.consume(), 1) }
func (v Float3) Z() Float { return member(TypeFloat, v.consume(), 2) }
func (v Float4) X() Float { return member(TypeFloat, v.consume(), 0) }
func (v Float4) Y() Float { return member(TypeFloat, v.consume(), 1) }
func (v Float4) Z() Float { return member(TypeFloat, v.consume(), 2) }
func (v Float4) W() Float { return member(TypeFloat, v.consume(), 3) }

func (v Int2) X() Int { return memberInt(TypeInt, v.consume(), 0) }
func (v Int2) Y() Int { return memberInt(TypeInt, v.consume(), 1) }
func (v Int3) X() Int { return memberInt(TypeInt, v.consume(), 0) }
func (v Int3) Y() Int { return memberInt(TypeInt, v.consume(), 1) }
func (v Int3) Z() Int { return memberInt(TypeInt, v.consume(), 2) }
func (v Int4) X() Int { return memberInt(TypeInt, v.consume(), 0) }
func (v Int4) Y() Int { return memberInt(TypeInt, v.consume(), 1) }
func (v Int4) Z() Int { return memberInt(TypeInt, v.consume(), 2) }
func (v Int4) W() Int { return memberInt(TypeInt, v.consume(), 3) }

func (v UInt2) X() UInt { return memberUInt(TypeUInt, v.consume(), 0) }
func (v UInt2) Y() UInt { return memberUInt(TypeUInt, v.consume(), 1) }
func (v UInt3) X() UInt { return memberUInt(TypeUInt, v.consume(), 0) }
func (v UInt3) Y() UInt { return memberUInt(TypeUInt, v.consume(), 1) }
func (v UInt3) Z() UInt { return memberUInt(TypeUInt, v.consume(), 2) }
func (v UInt4) X() UInt { return memberUInt(TypeUInt, v.consume(), 0) }
func (v UInt4) Y() UInt { return memberUInt(TypeUInt, v.consume(), 1) }
func (v UInt4) Z() UInt { return memberUInt(TypeUInt, v.consume(), 2) }
func (v UInt4) W() UInt { return memberUInt(TypeUInt, v.consume(), 3) }

// Assign mirrors expr_scalar.go's Assign: first use allocates a symbol,
// later uses reassign the existing one, and a Member-typed receiver
// assigns into its own projection (`parent.component = rhs`) instead.

func (v *Float2) Assign(rhs Float2) {
	v.expr = assignInto(&v.id, KindVar, TypeFloat2, v.expr, rhs.consume())
}
func (v *Float3) Assign(rhs Float3) {
	v.expr = assignInto(&v.id, KindVar, TypeFloat3, v.expr, rhs.consume())
}
func (v *Float4) Assign(rhs Float4) {
	v.expr = assignInto(&v.id, KindVar, TypeFloat4, v.expr, rhs.consume())
}
func (v *Int2) Assign(rhs Int2) { v.expr = assignInto(&v.id, KindVar, TypeInt2, v.expr, rhs.consume()) }
func (v *Int3) Assign(rhs Int3) { v.expr = assignInto(&v.id, KindVar, TypeInt3, v.expr, rhs.consume()) }
func (v *Int4) Assign(rhs Int4) { v.expr = assignInto(&v.id, KindVar, TypeInt4, v.expr, rhs.consume()) }
func (v *UInt2) Assign(rhs UInt2) {
	v.expr = assignInto(&v.id, KindVar, TypeUInt2, v.expr, rhs.consume())
}
func (v *UInt3) Assign(rhs UInt3) {
	v.expr = assignInto(&v.id, KindVar, TypeUInt3, v.expr, rhs.consume())
}
func (v *UInt4) Assign(rhs UInt4) {
	v.expr = assignInto(&v.id, KindVar, TypeUInt4, v.expr, rhs.consume())
}

// Componentwise arithmetic. Only the operations the GLSL/OpenCL backends
// both support on every vector width are exposed.

func (v Float2) Add(o Float2) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: binaryNode(KindAdd, TypeFloat2, v.consume(), o.consume())}
}
func (v Float2) Sub(o Float2) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: binaryNode(KindSubtract, TypeFloat2, v.consume(), o.consume())}
}
func (v Float2) Mul(o Float2) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: binaryNode(KindMultiply, TypeFloat2, v.consume(), o.consume())}
}
func (v Float2) Div(o Float2) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: binaryNode(KindDivide, TypeFloat2, v.consume(), o.consume())}
}

func (v Float3) Add(o Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: binaryNode(KindAdd, TypeFloat3, v.consume(), o.consume())}
}
func (v Float3) Sub(o Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: binaryNode(KindSubtract, TypeFloat3, v.consume(), o.consume())}
}
func (v Float3) Mul(o Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: binaryNode(KindMultiply, TypeFloat3, v.consume(), o.consume())}
}
func (v Float3) Div(o Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: binaryNode(KindDivide, TypeFloat3, v.consume(), o.consume())}
}

func (v Float4) Add(o Float4) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: binaryNode(KindAdd, TypeFloat4, v.consume(), o.consume())}
}
func (v Float4) Sub(o Float4) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: binaryNode(KindSubtract, TypeFloat4, v.consume(), o.consume())}
}
func (v Float4) Mul(o Float4) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: binaryNode(KindMultiply, TypeFloat4, v.consume(), o.consume())}
}
func (v Float4) Div(o Float4) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: binaryNode(KindDivide, TypeFloat4, v.consume(), o.consume())}
}

func (v Int2) Add(o Int2) Int2 {
	return Int2{id: Temp, typ: TypeInt2, expr: binaryNode(KindAdd, TypeInt2, v.consume(), o.consume())}
}
func (v Int2) Sub(o Int2) Int2 {
	return Int2{id: Temp, typ: TypeInt2, expr: binaryNode(KindSubtract, TypeInt2, v.consume(), o.consume())}
}
func (v Int3) Add(o Int3) Int3 {
	return Int3{id: Temp, typ: TypeInt3, expr: binaryNode(KindAdd, TypeInt3, v.consume(), o.consume())}
}
func (v Int3) Sub(o Int3) Int3 {
	return Int3{id: Temp, typ: TypeInt3, expr: binaryNode(KindSubtract, TypeInt3, v.consume(), o.consume())}
}
func (v Int4) Add(o Int4) Int4 {
	return Int4{id: Temp, typ: TypeInt4, expr: binaryNode(KindAdd, TypeInt4, v.consume(), o.consume())}
}
func (v Int4) Sub(o Int4) Int4 {
	return Int4{id: Temp, typ: TypeInt4, expr: binaryNode(KindSubtract, TypeInt4, v.consume(), o.consume())}
}

func (v UInt2) Add(o UInt2) UInt2 {
	return UInt2{id: Temp, typ: TypeUInt2, expr: binaryNode(KindAdd, TypeUInt2, v.consume(), o.consume())}
}
func (v UInt3) Add(o UInt3) UInt3 {
	return UInt3{id: Temp, typ: TypeUInt3, expr: binaryNode(KindAdd, TypeUInt3, v.consume(), o.consume())}
}
func (v UInt4) Add(o UInt4) UInt4 {
	return UInt4{id: Temp, typ: TypeUInt4, expr: binaryNode(KindAdd, TypeUInt4, v.consume(), o.consume())}
}
