package sickl

// Buffer1D/Buffer2D are the composite buffer types: an element type with a
// dimensionality flag OR-ed on top. They are Go type parameters over the
// twelve scalar/vector Elem kinds rather than the original's C++ template
// Buffer1D<T>/Buffer2D<T> — the closest idiomatic match Go's generics allow.
//
// A concrete element type cannot be constructed generically by field
// literal (its fields are unexported and distinct types), so wrapElem and
// elementTypeOf dispatch on a type switch over the zero value of T. This is
// the standard workaround for "construct one of a closed set of concrete
// types from a type parameter" in Go's generics model.

// BufferElem is the closed set of types usable as a buffer's element.
type BufferElem interface {
	Float | Int | UInt | Float2 | Int2 | UInt2 | Float3 | Int3 | UInt3 | Float4 | Int4 | UInt4
}

func elementTypeOf[T BufferElem]() Type {
	var zero T
	switch any(zero).(type) {
	case Float:
		return TypeFloat
	case Int:
		return TypeInt
	case UInt:
		return TypeUInt
	case Float2:
		return TypeFloat2
	case Int2:
		return TypeInt2
	case UInt2:
		return TypeUInt2
	case Float3:
		return TypeFloat3
	case Int3:
		return TypeInt3
	case UInt3:
		return TypeUInt3
	case Float4:
		return TypeFloat4
	case Int4:
		return TypeInt4
	case UInt4:
		return TypeUInt4
	default:
		return TypeVoid
	}
}

func wrapElem[T BufferElem](elementType Type, n *Node) T {
	var zero T
	switch any(zero).(type) {
	case Float:
		return any(Float{id: Temp, typ: elementType, expr: n}).(T)
	case Int:
		return any(Int{id: Temp, typ: elementType, expr: n}).(T)
	case UInt:
		return any(UInt{id: Temp, typ: elementType, expr: n}).(T)
	case Float2:
		return any(Float2{id: Temp, typ: elementType, expr: n}).(T)
	case Int2:
		return any(Int2{id: Temp, typ: elementType, expr: n}).(T)
	case UInt2:
		return any(UInt2{id: Temp, typ: elementType, expr: n}).(T)
	case Float3:
		return any(Float3{id: Temp, typ: elementType, expr: n}).(T)
	case Int3:
		return any(Int3{id: Temp, typ: elementType, expr: n}).(T)
	case UInt3:
		return any(UInt3{id: Temp, typ: elementType, expr: n}).(T)
	case Float4:
		return any(Float4{id: Temp, typ: elementType, expr: n}).(T)
	case Int4:
		return any(Int4{id: Temp, typ: elementType, expr: n}).(T)
	case UInt4:
		return any(UInt4{id: Temp, typ: elementType, expr: n}).(T)
	default:
		abortf(NodeShapeViolation, "unsupported buffer element type %v", elementType)
		panic("unreachable")
	}
}

// Buffer1D is a linear, indexable buffer of T, sampled by an integer index.
type Buffer1D[T BufferElem] struct {
	id   SymbolID
	typ  Type
	expr *Node
}

func newBuffer1D[T BufferElem](kind NodeKind, id SymbolID, name string) Buffer1D[T] {
	typ := elementTypeOf[T]().WithBuffer1D()
	n := NewVarNode(kind, typ, id)
	n.Name = name
	return Buffer1D[T]{id: id, typ: typ, expr: n}
}

func (b Buffer1D[T]) consume() *Node { return b.expr }
func (b Buffer1D[T]) Type() Type     { return b.typ }

// Sample reads the element at index, emitting a Sample1D node (original
// OpenGL.Compiler.cpp's texelFetch/texelFetchBuffer emission).
func (b Buffer1D[T]) Sample(index Int) T {
	elem := b.Type().Element()
	n := NewNode(KindSample1D, elem)
	n.AddChild(b.consume())
	n.AddChild(index.consume())
	return wrapElem[T](elem, n)
}

// Buffer2D is a rectangular, indexable buffer of T, sampled by an Int2
// integer coordinate. There is no normalized Float2 coordinate overload.
type Buffer2D[T BufferElem] struct {
	id   SymbolID
	typ  Type
	expr *Node
}

func newBuffer2D[T BufferElem](kind NodeKind, id SymbolID, name string) Buffer2D[T] {
	typ := elementTypeOf[T]().WithBuffer2D()
	n := NewVarNode(kind, typ, id)
	n.Name = name
	return Buffer2D[T]{id: id, typ: typ, expr: n}
}

func (b Buffer2D[T]) consume() *Node { return b.expr }
func (b Buffer2D[T]) Type() Type     { return b.typ }

// Sample reads the element at coord, emitting a Sample2D node. The
// original's single-argument Sample2D overload requires an Int2 coordinate
// (COMPUTE_ASSERT(... == ReturnType::Int2) in OpenGL.Compiler.cpp); this is
// that overload.
func (b Buffer2D[T]) Sample(coord Int2) T {
	elem := b.Type().Element()
	n := NewNode(KindSample2D, elem)
	n.AddChild(b.consume())
	n.AddChild(coord.consume())
	return wrapElem[T](elem, n)
}
