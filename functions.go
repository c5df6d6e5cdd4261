package sickl

// functions.go captures calls to the builtin free functions enumerated by
// BuiltinFunc (enums.go), grounded in OpenGL.Compiler.cpp's print_function
// name table. Index/NormalizedIndex are the two ambient, zero-argument
// exceptions: the original threads them through distinct AST node kinds
// (GetIndex/GetNormalizedIndex) rather than a generic Function call because
// each backend lowers them to a different primitive (GLSL's vertex-shader
// varyings vs. OpenCL's get_global_id), not a named call at all.

// Index returns the current invocation's integer pixel/work-item
// coordinate as an Int2.
func Index() Int2 {
	n := NewNode(KindGetIndex, TypeInt2)
	return Int2{id: Temp, typ: TypeInt2, expr: n}
}

// NormalizedIndex returns the current invocation's coordinate normalized to
// [0, 1] on both axes, as a Float2.
func NormalizedIndex() Float2 {
	n := NewNode(KindGetNormalizedIndex, TypeFloat2)
	return Float2{id: Temp, typ: TypeFloat2, expr: n}
}

func call1(fn BuiltinFunc, typ Type, a *Node) *Node {
	n := NewNode(KindFunction, typ)
	n.Name = builtinNames[fn]
	n.AddChild(a)
	return n
}

func call2(fn BuiltinFunc, typ Type, a, b *Node) *Node {
	n := NewNode(KindFunction, typ)
	n.Name = builtinNames[fn]
	n.AddChild(a)
	n.AddChild(b)
	return n
}

func call3(fn BuiltinFunc, typ Type, a, b, c *Node) *Node {
	n := NewNode(KindFunction, typ)
	n.Name = builtinNames[fn]
	n.AddChild(a)
	n.AddChild(b)
	n.AddChild(c)
	return n
}

// Trigonometric / exponential / common math, all Float -> Float.

func Sin(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncSin, TypeFloat, x.consume())} }
func Cos(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncCos, TypeFloat, x.consume())} }
func Tan(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncTan, TypeFloat, x.consume())} }
func ASin(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncASin, TypeFloat, x.consume())} }
func ACos(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncACos, TypeFloat, x.consume())} }
func ATan(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncATan, TypeFloat, x.consume())} }
func SinH(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncSinH, TypeFloat, x.consume())} }
func CosH(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncCosH, TypeFloat, x.consume())} }
func TanH(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncTanH, TypeFloat, x.consume())} }
func ASinH(x Float) Float { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncASinH, TypeFloat, x.consume())} }
func ACosH(x Float) Float { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncACosH, TypeFloat, x.consume())} }
func ATanH(x Float) Float { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncATanH, TypeFloat, x.consume())} }
func Exp(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncExp, TypeFloat, x.consume())} }
func Log(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncLog, TypeFloat, x.consume())} }
func Exp2(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncExp2, TypeFloat, x.consume())} }
func Log2(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncLog2, TypeFloat, x.consume())} }
func Sqrt(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncSqrt, TypeFloat, x.consume())} }
func Abs(x Float) Float   { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncAbs, TypeFloat, x.consume())} }
func Sign(x Float) Float  { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncSign, TypeFloat, x.consume())} }
func Floor(x Float) Float { return Float{id: Temp, typ: TypeFloat, expr: call1(FuncFloor, TypeFloat, x.consume())} }
func Ceiling(x Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call1(FuncCeiling, TypeFloat, x.consume())}
}

func Pow(x, y Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncPow, TypeFloat, x.consume(), y.consume())}
}
func Min(x, y Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncMin, TypeFloat, x.consume(), y.consume())}
}
func Max(x, y Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncMax, TypeFloat, x.consume(), y.consume())}
}
func Clamp(x, lo, hi Float) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call3(FuncClamp, TypeFloat, x.consume(), lo.consume(), hi.consume())}
}

func IsNan(x Float) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: call1(FuncIsNan, TypeBool, x.consume())}
}
func IsInf(x Float) Bool {
	return Bool{id: Temp, typ: TypeBool, expr: call1(FuncIsInf, TypeBool, x.consume())}
}

// Vector math.

func Length2(v Float2) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call1(FuncLength, TypeFloat, v.consume())}
}
func Length3(v Float3) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call1(FuncLength, TypeFloat, v.consume())}
}
func Length4(v Float4) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call1(FuncLength, TypeFloat, v.consume())}
}

func Distance2(a, b Float2) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncDistance, TypeFloat, a.consume(), b.consume())}
}
func Distance3(a, b Float3) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncDistance, TypeFloat, a.consume(), b.consume())}
}

func Dot2(a, b Float2) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncDot, TypeFloat, a.consume(), b.consume())}
}
func Dot3(a, b Float3) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncDot, TypeFloat, a.consume(), b.consume())}
}
func Dot4(a, b Float4) Float {
	return Float{id: Temp, typ: TypeFloat, expr: call2(FuncDot, TypeFloat, a.consume(), b.consume())}
}

func Cross3(a, b Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: call2(FuncCross, TypeFloat3, a.consume(), b.consume())}
}

func Normalize2(v Float2) Float2 {
	return Float2{id: Temp, typ: TypeFloat2, expr: call1(FuncNormalize, TypeFloat2, v.consume())}
}
func Normalize3(v Float3) Float3 {
	return Float3{id: Temp, typ: TypeFloat3, expr: call1(FuncNormalize, TypeFloat3, v.consume())}
}
func Normalize4(v Float4) Float4 {
	return Float4{id: Temp, typ: TypeFloat4, expr: call1(FuncNormalize, TypeFloat4, v.consume())}
}
