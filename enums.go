package sickl

import "fmt"

// SymbolID identifies a named value within one capture. Three negative
// sentinels carry meaning beyond "a real symbol": see Invalid, Temp and
// Member below.
type SymbolID int32

const (
	// Invalid marks a value that has not yet been assigned a symbol.
	Invalid SymbolID = -1
	// Temp marks a value that owns a transient subtree rather than
	// naming a symbol.
	Temp SymbolID = -2
	// Member marks a value that is a member projection of a parent and
	// therefore has no identity of its own.
	Member SymbolID = -3
)

// NodeKind is the closed set of AST node kinds the capture context and
// emitters understand.
type NodeKind int

const (
	KindInvalid NodeKind = iota

	// Flow control / program structure
	KindProgram
	KindConstData
	KindOutData
	KindMain
	KindBlock
	KindIf
	KindElseIf
	KindElse
	KindWhile
	KindForInRange

	// Variable declaration
	KindOutVar
	KindConstVar
	KindVar
	KindLiteral

	// Assignment
	KindAssignment

	// Comparison
	KindEqual
	KindNotEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual

	// Logical
	KindLogicalAnd
	KindLogicalOr
	KindLogicalNot

	// Bitwise
	KindBitwiseAnd
	KindBitwiseOr
	KindBitwiseXor
	KindBitwiseNot

	// Shift
	KindLeftShift
	KindRightShift

	// Arithmetic
	KindUnaryMinus
	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindModulo

	// Functions / constructors
	KindConstructor
	KindCast
	KindFunction

	KindSample1D
	KindSample2D
	KindMember
	KindGetIndex
	KindGetNormalizedIndex
)

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

var nodeKindNames = map[NodeKind]string{
	KindInvalid:            "Invalid",
	KindProgram:            "Program",
	KindConstData:          "ConstData",
	KindOutData:            "OutData",
	KindMain:               "Main",
	KindBlock:              "Block",
	KindIf:                 "If",
	KindElseIf:             "ElseIf",
	KindElse:               "Else",
	KindWhile:              "While",
	KindForInRange:         "ForInRange",
	KindOutVar:             "OutVar",
	KindConstVar:           "ConstVar",
	KindVar:                "Var",
	KindLiteral:            "Literal",
	KindAssignment:         "Assignment",
	KindEqual:              "Equal",
	KindNotEqual:           "NotEqual",
	KindGreater:            "Greater",
	KindGreaterEqual:       "GreaterEqual",
	KindLess:               "Less",
	KindLessEqual:          "LessEqual",
	KindLogicalAnd:         "LogicalAnd",
	KindLogicalOr:          "LogicalOr",
	KindLogicalNot:         "LogicalNot",
	KindBitwiseAnd:         "BitwiseAnd",
	KindBitwiseOr:          "BitwiseOr",
	KindBitwiseXor:         "BitwiseXor",
	KindBitwiseNot:         "BitwiseNot",
	KindLeftShift:          "LeftShift",
	KindRightShift:         "RightShift",
	KindUnaryMinus:         "UnaryMinus",
	KindAdd:                "Add",
	KindSubtract:           "Subtract",
	KindMultiply:           "Multiply",
	KindDivide:             "Divide",
	KindModulo:             "Modulo",
	KindConstructor:        "Constructor",
	KindCast:               "Cast",
	KindFunction:           "Function",
	KindSample1D:           "Sample1D",
	KindSample2D:           "Sample2D",
	KindMember:             "Member",
	KindGetIndex:           "GetIndex",
	KindGetNormalizedIndex: "GetNormalizedIndex",
}

// Type is a bitmask tag: scalar/vector element kinds each own a single bit,
// and buffer dimensionality is OR-ed on top of an element kind. The emitter
// decodes a buffer type by masking the dimensionality flag back off.
type Type uint32

const (
	TypeVoid Type = 1 << iota
	TypeBool
	TypeInt
	TypeUInt
	TypeFloat
	TypeInt2
	TypeUInt2
	TypeFloat2
	TypeInt3
	TypeUInt3
	TypeFloat3
	TypeInt4
	TypeUInt4
	TypeFloat4
)

const (
	// Buffer1D/Buffer2D occupy high bits so they can be OR-ed onto any
	// element type above without colliding.
	TypeBuffer1D Type = 1 << 30
	TypeBuffer2D Type = 1 << 31
)

// bufferDimMask is every bit that denotes "this is a buffer of some
// dimensionality" rather than an element kind.
const bufferDimMask = TypeBuffer1D | TypeBuffer2D

// Element strips any buffer-dimensionality flag off, returning the
// element's scalar/vector type tag.
func (t Type) Element() Type { return t &^ bufferDimMask }

// IsBuffer1D / IsBuffer2D test the dimensionality flag.
func (t Type) IsBuffer1D() bool { return t&TypeBuffer1D != 0 }
func (t Type) IsBuffer2D() bool { return t&TypeBuffer2D != 0 }

// WithBuffer1D / WithBuffer2D OR the dimensionality flag onto an element
// type, producing the composite buffer return type.
func (t Type) WithBuffer1D() Type { return t | TypeBuffer1D }
func (t Type) WithBuffer2D() Type { return t | TypeBuffer2D }

// Width reports vector component count: 1 for scalars, else 2/3/4.
func (t Type) Width() int {
	switch t.Element() {
	case TypeBool, TypeInt, TypeUInt, TypeFloat:
		return 1
	case TypeInt2, TypeUInt2, TypeFloat2:
		return 2
	case TypeInt3, TypeUInt3, TypeFloat3:
		return 3
	case TypeInt4, TypeUInt4, TypeFloat4:
		return 4
	default:
		return 0
	}
}

func (t Type) String() string {
	if s, ok := typeNames[t.Element()]; ok {
		suffix := ""
		if t.IsBuffer1D() {
			suffix = "@Buffer1D"
		} else if t.IsBuffer2D() {
			suffix = "@Buffer2D"
		}
		return s + suffix
	}
	return fmt.Sprintf("Type(%#x)", uint32(t))
}

var typeNames = map[Type]string{
	TypeVoid:   "Void",
	TypeBool:   "Bool",
	TypeInt:    "Int",
	TypeUInt:   "UInt",
	TypeFloat:  "Float",
	TypeInt2:   "Int2",
	TypeUInt2:  "UInt2",
	TypeFloat2: "Float2",
	TypeInt3:   "Int3",
	TypeUInt3:  "UInt3",
	TypeFloat3: "Float3",
	TypeInt4:   "Int4",
	TypeUInt4:  "UInt4",
	TypeFloat4: "Float4",
}

// BuiltinFunc enumerates the fixed-arity free functions the eDSL exposes.
type BuiltinFunc int

const (
	FuncInvalid BuiltinFunc = iota
	// info
	FuncIndex
	FuncNormalizedIndex
	// trigonometry
	FuncSin
	FuncCos
	FuncTan
	FuncASin
	FuncACos
	FuncATan
	FuncSinH
	FuncCosH
	FuncTanH
	FuncASinH
	FuncACosH
	FuncATanH
	// exponential
	FuncPow
	FuncExp
	FuncLog
	FuncExp2
	FuncLog2
	FuncSqrt
	// common
	FuncAbs
	FuncSign
	FuncFloor
	FuncCeiling
	FuncMin
	FuncMax
	FuncClamp
	FuncIsNan
	FuncIsInf
	// vector math
	FuncLength
	FuncDistance
	FuncDot
	FuncCross
	FuncNormalize
)

// builtinNames is indexed by BuiltinFunc and mirrors the original's
// function_names table in OpenGL.Compiler.cpp, shared by both backends.
var builtinNames = [...]string{
	FuncInvalid:         "",
	FuncIndex:           "",
	FuncNormalizedIndex: "",
	FuncSin:             "sin",
	FuncCos:             "cos",
	FuncTan:             "tan",
	FuncASin:            "asin",
	FuncACos:            "acos",
	FuncATan:            "atan",
	FuncSinH:            "sinh",
	FuncCosH:            "cosh",
	FuncTanH:            "tanh",
	FuncASinH:           "asinh",
	FuncACosH:           "acosh",
	FuncATanH:           "atanh",
	FuncPow:             "pow",
	FuncExp:             "exp",
	FuncLog:             "log",
	FuncExp2:            "exp2",
	FuncLog2:            "log2",
	FuncSqrt:            "sqrt",
	FuncAbs:             "abs",
	FuncSign:            "sign",
	FuncFloor:           "floor",
	FuncCeiling:         "ceil",
	FuncMin:             "min",
	FuncMax:             "max",
	FuncClamp:           "clamp",
	FuncIsNan:           "isnan",
	FuncIsInf:           "isinf",
	FuncLength:          "length",
	FuncDistance:        "distance",
	FuncDot:             "dot",
	FuncCross:           "cross",
	FuncNormalize:       "normalize",
}
