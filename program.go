package sickl

// Source is implemented by a user program: Parse runs once, capturing the
// program's ConstData/OutData/Main blocks via the package-level helpers
// below. This plays the role of the original's `class Mandelbrot : public
// Source` with its pure virtual Parse() (Source.h), translated from
// inheritance to a one-method interface, the idiomatic Go substitute.
type Source interface {
	Parse()
}

// ConstData captures the program's read-only inputs. Must be called
// exactly once, directly inside Source.Parse.
func ConstData(body func()) {
	topLevelBlock(KindConstData, body)
}

// OutData captures the program's outputs. Must be called exactly once,
// directly inside Source.Parse.
func OutData(body func()) {
	topLevelBlock(KindOutData, body)
}

// Main captures the program body. Must be called exactly once, directly
// inside Source.Parse.
func Main(body func()) {
	topLevelBlock(KindMain, body)
}

func topLevelBlock(kind NodeKind, body func()) {
	c := current()
	if c.blockKind() != KindProgram {
		abortf(CaptureMisuse, "%s must be declared directly inside Parse, not nested in another block", kind)
	}
	c.OpenBlock(kind)
	body()
	c.CloseBlock()
}

// Parse runs src.Parse inside a fresh capture and returns the finished
// Program node, validated to have exactly one each of ConstData, OutData
// and Main (the same invariant OpenGLCompiler::Build asserts in the
// original before emitting).
func Parse(src Source) *Node {
	c := BeginCapture()
	src.Parse()
	c.EndCapture()
	root := c.Root()
	assertProgramShape(root)
	return root
}

func assertProgramShape(root *Node) {
	if len(root.Children) != 3 {
		abortf(CaptureMisuse, "a program must declare exactly ConstData, OutData and Main, got %d top-level block(s)", len(root.Children))
	}
	var hasConst, hasOut, hasMain bool
	for _, ch := range root.Children {
		switch ch.Kind {
		case KindConstData:
			hasConst = true
		case KindOutData:
			hasOut = true
		case KindMain:
			hasMain = true
		default:
			abortf(CaptureMisuse, "unexpected top-level block kind %s", ch.Kind)
		}
	}
	if !hasConst || !hasOut || !hasMain {
		abortf(CaptureMisuse, "a program must declare ConstData, OutData and Main exactly once each")
	}
}
