package sickl

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/willf/bitset"
)

// emitter.go holds the policy shared by emitter_glsl.go and
// emitter_opencl.go: symbol name mangling, literal formatting, universal
// binary-operator parenthesization and first-assignment-as-declaration
// bookkeeping. Both original backends duplicate this logic almost verbatim
// (OpenGL.Compiler.cpp's get_var_name/print_operator and
// OpenCL.Compiler.cpp's StringBuffer operator<< overloads do the same
// base-26 mangling); this package factors it into one shared generic policy
// instead of that duplication.

// outputWriter buffers generated source text with indent tracking.
type outputWriter struct {
	buffer      *strings.Builder
	indentLevel int
	space       string
}

func newOutputWriter(space string) *outputWriter {
	return &outputWriter{buffer: &strings.Builder{}, space: space}
}

func repeatSpace(width int) string { return strings.Repeat(" ", width) }
func itoa(i int) string            { return strconv.Itoa(i) }

func (o *outputWriter) indent()   { o.indentLevel++ }
func (o *outputWriter) unindent() { o.indentLevel-- }

func (o *outputWriter) writeIndent() {
	for i := 0; i < o.indentLevel; i++ {
		o.buffer.WriteString(o.space)
	}
}

func (o *outputWriter) writei(s string)  { o.writeIndent(); o.write(s) }
func (o *outputWriter) writeil(s string) { o.writeIndent(); o.write(s); o.write("\n") }
func (o *outputWriter) writel(s string)  { o.write(s); o.buffer.WriteString("\n") }
func (o *outputWriter) write(s string)   { o.buffer.WriteString(s) }

func (o *outputWriter) String() string { return o.buffer.String() }

// symbolName mangles a non-negative symbol id into a bijective base-26
// lowercase name: 0->a, 1->b, ..., 25->z, 26->aa, 27->ab, ... This is the
// Go restatement of get_var_name in OpenGL.Compiler.cpp, which accumulates
// digits onto a stack and remaps '0' to 'a'. The mapping must be a bijection
// over the full symbol range; the "subtract 1 before each divide" step below is exactly
// what makes it bijective instead of a leading-zero-dropping base-26
// encoding (which is not injective: "a" and "aa" would collide without it).
func symbolName(id SymbolID) string {
	n := int64(id) + 1
	var digits []byte
	for n > 0 {
		n--
		digits = append(digits, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// declaredSet tracks which symbol ids have already been emitted as a
// declaration, so the second and later assignments to the same symbol emit
// a bare `name = expr;` instead of `type name = expr;`: first assignment is
// a declaration. A bitset is the natural fit for a small dense set of
// non-negative integer keys.
type declaredSet struct {
	bits *bitset.BitSet
}

func newDeclaredSet() *declaredSet {
	return &declaredSet{bits: bitset.New(64)}
}

func (d *declaredSet) markAndWasDeclared(id SymbolID) bool {
	u := uint(id)
	was := d.bits.Test(u)
	d.bits.Set(u)
	return was
}

func (d *declaredSet) contains(id SymbolID) bool {
	return d.bits.Test(uint(id))
}

// formatLiteral renders a Literal node's raw bytes as source text. Bool and
// int format exactly like Go's defaults; uint gets a trailing `u` (GLSL/
// OpenCL integer-literal suffix); float always carries a decimal point
// even for whole numbers, mirroring the original's print-then-trim-zeros
// loop in OpenGL.Compiler.cpp, done here with strconv instead of a
// hand-rolled trim.
func formatLiteral(n *Node) (string, error) {
	switch n.LiteralType {
	case TypeBool:
		if decodeBool(n.Literal) {
			return "true", nil
		}
		return "false", nil
	case TypeInt:
		return strconv.FormatInt(int64(decodeInt32(n.Literal)), 10), nil
	case TypeUInt:
		return strconv.FormatUint(uint64(decodeUInt32(n.Literal)), 10) + "u", nil
	case TypeFloat:
		v := decodeFloat32(n.Literal)
		s := strconv.FormatFloat(float64(v), 'f', -1, 32)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s + "f", nil
	default:
		return "", errors.Errorf("emitter: unsupported literal type %v", n.LiteralType)
	}
}

// binaryOperatorSymbol maps a binary operator NodeKind to its
// source-text operator, for the universal-parenthesization rule: every
// binary operator node is wrapped in parens, without exception, the same
// as print_operator in OpenGL.Compiler.cpp.
func binaryOperatorSymbol(kind NodeKind) (string, bool) {
	switch kind {
	case KindEqual:
		return "==", true
	case KindNotEqual:
		return "!=", true
	case KindGreater:
		return ">", true
	case KindGreaterEqual:
		return ">=", true
	case KindLess:
		return "<", true
	case KindLessEqual:
		return "<=", true
	case KindLogicalAnd:
		return "&&", true
	case KindLogicalOr:
		return "||", true
	case KindBitwiseAnd:
		return "&", true
	case KindBitwiseOr:
		return "|", true
	case KindBitwiseXor:
		return "^", true
	case KindLeftShift:
		return "<<", true
	case KindRightShift:
		return ">>", true
	case KindAdd:
		return "+", true
	case KindSubtract:
		return "-", true
	case KindMultiply:
		return "*", true
	case KindDivide:
		return "/", true
	case KindModulo:
		return "%", true
	default:
		return "", false
	}
}

func unaryOperatorSymbol(kind NodeKind) (string, bool) {
	switch kind {
	case KindLogicalNot:
		return "!", true
	case KindBitwiseNot:
		return "~", true
	case KindUnaryMinus:
		return "-", true
	default:
		return "", false
	}
}

// memberSuffix maps a Member node's index (0..3) to the GLSL/OpenCL .xyzw
// swizzle letter, identical on both backends.
func memberSuffix(index int) (string, error) {
	switch index {
	case 0:
		return "x", nil
	case 1:
		return "y", nil
	case 2:
		return "z", nil
	case 3:
		return "w", nil
	default:
		return "", errors.Errorf("emitter: member index %d out of range", index)
	}
}

// backend supplies the handful of things that actually differ between
// GLSL and OpenCL: type spelling, cast syntax, and how a buffer sample
// lowers to source text. Everything else — every operator, every control
// flow shape, every literal, every constructor and plain function call —
// is emitted once below and shared by both, rather than OpenCL.Compiler.cpp's
// approach of a second hand-written switch duplicating GLSL's.
type backend interface {
	typeName(t Type) (string, error)
	emitCast(ctx *emitCtx, target Type, operand *Node) error
	emitSample1D(ctx *emitCtx, buffer, index *Node) error
	emitSample2D(ctx *emitCtx, buffer, coord *Node) error
	emitIndex(ctx *emitCtx)
	emitNormalizedIndex(ctx *emitCtx)
}

type emitCtx struct {
	w        *outputWriter
	declared *declaredSet
	b        backend

	// pointerOutputs marks symbols that are written through a pointer
	// kernel parameter rather than a local variable — OpenCL's scalar/
	// vector OutData fields (see CompileOpenCL), which can only be
	// communicated back through __global memory. GLSL never populates
	// this, since its fragment outputs are ordinary addressable
	// variables.
	pointerOutputs *declaredSet
}

func newEmitCtx(b backend, indent string) *emitCtx {
	return &emitCtx{w: newOutputWriter(indent), declared: newDeclaredSet(), b: b, pointerOutputs: newDeclaredSet()}
}

func (ctx *emitCtx) markPointerOutput(id SymbolID) { ctx.pointerOutputs.markAndWasDeclared(id) }
func (ctx *emitCtx) isPointerOutput(id SymbolID) bool { return ctx.pointerOutputs.contains(id) }

// emitExpr writes n's source-text expression into ctx.w with no trailing
// newline, recursing into children as needed.
func emitExpr(ctx *emitCtx, n *Node) error {
	switch n.Kind {
	case KindLiteral:
		s, err := formatLiteral(n)
		if err != nil {
			return err
		}
		ctx.w.write(s)
		return nil

	case KindVar, KindConstVar, KindOutVar:
		if ctx.isPointerOutput(n.Symbol) {
			ctx.w.write("(*")
			ctx.w.write(symbolName(n.Symbol))
			ctx.w.write(")")
			return nil
		}
		ctx.w.write(symbolName(n.Symbol))
		return nil

	case KindMember:
		if len(n.Children) != 2 {
			abortf(NodeShapeViolation, "Member node must have exactly two children, got %d", len(n.Children))
		}
		if err := emitExpr(ctx, n.Children[0]); err != nil {
			return err
		}
		suffix, err := memberSuffix(memberIndexOf(n.Children[1]))
		if err != nil {
			return err
		}
		ctx.w.write(".")
		ctx.w.write(suffix)
		return nil

	case KindConstructor:
		typeName, err := ctx.b.typeName(n.Type)
		if err != nil {
			return err
		}
		ctx.w.write(typeName)
		ctx.w.write("(")
		for i, child := range n.Children {
			if i > 0 {
				ctx.w.write(", ")
			}
			if err := emitExpr(ctx, child); err != nil {
				return err
			}
		}
		ctx.w.write(")")
		return nil

	case KindCast:
		if len(n.Children) != 1 {
			abortf(NodeShapeViolation, "Cast node must have exactly one child, got %d", len(n.Children))
		}
		return ctx.b.emitCast(ctx, n.Type, n.Children[0])

	case KindFunction:
		ctx.w.write(n.Name)
		ctx.w.write("(")
		for i, child := range n.Children {
			if i > 0 {
				ctx.w.write(", ")
			}
			if err := emitExpr(ctx, child); err != nil {
				return err
			}
		}
		ctx.w.write(")")
		return nil

	case KindGetIndex:
		ctx.b.emitIndex(ctx)
		return nil

	case KindGetNormalizedIndex:
		ctx.b.emitNormalizedIndex(ctx)
		return nil

	case KindSample1D:
		if len(n.Children) != 2 {
			abortf(NodeShapeViolation, "Sample1D node must have exactly two children, got %d", len(n.Children))
		}
		return ctx.b.emitSample1D(ctx, n.Children[0], n.Children[1])

	case KindSample2D:
		if len(n.Children) != 2 {
			abortf(NodeShapeViolation, "Sample2D node must have exactly two children, got %d", len(n.Children))
		}
		return ctx.b.emitSample2D(ctx, n.Children[0], n.Children[1])

	case KindLogicalNot, KindBitwiseNot, KindUnaryMinus:
		op, _ := unaryOperatorSymbol(n.Kind)
		if len(n.Children) != 1 {
			abortf(NodeShapeViolation, "%s node must have exactly one child, got %d", n.Kind, len(n.Children))
		}
		ctx.w.write(op)
		ctx.w.write("(")
		if err := emitExpr(ctx, n.Children[0]); err != nil {
			return err
		}
		ctx.w.write(")")
		return nil

	default:
		if op, ok := binaryOperatorSymbol(n.Kind); ok {
			if len(n.Children) != 2 {
				abortf(NodeShapeViolation, "%s node must have exactly two children, got %d", n.Kind, len(n.Children))
			}
			ctx.w.write("(")
			if err := emitExpr(ctx, n.Children[0]); err != nil {
				return err
			}
			ctx.w.write(" ")
			ctx.w.write(op)
			ctx.w.write(" ")
			if err := emitExpr(ctx, n.Children[1]); err != nil {
				return err
			}
			ctx.w.write(")")
			return nil
		}
		return errors.Errorf("emitter: %s is not a valid expression node", n.Kind)
	}
}

// memberIndexOf recovers a Member node's literal index child as an int,
// used only by emitExpr's KindMember case above.
func memberIndexOf(literal *Node) int {
	if literal.Kind != KindLiteral {
		abortf(NodeShapeViolation, "Member node's second child must be a Literal, got %s", literal.Kind)
	}
	return int(decodeInt32(literal.Literal))
}

// emitAssignment writes one assignment line, consulting ctx.declared to
// decide whether the target needs a leading type name (first assignment is
// a declaration). A Member target is never a declaration — it rewrites to
// `parent.component = rhs;` through the shared Member expression emission.
func emitAssignment(ctx *emitCtx, n *Node) error {
	if len(n.Children) != 2 {
		abortf(NodeShapeViolation, "Assignment node must have exactly two children, got %d", len(n.Children))
	}
	target, rhs := n.Children[0], n.Children[1]
	ctx.w.writeIndent()

	if target.Kind == KindMember {
		if err := emitExpr(ctx, target); err != nil {
			return err
		}
		ctx.w.write(" = ")
		if err := emitExpr(ctx, rhs); err != nil {
			return err
		}
		ctx.w.writel(";")
		return nil
	}

	name := symbolName(target.Symbol)
	pointerOut := ctx.isPointerOutput(target.Symbol)
	wasDeclared := ctx.declared.markAndWasDeclared(target.Symbol)
	if !wasDeclared && !pointerOut {
		typeName, err := ctx.b.typeName(target.Type)
		if err != nil {
			return err
		}
		ctx.w.write(typeName)
		ctx.w.write(" ")
	}
	if pointerOut {
		ctx.w.write("*")
	}
	ctx.w.write(name)
	ctx.w.write(" = ")
	if err := emitExpr(ctx, rhs); err != nil {
		return err
	}
	ctx.w.writel(";")
	return nil
}

// emitBlockBody emits a sequence of statements, stitching consecutive
// If/ElseIf/Else siblings into a single if/else-if/else cascade (they are
// captured as independent sibling blocks — see control.go — but read back
// out as one cascade, matching the brace shape Source.cpp produces).
func emitBlockBody(ctx *emitCtx, stmts []*Node) error {
	for i := 0; i < len(stmts); i++ {
		n := stmts[i]
		switch n.Kind {
		case KindAssignment:
			if err := emitAssignment(ctx, n); err != nil {
				return err
			}
		case KindIf:
			consumed, err := emitIfCascade(ctx, stmts[i:])
			if err != nil {
				return err
			}
			i += consumed - 1
		case KindWhile:
			if err := emitWhile(ctx, n); err != nil {
				return err
			}
		case KindForInRange:
			if err := emitForInRange(ctx, n); err != nil {
				return err
			}
		default:
			return errors.Errorf("emitter: %s is not a valid statement node", n.Kind)
		}
	}
	return nil
}

// emitIfCascade emits stmts[0] (an If) together with every immediately
// following ElseIf/Else sibling, returning how many nodes it consumed.
func emitIfCascade(ctx *emitCtx, stmts []*Node) (int, error) {
	head := stmts[0]
	if err := emitCondBlock(ctx, "if", head); err != nil {
		return 0, err
	}
	consumed := 1
	for consumed < len(stmts) {
		next := stmts[consumed]
		switch next.Kind {
		case KindElseIf:
			ctx.w.write(" else ")
			if err := emitCondBlockInline(ctx, "if", next); err != nil {
				return 0, err
			}
			consumed++
		case KindElse:
			ctx.w.write(" else ")
			if err := emitPlainBlockInline(ctx, next); err != nil {
				return 0, err
			}
			consumed++
		default:
			ctx.w.write("\n")
			return consumed, nil
		}
	}
	ctx.w.write("\n")
	return consumed, nil
}

func emitCondBlock(ctx *emitCtx, keyword string, n *Node) error {
	ctx.w.writeIndent()
	return emitCondBlockInline(ctx, keyword, n)
}

func emitCondBlockInline(ctx *emitCtx, keyword string, n *Node) error {
	if len(n.Children) < 1 {
		abortf(NodeShapeViolation, "%s node must have a condition child", n.Kind)
	}
	ctx.w.write(keyword)
	ctx.w.write(" (")
	if err := emitExpr(ctx, n.Children[0]); err != nil {
		return err
	}
	ctx.w.write(") {\n")
	ctx.w.indent()
	if err := emitBlockBody(ctx, n.Children[1:]); err != nil {
		return err
	}
	ctx.w.unindent()
	ctx.w.writeIndent()
	ctx.w.write("}")
	return nil
}

func emitPlainBlockInline(ctx *emitCtx, n *Node) error {
	ctx.w.write("{\n")
	ctx.w.indent()
	if err := emitBlockBody(ctx, n.Children); err != nil {
		return err
	}
	ctx.w.unindent()
	ctx.w.writeIndent()
	ctx.w.write("}")
	return nil
}

func emitWhile(ctx *emitCtx, n *Node) error {
	return emitCondBlockNewline(ctx, "while", n)
}

func emitCondBlockNewline(ctx *emitCtx, keyword string, n *Node) error {
	if err := emitCondBlock(ctx, keyword, n); err != nil {
		return err
	}
	ctx.w.write("\n")
	return nil
}

func emitForInRange(ctx *emitCtx, n *Node) error {
	if len(n.Children) < 3 {
		abortf(NodeShapeViolation, "ForInRange node must have at least iterator/from/to children")
	}
	iter, from, to := n.Children[0], n.Children[1], n.Children[2]
	name := symbolName(iter.Symbol)
	ctx.declared.markAndWasDeclared(iter.Symbol)

	fromText, err := formatLiteral(from)
	if err != nil {
		return err
	}
	toText, err := formatLiteral(to)
	if err != nil {
		return err
	}

	ctx.w.writeIndent()
	ctx.w.write("for (int ")
	ctx.w.write(name)
	ctx.w.write(" = ")
	ctx.w.write(fromText)
	ctx.w.write("; ")
	ctx.w.write(name)
	ctx.w.write(" < ")
	ctx.w.write(toText)
	ctx.w.write("; ")
	ctx.w.write(name)
	ctx.w.write("++) {\n")
	ctx.w.indent()
	if err := emitBlockBody(ctx, n.Children[3:]); err != nil {
		return err
	}
	ctx.w.unindent()
	ctx.w.writeil("}")
	return nil
}
