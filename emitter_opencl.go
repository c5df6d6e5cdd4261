package sickl

import (
	"strings"

	"github.com/pkg/errors"
)

// openclBackend lowers a captured program to an OpenCL C kernel, grounded
// on source/Backends/OpenCL/OpenCL.Compiler.cpp in original_source/. That
// file's print_type (by way of ReturnType_t's operator<<) supplies the
// type-name table below; its print_code is, in the original, an empty
// switch — this backend fills it in with the same generic
// statement/expression rules GLSL uses (emitBlockBody/emitExpr in
// emitter.go), handed to it via the shared backend interface. Buffers are
// plain pointers here instead of samplers, so Sample1D/Sample2D lower to
// pointer indexing rather than texelFetch.
type openclBackend struct{}

func (openclBackend) elementTypeName(t Type) (string, error) {
	switch t.Element() {
	case TypeBool:
		return "bool", nil
	case TypeInt:
		return "int", nil
	case TypeUInt:
		return "uint", nil
	case TypeFloat:
		return "float", nil
	case TypeInt2:
		return "int2", nil
	case TypeUInt2:
		return "uint2", nil
	case TypeFloat2:
		return "float2", nil
	case TypeInt3:
		return "int3", nil
	case TypeUInt3:
		return "uint3", nil
	case TypeFloat3:
		return "float3", nil
	case TypeInt4:
		return "int4", nil
	case TypeUInt4:
		return "uint4", nil
	case TypeFloat4:
		return "float4", nil
	default:
		return "", errors.Errorf("opencl: unsupported type %v", t)
	}
}

func (o openclBackend) typeName(t Type) (string, error) {
	name, err := o.elementTypeName(t)
	if err != nil {
		return "", err
	}
	if t.IsBuffer1D() || t.IsBuffer2D() {
		return name + "*", nil
	}
	return name, nil
}

// emitCast uses OpenCL C's plain parenthesized cast, not GLSL's
// function-style constructor cast.
func (o openclBackend) emitCast(ctx *emitCtx, target Type, operand *Node) error {
	name, err := o.elementTypeName(target)
	if err != nil {
		return err
	}
	ctx.w.write("(")
	ctx.w.write(name)
	ctx.w.write(")(")
	if err := emitExpr(ctx, operand); err != nil {
		return err
	}
	ctx.w.write(")")
	return nil
}

func (o openclBackend) emitSample1D(ctx *emitCtx, buffer, index *Node) error {
	if err := emitExpr(ctx, buffer); err != nil {
		return err
	}
	ctx.w.write("[")
	if err := emitExpr(ctx, index); err != nil {
		return err
	}
	ctx.w.write("]")
	return nil
}

func (o openclBackend) emitSample2D(ctx *emitCtx, buffer, coord *Node) error {
	name := symbolName(buffer.Symbol)
	widthName := name + "_width"

	if err := emitExpr(ctx, buffer); err != nil {
		return err
	}
	ctx.w.write("[")
	if coord.Type == TypeInt2 {
		if len(coord.Children) != 2 {
			abortf(NodeShapeViolation, "Int2 coordinate constructor must have exactly two children")
		}
		x, y := coord.Children[0], coord.Children[1]
		ctx.w.write("(")
		if err := emitExpr(ctx, y); err != nil {
			return err
		}
		ctx.w.write(") * " + widthName + " + (")
		if err := emitExpr(ctx, x); err != nil {
			return err
		}
		ctx.w.write(")")
	} else {
		heightName := name + "_height"
		ctx.w.write("(int)((")
		if err := emitExpr(ctx, NewMemberNode(TypeFloat, coord, 1)); err != nil {
			return err
		}
		ctx.w.write(") * " + heightName + ") * " + widthName + " + (int)((")
		if err := emitExpr(ctx, NewMemberNode(TypeFloat, coord, 0)); err != nil {
			return err
		}
		ctx.w.write(") * " + widthName + ")")
	}
	ctx.w.write("]")
	return nil
}

func (o openclBackend) emitIndex(ctx *emitCtx) {
	ctx.w.write("(int2)(get_global_id(0), get_global_id(1))")
}

func (o openclBackend) emitNormalizedIndex(ctx *emitCtx) {
	ctx.w.write("(float2)((float)get_global_id(0) / (float)get_global_size(0), " +
		"(float)get_global_id(1) / (float)get_global_size(1))")
}

// CompileOpenCL lowers a validated Program node (see Parse) to an OpenCL C
// kernel. ConstData fields become const parameters (buffers become const
// __global pointers with companion _length/_width/_height size params);
// OutData fields always become __global pointers, since a kernel can only
// communicate results back through global memory (original_source's
// print_kernel_source does the same for its buffer outputs; scalar/vector
// outputs get the same one-element-buffer treatment here, an extension the
// GLSL target doesn't need because a fragment shader's outputs already are
// individually addressable in the pipeline). Every non-buffer OutData
// symbol is registered as a pointer output (emitCtx.markPointerOutput) so
// emitAssignment/emitExpr dereference it (`*name`/`(*name)`) instead of
// treating it as an ordinary local.
func CompileOpenCL(root *Node, cfg *Config) (string, error) {
	constData, ok := root.FindChild(KindConstData)
	if !ok {
		return "", errors.New("opencl: program has no ConstData block")
	}
	outData, ok := root.FindChild(KindOutData)
	if !ok {
		return "", errors.New("opencl: program has no OutData block")
	}
	main, ok := root.FindChild(KindMain)
	if !ok {
		return "", errors.New("opencl: program has no Main block")
	}

	var o openclBackend
	ctx := newEmitCtx(o, repeatSpace(cfg.GetInt("emitter.indent_width")))

	var params []string
	for _, in := range constData.Children {
		ps, err := o.paramDecl(in, true)
		if err != nil {
			return "", err
		}
		params = append(params, ps...)
		ctx.declared.markAndWasDeclared(in.Symbol)
	}
	for _, out := range outData.Children {
		ps, err := o.paramDecl(out, false)
		if err != nil {
			return "", err
		}
		params = append(params, ps...)
		ctx.declared.markAndWasDeclared(out.Symbol)
		if !out.Type.IsBuffer1D() && !out.Type.IsBuffer2D() {
			ctx.markPointerOutput(out.Symbol)
		}
	}

	ctx.w.write("__kernel void " + cfg.GetString("opencl.kernel_name") + "(")
	ctx.w.write(strings.Join(params, ", "))
	ctx.w.writel(") {")
	ctx.w.indent()
	if err := emitBlockBody(ctx, main.Children); err != nil {
		return "", err
	}
	ctx.w.unindent()
	ctx.w.writel("}")

	return ctx.w.String(), nil
}

// paramDecl renders one ConstData/OutData field as one or more kernel
// parameters: a buffer expands to a pointer plus its length/width/height
// companions; a plain scalar/vector input passes by value, but a plain
// scalar/vector output still needs a pointer (see CompileOpenCL's doc
// comment above). isConst mirrors original_source's OpenCLCompiler, which
// unconditionally prefixes every ConstData parameter with "const" whether
// or not it's a buffer — OutData parameters never get it.
func (o openclBackend) paramDecl(n *Node, isConst bool) ([]string, error) {
	name := symbolName(n.Symbol)
	elemName, err := o.elementTypeName(n.Type)
	if err != nil {
		return nil, err
	}

	bufferQualifier := "__global"
	if isConst {
		bufferQualifier = "const __global"
	}

	switch {
	case n.Type.IsBuffer1D():
		return []string{
			bufferQualifier + " " + elemName + "* " + name,
			"uint " + name + "_length",
		}, nil
	case n.Type.IsBuffer2D():
		return []string{
			bufferQualifier + " " + elemName + "* " + name,
			"uint " + name + "_width",
			"uint " + name + "_height",
		}, nil
	case n.Kind == KindOutVar:
		return []string{"__global " + elemName + "* " + name}, nil
	default:
		if isConst {
			return []string{"const " + elemName + " " + name}, nil
		}
		return []string{elemName + " " + name}, nil
	}
}
