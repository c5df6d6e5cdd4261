package sickl

import (
	"github.com/pkg/errors"
)

// glslBackend lowers a captured program to an OpenGL 3.30 fragment shader,
// grounded on source/Backends/OpenGL/OpenGL.Compiler.cpp in
// original_source/: print_type's GLSL type table, get_var_name's base-26
// mangling (factored out to emitter.go's symbolName, shared with OpenCL),
// and the texelFetch lowering for Sample1D/Sample2D.
type glslBackend struct {
	indexVar           string
	normalizedIndexVar string
}

func (glslBackend) typeName(t Type) (string, error) {
	if t.IsBuffer1D() {
		switch t.Element() {
		case TypeInt, TypeInt2, TypeInt3, TypeInt4:
			return "isamplerBuffer", nil
		case TypeUInt, TypeUInt2, TypeUInt3, TypeUInt4:
			return "usamplerBuffer", nil
		case TypeFloat, TypeFloat2, TypeFloat3, TypeFloat4:
			return "samplerBuffer", nil
		default:
			return "", errors.Errorf("glsl: unsupported Buffer1D element type %v", t.Element())
		}
	}
	if t.IsBuffer2D() {
		switch t.Element() {
		case TypeInt, TypeInt2, TypeInt3, TypeInt4:
			return "isampler2DRect", nil
		case TypeUInt, TypeUInt2, TypeUInt3, TypeUInt4:
			return "usampler2DRect", nil
		case TypeFloat, TypeFloat2, TypeFloat3, TypeFloat4:
			return "sampler2DRect", nil
		default:
			return "", errors.Errorf("glsl: unsupported Buffer2D element type %v", t.Element())
		}
	}
	switch t {
	case TypeBool:
		return "bool", nil
	case TypeInt:
		return "int", nil
	case TypeUInt:
		return "uint", nil
	case TypeFloat:
		return "float", nil
	case TypeInt2:
		return "ivec2", nil
	case TypeUInt2:
		return "uvec2", nil
	case TypeFloat2:
		return "vec2", nil
	case TypeInt3:
		return "ivec3", nil
	case TypeUInt3:
		return "uvec3", nil
	case TypeFloat3:
		return "vec3", nil
	case TypeInt4:
		return "ivec4", nil
	case TypeUInt4:
		return "uvec4", nil
	case TypeFloat4:
		return "vec4", nil
	default:
		return "", errors.Errorf("glsl: unsupported type %v", t)
	}
}

func (g glslBackend) emitCast(ctx *emitCtx, target Type, operand *Node) error {
	name, err := g.typeName(target)
	if err != nil {
		return err
	}
	ctx.w.write(name)
	ctx.w.write("(")
	if err := emitExpr(ctx, operand); err != nil {
		return err
	}
	ctx.w.write(")")
	return nil
}

func swizzleSuffix(width int) (string, error) {
	switch width {
	case 1:
		return "x", nil
	case 2:
		return "xy", nil
	case 3:
		return "xyz", nil
	case 4:
		return "", nil
	default:
		return "", errors.Errorf("glsl: unsupported component width %d", width)
	}
}

func (g glslBackend) emitSample1D(ctx *emitCtx, buffer, index *Node) error {
	ctx.w.write("texelFetch(")
	if err := emitExpr(ctx, buffer); err != nil {
		return err
	}
	ctx.w.write(", ")
	if err := emitExpr(ctx, index); err != nil {
		return err
	}
	ctx.w.write(")")
	swizzle, err := swizzleSuffix(buffer.Type.Element().Width())
	if err != nil {
		return err
	}
	if swizzle != "" {
		ctx.w.write(".")
		ctx.w.write(swizzle)
	}
	return nil
}

func (g glslBackend) emitSample2D(ctx *emitCtx, buffer, coord *Node) error {
	ctx.w.write("texelFetch(")
	if err := emitExpr(ctx, buffer); err != nil {
		return err
	}
	ctx.w.write(", ")
	if err := emitExpr(ctx, coord); err != nil {
		return err
	}
	ctx.w.write(")")
	swizzle, err := swizzleSuffix(buffer.Type.Element().Width())
	if err != nil {
		return err
	}
	if swizzle != "" {
		ctx.w.write(".")
		ctx.w.write(swizzle)
	}
	return nil
}

func (g glslBackend) emitIndex(ctx *emitCtx) {
	ctx.w.write("ivec2(" + g.indexVar + ")")
}

func (g glslBackend) emitNormalizedIndex(ctx *emitCtx) {
	ctx.w.write(g.normalizedIndexVar)
}

// CompileGLSL lowers a validated Program node (see Parse) to an OpenGL
// 3.30 fragment shader. ConstData children become uniforms, OutData
// children become located fragment outputs, Main becomes the body of
// void main().
func CompileGLSL(root *Node, cfg *Config) (string, error) {
	constData, ok := root.FindChild(KindConstData)
	if !ok {
		return "", errors.New("glsl: program has no ConstData block")
	}
	outData, ok := root.FindChild(KindOutData)
	if !ok {
		return "", errors.New("glsl: program has no OutData block")
	}
	main, ok := root.FindChild(KindMain)
	if !ok {
		return "", errors.New("glsl: program has no Main block")
	}

	b := glslBackend{
		indexVar:           cfg.GetString("glsl.varying_index"),
		normalizedIndexVar: cfg.GetString("glsl.varying_normalized_index"),
	}
	ctx := newEmitCtx(b, repeatSpace(cfg.GetInt("emitter.indent_width")))

	ctx.w.writel("#version " + cfg.GetString("glsl.version"))
	ctx.w.writel("")
	ctx.w.writel("noperspective in vec2 " + b.indexVar + ";")
	ctx.w.writel("noperspective in vec2 " + b.normalizedIndexVar + ";")
	ctx.w.writel("")

	for _, in := range constData.Children {
		typeName, err := b.typeName(in.Type)
		if err != nil {
			return "", err
		}
		ctx.w.writel("uniform " + typeName + " " + symbolName(in.Symbol) + ";")
		ctx.declared.markAndWasDeclared(in.Symbol)
	}
	ctx.w.writel("")

	for i, out := range outData.Children {
		if out.Type.IsBuffer1D() || out.Type.IsBuffer2D() {
			return "", errors.Errorf("glsl: OutData field %q is a buffer type; the GLSL target only supports scalar/vector outputs (use the OpenCL target for buffer outputs)", symbolName(out.Symbol))
		}
		typeName, err := b.typeName(out.Type)
		if err != nil {
			return "", err
		}
		ctx.w.write("layout (location = ")
		ctx.w.write(itoa(i))
		ctx.w.writel(") out " + typeName + " " + symbolName(out.Symbol) + ";")
		ctx.declared.markAndWasDeclared(out.Symbol)
	}
	ctx.w.writel("")

	ctx.w.writel("void main() {")
	ctx.w.indent()
	if err := emitBlockBody(ctx, main.Children); err != nil {
		return "", err
	}
	ctx.w.unindent()
	ctx.w.writel("}")

	return ctx.w.String(), nil
}
