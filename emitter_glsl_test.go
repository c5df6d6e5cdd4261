package sickl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brightnessProgram struct{}

func (brightnessProgram) Parse() {
	var gain Float
	ConstData(func() {
		gain = ConstFloat("gain")
	})

	var result Float
	OutData(func() {
		result = OutFloat("result")
	})

	Main(func() {
		result.Assign(gain.Mul(FloatLit(2)))
	})
}

func TestCompileGLSL_EmitsPreambleUniformAndOutput(t *testing.T) {
	root := Parse(brightnessProgram{})
	cfg := NewConfig()

	out, err := CompileGLSL(root, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "#version 330")
	assert.Contains(t, out, "noperspective in vec2 index;")
	assert.Contains(t, out, "noperspective in vec2 normalized_index;")
	assert.Contains(t, out, "uniform float a;")
	assert.Contains(t, out, "layout (location = 0) out float b;")
	assert.Contains(t, out, "void main() {")
	assert.Contains(t, out, "b = (a * 2.0f);")
}

func TestCompileGLSL_HonorsConfiguredVaryingNames(t *testing.T) {
	root := Parse(brightnessProgram{})
	cfg := NewConfig()
	cfg.SetString("glsl.varying_index", "pixelCoord")
	cfg.SetString("glsl.varying_normalized_index", "uv")

	out, err := CompileGLSL(root, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "noperspective in vec2 pixelCoord;")
	assert.Contains(t, out, "noperspective in vec2 uv;")
}

type bufferOutProgram struct{}

func (bufferOutProgram) Parse() {
	ConstData(func() {})
	var out Buffer1D[Float]
	OutData(func() {
		out = OutBuffer1D[Float]("out")
	})
	Main(func() {})
	_ = out
}

func TestCompileGLSL_RejectsBufferOutputs(t *testing.T) {
	root := Parse(bufferOutProgram{})
	cfg := NewConfig()

	_, err := CompileGLSL(root, cfg)
	assert.Error(t, err)
}

func TestCompileGLSL_IfCascade(t *testing.T) {
	root := Parse(stubProgram{body: func() {
		ConstData(func() {})
		var out Float
		OutData(func() { out = OutFloat("result") })
		Main(func() {
			x := LocalInt()
			x.Assign(IntLit(0))
			If(x.Equal(IntLit(0)), func() {
				out.Assign(FloatLit(1))
			})
			Else(func() {
				out.Assign(FloatLit(2))
			})
		})
	}})

	out, err := CompileGLSL(root, NewConfig())
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "} else {"), "if/else must be stitched into one cascade, got:\n%s", out)
}
