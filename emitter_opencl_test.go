package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileOpenCL_ScalarOutputBecomesGlobalPointer(t *testing.T) {
	root := Parse(brightnessProgram{})
	cfg := NewConfig()

	out, err := CompileOpenCL(root, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "__kernel void KernelMain(")
	assert.Contains(t, out, "const float a")
	assert.Contains(t, out, "__global float* b")
	assert.Contains(t, out, "*b = (a * 2.0f);")
}

func TestCompileOpenCL_HonorsConfiguredKernelName(t *testing.T) {
	root := Parse(brightnessProgram{})
	cfg := NewConfig()
	cfg.SetString("opencl.kernel_name", "MyKernel")

	out, err := CompileOpenCL(root, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "__kernel void MyKernel(")
}

type buffer1DProgram struct{}

func (buffer1DProgram) Parse() {
	var in Buffer1D[Float]
	ConstData(func() {
		in = ConstBuffer1D[Float]("samples")
	})
	var out Float
	OutData(func() {
		out = OutFloat("result")
	})
	Main(func() {
		out.Assign(in.Sample(IntLit(0)))
	})
}

func TestCompileOpenCL_Buffer1DParamsAndIndexing(t *testing.T) {
	root := Parse(buffer1DProgram{})
	cfg := NewConfig()

	out, err := CompileOpenCL(root, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "const __global float* a")
	assert.Contains(t, out, "uint a_length")
	assert.Contains(t, out, "*b = a[0];")
}

func TestCompileOpenCL_IndexUsesGetGlobalId(t *testing.T) {
	root := Parse(stubProgram{body: func() {
		ConstData(func() {})
		var out Int2
		OutData(func() { out = OutInt2("coord") })
		Main(func() {
			out.Assign(Index())
		})
	}})

	out, err := CompileOpenCL(root, NewConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "get_global_id(0)")
	assert.Contains(t, out, "get_global_id(1)")
}
