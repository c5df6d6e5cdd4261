package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCapture(t *testing.T, fn func()) {
	t.Helper()
	c := BeginCapture()
	c.OpenBlock(KindMain)
	fn()
	c.CloseBlock()
	c.EndCapture()
}

func TestAssign_FirstUseAllocatesSymbol(t *testing.T) {
	withCapture(t, func() {
		x := LocalFloat()
		assert.Equal(t, Invalid, x.id)

		x.Assign(FloatLit(1.5))
		assert.GreaterOrEqual(t, int32(x.id), int32(0))
		assert.Equal(t, KindVar, x.expr.Kind)
	})
}

func TestAssign_ReassignKeepsSameSymbol(t *testing.T) {
	withCapture(t, func() {
		x := LocalInt()
		x.Assign(IntLit(1))
		first := x.id

		x.Assign(IntLit(2))
		assert.Equal(t, first, x.id)
	})
}

func TestAssign_IntoMemberWritesProjection(t *testing.T) {
	c := BeginCapture()
	c.OpenBlock(KindMain)

	v := LocalFloat2()
	v.Assign(NewFloat2(FloatLit(1), FloatLit(2)))
	m := v.X()
	m.Assign(FloatLit(9))

	block := c.top()
	c.CloseBlock()
	c.EndCapture()

	require.GreaterOrEqual(t, len(block.Children), 2)
	assign := block.Children[len(block.Children)-1]
	require.Equal(t, KindAssignment, assign.Kind)
	require.Len(t, assign.Children, 2)

	target := assign.Children[0]
	assert.Equal(t, KindMember, target.Kind)
	assert.Equal(t, 0, target.MemberIndex)
	assert.Equal(t, v.id, target.MemberParent)
}

func TestBinaryOps_BuildExpectedNodeShape(t *testing.T) {
	withCapture(t, func() {
		sum := IntLit(1).Add(IntLit(2))
		assert.Equal(t, KindAdd, sum.expr.Kind)
		require.Len(t, sum.expr.Children, 2)
		assert.Equal(t, Temp, sum.id)

		cmp := IntLit(1).Less(IntLit(2))
		assert.Equal(t, KindLess, cmp.expr.Kind)
		assert.Equal(t, TypeBool, cmp.Type())
	})
}

func TestCastChain_Int_UInt_Float(t *testing.T) {
	withCapture(t, func() {
		i := IntLit(3)
		u := i.ToUInt()
		f := u.ToFloat()

		assert.Equal(t, TypeUInt, u.Type())
		assert.Equal(t, TypeFloat, f.Type())
		assert.Equal(t, KindCast, u.expr.Kind)
		assert.Equal(t, KindCast, f.expr.Kind)
	})
}

func TestVectorConstructorAndMembers(t *testing.T) {
	withCapture(t, func() {
		v := NewFloat3(FloatLit(1), FloatLit(2), FloatLit(3))
		assert.Equal(t, KindConstructor, v.expr.Kind)
		require.Len(t, v.expr.Children, 3)

		x := v.X()
		assert.Equal(t, Member, x.id)
		assert.Equal(t, KindMember, x.expr.Kind)
		assert.Equal(t, 0, x.expr.MemberIndex)

		z := v.Z()
		assert.Equal(t, 2, z.expr.MemberIndex)
	})
}

func TestVectorConstructor_SharesChildExpressionPointer(t *testing.T) {
	withCapture(t, func() {
		shared := FloatLit(4)
		v := NewFloat2(shared, shared)

		assert.Same(t, v.expr.Children[0], v.expr.Children[1],
			"reading the same value twice must share the node pointer, not clone it")
	})
}

func TestDeclarations_RejectWrongBlock(t *testing.T) {
	c := BeginCapture()
	c.OpenBlock(KindMain)

	assert.Panics(t, func() { ConstFloat("x") }, "ConstFloat must only be callable inside ConstData")

	c.CloseBlock()
	c.EndCapture()
}

func TestConstAndOutDeclarations_CarryName(t *testing.T) {
	c := BeginCapture()

	c.OpenBlock(KindConstData)
	in := ConstFloat("brightness")
	c.CloseBlock()

	assert.Equal(t, "brightness", in.expr.Name)
	assert.Equal(t, KindConstVar, in.expr.Kind)

	c.OpenBlock(KindOutData)
	out := OutFloat4("color")
	c.CloseBlock()

	assert.Equal(t, "color", out.expr.Name)
	assert.Equal(t, KindOutVar, out.expr.Kind)

	c.EndCapture()
}

func TestLocalConstructors_StartInvalid(t *testing.T) {
	assert.Equal(t, Invalid, LocalBool().id)
	assert.Equal(t, Invalid, LocalInt().id)
	assert.Equal(t, Invalid, LocalUInt().id)
	assert.Equal(t, Invalid, LocalFloat().id)
	assert.Equal(t, Invalid, LocalFloat2().id)
	assert.Equal(t, Invalid, LocalInt3().id)
	assert.Equal(t, Invalid, LocalUInt4().id)
}

func TestBufferSample_EmitsSampleNodeWithElementType(t *testing.T) {
	c := BeginCapture()
	c.OpenBlock(KindConstData)
	buf := ConstBuffer1D[Float]("samples")
	c.CloseBlock()

	c.OpenBlock(KindMain)
	got := buf.Sample(IntLit(0))
	c.CloseBlock()
	c.EndCapture()

	assert.Equal(t, KindSample1D, got.expr.Kind)
	assert.Equal(t, TypeFloat, got.Type())
	require.Len(t, got.expr.Children, 2)
}

func TestFunctions_NameAndArity(t *testing.T) {
	withCapture(t, func() {
		s := Sin(FloatLit(0))
		assert.Equal(t, "sin", s.expr.Name)
		require.Len(t, s.expr.Children, 1)

		c := Clamp(FloatLit(0.5), FloatLit(0), FloatLit(1))
		assert.Equal(t, "clamp", c.expr.Name)
		require.Len(t, c.expr.Children, 3)

		d := Dot3(NewFloat3(FloatLit(1), FloatLit(0), FloatLit(0)), NewFloat3(FloatLit(0), FloatLit(1), FloatLit(0)))
		assert.Equal(t, "dot", d.expr.Name)
		assert.Equal(t, TypeFloat, d.Type())
	})
}

func TestIndexAndNormalizedIndex_UseDedicatedKinds(t *testing.T) {
	withCapture(t, func() {
		idx := Index()
		nidx := NormalizedIndex()

		assert.Equal(t, KindGetIndex, idx.expr.Kind)
		assert.Equal(t, TypeInt2, idx.Type())
		assert.Equal(t, KindGetNormalizedIndex, nidx.expr.Kind)
		assert.Equal(t, TypeFloat2, nidx.Type())
	})
}
