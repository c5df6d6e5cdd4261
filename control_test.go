package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIf_ElseIf_Else_CaptureAsSiblings(t *testing.T) {
	c := BeginCapture()
	main := c.OpenBlock(KindMain)

	x := LocalInt()
	x.Assign(IntLit(0))

	If(x.Equal(IntLit(0)), func() {
		x.Assign(IntLit(1))
	})
	ElseIf(x.Equal(IntLit(1)), func() {
		x.Assign(IntLit(2))
	})
	Else(func() {
		x.Assign(IntLit(3))
	})

	c.CloseBlock()
	c.EndCapture()

	// main.Children[0] is the initial assignment, then If/ElseIf/Else.
	require.Len(t, main.Children, 4)
	assert.Equal(t, KindIf, main.Children[1].Kind)
	assert.Equal(t, KindElseIf, main.Children[2].Kind)
	assert.Equal(t, KindElse, main.Children[3].Kind)

	ifBlock := main.Children[1]
	require.Len(t, ifBlock.Children, 2) // condition + one assignment
	assert.Equal(t, KindEqual, ifBlock.Children[0].Kind)
	assert.Equal(t, KindAssignment, ifBlock.Children[1].Kind)
}

func TestWhile_ConditionBuiltOnce(t *testing.T) {
	c := BeginCapture()
	main := c.OpenBlock(KindMain)

	i := LocalInt()
	i.Assign(IntLit(0))
	cond := i.Less(IntLit(10))

	While(cond, func() {
		i.Assign(i.Add(IntLit(1)))
	})

	c.CloseBlock()
	c.EndCapture()

	whileBlock := main.Children[1]
	assert.Equal(t, KindWhile, whileBlock.Kind)
	assert.Same(t, cond.expr, whileBlock.Children[0],
		"the condition node must be the one built before the loop, not rebuilt per iteration")
}

func TestForInRange_CapturesIteratorAndBounds(t *testing.T) {
	c := BeginCapture()
	main := c.OpenBlock(KindMain)

	it := LocalInt()
	ForInRange(&it, 0, 5, func() {
		_ = it.Add(IntLit(1))
	})

	c.CloseBlock()
	c.EndCapture()

	block := main.Children[0]
	require.Equal(t, KindForInRange, block.Kind)
	require.GreaterOrEqual(t, len(block.Children), 3)
	assert.Equal(t, KindVar, block.Children[0].Kind)
	assert.Equal(t, KindLiteral, block.Children[1].Kind)
	assert.Equal(t, KindLiteral, block.Children[2].Kind)
}
