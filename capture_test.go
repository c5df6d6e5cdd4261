package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginCapture_PanicsIfAlreadyActive(t *testing.T) {
	BeginCapture()
	defer current().EndCapture()

	assert.Panics(t, func() { BeginCapture() })
}

func TestCurrent_PanicsWithNoActiveCapture(t *testing.T) {
	assert.Panics(t, func() { current() })
}

func TestNextSymbol_AllocatesWithoutGaps(t *testing.T) {
	c := BeginCapture()
	defer c.EndCapture()

	var got []SymbolID
	for i := 0; i < 3; i++ {
		got = append(got, c.NextSymbol())
	}

	assert.Equal(t, []SymbolID{0, 1, 2}, got)
}

func TestOpenBlockCloseBlock_AttachesAndPops(t *testing.T) {
	c := BeginCapture()
	defer c.EndCapture()

	block := c.OpenBlock(KindMain)
	require.Same(t, block, c.top())
	assert.Same(t, block, c.root.Children[0])

	c.CloseBlock()
	assert.Same(t, c.root, c.top())
}

func TestCloseBlock_PanicsWhenOnlyRootRemains(t *testing.T) {
	c := BeginCapture()
	defer c.EndCapture()

	assert.Panics(t, func() { c.CloseBlock() })
}

func TestEndCapture_PanicsWithOpenBlocks(t *testing.T) {
	c := BeginCapture()
	c.OpenBlock(KindMain)

	assert.Panics(t, func() { c.EndCapture() })

	// clean up: close the dangling block so later tests start fresh.
	c.CloseBlock()
	c.EndCapture()
}

func TestIfElseIfElse_AreSiblingBlocks(t *testing.T) {
	c := BeginCapture()
	defer c.EndCapture()

	main := c.OpenBlock(KindMain)

	c.If_(BoolLit(true))
	c.CloseBlock()
	c.ElseIf_(BoolLit(false))
	c.CloseBlock()
	c.Else_()
	c.CloseBlock()

	c.CloseBlock() // close Main

	require.Len(t, main.Children, 3)
	assert.Equal(t, KindIf, main.Children[0].Kind)
	assert.Equal(t, KindElseIf, main.Children[1].Kind)
	assert.Equal(t, KindElse, main.Children[2].Kind)
}

func TestForInRange_AllocatesSymbolAndRejectsReuse(t *testing.T) {
	c := BeginCapture()
	defer c.EndCapture()

	c.OpenBlock(KindMain)
	it := LocalInt()

	block := c.ForInRange_(&it, 0, 10)
	assert.NotEqual(t, Invalid, it.id)
	require.Len(t, block.Children, 3)
	assert.Equal(t, KindVar, block.Children[0].Kind)

	c.CloseBlock()

	assert.Panics(t, func() { c.ForInRange_(&it, 0, 10) }, "an already-used iterator must be rejected")

	c.CloseBlock() // close Main
}
