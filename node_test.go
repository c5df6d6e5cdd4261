package sickl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLiteralNode_CopiesBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	n := NewLiteralNode(TypeInt, data)

	data[0] = 0xff
	assert.Equal(t, byte(1), n.Literal[0], "NewLiteralNode must copy its input, not alias it")
	assert.Nil(t, n.Children)
}

func TestNewMemberNode_Shape(t *testing.T) {
	parent := NewVarNode(KindVar, TypeFloat2, 0)
	n := NewMemberNode(TypeFloat, parent, 1)

	assert.Equal(t, KindMember, n.Kind)
	assert.Equal(t, Member, n.Symbol)
	assert.Equal(t, 1, n.MemberIndex)
	assert.Len(t, n.Children, 2)
	assert.Same(t, parent, n.Children[0])
	assert.Equal(t, KindLiteral, n.Children[1].Kind)
}

func TestNode_AddChild_Appends(t *testing.T) {
	n := NewNode(KindBlock, TypeVoid)
	a := NewNode(KindIf, TypeVoid)
	b := NewNode(KindWhile, TypeVoid)

	n.AddChild(a)
	n.AddChild(b)

	assert.Equal(t, []*Node{a, b}, n.Children)
}

func TestNode_Clone_DeepCopiesAndIsEqual(t *testing.T) {
	lit := NewLiteralNode(TypeInt, encodeInt32(7))
	parent := NewNode(KindAssignment, TypeInt)
	parent.AddChild(NewVarNode(KindVar, TypeInt, 0))
	parent.AddChild(lit)

	clone := parent.Clone()

	assert.True(t, parent.Equal(clone))
	assert.NotSame(t, parent, clone)
	assert.NotSame(t, parent.Children[1], clone.Children[1])

	// Mutating the clone's literal bytes must not affect the original.
	clone.Children[1].Literal[0] = 0xff
	assert.NotEqual(t, parent.Children[1].Literal[0], clone.Children[1].Literal[0])
}

func TestNode_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "one nil",
			a:        NewNode(KindBlock, TypeVoid),
			b:        nil,
			expected: false,
		},
		{
			name:     "different kind",
			a:        NewNode(KindIf, TypeVoid),
			b:        NewNode(KindWhile, TypeVoid),
			expected: false,
		},
		{
			name:     "different symbol",
			a:        NewVarNode(KindVar, TypeInt, 0),
			b:        NewVarNode(KindVar, TypeInt, 1),
			expected: false,
		},
		{
			name:     "identical literal",
			a:        NewLiteralNode(TypeInt, encodeInt32(42)),
			b:        NewLiteralNode(TypeInt, encodeInt32(42)),
			expected: true,
		},
		{
			name:     "different literal bytes",
			a:        NewLiteralNode(TypeInt, encodeInt32(42)),
			b:        NewLiteralNode(TypeInt, encodeInt32(43)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestNode_FindChild(t *testing.T) {
	root := NewNode(KindProgram, TypeVoid)
	constData := NewNode(KindConstData, TypeVoid)
	outData := NewNode(KindOutData, TypeVoid)
	root.AddChild(constData)
	root.AddChild(outData)

	found, ok := root.FindChild(KindOutData)
	assert.True(t, ok)
	assert.Same(t, outData, found)

	_, ok = root.FindChild(KindMain)
	assert.False(t, ok)
}
