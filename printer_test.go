package sickl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTree_RendersBoxDrawnBranches(t *testing.T) {
	root := Parse(validStubProgram())

	out := PrintTree(root)

	assert.True(t, strings.HasPrefix(out, "Program"))
	assert.Contains(t, out, "├── ")
	assert.Contains(t, out, "└── ")
	// Three top-level blocks, the last printed with the closing branch.
	assert.Equal(t, 1, strings.Count(out, "ConstData"))
	assert.Equal(t, 1, strings.Count(out, "OutData"))
	assert.Equal(t, 1, strings.Count(out, "Main"))
}

func TestNodeLabel_LiteralAndVarFormatting(t *testing.T) {
	lit := NewLiteralNode(TypeInt, encodeInt32(42))
	assert.Equal(t, "Literal(Int: 42)", nodeLabel(lit))

	named := NewVarNode(KindConstVar, TypeFloat, 3)
	named.Name = "brightness"
	assert.Equal(t, `ConstVar(Float #3 "brightness")`, nodeLabel(named))

	unnamed := NewVarNode(KindVar, TypeInt, 2)
	assert.Equal(t, "Var(Int #2)", nodeLabel(unnamed))
}

func TestPrintDot_EmitsOneNodeAndEdgeStatementPerLink(t *testing.T) {
	root := NewNode(KindMain, TypeVoid)
	child := NewNode(KindAssignment, TypeVoid)
	root.AddChild(child)

	out := PrintDot(root)

	require.True(t, strings.HasPrefix(out, "digraph AST {"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
	assert.Equal(t, 2, strings.Count(out, "[label="))
	assert.Equal(t, 1, strings.Count(out, "->"))
}
