package sickl

import (
	"fmt"
	"strings"
)

// PrintTree renders n as an indented text tree, box-drawn the usual way
// (├──/└── branches, │ /space continuation columns) — a diagnostic view
// supplementing the emitters, letting a caller inspect exactly what a
// capture built before handing it to CompileGLSL/CompileOpenCL.
func PrintTree(n *Node) string {
	var sb strings.Builder
	writeTree(&sb, n, "", true)
	return sb.String()
}

func nodeLabel(n *Node) string {
	switch n.Kind {
	case KindLiteral:
		s, err := formatLiteral(n)
		if err != nil {
			s = fmt.Sprintf("<%v>", err)
		}
		return fmt.Sprintf("Literal(%s: %s)", n.LiteralType, s)
	case KindVar, KindConstVar, KindOutVar:
		if n.Name != "" {
			return fmt.Sprintf("%s(%s #%d %q)", n.Kind, n.Type, int(n.Symbol), n.Name)
		}
		return fmt.Sprintf("%s(%s #%d)", n.Kind, n.Type, int(n.Symbol))
	case KindMember:
		return fmt.Sprintf("Member(%s .%d)", n.Type, n.MemberIndex)
	case KindFunction:
		return fmt.Sprintf("Function(%s %q)", n.Type, n.Name)
	default:
		if n.Type != TypeVoid {
			return fmt.Sprintf("%s(%s)", n.Kind, n.Type)
		}
		return n.Kind.String()
	}
}

func writeTree(sb *strings.Builder, n *Node, prefix string, isRoot bool) {
	if isRoot {
		sb.WriteString(nodeLabel(n))
		sb.WriteString("\n")
	}
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		branch := "├── "
		cont := "│   "
		if last {
			branch = "└── "
			cont = "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(child))
		sb.WriteString("\n")
		writeTree(sb, child, prefix+cont, false)
	}
}

// PrintDot renders n as a Graphviz `digraph AST {...}` description, one
// node statement per AST node plus one edge statement per parent/child
// link — useful for visualizing a capture that is too deep to read
// comfortably as indented text.
func PrintDot(n *Node) string {
	var sb strings.Builder
	sb.WriteString("digraph AST {\n")
	sb.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	counter := 0
	writeDot(&sb, n, &counter)
	sb.WriteString("}\n")
	return sb.String()
}

func writeDot(sb *strings.Builder, n *Node, counter *int) int {
	id := *counter
	*counter++
	fmt.Fprintf(sb, "  n%d [label=%q];\n", id, nodeLabel(n))
	for _, child := range n.Children {
		childID := writeDot(sb, child, counter)
		fmt.Fprintf(sb, "  n%d -> n%d;\n", id, childID)
	}
	return id
}
