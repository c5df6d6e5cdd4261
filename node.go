package sickl

// Node is the uniform AST tree node shared by every construct the capture
// layer builds. It carries a node kind, a semantic result Type, an ordered
// list of owned children, and one of a handful of payload shapes depending
// on Kind:
//
//   - Literal nodes carry Literal (a copy of the raw bytes) plus LiteralType.
//   - Var/OutVar/ConstVar nodes carry Symbol.
//   - Member nodes carry MemberParent/MemberIndex and exactly two children
//     (the parent expression, and a Literal child holding the index).
//   - Everything else carries only its children.
//
// Children are attached by pointer, not copied: the node of a named value
// is reused by every expression that reads it, so one node can be a child
// of several parents. Clone deep-copies the whole subtree, including
// literal byte storage, matching AST.cpp's copy-constructor.
type Node struct {
	Kind     NodeKind
	Type     Type
	Children []*Node

	Symbol SymbolID

	Literal     []byte
	LiteralType Type

	MemberParent SymbolID
	MemberIndex  int

	// Name is the optional user-supplied identifier carried by ConstVar
	// and OutVar declarations.
	Name string
}

// NewNode builds a bare node of the given kind/type with no payload, used
// for blocks, control-flow headers and operator nodes before their children
// are attached.
func NewNode(kind NodeKind, typ Type) *Node {
	return &Node{Kind: kind, Type: typ, Symbol: Invalid}
}

// NewVarNode builds a reference to an already-allocated symbol: used both
// for plain Var reads and ConstVar/OutVar declaration sites.
func NewVarNode(kind NodeKind, typ Type, symbol SymbolID) *Node {
	return &Node{Kind: kind, Type: typ, Symbol: symbol}
}

// NewLiteralNode copies the given bytes into a fresh Literal payload. A
// Literal node never has children.
func NewLiteralNode(typ Type, data []byte) *Node {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Node{Kind: KindLiteral, Type: typ, Symbol: Invalid, Literal: cp, LiteralType: typ}
}

// NewMemberNode builds a Member node referencing parent (a vector-typed
// expression subtree) and member index (0=x .. 3=w). It has exactly two
// children: the parent expression and a literal holding the index.
// MemberParent carries the parent's own symbol (Invalid/Temp/Member/a real
// id) so a Member value can be assigned into later without re-deriving it
// from the parent subtree — see assignInto in expr_scalar.go.
func NewMemberNode(elementType Type, parent *Node, index int) *Node {
	n := &Node{Kind: KindMember, Type: elementType, Symbol: Member, MemberParent: parent.Symbol, MemberIndex: index}
	n.AddChild(parent)
	n.AddChild(NewLiteralNode(TypeInt, encodeInt32(int32(index))))
	return n
}

// AddChild appends a child, taking ownership of it. The backing slice grows
// geometrically via Go's append, mirroring AST.cpp's doubling _capacity.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Clone performs a deep copy of the subtree rooted at n, including
// duplicating literal byte storage, so mutating a cloned subtree never
// affects the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Kind:         n.Kind,
		Type:         n.Type,
		Symbol:       n.Symbol,
		LiteralType:  n.LiteralType,
		MemberParent: n.MemberParent,
		MemberIndex:  n.MemberIndex,
		Name:         n.Name,
	}
	if n.Literal != nil {
		cp.Literal = make([]byte, len(n.Literal))
		copy(cp.Literal, n.Literal)
	}
	if len(n.Children) > 0 {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return cp
}

// Equal is structural equality over kind, type, payload and children in
// order. It exists for tests and is not used at runtime.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Type != o.Type {
		return false
	}
	if n.Symbol != o.Symbol || n.MemberParent != o.MemberParent || n.MemberIndex != o.MemberIndex {
		return false
	}
	if n.Name != o.Name || n.LiteralType != o.LiteralType {
		return false
	}
	if string(n.Literal) != string(o.Literal) {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// FindChild returns the first immediate child of the given kind.
func (n *Node) FindChild(kind NodeKind) (*Node, bool) {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c, true
		}
	}
	return nil, false
}
