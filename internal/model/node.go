// Package model defines the data structures of the expression pipeline:
// tokens, AST nodes, truth tables, implicants and the error taxonomy.
package model

import "sort"

// Op is a binary Boolean operator.
type Op int

// Binary operators, loosest-binding first.
const (
	OpOr Op = iota
	OpNor
	OpXor
	OpXnor
	OpAnd
	OpNand
)

func (o Op) String() string {
	switch o {
	case OpOr:
		return "OR"
	case OpNor:
		return "NOR"
	case OpXor:
		return "XOR"
	case OpXnor:
		return "XNOR"
	case OpAnd:
		return "AND"
	case OpNand:
		return "NAND"
	}

	return "?"
}

// Node is an immutable expression tree node. It is a closed sum over the
// four variants below; consumers dispatch with a type switch.
//
// Every node carries a parse-local identifier used by evaluation traces and
// UI highlighting. IDs are never semantically load-bearing.
type Node interface {
	isNode()
	NodeID() int
}

// Var is a leaf referencing an input signal by its normalized name.
type Var struct {
	ID   int
	Name string
}

// Lit is a constant 0/1 leaf.
type Lit struct {
	ID    int
	Value bool
}

// Not negates its operand.
type Not struct {
	ID int
	X  Node
}

// Bin joins two subexpressions with a binary operator.
type Bin struct {
	ID    int
	Op    Op
	Left  Node
	Right Node
}

func (*Var) isNode() {}
func (*Lit) isNode() {}
func (*Not) isNode() {}
func (*Bin) isNode() {}

// NodeID implements Node.
func (n *Var) NodeID() int { return n.ID }

// NodeID implements Node.
func (n *Lit) NodeID() int { return n.ID }

// NodeID implements Node.
func (n *Not) NodeID() int { return n.ID }

// NodeID implements Node.
func (n *Bin) NodeID() int { return n.ID }

// IDSeq hands out node identifiers. Each parse call owns its own sequence,
// so concurrent parses never interfere.
type IDSeq struct {
	n int
}

// Next returns the next identifier.
func (s *IDSeq) Next() int {
	s.n++
	return s.n
}

// Render returns an infix rendering of the tree. Binary nodes are fully
// parenthesized, so re-parsing the result yields an equivalent tree.
func Render(n Node) string {
	switch v := n.(type) {
	case *Var:
		return v.Name
	case *Lit:
		if v.Value {
			return "1"
		}

		return "0"
	case *Not:
		return "NOT " + Render(v.X)
	case *Bin:
		return "(" + Render(v.Left) + " " + v.Op.String() + " " + Render(v.Right) + ")"
	}

	return ""
}

// Clone returns a structurally identical tree with fresh identifiers drawn
// from ids.
func Clone(n Node, ids *IDSeq) Node {
	switch v := n.(type) {
	case *Var:
		return &Var{ID: ids.Next(), Name: v.Name}
	case *Lit:
		return &Lit{ID: ids.Next(), Value: v.Value}
	case *Not:
		return &Not{ID: ids.Next(), X: Clone(v.X, ids)}
	case *Bin:
		return &Bin{ID: ids.Next(), Op: v.Op, Left: Clone(v.Left, ids), Right: Clone(v.Right, ids)}
	}

	return nil
}

// Variables returns the sorted, de-duplicated variable names referenced
// anywhere in the tree.
func Variables(n Node) []string {
	seen := make(map[string]bool)
	collectVariables(n, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func collectVariables(n Node, seen map[string]bool) {
	switch v := n.(type) {
	case *Var:
		seen[v.Name] = true
	case *Not:
		collectVariables(v.X, seen)
	case *Bin:
		collectVariables(v.Left, seen)
		collectVariables(v.Right, seen)
	}
}
