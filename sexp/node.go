// Package sexp implements the parenthesized prefix notation that KIF formulas
// are written in.
//
// Two layers are provided. The tree layer (Node, Atom, List, Parse) is an
// immutable representation that is parsed once and printed canonically.
// The textual layer (Car, Cdr, Cons, Append, ListP, ...) operates directly on
// formula text and keeps the exact behaviour callers of the textual list
// primitives rely on, including their sentinel values for malformed input.
package sexp

import (
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
)

const (
	VariablePrefix    = "?"
	RowVariablePrefix = "@"
)

// Node is either an Atom or a List
type Node interface {
	String() string
	node()
}

var (
	_ Node = Atom{}
	_ Node = List{}
)

// Atom is an indivisible token: an identifier, a numeral, a variable or a
// quoted string (quotes included in Value).
type Atom struct {
	Value string
}

func (Atom) node() {}

func (a Atom) String() string { return a.Value }

// IsQuoted reports whether the atom is a quoted string literal
func (a Atom) IsQuoted() bool { return IsQuotedString(a.Value) }

// IsVariable reports whether the atom is an ordinary or a row variable
func (a Atom) IsVariable() bool {
	return strings.HasPrefix(a.Value, VariablePrefix) || strings.HasPrefix(a.Value, RowVariablePrefix)
}

// IsRowVariable reports whether the atom is a row variable
func (a Atom) IsRowVariable() bool {
	return strings.HasPrefix(a.Value, RowVariablePrefix)
}

// List is a parenthesized sequence of nodes.
// The zero value is the empty list.
type List struct {
	elems *immutable.List[Node]
}

func (List) node() {}

// NewList returns a List holding elems in order
func NewList(elems ...Node) List {
	return List{elems: immutable.NewList(elems...)}
}

func (l List) Len() int {
	if l.elems == nil {
		return 0
	}
	return l.elems.Len()
}

func (l List) IsEmpty() bool { return l.Len() == 0 }

// At returns the i-th element, or nil when i is out of range
func (l List) At(i int) Node {
	if i < 0 || i >= l.Len() {
		return nil
	}
	return l.elems.Get(i)
}

// Head returns the first element, or nil for the empty list
func (l List) Head() Node { return l.At(0) }

// Tail returns the list without its first element.
// The tail of the empty list is the empty list.
func (l List) Tail() List {
	if l.Len() <= 1 {
		return List{}
	}
	return List{elems: l.elems.Slice(1, l.elems.Len())}
}

// Prepend returns a new List with n as first element
func (l List) Prepend(n Node) List {
	if l.elems == nil {
		return NewList(n)
	}
	return List{elems: l.elems.Prepend(n)}
}

// Append returns a new List with ns added at the end
func (l List) Append(ns ...Node) List {
	elems := l.elems
	if elems == nil {
		elems = immutable.NewList[Node]()
	}
	for _, n := range ns {
		elems = elems.Append(n)
	}
	return List{elems: elems}
}

// Set returns a new List with the i-th element replaced by n
func (l List) Set(i int, n Node) List {
	if i < 0 || i >= l.Len() {
		return l
	}
	return List{elems: l.elems.Set(i, n)}
}

// All iterates over the elements of l in order
func (l List) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if l.elems == nil {
			return
		}
		itr := l.elems.Iterator()
		for !itr.Done() {
			i, n := itr.Next()
			if !yield(i, n) {
				return
			}
		}
	}
}

// Elems returns the elements of l as a fresh slice
func (l List) Elems() []Node {
	out := make([]Node, 0, l.Len())
	for _, n := range l.All() {
		out = append(out, n)
	}
	return out
}

func (l List) String() string {
	sb := &strings.Builder{}
	writeNode(sb, l)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Atom:
		sb.WriteString(n.Value)
	case List:
		sb.WriteString("(")
		for i, elem := range n.All() {
			if i > 0 {
				sb.WriteString(" ")
			}
			writeNode(sb, elem)
		}
		sb.WriteString(")")
	}
}

// HeadSymbol returns the value of n's first element when n is a non-empty
// List headed by an Atom, and the empty string otherwise.
func HeadSymbol(n Node) string {
	l, ok := n.(List)
	if !ok {
		return ""
	}
	if a, ok := l.Head().(Atom); ok {
		return a.Value
	}
	return ""
}

// Walk visits n and its descendants in depth-first pre-order.
// Children of a node are skipped when visit returns false for it.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	if l, ok := n.(List); ok {
		for _, child := range l.All() {
			Walk(child, visit)
		}
	}
}

// Atoms iterates over every Atom in n in textual order
func Atoms(n Node) iter.Seq[Atom] {
	return func(yield func(Atom) bool) {
		stop := false
		Walk(n, func(node Node) bool {
			if stop {
				return false
			}
			if a, ok := node.(Atom); ok {
				stop = !yield(a)
			}
			return !stop
		})
	}
}

// ReplaceAtoms rebuilds n bottom-up, replacing every Atom for which replace
// returns a non-nil slice with the nodes in that slice (spliced in place when
// inside a list).
// An Atom at the root replaced by anything other than exactly one node is
// left untouched.
func ReplaceAtoms(n Node, replace func(Atom) []Node) Node {
	switch n := n.(type) {
	case Atom:
		if repl := replace(n); len(repl) == 1 {
			return repl[0]
		}
		return n
	case List:
		out := List{}
		for _, child := range n.All() {
			if a, ok := child.(Atom); ok {
				if repl := replace(a); repl != nil {
					out = out.Append(repl...)
					continue
				}
				out = out.Append(a)
				continue
			}
			out = out.Append(ReplaceAtoms(child, replace))
		}
		return out
	}
	return n
}
