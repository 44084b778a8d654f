package formula

import (
	"github.com/cottand/kif/sexp"
)

// termNodes parses a replacement term. A blank term removes the atom it
// replaces.
func termNodes(term string) []sexp.Node {
	n, _ := sexp.Parse(term)
	if n == nil {
		return []sexp.Node{}
	}
	return []sexp.Node{n}
}

func (f *Formula) replaceAtoms(replace func(sexp.Atom) []sexp.Node) *Formula {
	if f.node == nil {
		return f
	}
	return f.derive(sexp.ReplaceAtoms(f.node, replace))
}

// SubstituteVariables replaces every atom of f that is a key of m by the
// term m maps it to
func (f *Formula) SubstituteVariables(m map[string]string) *Formula {
	parsed := make(map[string][]sexp.Node, len(m))
	for k, v := range m {
		parsed[k] = termNodes(v)
	}
	return f.replaceAtoms(func(a sexp.Atom) []sexp.Node {
		return parsed[a.Value]
	})
}

// ReplaceVar replaces the variable v by term throughout f
func (f *Formula) ReplaceVar(v, term string) *Formula {
	repl := termNodes(term)
	return f.replaceAtoms(func(a sexp.Atom) []sexp.Node {
		if a.IsVariable() && a.Value == v {
			return repl
		}
		return nil
	})
}

// Rename replaces every occurrence of the atom from by to
func (f *Formula) Rename(from, to string) *Formula {
	repl := termNodes(to)
	return f.replaceAtoms(func(a sexp.Atom) []sexp.Node {
		if a.Value == from {
			return repl
		}
		return nil
	})
}
