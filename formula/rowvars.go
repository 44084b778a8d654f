package formula

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/cottand/kif/clausal"
	"github.com/cottand/kif/internal/log"
	"github.com/cottand/kif/sexp"
	"github.com/cottand/kif/util"
)

var rowLogger = log.DefaultLogger.With("section", "rowvars")

const (
	// maxRowExpansion bounds the number of variables a row variable expands to
	maxRowExpansion = 8
	// variableArityBase is the number of argument slots assumed available
	// when a row variable is applied to a variable arity relation
	variableArityBase = 10
	minExpansionCount = 2
)

// Expander expands row variables, using Relations to find the arity of the
// relations they are applied to.
//
// When Clausifier is set the relations are looked up on the literals of the
// clausal form of a formula. Otherwise the literals of the formula itself
// are used.
type Expander struct {
	Relations  Relations
	Clausifier clausal.Clausifier
}

// ExpandRowVars expands the row variables of f without a clausifier
func (f *Formula) ExpandRowVars(rels Relations) []*Formula {
	return Expander{Relations: rels}.Expand(f)
}

// Expand replaces every row variable @NAME of f by ?NAME1 ... ?NAMEk for
// each count k the relations it is applied to allow. The result holds one
// formula per combination of counts, each keeping the source file of f.
// A formula without row variables expands to itself.
func (e Expander) Expand(f *Formula) []*Formula {
	rowVars := findRowVars(f.node)
	if len(rowVars) == 0 {
		return []*Formula{f}
	}
	var result []*Formula
	accumulator := []*Formula{f}
	for _, rowVar := range rowVars {
		working := accumulator
		accumulator = nil
		seen := set.New[string](len(working))
		enqueue := func(g *Formula) {
			if !hasRowVars(g.node) {
				result = append(result, g)
				return
			}
			if seen.Insert(g.normalized()) {
				accumulator = append(accumulator, g)
			}
		}
		for _, candidate := range working {
			if !hasRowVars(candidate.node) {
				result = append(result, candidate)
				continue
			}
			if !containsAtom(candidate.node, rowVar) {
				enqueue(candidate)
				continue
			}
			low, high := e.expansionRange(candidate, rowVar)
			variableArity := low == 0
			high = adjustExpansionCount(candidate.node, variableArity, high, rowVar)
			rowLogger.Debug("expanding row variable",
				"rowVar", rowVar, "formula", candidate, "variableArity", variableArity, "count", high)

			var replacement []sexp.Node
			stem := sexp.VariablePrefix + strings.TrimPrefix(rowVar, sexp.RowVariablePrefix)
			for j := 1; j < high; j++ {
				replacement = append(replacement, sexp.Atom{Value: stem + strconv.Itoa(j)})
				if variableArity {
					enqueue(f.derive(replaceRowVar(candidate.node, rowVar, replacement)))
				}
			}
			if !variableArity {
				enqueue(f.derive(replaceRowVar(candidate.node, rowVar, replacement)))
			}
		}
	}
	return append(result, accumulator...)
}

func replaceRowVar(n sexp.Node, rowVar string, replacement []sexp.Node) sexp.Node {
	repl := append([]sexp.Node(nil), replacement...)
	return sexp.ReplaceAtoms(n, func(a sexp.Atom) []sexp.Node {
		if a.Value == rowVar {
			return repl
		}
		return nil
	})
}

// findRowVars returns the distinct row variables of n in lexical order
func findRowVars(n sexp.Node) []string {
	vars := set.NewTreeSet[string](cmp.Compare[string])
	for a := range sexp.Atoms(n) {
		if a.IsRowVariable() {
			vars.Insert(a.Value)
		}
	}
	return vars.Slice()
}

func hasRowVars(n sexp.Node) bool {
	for a := range sexp.Atoms(n) {
		if a.IsRowVariable() {
			return true
		}
	}
	return false
}

func containsAtom(n sexp.Node, value string) bool {
	for a := range sexp.Atoms(n) {
		if a.Value == value {
			return true
		}
	}
	return false
}

// expansionRange returns the lowest and highest number of variables plus one
// rowVar may expand to in f. A low of 0 means rowVar is only applied to
// relations of unknown or variable arity.
func (e Expander) expansionRange(f *Formula, rowVar string) (low, high int) {
	if r, ok := e.rowVarsMinMax(f)[rowVar]; ok {
		return r.Unpack()
	}
	return 1, maxRowExpansion
}

func (e Expander) rowVarsMinMax(f *Formula) map[string]util.Pair[int, int] {
	relns := map[string]*set.TreeSet[string]{}
	var renames map[string]string
	if e.Clausifier != nil {
		form, err := f.ClausalForm(e.Clausifier)
		if err != nil {
			rowLogger.Warn("could not compute clausal form", "formula", f, "err", err)
			return nil
		}
		renames = form.Renames
		for _, clause := range form.Clauses {
			for _, lit := range clause.Literals() {
				n, _ := sexp.Parse(lit)
				rowVarsWithRelations(n, relns, renames)
			}
		}
	} else {
		for _, lit := range literals(f.node) {
			rowVarsWithRelations(lit, relns, nil)
		}
	}

	minMax := map[string]util.Pair[int, int]{}
	for rowVar, relations := range relns {
		orig := clausal.OriginalVariable(rowVar, renames)
		r, ok := minMax[orig]
		if !ok {
			r = util.NewPair(0, maxRowExpansion)
		}
		for _, reln := range relations.Slice() {
			arity := 0
			if e.Relations != nil {
				arity = e.Relations.Valence(reln)
			}
			if arity < 1 {
				continue
			}
			r.Fst = 1
			r.Snd = min(r.Snd, arity+1)
		}
		minMax[orig] = r
	}
	return minMax
}

// literals returns the outermost sub-lists of n not headed by a logical
// operator
func literals(n sexp.Node) []sexp.Node {
	var out []sexp.Node
	sexp.Walk(n, func(node sexp.Node) bool {
		l, ok := node.(sexp.List)
		if !ok || l.IsEmpty() {
			return false
		}
		if IsLogicalOperator(sexp.HeadSymbol(l)) {
			return true
		}
		out = append(out, l)
		return false
	})
	return out
}

// rowVarsWithRelations records in relns, for every row variable directly
// applied to a relation in n, the relations it is applied to. Variables are
// first mapped back through renames.
func rowVarsWithRelations(n sexp.Node, relns map[string]*set.TreeSet[string], renames map[string]string) {
	l, ok := n.(sexp.List)
	if !ok || l.IsEmpty() {
		return
	}
	relation := sexp.HeadSymbol(l)
	if relation == "" || IsVariable(relation) || relation == SkolemFn {
		return
	}
	for _, arg := range l.Tail().All() {
		a, isAtom := arg.(sexp.Atom)
		if !isAtom {
			rowVarsWithRelations(arg, relns, renames)
			continue
		}
		rowVar := a.Value
		if strings.HasPrefix(rowVar, sexp.VariablePrefix) && renames != nil {
			rowVar = clausal.OriginalVariable(a.Value, renames)
		}
		if !strings.HasPrefix(rowVar, sexp.RowVariablePrefix) {
			continue
		}
		rs, ok := relns[a.Value]
		if !ok {
			rs = set.NewTreeSet[string](cmp.Compare[string])
			relns[a.Value] = rs
			relns[rowVar] = rs
		}
		rs.Insert(relation)
	}
}

// adjustExpansionCount lowers count for literals that apply rowVar together
// with other arguments, so that the expanded literal does not exceed the
// arity the count was computed for. The result is never below 2.
func adjustExpansionCount(n sexp.Node, variableArity bool, count int, rowVar string) int {
	revised := count
	sexp.Walk(n, func(node sexp.Node) bool {
		l, ok := node.(sexp.List)
		if !ok || l.IsEmpty() {
			return false
		}
		if IsVariable(l.Head().String()) || !containsChild(l, rowVar) {
			return true
		}
		length := l.Len()
		switch {
		case variableArity:
			revised = min(revised, variableArityBase-length)
		case length > 2:
			revised = min(revised, count-(length-2))
		}
		return true
	})
	return max(revised, minExpansionCount)
}

func containsChild(l sexp.List, value string) bool {
	for _, n := range l.All() {
		if a, ok := n.(sexp.Atom); ok && a.Value == value {
			return true
		}
	}
	return false
}
