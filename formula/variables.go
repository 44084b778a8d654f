package formula

import (
	"cmp"
	"sort"

	"github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"

	"github.com/cottand/kif/sexp"
)

func variablesIn(n sexp.Node, into *set.TreeSet[string]) {
	for a := range sexp.Atoms(n) {
		if a.IsVariable() {
			into.Insert(a.Value)
		}
	}
}

// CollectAllVariables returns every variable and row variable occurring in
// f, sorted and without duplicates. Scopes are not taken into account.
func (f *Formula) CollectAllVariables() []string {
	vars := set.NewTreeSet[string](cmp.Compare[string])
	variablesIn(f.node, vars)
	return vars.Slice()
}

// CollectQuantifiedVariables returns the variables bound by any 'forall' or
// 'exists' in f, sorted and without duplicates
func (f *Formula) CollectQuantifiedVariables() []string {
	vars := set.NewTreeSet[string](cmp.Compare[string])
	sexp.Walk(f.node, func(n sexp.Node) bool {
		l, ok := n.(sexp.List)
		if !ok {
			return false
		}
		if IsQuantifier(sexp.HeadSymbol(l)) {
			if varList, ok := l.At(1).(sexp.List); ok {
				variablesIn(varList, vars)
			}
		}
		return true
	})
	return vars.Slice()
}

// CollectVariables splits the variables of f into those bound by some
// quantifier of f and the rest.
// A variable bound anywhere in f counts as quantified everywhere in f.
func (f *Formula) CollectVariables() (quantified, unquantified []string) {
	all := f.CollectAllVariables()
	quantified = f.CollectQuantifiedVariables()
	data := make([]string, 0, len(all)+len(quantified))
	data = append(data, all...)
	data = append(data, quantified...)
	size := xset.Diff(sort.StringSlice(data), len(all))
	unquantified = data[:size:size]
	return quantified, unquantified
}

// CollectUnquantifiedVariables returns the variables of f not bound by any
// of its quantifiers
func (f *Formula) CollectUnquantifiedVariables() []string {
	_, unquantified := f.CollectVariables()
	return unquantified
}

// MakeQuantifiersExplicit wraps f in an 'exists' (when query is true) or a
// 'forall' binding its unquantified variables. f is returned when every
// variable is already quantified.
func (f *Formula) MakeQuantifiersExplicit(query bool) *Formula {
	unquantified := f.CollectUnquantifiedVariables()
	if len(unquantified) == 0 {
		return f
	}
	quant := Forall
	if query {
		quant = Exists
	}
	varList := make([]sexp.Node, 0, len(unquantified))
	for _, v := range unquantified {
		varList = append(varList, sexp.Atom{Value: v})
	}
	return f.derive(sexp.NewList(sexp.Atom{Value: quant}, sexp.NewList(varList...), f.node))
}
