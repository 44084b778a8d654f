package formula

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/cottand/kif/sexp"
	"github.com/cottand/kif/util"
)

// GatherRelationConstants returns, sorted, the constants used as predicates
// or functions in f. Variables, logical operators, SkFn, quoted strings and
// the variable lists of quantifiers are skipped.
func (f *Formula) GatherRelationConstants() []string {
	relations := set.NewTreeSet[string](cmp.Compare[string])
	pending := &util.Stack[sexp.List]{}
	if l, ok := f.list(); ok && !l.IsEmpty() {
		pending.Push(l)
	}
	for l, ok := pending.Pop(); ok; l, ok = pending.Pop() {
		for i, arg := range l.All() {
			if argList, ok := arg.(sexp.List); ok {
				if !argList.IsEmpty() {
					pending.Push(argList)
				}
				continue
			}
			value := arg.String()
			if IsQuantifier(value) {
				if body, ok := l.At(i + 2).(sexp.List); ok && !body.IsEmpty() {
					pending.Push(body)
				}
				break
			}
			if i == 0 && isRelationConstant(value) {
				relations.Insert(value)
			}
		}
	}
	return relations.Slice()
}

func isRelationConstant(s string) bool {
	return !IsVariable(s) &&
		!IsLogicalOperator(s) &&
		s != SkolemFn &&
		!sexp.IsQuotedString(s) &&
		!strings.ContainsAny(s, " \t\n\r\f\v")
}

// GatherRelationsWithArgTypes maps every relation constant of f to the
// declared types of its arguments 0 to MaxPredicateArity, "" where unknown.
// All types are unknown when rels is nil.
func (f *Formula) GatherRelationsWithArgTypes(rels Relations) map[string][]string {
	out := map[string][]string{}
	for _, r := range f.GatherRelationConstants() {
		types := make([]string, MaxPredicateArity+1)
		for i := range types {
			if rels != nil {
				types[i] = rels.ArgType(r, i)
			}
		}
		out[r] = types
	}
	return out
}

// ContainsVariableArityRelation reports whether f mentions a relation of
// variable arity, as known to rels or listed in VariableArityRelations
func (f *Formula) ContainsVariableArityRelation(rels Relations) bool {
	known := set.From(VariableArityRelations)
	if rels != nil {
		known.InsertSlice(rels.CachedInstancesOf("instance", "VariableArityRelation", 2, 1))
	}
	for a := range sexp.Atoms(f.node) {
		if known.Contains(a.Value) || (rels != nil && rels.IsVariableArityRelation(a.Value)) {
			return true
		}
	}
	return false
}

// RenameVariableArityRelations returns f with every variable arity relation
// applied to n arguments renamed to <relation>_<n>. The returned map goes
// from new names to original names. Nothing is renamed when rels is nil.
func (f *Formula) RenameVariableArityRelations(rels Relations) (*Formula, map[string]string) {
	renames := map[string]string{}
	l, ok := f.list()
	if !ok || rels == nil {
		return f, renames
	}
	return f.derive(renameVariableArity(l, rels, renames)), renames
}

func renameVariableArity(l sexp.List, rels Relations, renames map[string]string) sexp.List {
	suffix := "_" + strconv.Itoa(l.Len()-1)
	out := l
	for i, arg := range l.All() {
		switch arg := arg.(type) {
		case sexp.Atom:
			if i == 0 && rels.IsVariableArityRelation(arg.Value) && !strings.HasSuffix(arg.Value, suffix) {
				renames[arg.Value+suffix] = arg.Value
				out = out.Set(i, sexp.Atom{Value: arg.Value + suffix})
			}
		case sexp.List:
			out = out.Set(i, renameVariableArity(arg, rels, renames))
		}
	}
	return out
}

// CollectTerms returns, sorted, every distinct atom of f
func (f *Formula) CollectTerms() []string {
	if f.node == nil {
		return nil
	}
	terms := set.NewTreeSet[string](cmp.Compare[string])
	for a := range sexp.Atoms(f.node) {
		terms.Insert(a.Value)
	}
	return terms.Slice()
}
