// Package kb is an in-memory knowledge base of relation metadata and
// preferences, the collaborator formula operations consult for arities and
// argument types.
package kb

import (
	"maps"
	"slices"
	"strconv"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"github.com/cottand/kif/formula"
	"github.com/cottand/kif/internal/log"
	"github.com/cottand/kif/sexp"
)

var logger = log.DefaultLogger.With("section", "kb")

var (
	_ formula.Relations   = &Static{}
	_ formula.Preferences = &Static{}
)

// valenceOfClass is the arity implied by membership in a relation class
var valenceOfClass = map[string]int{
	"UnaryFunction":       1,
	"BinaryFunction":      2,
	"TernaryFunction":     3,
	"QuaternaryFunction":  4,
	"BinaryRelation":      2,
	"BinaryPredicate":     2,
	"TernaryRelation":     3,
	"TernaryPredicate":    3,
	"QuaternaryRelation":  4,
	"QuaternaryPredicate": 4,
	"QuintaryRelation":    5,
	"QuintaryPredicate":   5,
}

const variableArityClass = "VariableArityRelation"

// Static is a knowledge base whose content only changes through its setters
// and Add methods. It is not safe for concurrent modification.
type Static struct {
	Name string

	prefs         map[string]string
	valence       map[string]int
	argTypes      map[string]map[int]string
	variableArity *set.Set[string]
	// facts are indexed by their head
	facts map[string][]sexp.List
}

func New(name string) *Static {
	return &Static{
		Name:          name,
		prefs:         map[string]string{},
		valence:       map[string]int{},
		argTypes:      map[string]map[int]string{},
		variableArity: set.New[string](0),
		facts:         map[string][]sexp.List{},
	}
}

func (kb *Static) Preference(key string) string { return kb.prefs[key] }

func (kb *Static) SetPreference(key, value string) { kb.prefs[key] = value }

// Preferences returns a copy of every preference set
func (kb *Static) Preferences() map[string]string { return maps.Clone(kb.prefs) }

// Valence returns the declared arity of relation, 0 when unknown
func (kb *Static) Valence(relation string) int {
	if v, ok := kb.valence[relation]; ok {
		return v
	}
	return 0
}

func (kb *Static) SetValence(relation string, valence int) { kb.valence[relation] = valence }

func (kb *Static) IsVariableArityRelation(name string) bool {
	return kb.variableArity.Contains(name) || slices.Contains(formula.VariableArityRelations, name)
}

func (kb *Static) AddVariableArityRelation(names ...string) {
	kb.variableArity.InsertSlice(names)
}

func (kb *Static) ArgType(relation string, pos int) string {
	return kb.argTypes[relation][pos]
}

// SetArgType declares the type of argument pos of relation. Position 0 is
// the range of a function.
func (kb *Static) SetArgType(relation string, pos int, typ string) {
	if kb.argTypes[relation] == nil {
		kb.argTypes[relation] = map[int]string{}
	}
	kb.argTypes[relation][pos] = typ
}

// CachedInstancesOf returns, sorted, element resultCol of every fact of
// relation whose element argPos is class. Element 0 is the relation.
func (kb *Static) CachedInstancesOf(relation, class string, argPos, resultCol int) []string {
	found := set.New[string](0)
	for _, fact := range kb.facts[relation] {
		if at := fact.At(argPos); at == nil || at.String() != class {
			continue
		}
		if res := fact.At(resultCol); res != nil {
			found.Insert(res.String())
		}
	}
	out := found.Slice()
	slices.Sort(out)
	return out
}

// Relations returns, sorted, every relation with metadata in kb
func (kb *Static) Relations() []string {
	names := set.New[string](len(kb.valence))
	names.InsertSlice(slices.Collect(maps.Keys(kb.valence)))
	names.InsertSlice(slices.Collect(maps.Keys(kb.argTypes)))
	names.InsertSet(kb.variableArity)
	out := names.Slice()
	slices.Sort(out)
	return out
}

var ErrNotGround = errors.New("fact is not ground")

// AddFact records a ground atomic formula. Facts about valence, domains,
// ranges and membership in relation classes also update the relation
// metadata of kb.
func (kb *Static) AddFact(f *formula.Formula) error {
	l, ok := f.Node().(sexp.List)
	if !ok || l.IsEmpty() || !f.IsBalancedList() {
		return errors.Errorf("not a fact: %q", f.Text())
	}
	if !f.IsGround() {
		return errors.Wrapf(ErrNotGround, "%q", f.Text())
	}
	head := sexp.HeadSymbol(l)
	if head == "" || formula.IsLogicalOperator(head) {
		return errors.Errorf("not an atomic formula: %q", f.Text())
	}
	kb.facts[head] = append(kb.facts[head], l)
	args := f.LiteralToArrayList()[1:]

	switch {
	case head == "valence" && len(args) == 2:
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "valence of %s", args[0])
		}
		kb.SetValence(args[0], n)
	case head == "instance" && len(args) == 2:
		if args[1] == variableArityClass {
			kb.AddVariableArityRelation(args[0])
		} else if n, ok := valenceOfClass[args[1]]; ok {
			if _, declared := kb.valence[args[0]]; !declared {
				kb.SetValence(args[0], n)
			}
		}
	case (head == "domain" || head == "domainSubclass") && len(args) == 3:
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "%s of %s", head, args[0])
		}
		typ := args[2]
		if head == "domainSubclass" {
			typ += "+"
		}
		kb.SetArgType(args[0], pos, typ)
	case (head == "range" || head == "rangeSubclass") && len(args) == 2:
		typ := args[1]
		if head == "rangeSubclass" {
			typ += "+"
		}
		kb.SetArgType(args[0], 0, typ)
	}
	logger.Debug("added fact", "fact", f)
	return nil
}

// AddDocument adds every ground atomic formula of a KIF document. Other
// formulas are skipped. file is only used in error messages.
func (kb *Static) AddDocument(doc, file string) (added int, err error) {
	forms, err := sexp.SplitForms(doc)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", file)
	}
	for _, form := range forms {
		f := formula.New(form.Text, formula.Source{File: file, StartLine: form.StartLine, EndLine: form.EndLine, EndFilePosition: -1})
		head := sexp.HeadSymbol(f.Node())
		if !f.IsGround() || head == "" || formula.IsLogicalOperator(head) {
			continue
		}
		if err := kb.AddFact(f); err != nil {
			return added, errors.Wrapf(err, "%s:%d", file, form.StartLine)
		}
		added++
	}
	return added, nil
}
