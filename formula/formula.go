// Package formula implements the SUO-KIF formula engine: structural
// accessors, equality, argument validation, variable analysis, row variable
// expansion, relation extraction, substitution and printing.
//
// A *Formula is a value. Operations that transform a formula return a new
// *Formula marked as derived; the receiver is never modified, except for the
// diagnostics recorded by ValidArgs and the clausal form and TPTP caches.
package formula

import (
	"log/slog"
	"strings"

	"github.com/cottand/kif/formula/ferr"
	"github.com/cottand/kif/internal/log"
	"github.com/cottand/kif/sexp"
)

var logger = log.DefaultLogger.With("section", "formula")

const (
	Forall = "forall"
	Exists = "exists"
	And    = "and"
	Or     = "or"
	Not    = "not"
	If     = "=>"
	Iff    = "<=>"

	Equal                = "equal"
	GreaterThan          = "greaterThan"
	GreaterThanOrEqualTo = "greaterThanOrEqualTo"
	LessThan             = "lessThan"
	LessThanOrEqualTo    = "lessThanOrEqualTo"

	PlusFn   = "AdditionFn"
	MinusFn  = "SubtractionFn"
	TimesFn  = "MultiplicationFn"
	DivideFn = "DivisionFn"

	SkolemFn     = "SkFn"
	SkolemPrefix = "Sk"
	FnSuffix     = "Fn"

	LogTrue  = "True"
	LogFalse = "False"

	// MaxPredicateArity is the highest number of arguments a relation may be
	// applied to before ValidArgs warns
	MaxPredicateArity = 7

	// HoldsPrefixPreference names the preference that, when "yes", allows
	// one more argument than MaxPredicateArity
	HoldsPrefixPreference = "holdsPrefix"
)

var (
	LogicalOperators    = []string{Forall, Exists, And, Or, Not, If, Iff}
	ComparisonOperators = []string{Equal, GreaterThan, GreaterThanOrEqualTo, LessThan, LessThanOrEqualTo}
	MathFunctions       = []string{PlusFn, MinusFn, TimesFn, DivideFn}
	DocPredicates       = []string{"documentation", "comment", "format"}

	// VariableArityRelations are relations of variable arity known without
	// consulting a knowledge base
	VariableArityRelations = []string{
		"AssignmentFn",
		"GreatestCommonDivisorFn",
		"LatitudeFn",
		"LeastCommonMultipleFn",
		"ListFn",
		"LongitudeFn",
		"contraryAttribute",
		"disjointDecomposition",
		"exhaustiveAttribute",
		"exhaustiveDecomposition",
		"partition",
		"processList",
	}
)

// Relations provides the relation metadata stored in a knowledge base
type Relations interface {
	// Valence returns the number of arguments relation takes, or a value
	// below 1 when it is unknown or the relation has variable arity
	Valence(relation string) int
	IsVariableArityRelation(name string) bool
	// ArgType returns the declared type of argument pos of relation, or ""
	// when undeclared. Position 0 is the range of a function.
	ArgType(relation string, pos int) string
	// CachedInstancesOf returns the cached values of column resultCol of
	// the relation facts whose column argPos is class
	CachedInstancesOf(relation, class string, argPos, resultCol int) []string
}

// Preferences is a read-only view of user preferences
type Preferences interface {
	Preference(key string) string
}

func holdsPrefix(prefs Preferences) bool {
	if prefs == nil {
		return false
	}
	return strings.EqualFold(prefs.Preference(HoldsPrefixPreference), "yes")
}

// Source records where a formula was read from
type Source struct {
	File      string
	StartLine int
	EndLine   int
	// EndFilePosition is the byte offset just after the formula, only set
	// for formulas appended to a file. -1 otherwise.
	EndFilePosition int64
}

// Formula is a KIF expression along with its provenance
type Formula struct {
	text    string
	node    sexp.Node
	source  Source
	derived bool

	errs    *ferr.Errors
	clausal *clausalCache
	tptp    []string
}

// Read builds a Formula from text that has no known source
func Read(text string) *Formula {
	return New(text, Source{EndFilePosition: -1})
}

// New builds a Formula from text read from src.
// Text that does not parse cleanly is kept as is, and operations work on
// the part of it that could be parsed.
func New(text string, src Source) *Formula {
	text = strings.TrimSpace(text)
	f := &Formula{text: text, source: src}
	if text == "" {
		return f
	}
	n, err := sexp.Parse(text)
	if err != nil {
		logger.Debug("formula does not parse cleanly", "formula", text, "err", err)
	}
	f.node = n
	return f
}

// FromNode builds a Formula from an already parsed expression
func FromNode(n sexp.Node) *Formula {
	f := &Formula{node: n, source: Source{EndFilePosition: -1}}
	if n != nil {
		f.text = n.String()
	}
	return f
}

// derive returns a new Formula for n that keeps the source file of f but
// none of its line information
func (f *Formula) derive(n sexp.Node) *Formula {
	d := FromNode(n)
	d.source.File = f.source.File
	d.derived = true
	return d
}

func (f *Formula) deriveText(text string) *Formula {
	d := Read(text)
	d.source.File = f.source.File
	d.derived = true
	return d
}

// Text returns the formula as it was read, without surrounding whitespace
func (f *Formula) Text() string { return f.text }

// Node returns the parsed expression, nil for a blank formula
func (f *Formula) Node() sexp.Node { return f.node }

// Canonical returns the formula printed on one line with single spaces
func (f *Formula) Canonical() string {
	if f.node == nil {
		return f.text
	}
	return f.node.String()
}

func (f *Formula) Source() Source { return f.source }

func (f *Formula) SourceFile() string { return f.source.File }

// WithSource returns a copy of f read from src
func (f *Formula) WithSource(src Source) *Formula {
	return &Formula{text: f.text, node: f.node, source: src, derived: f.derived}
}

// IsDerived reports whether f was computed from another formula rather
// than read from a source
func (f *Formula) IsDerived() bool { return f.derived }

// list returns the formula as a list, if it is one
func (f *Formula) list() (sexp.List, bool) {
	l, ok := f.node.(sexp.List)
	return l, ok
}

func (f *Formula) LogValue() slog.Value {
	return slog.StringValue(f.Canonical())
}
