package formula

import (
	"regexp"
	"slices"
	"strings"

	"github.com/cottand/kif/sexp"
)

// IsVariable reports whether term is an ordinary or a row variable
func IsVariable(term string) bool {
	return strings.HasPrefix(term, sexp.VariablePrefix) || strings.HasPrefix(term, sexp.RowVariablePrefix)
}

func IsQuantifier(pred string) bool { return pred == Forall || pred == Exists }

// IsCommutative reports whether op is a logical operator whose arguments
// may be reordered
func IsCommutative(op string) bool { return op == And || op == Or }

func IsLogicalOperator(term string) bool { return slices.Contains(LogicalOperators, term) }

func IsComparisonOperator(term string) bool { return slices.Contains(ComparisonOperators, term) }

func IsMathFunction(term string) bool { return slices.Contains(MathFunctions, term) }

// IsFunction reports whether term follows the naming convention of
// functions, ending in Fn
func IsFunction(term string) bool { return strings.HasSuffix(term, FnSuffix) }

var skolemTerm = regexp.MustCompile(`^.?` + SkolemPrefix + `\S*\s*\d+$`)

func IsSkolemTerm(term string) bool {
	return skolemTerm.MatchString(strings.TrimSpace(term))
}

// IsTerm reports whether term is a single identifier
func IsTerm(term string) bool {
	if term == "" || sexp.ListP(term) {
		return false
	}
	for i, r := range term {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

var duals = map[string]string{
	Forall:   Exists,
	Exists:   Forall,
	And:      Or,
	Or:       And,
	Not:      "",
	"":       Not,
	LogTrue:  LogFalse,
	LogFalse: LogTrue,
}

// DualOperator returns the dual of op. Negation and no operator are each
// other's dual.
func DualOperator(op string) (string, bool) {
	d, ok := duals[op]
	return d, ok
}

// IsQuantifierList reports whether a list starting with listPred that
// follows previousPred is the variable list of a quantifier
func IsQuantifierList(listPred, previousPred string) bool {
	return IsQuantifier(previousPred) && IsVariable(listPred)
}

// IsGround reports whether text contains no variable outside quoted strings
func IsGround(text string) bool {
	if text == "" {
		return false
	}
	if !strings.Contains(text, `"`) {
		return !strings.ContainsAny(text, "?@")
	}
	inQuote := false
	for _, ch := range text {
		if ch == '"' {
			inQuote = !inQuote
		}
		if (ch == '?' || ch == '@') && !inQuote {
			return false
		}
	}
	return true
}

func (f *Formula) IsGround() bool { return IsGround(f.text) }

// IsVariable reports whether f is a single variable
func (f *Formula) IsVariable() bool { return IsVariable(f.text) }

// IsRule reports whether f, under any quantifiers, is an implication or
// an equivalence
func (f *Formula) IsRule() bool {
	l, ok := f.list()
	if !ok {
		return false
	}
	for {
		head := sexp.HeadSymbol(l)
		if !IsQuantifier(head) {
			return head == If || head == Iff
		}
		body, ok := l.At(2).(sexp.List)
		if !ok {
			return false
		}
		l = body
	}
}

func isFunctionalTerm(n sexp.Node) bool {
	head := sexp.HeadSymbol(n)
	return len(head) > 2 && strings.HasSuffix(head, FnSuffix)
}

// IsFunctionalTerm reports whether f is a list headed by a function
func (f *Formula) IsFunctionalTerm() bool { return isFunctionalTerm(f.node) }

// IsHigherOrder reports whether f has a formula as argument to something
// other than a logical operator
func (f *Formula) IsHigherOrder() bool { return isHigherOrder(f.node) }

func isHigherOrder(n sexp.Node) bool {
	l, ok := n.(sexp.List)
	if !ok {
		return false
	}
	logOp := IsLogicalOperator(sexp.HeadSymbol(l))
	for _, arg := range l.Tail().All() {
		if _, isList := arg.(sexp.List); !isList || isFunctionalTerm(arg) {
			continue
		}
		if !logOp || isHigherOrder(arg) {
			return true
		}
	}
	return false
}

// IsSimpleClause reports whether f is a list whose nested lists are all
// functional terms that are simple clauses themselves
func (f *Formula) IsSimpleClause() bool { return isSimpleClause(f.node) }

func isSimpleClause(n sexp.Node) bool {
	l, ok := n.(sexp.List)
	if !ok {
		return false
	}
	for _, elem := range l.All() {
		sub, isList := elem.(sexp.List)
		if !isList {
			continue
		}
		if !IsFunction(sexp.HeadSymbol(sub)) || !isSimpleClause(sub) {
			return false
		}
	}
	return true
}

// IsSimpleNegatedClause reports whether f is (not C) for a simple clause C
func (f *Formula) IsSimpleNegatedClause() bool {
	l, ok := f.list()
	if !ok || sexp.HeadSymbol(l) != Not || l.Len() != 2 {
		return false
	}
	return isSimpleClause(l.At(1))
}

// IsQuery reports whether formula is query up to a renaming of variables
func IsQuery(query, formula string) bool {
	return Read(formula).Equals(Read(query))
}

// IsNegatedQuery reports whether formula is the negation of query
func IsNegatedQuery(query, formula string) bool {
	text := strings.TrimSpace(formula)
	if !strings.HasPrefix(text, "(not") {
		return false
	}
	return Read(query).Canonical() == Read(text).Argument(1)
}

var (
	holdsPrefixRE = regexp.MustCompile(`holds_\d+__ `)
	applyPrefixRE = regexp.MustCompile(`apply_\d+__ `)
)

// PostProcess removes the holds_N__ and apply_N__ prefixes added when
// translating formulas for a prover
func PostProcess(s string) string {
	s = holdsPrefixRE.ReplaceAllString(s, "")
	return applyPrefixRE.ReplaceAllString(s, "")
}

// ToProlog renders a ground tuple (r a1 ... an) as r('a1',...,'an').
// It returns "" for anything else.
func (f *Formula) ToProlog() string {
	l, ok := f.list()
	if !ok || !f.ListP() {
		logger.Warn("not a formula", "formula", f.text)
		return ""
	}
	if l.IsEmpty() {
		logger.Warn("empty formula", "formula", f.text)
		return ""
	}
	relation, ok := l.Head().(sexp.Atom)
	if !ok {
		logger.Warn("relation not an atom", "relation", l.Head())
		return ""
	}
	if l.Len() == 1 {
		logger.Warn("relation without arguments", "formula", f.text)
		return ""
	}
	args := make([]string, 0, l.Len()-1)
	for _, arg := range l.Tail().All() {
		if _, isAtom := arg.(sexp.Atom); !isAtom {
			logger.Warn("argument not an atom", "argument", arg)
			return ""
		}
		args = append(args, "'"+arg.String()+"'")
	}
	return relation.Value + "(" + strings.Join(args, ",") + ")."
}
