package formula

import (
	"github.com/cottand/kif/formula/ferr"
	"github.com/cottand/kif/sexp"
)

// ValidArgs checks that logical operators are applied to the right number of
// arguments and that no relation is applied to more than MaxPredicateArity
// arguments (one more when the holdsPrefix preference is "yes").
//
// The walk is depth first and stops at the first problem, which is recorded
// in the diagnostics of f and returned as a message. The empty string means
// f is valid. prefs may be nil.
func (f *Formula) ValidArgs(prefs Preferences) string {
	return f.ValidArgsAt(prefs, f.source.File, f.source.StartLine)
}

// ValidArgsAt is ValidArgs with diagnostics located at line of file
func (f *Formula) ValidArgsAt(prefs Preferences, file string, line int) string {
	if f.node == nil {
		return ""
	}
	v := validator{
		maxArity: MaxPredicateArity,
		at:       ferr.Location{File: file, Line: line},
	}
	if holdsPrefix(prefs) {
		v.maxArity++
	}
	d := v.check(f.node)
	if d == nil {
		return ""
	}
	f.errs = f.errs.With(d)
	logger.Debug("invalid arguments", "formula", f, "diagnostic", d.Error())
	return d.Error()
}

// Diagnostics returns every problem recorded by ValidArgs on f
func (f *Formula) Diagnostics() *ferr.Errors { return f.errs }

// Errors returns the messages of the diagnostics recorded on f
func (f *Formula) Errors() []string { return f.errs.Messages() }

type validator struct {
	maxArity int
	at       ferr.Location
}

func (v validator) check(n sexp.Node) ferr.Diagnostic {
	l, ok := n.(sexp.List)
	if !ok || l.IsEmpty() {
		return nil
	}
	args := l.Tail()
	for _, arg := range args.All() {
		if d := v.check(arg); d != nil {
			return d
		}
	}
	subject := ferr.Subject{At: v.at, Text: l.String()}
	argCount := args.Len()
	switch pred := sexp.HeadSymbol(l); pred {
	case And, Or:
		if argCount < 2 {
			return ferr.TooFewArguments{Subject: subject, Operator: pred}
		}
	case Forall, Exists:
		if argCount != 2 {
			return ferr.WrongArgumentCount{Subject: subject, Operator: pred, Expected: 2, Found: argCount}
		}
		if _, isList := args.Head().(sexp.List); !isList {
			return ferr.NoVarList{Subject: subject, Quantifier: pred}
		}
	case Iff, If, Equal:
		if argCount != 2 {
			return ferr.WrongArgumentCount{Subject: subject, Operator: pred, Expected: 2, Found: argCount}
		}
	default:
		if argCount > v.maxArity {
			return ferr.MaybeTooManyArguments{Subject: subject, Relation: l.Head().String(), Max: v.maxArity, Found: argCount}
		}
	}
	return nil
}
