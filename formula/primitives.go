package formula

import (
	"github.com/cottand/kif/sexp"
)

// IsAtom reports whether f is a single token or a quoted string
func (f *Formula) IsAtom() bool { return sexp.IsAtom(f.text) }

func (f *Formula) ListP() bool { return sexp.ListP(f.text) }

// Empty reports whether f is the empty list
func (f *Formula) Empty() bool { return sexp.Empty(f.text) }

func (f *Formula) IsBalancedList() bool { return sexp.IsBalancedList(f.text) }

// Car returns the first element of f, or "" when f is not a list or is
// the empty list
func (f *Formula) Car() string { return sexp.Car(f.text) }

// Cdr returns f without its first element. See sexp.Cdr.
func (f *Formula) Cdr() string { return sexp.Cdr(f.text) }

// CarAsFormula returns the first element of f when it is itself a list,
// nil otherwise
func (f *Formula) CarAsFormula() *Formula {
	car := f.Car()
	if !sexp.ListP(car) {
		return nil
	}
	return f.deriveText(car)
}

// CdrAsFormula returns the rest of f as a Formula, nil when f is not a list
func (f *Formula) CdrAsFormula() *Formula {
	cdr := f.Cdr()
	if !sexp.ListP(cdr) {
		return nil
	}
	return f.deriveText(cdr)
}

// Cadr returns the second element of f, or ""
func (f *Formula) Cadr() string { return f.Argument(1) }

// Caddr returns the third element of f, or ""
func (f *Formula) Caddr() string { return f.Argument(2) }

// Cddr returns f without its first two elements, or "" when f is not a list
func (f *Formula) Cddr() string {
	cdr := f.CdrAsFormula()
	if cdr == nil {
		return ""
	}
	return cdr.Cdr()
}

// CddrAsFormula returns f without its first two elements, nil when f is
// not a list
func (f *Formula) CddrAsFormula() *Formula {
	cddr := f.Cddr()
	if !sexp.ListP(cddr) {
		return nil
	}
	return f.deriveText(cddr)
}

// Cons returns a new Formula with head prepended to f.
// When f is not a list the result is the dotted pair (head . f).
// f itself is returned when head or f is blank.
func (f *Formula) Cons(head string) *Formula {
	res, ok := sexp.Cons(head, f.text)
	if !ok {
		return f
	}
	if !f.ListP() {
		logger.Warn("cons onto a non-list", "head", head, "target", f.text)
	}
	return f.deriveText(res)
}

// Append returns a new Formula with the elements of other added at the end
// of f. f is returned unchanged when it is not a list.
func (f *Formula) Append(other *Formula) *Formula {
	var otherText string
	if other != nil {
		otherText = other.text
	}
	res, ok := sexp.Append(f.text, otherText)
	if !ok {
		logger.Warn("append to a non-list", "receiver", f.text)
		return f
	}
	return f.deriveText(res)
}

// Argument returns the n-th element of f, the head being element 0, or ""
// when there is no such element
func (f *Formula) Argument(n int) string {
	l, ok := f.list()
	if !ok {
		return ""
	}
	arg := l.At(n)
	if arg == nil {
		return ""
	}
	return arg.String()
}

// ListLength returns the number of top-level elements of f, or -1 when f
// is not a list
func (f *Formula) ListLength() int {
	if !f.ListP() {
		return -1
	}
	l, _ := f.list()
	return l.Len()
}

// LiteralToArrayList returns the top-level elements of f, empty when f is
// not a list
func (f *Formula) LiteralToArrayList() []string {
	l, ok := f.list()
	if !ok {
		return nil
	}
	out := make([]string, 0, l.Len())
	for _, n := range l.All() {
		out = append(out, n.String())
	}
	return out
}

// ArgumentsToArrayList returns the elements of f from position start on.
// It returns nil when f contains a nested list or has no element at start.
func (f *Formula) ArgumentsToArrayList(start int) []string {
	l, ok := f.list()
	if !ok {
		return nil
	}
	var out []string
	for i, n := range l.All() {
		if _, isList := n.(sexp.List); isList {
			return nil
		}
		if i >= start {
			out = append(out, n.String())
		}
	}
	return out
}
