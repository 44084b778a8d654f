package formula

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/cottand/kif/clausal"
)

var ErrNoClausifier = errors.New("no clausifier to compute the clausal form with")

type clausalCache struct {
	form clausal.Form
}

// ClausalForm returns the clausal form of f, computing it with c on the
// first call and caching it until InvalidateClausalForm is called.
// c may be nil once the form is cached.
func (f *Formula) ClausalForm(c clausal.Clausifier) (clausal.Form, error) {
	if f.clausal != nil {
		return f.clausal.form, nil
	}
	if c == nil {
		return clausal.Form{}, ErrNoClausifier
	}
	form, err := c.ClausalForm(f.text)
	if err != nil {
		return clausal.Form{}, errors.Wrapf(err, "clausal form of %s", f.text)
	}
	f.clausal = &clausalCache{form: form}
	return form, nil
}

// Clauses returns the cached clauses of f, nil when not computed
func (f *Formula) Clauses() []clausal.Clause {
	if f.clausal == nil {
		return nil
	}
	return f.clausal.form.Clauses
}

// VarMap returns the variable renames of the cached clausal form of f
func (f *Formula) VarMap() map[string]string {
	if f.clausal == nil {
		return nil
	}
	return f.clausal.form.Renames
}

// OriginalVariable maps a variable of the cached clausal form back to the
// variable of f it was renamed from
func (f *Formula) OriginalVariable(v string) string {
	return clausal.OriginalVariable(v, f.VarMap())
}

func (f *Formula) InvalidateClausalForm() { f.clausal = nil }

// TPTPFormulas returns the TPTP translations recorded for f
func (f *Formula) TPTPFormulas() []string { return slices.Clone(f.tptp) }

func (f *Formula) AddTPTPFormula(tptp string) { f.tptp = append(f.tptp, tptp) }

func (f *Formula) ClearTPTPFormulas() { f.tptp = nil }
