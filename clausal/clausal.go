// Package clausal holds the contracts formulas share with the clausal-form
// (CNF/Skolemization) subsystem, and the variable normalization used for
// alpha-equivalence.
package clausal

import (
	"strconv"
	"strings"

	"github.com/cottand/kif/sexp"
)

// Clause is one clause of a clausal form, split into negative literals
// (antecedent conjuncts) and positive literals (consequent conjuncts).
// Literals are KIF text.
type Clause struct {
	Negative []string
	Positive []string
}

// Literals returns the negative literals followed by the positive ones
func (c Clause) Literals() []string {
	out := make([]string, 0, len(c.Negative)+len(c.Positive))
	out = append(out, c.Negative...)
	return append(out, c.Positive...)
}

// Form is the clausal form of a formula along with the variable renames
// performed while computing it (renamed variable -> original variable).
type Form struct {
	Clauses []Clause
	Renames map[string]string
}

// Clausifier computes clausal forms
type Clausifier interface {
	ClausalForm(formula string) (Form, error)
}

// OriginalVariable follows the chain of renames starting at v and returns
// the variable it was originally renamed from, or v itself when it was
// never renamed.
func OriginalVariable(v string, renames map[string]string) string {
	seen := map[string]bool{}
	current := v
	for {
		next, ok := renames[current]
		if !ok || seen[next] || next == current {
			return current
		}
		seen[current] = true
		current = next
	}
}

const (
	NormalVariableStem = "?VAR"
	NormalRowStem      = "@ROW"
)

// NormalizeVariables renames every variable of formula, in order of first
// occurrence, to ?VAR1, ?VAR2, ... and every row variable to @ROW1, @ROW2, ...
// The result is printed canonically, so formulas that differ only in
// variable names and whitespace normalize to the same text.
//
// Blank text is returned trimmed.
func NormalizeVariables(formula string) string {
	n, _ := sexp.Parse(formula)
	if n == nil {
		return strings.TrimSpace(formula)
	}
	return Normalize(n).String()
}

// Normalize is NormalizeVariables on an already parsed Node
func Normalize(n sexp.Node) sexp.Node {
	renames := map[string]string{}
	vars, rows := 0, 0
	return sexp.ReplaceAtoms(n, func(a sexp.Atom) []sexp.Node {
		if !a.IsVariable() {
			return nil
		}
		name, ok := renames[a.Value]
		if !ok {
			if a.IsRowVariable() {
				rows++
				name = NormalRowStem + strconv.Itoa(rows)
			} else {
				vars++
				name = NormalVariableStem + strconv.Itoa(vars)
			}
			renames[a.Value] = name
		}
		return []sexp.Node{sexp.Atom{Value: name}}
	})
}
