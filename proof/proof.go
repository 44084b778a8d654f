// Package proof holds the steps of proofs returned by a theorem prover
package proof

import (
	"fmt"
	"slices"

	"github.com/cottand/kif/formula"
)

const (
	Query             = "[Query]"
	NegatedQuery      = "[Negated Query]"
	InstantiatedQuery = "[Instantiated Query]"
)

// Step is one inference of a proof
type Step struct {
	// Number identifies the step within its proof
	Number int
	// Premises are the numbers of the steps this one is derived from
	Premises []int
	// Axiom is the KIF conclusion of the step
	Axiom       string
	FormulaType string
	FormulaRole string
}

// Formula returns the conclusion of s with prover prefixes removed
func (s Step) Formula() *formula.Formula {
	return formula.Read(formula.PostProcess(s.Axiom))
}

func (s Step) String() string {
	return fmt.Sprintf("Proof step: %d with %d premises: %v\n%s", s.Number, len(s.Premises), s.Premises, s.Axiom)
}

// NormalizeNumbers renumbers steps 1, 2, ... in order and rewrites the
// premises accordingly. A premise that refers to no step gets the next
// free number when first seen. steps is not modified.
func NormalizeNumbers(steps []Step) []Step {
	numbering := map[int]int{}
	next := 1
	renumber := func(old int) int {
		if n, ok := numbering[old]; ok {
			return n
		}
		numbering[old] = next
		next++
		return numbering[old]
	}
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		s.Number = renumber(s.Number)
		premises := slices.Clone(s.Premises)
		for i, p := range premises {
			premises[i] = renumber(p)
		}
		s.Premises = premises
		out = append(out, s)
	}
	return out
}
