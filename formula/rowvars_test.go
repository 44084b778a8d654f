package formula_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/kif/formula"
	"github.com/cottand/kif/kb"
)

func texts(fs []*formula.Formula) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Text())
	}
	return out
}

func testKB() *kb.Static {
	k := kb.New("test")
	k.SetValence("R", 2)
	k.SetValence("S", 1)
	k.SetValence("T", 3)
	k.AddVariableArityRelation("holds")
	return k
}

func TestExpandRowVarsWithoutRowVars(t *testing.T) {
	f := formula.Read("(instance ?X Human)")
	expanded := f.ExpandRowVars(testKB())
	require.Len(t, expanded, 1)
	assert.Same(t, f, expanded[0])
}

func TestExpandRowVars(t *testing.T) {
	testCases := []struct {
		name     string
		formula  string
		expected []string
	}{
		{
			name:     "fixed arity",
			formula:  "(R @ROW)",
			expected: []string{"(R ?ROW1 ?ROW2)"},
		},
		{
			name:     "other arguments reduce the count",
			formula:  "(T ?X @ROW)",
			expected: []string{"(T ?X ?ROW1 ?ROW2)"},
		},
		{
			name:     "tightest relation wins",
			formula:  "(=> (T @ARGS) (S @ARGS))",
			expected: []string{"(=> (T ?ARGS1) (S ?ARGS1))"},
		},
		{
			name:    "variable arity",
			formula: "(holds @ROW)",
			expected: []string{
				"(holds ?ROW1)",
				"(holds ?ROW1 ?ROW2)",
				"(holds ?ROW1 ?ROW2 ?ROW3)",
				"(holds ?ROW1 ?ROW2 ?ROW3 ?ROW4)",
				"(holds ?ROW1 ?ROW2 ?ROW3 ?ROW4 ?ROW5)",
				"(holds ?ROW1 ?ROW2 ?ROW3 ?ROW4 ?ROW5 ?ROW6)",
				"(holds ?ROW1 ?ROW2 ?ROW3 ?ROW4 ?ROW5 ?ROW6 ?ROW7)",
			},
		},
		{
			name:    "variable arity with other arguments",
			formula: "(holds ?REL ?A ?B ?C ?D @ROW)",
			expected: []string{
				"(holds ?REL ?A ?B ?C ?D ?ROW1)",
				"(holds ?REL ?A ?B ?C ?D ?ROW1 ?ROW2)",
			},
		},
		{
			name:     "two row variables",
			formula:  "(and (R @A) (S @B))",
			expected: []string{"(and (R ?A1 ?A2) (S ?B1))"},
		},
		{
			name:     "quoted row variables are kept",
			formula:  `(R @ROW "@ROW")`,
			expected: []string{`(R ?ROW1 "@ROW")`},
		},
		{
			name:     "prefix of another row variable",
			formula:  "(and (R @ROW) (S @ROW2))",
			expected: []string{"(and (R ?ROW1 ?ROW2) (S ?ROW21))"},
		},
		{
			name:     "unknown relation",
			formula:  "(?REL @ROW)",
			expected: []string{"(?REL ?ROW1 ?ROW2 ?ROW3 ?ROW4 ?ROW5 ?ROW6 ?ROW7)"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := formula.New(tc.formula, formula.Source{File: "rows.kif", StartLine: 10, EndLine: 10})
			expanded := f.ExpandRowVars(testKB())
			if diff := cmp.Diff(tc.expected, texts(expanded)); diff != "" {
				t.Errorf("expansion mismatch (-want +got):\n%s", diff)
			}
			for _, e := range expanded {
				assert.True(t, e.IsBalancedList())
				assert.Equal(t, "rows.kif", e.SourceFile())
				assert.True(t, e.IsDerived())
			}
		})
	}
}

func TestExpandRowVarsWithClausifier(t *testing.T) {
	c := &countingClausifier{}
	f := formula.Read("(R @ROW)")
	expanded := formula.Expander{Relations: testKB(), Clausifier: c}.Expand(f)
	assert.Equal(t, []string{"(R ?ROW1 ?ROW2)"}, texts(expanded))
	assert.Equal(t, 1, c.calls)
	assert.Len(t, f.Clauses(), 1, "clausal form is cached on the formula")
}

func TestExpandRowVarsWithoutRelations(t *testing.T) {
	// without arities every relation is taken to be of variable arity
	expanded := formula.Read("(R @ROW)").ExpandRowVars(nil)
	require.Len(t, expanded, 7)
	assert.Equal(t, "(R ?ROW1)", expanded[0].Text())
	assert.Equal(t, "(R ?ROW1 ?ROW2 ?ROW3 ?ROW4 ?ROW5 ?ROW6 ?ROW7)", expanded[6].Text())
}
