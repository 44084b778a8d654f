package clausal_test

import (
	"testing"

	"github.com/cottand/kif/clausal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeVariables(t *testing.T) {
	testCases := []struct {
		in, expected string
	}{
		{"(p ?X ?Y ?X)", "(p ?VAR1 ?VAR2 ?VAR1)"},
		{"(p  ?A\n ?B ?A)", "(p ?VAR1 ?VAR2 ?VAR1)"},
		{"(holds ?R @ARGS ?Z @MORE)", "(holds ?VAR1 @ROW1 ?VAR2 @ROW2)"},
		{`(p "?X" ?X)`, `(p "?X" ?VAR1)`},
		{"(p a b)", "(p a b)"},
		{"?Y", "?VAR1"},
		{"  ", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, clausal.NormalizeVariables(tc.in))
		})
	}
}

func TestOriginalVariable(t *testing.T) {
	renames := map[string]string{
		"?X3": "?X2",
		"?X2": "?X",
		"?L1": "?L2",
		"?L2": "?L1",
	}
	assert.Equal(t, "?X", clausal.OriginalVariable("?X3", renames))
	assert.Equal(t, "?Q", clausal.OriginalVariable("?Q", renames))
	assert.NotPanics(t, func() {
		_ = clausal.OriginalVariable("?L1", renames)
	})
}

func TestClauseLiterals(t *testing.T) {
	c := clausal.Clause{Negative: []string{"(p ?X)"}, Positive: []string{"(q ?X)", "(r ?X)"}}
	assert.Equal(t, []string{"(p ?X)", "(q ?X)", "(r ?X)"}, c.Literals())
}
