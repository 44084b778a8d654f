package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/kif/formula"
)

func TestIsGround(t *testing.T) {
	assert.False(t, formula.IsGround("(foo ?X a)"))
	assert.True(t, formula.IsGround(`(foo "?X" a)`))
	assert.True(t, formula.IsGround("(foo a b)"))
	assert.False(t, formula.IsGround(`(foo "?X" @ROW)`))
	assert.False(t, formula.IsGround(""))
	assert.True(t, formula.Read(`(documentation Foo "email me @home")`).IsGround())
}

func TestClassifiers(t *testing.T) {
	assert.True(t, formula.IsVariable("?X"))
	assert.True(t, formula.IsVariable("@ROW"))
	assert.False(t, formula.IsVariable("X"))
	assert.True(t, formula.Read("?X").IsVariable())

	assert.True(t, formula.IsQuantifier("exists"))
	assert.False(t, formula.IsQuantifier("and"))
	assert.True(t, formula.IsCommutative("or"))
	assert.False(t, formula.IsCommutative("=>"))
	assert.True(t, formula.IsLogicalOperator("<=>"))
	assert.False(t, formula.IsLogicalOperator("equal"))
	assert.True(t, formula.IsComparisonOperator("lessThanOrEqualTo"))
	assert.True(t, formula.IsMathFunction("DivisionFn"))
	assert.False(t, formula.IsMathFunction("MotherFn"))
	assert.True(t, formula.IsFunction("MotherFn"))
	assert.False(t, formula.IsFunction("mother"))

	assert.True(t, formula.IsSkolemTerm("Sk1"))
	assert.True(t, formula.IsSkolemTerm("(SkFn 12"))
	assert.False(t, formula.IsSkolemTerm("Socrates"))

	assert.True(t, formula.IsTerm("Human_1"))
	assert.False(t, formula.IsTerm("?X"))
	assert.False(t, formula.IsTerm("part-of"))
	assert.False(t, formula.IsTerm("(p a)"))
	assert.False(t, formula.IsTerm(""))

	assert.True(t, formula.IsQuantifierList("?X", "forall"))
	assert.False(t, formula.IsQuantifierList("p", "forall"))
	assert.False(t, formula.IsQuantifierList("?X", "and"))
}

func TestDualOperator(t *testing.T) {
	testCases := map[string]string{
		"forall": "exists",
		"exists": "forall",
		"and":    "or",
		"or":     "and",
		"not":    "",
		"":       "not",
		"True":   "False",
		"False":  "True",
	}
	for op, dual := range testCases {
		got, ok := formula.DualOperator(op)
		assert.True(t, ok, op)
		assert.Equal(t, dual, got, op)
	}
	_, ok := formula.DualOperator("=>")
	assert.False(t, ok)
}

func TestFormulaPredicates(t *testing.T) {
	testCases := []struct {
		formula                                 string
		rule, higherOrder, simple, negatedSimple bool
	}{
		{formula: "(=> (p ?X) (q ?X))", rule: true},
		{formula: "(forall (?X) (exists (?Y) (<=> (p ?X) (q ?Y))))", rule: true},
		{formula: "(forall (?X) (p ?X))", simple: false},
		{formula: "(instance Socrates Human)", simple: true},
		{formula: "(age Socrates (MeasureFn 70 YearDuration))", simple: true},
		{formula: "(believes John (instance Socrates Human))", higherOrder: true},
		{formula: "(=> (p ?X) (believes ?X (q ?X)))", rule: true, higherOrder: true},
		{formula: "(not (instance Socrates God))", negatedSimple: true},
		{formula: "(not (p a) (q a))"},
		{formula: "Socrates"},
	}
	for _, tc := range testCases {
		t.Run(tc.formula, func(t *testing.T) {
			f := formula.Read(tc.formula)
			assert.Equal(t, tc.rule, f.IsRule(), "rule")
			assert.Equal(t, tc.higherOrder, f.IsHigherOrder(), "higher order")
			assert.Equal(t, tc.simple, f.IsSimpleClause(), "simple clause")
			assert.Equal(t, tc.negatedSimple, f.IsSimpleNegatedClause(), "simple negated clause")
		})
	}

	assert.True(t, formula.Read("(MotherFn Abel)").IsFunctionalTerm())
	assert.False(t, formula.Read("(mother Abel)").IsFunctionalTerm())
	assert.False(t, formula.Read("(Fn Abel)").IsFunctionalTerm())
}

func TestQueries(t *testing.T) {
	assert.True(t, formula.IsQuery("(instance ?X Human)", "(instance ?Who Human)"))
	assert.False(t, formula.IsQuery("(instance ?X Human)", "(instance ?X Animal)"))
	assert.True(t, formula.IsNegatedQuery("(instance ?X Human)", "  (not (instance ?X Human))"))
	assert.False(t, formula.IsNegatedQuery("(instance ?X Human)", "(instance ?X Human)"))
}

func TestPostProcess(t *testing.T) {
	assert.Equal(t, "(instance Socrates Human)", formula.PostProcess("(holds_2__ instance Socrates Human)"))
	assert.Equal(t, "(age (MotherFn Abel) 3)", formula.PostProcess("(holds_2__ age (apply_1__ MotherFn Abel) 3)"))
}

func TestToProlog(t *testing.T) {
	assert.Equal(t, "instance('Socrates','Human').", formula.Read("(instance Socrates Human)").ToProlog())
	assert.Equal(t, "", formula.Read("(age (MotherFn Abel) 3)").ToProlog())
	assert.Equal(t, "", formula.Read("((p) a)").ToProlog())
	assert.Equal(t, "", formula.Read("()").ToProlog())
	assert.Equal(t, "", formula.Read("Socrates").ToProlog())
}
