package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/kif/formula"
)

func TestGatherRelationConstants(t *testing.T) {
	testCases := []struct {
		formula  string
		expected []string
	}{
		{
			formula:  "(=> (instance ?X Human) (attribute ?X Mortal))",
			expected: []string{"attribute", "instance"},
		},
		{
			formula:  "(forall (?X) (=> (instance ?X Human) (exists (?Y) (mother ?X ?Y))))",
			expected: []string{"instance", "mother"},
		},
		{
			formula:  "(forall ((p ?X)) (q ?X))",
			expected: []string{"q"},
		},
		{
			formula:  `(and (?REL a) (SkFn 1 ?X) ("quoted" a) (age ?X (MeasureFn 3 YearDuration)))`,
			expected: []string{"MeasureFn", "age"},
		},
		{formula: "Socrates"},
		{formula: "()"},
	}
	for _, tc := range testCases {
		t.Run(tc.formula, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, formula.Read(tc.formula).GatherRelationConstants())
		})
	}
}

func TestGatherRelationsWithArgTypes(t *testing.T) {
	k := testKB()
	k.SetArgType("instance", 1, "Entity")
	k.SetArgType("instance", 2, "SetOrClass")
	k.SetArgType("MotherFn", 0, "Woman")

	types := formula.Read("(instance (MotherFn ?X) Human)").GatherRelationsWithArgTypes(k)
	assert.Equal(t, []string{"", "Entity", "SetOrClass", "", "", "", "", ""}, types["instance"])
	assert.Equal(t, []string{"Woman", "", "", "", "", "", "", ""}, types["MotherFn"])
	assert.Len(t, types, 2)

	unknown := formula.Read("(instance ?X Human)").GatherRelationsWithArgTypes(nil)
	assert.Equal(t, map[string][]string{"instance": make([]string, formula.MaxPredicateArity+1)}, unknown)
}

func TestContainsVariableArityRelation(t *testing.T) {
	k := testKB()
	assert.True(t, formula.Read("(holds ?R ?X)").ContainsVariableArityRelation(k))
	assert.True(t, formula.Read("(equal ?L (ListFn a b))").ContainsVariableArityRelation(k))
	assert.True(t, formula.Read("(equal ?L (ListFn a b))").ContainsVariableArityRelation(nil))
	assert.False(t, formula.Read("(instance ?X Human)").ContainsVariableArityRelation(k))
	assert.False(t, formula.Read("(holdsTrue ?X)").ContainsVariableArityRelation(k))
}

func TestRenameVariableArityRelations(t *testing.T) {
	k := testKB()
	f := formula.New("(=> (holds ?R ?X ?Y) (equal ?L (ListFn ?X (holds ?R))))", formula.Source{File: "va.kif"})
	renamed, relations := f.RenameVariableArityRelations(k)
	assert.Equal(t, "(=> (holds_3 ?R ?X ?Y) (equal ?L (ListFn_2 ?X (holds_1 ?R))))", renamed.Text())
	assert.Equal(t, map[string]string{
		"holds_3":  "holds",
		"holds_1":  "holds",
		"ListFn_2": "ListFn",
	}, relations)
	assert.Equal(t, "va.kif", renamed.SourceFile())

	again, relations := renamed.RenameVariableArityRelations(k)
	assert.Equal(t, renamed.Text(), again.Text())
	assert.Empty(t, relations)

	unchanged, relations := f.RenameVariableArityRelations(nil)
	assert.Same(t, f, unchanged)
	assert.Empty(t, relations)
}
