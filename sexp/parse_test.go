package sexp_test

import (
	"testing"

	"github.com/cottand/kif/sexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonical(t *testing.T) {
	testCases := map[string]string{
		"(foo bar)":                       "(foo bar)",
		"  ( foo\n\t(bar   baz) )  ":      "(foo (bar baz))",
		"()":                              "()",
		"atom":                            "atom",
		`(documentation X "a  (b)  c")`:   `(documentation X "a  (b)  c")`,
		`(say "it's \"so\"" ok)`:          `(say "it's \"so\"" ok)`,
		"(forall (?X @ROW) (p ?X @ROW))": "(forall (?X @ROW) (p ?X @ROW))",
	}
	for in, expected := range testCases {
		t.Run(in, func(t *testing.T) {
			n, err := sexp.Parse(in)
			require.NoError(t, err)
			assert.Equal(t, expected, n.String())
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	testCases := map[string]string{
		"(foo (bar)":  "(foo (bar))",
		"(foo) )":     "(foo)",
		`(foo "bar`:   `(foo "bar)`,
		"(a b) (c d)": "(a b)",
	}
	for in, expected := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.NotPanics(t, func() {
				n, err := sexp.Parse(in)
				assert.Error(t, err)
				require.NotNil(t, n)
				assert.Equal(t, expected, n.String())
			})
		})
	}

	_, err := sexp.Parse("   ")
	assert.ErrorIs(t, err, sexp.ErrEmpty)
}

func TestListOperations(t *testing.T) {
	l := sexp.MustParse("(a b c)").(sexp.List)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, sexp.Atom{Value: "a"}, l.Head())
	assert.Equal(t, "(b c)", l.Tail().String())
	assert.Equal(t, "(z a b c)", l.Prepend(sexp.Atom{Value: "z"}).String())
	assert.Equal(t, "(a b c d)", l.Append(sexp.Atom{Value: "d"}).String())
	assert.Equal(t, "(a x c)", l.Set(1, sexp.Atom{Value: "x"}).String())
	// l itself is unchanged
	assert.Equal(t, "(a b c)", l.String())
	assert.Nil(t, l.At(3))
	assert.Equal(t, "()", sexp.List{}.Tail().String())
	assert.Equal(t, "a", sexp.HeadSymbol(l))
	assert.Equal(t, "", sexp.HeadSymbol(sexp.MustParse("((a) b)")))
}

func TestReplaceAtoms(t *testing.T) {
	n := sexp.MustParse("(p @ROW (q @ROW x))")
	out := sexp.ReplaceAtoms(n, func(a sexp.Atom) []sexp.Node {
		if a.Value == "@ROW" {
			return []sexp.Node{sexp.Atom{Value: "?ROW1"}, sexp.Atom{Value: "?ROW2"}}
		}
		return nil
	})
	assert.Equal(t, "(p ?ROW1 ?ROW2 (q ?ROW1 ?ROW2 x))", out.String())
	assert.Equal(t, "(p @ROW (q @ROW x))", n.String())
}

func TestAtoms(t *testing.T) {
	var values []string
	for a := range sexp.Atoms(sexp.MustParse(`(p ?X (q "s" @R))`)) {
		values = append(values, a.Value)
	}
	assert.Equal(t, []string{"p", "?X", "q", `"s"`, "@R"}, values)
}

func TestSplitForms(t *testing.T) {
	doc := `; a comment (with parens)
(instance Foo Bar)

(=> (instance ?X Foo)
    (attribute ?X "semi;colon"))  ; trailing
`
	forms, err := sexp.SplitForms(doc)
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, "(instance Foo Bar)", forms[0].Text)
	assert.Equal(t, 2, forms[0].StartLine)
	assert.Equal(t, 2, forms[0].EndLine)
	assert.Equal(t, `(=> (instance ?X Foo)     (attribute ?X "semi;colon"))`, forms[1].Text)
	assert.Equal(t, 4, forms[1].StartLine)
	assert.Equal(t, 5, forms[1].EndLine)

	forms, err = sexp.SplitForms("(a b) (c")
	assert.ErrorIs(t, err, sexp.ErrUnbalanced)
	assert.Len(t, forms, 1)
}
