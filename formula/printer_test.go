package formula_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/kif/formula"
)

func TestString(t *testing.T) {
	testCases := []struct {
		in, expected string
	}{
		{"(instance Socrates Human)", "(instance Socrates Human)"},
		{"(=> (p ?X) (q ?X))", "(=>\n  (p ?X)\n  (q ?X))"},
		{"(forall (?X) (p ?X))", "(forall (?X)\n  (p ?X))"},
		{
			"(=> (and (p ?X) (q ?X)) (r ?X))",
			"(=>\n  (and\n    (p ?X)\n    (q ?X))\n  (r ?X))",
		},
		{"(=>   (p  ?X)\n\t(q ?X))", "(=>\n  (p ?X)\n  (q ?X))"},
		{`(documentation Foo "a (b)  c")`, `(documentation Foo "a (b)  c")`},
		{"(part-of ?A ?B-C)", "(part-of ?A ?B-C)"},
		{"Socrates", "Socrates"},
		{"?X", "?X"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, formula.Read(tc.in).String())
		})
	}
}

func TestHTMLFormat(t *testing.T) {
	f := formula.Read("(=> (p ?X) (q ?X))")
	assert.Equal(t,
		`(=><br>`+"\n"+`&nbsp;&nbsp;&nbsp;&nbsp;(<a href="http://kb&term=p">p</a> ?X)<br>`+"\n"+`&nbsp;&nbsp;&nbsp;&nbsp;(<a href="http://kb&term=q">q</a> ?X))`,
		f.HTMLFormat("http://kb"))

	href := `<a href="http://localhost:8080/sigma/Browse.jsp?kb=SUMO&term=Human">Human</a>`
	assert.Equal(t, href, formula.Read("Human").HTMLFormatKB(nil, "SUMO"))

	k := testKB()
	k.SetPreference("hostname", "sigma.example.org")
	k.SetPreference("port", "9000")
	assert.Contains(t, formula.Read("Human").HTMLFormatKB(k, "SUMO"), "http://sigma.example.org:9000/sigma/Browse.jsp?kb=SUMO&term=Human")
}

func TestLongQuotedStringsWrap(t *testing.T) {
	text := `(documentation Foo EnglishLanguage "see http://example.org/a/very/long/path/that/goes/on/and/on")`
	formatted := formula.Read(text).String()
	assert.Contains(t, formatted, "http://example.org/a/very/long/path/ that/ goes/ on/ and/ on")
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestPrinter(t *testing.T) {
	f := formula.Read(`(=> (instance ?X Human) (documentation ?X "a \"man\""))`)

	plain := formula.NewPrinter(false).Print(f)
	assert.Equal(t, f.String(), plain)

	colored := formula.NewPrinter(true).Print(f)
	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, ansi.ReplaceAllString(colored, ""))
}
