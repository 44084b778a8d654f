package formula

import (
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/color"
)

// Printer renders formulas as indented text for a terminal, optionally
// highlighting operators, relations, variables and quoted strings
type Printer struct {
	Indent string
	// Color forces highlighting on or off regardless of the terminal
	Color bool

	operator, relation, variable, quoted *color.Color
}

func NewPrinter(colored bool) *Printer {
	p := &Printer{
		Indent:   TextIndent,
		Color:    colored,
		operator: color.New(color.FgMagenta, color.Bold),
		relation: color.New(color.FgBlue),
		variable: color.New(color.FgCyan),
		quoted:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.operator, p.relation, p.variable, p.quoted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print formats f like String and highlights its tokens when p.Color is set
func (p *Printer) Print(f *Formula) string {
	text := f.Format("", p.Indent, TextEOL)
	if !p.Color {
		return text
	}
	return p.highlight(text)
}

func (p *Printer) highlight(text string) string {
	var out strings.Builder
	runes := []rune(text)
	afterLP := false
	isSep := func(r rune) bool { return unicode.IsSpace(r) || r == '(' || r == ')' }
	for i := 0; i < len(runes); {
		ch := runes[i]
		switch {
		case ch == '"':
			j := i + 1
			for j < len(runes) && (runes[j] != '"' || runes[j-1] == '\\') {
				j++
			}
			j = min(j+1, len(runes))
			out.WriteString(p.quoted.Sprint(string(runes[i:j])))
			i = j
			afterLP = false
		case isSep(ch):
			out.WriteRune(ch)
			afterLP = ch == '(' || (afterLP && unicode.IsSpace(ch))
			i++
		default:
			j := i
			for j < len(runes) && !isSep(runes[j]) && runes[j] != '"' {
				j++
			}
			tok := string(runes[i:j])
			switch {
			case slices.Contains(LogicalOperators, tok):
				out.WriteString(p.operator.Sprint(tok))
			case IsVariable(tok):
				out.WriteString(p.variable.Sprint(tok))
			case afterLP:
				out.WriteString(p.relation.Sprint(tok))
			default:
				out.WriteString(tok)
			}
			i = j
			afterLP = false
		}
	}
	return out.String()
}
