package sexp

import (
	"fmt"
	"strings"
)

// Form is one top-level expression of a document
type Form struct {
	Text      string
	StartLine int // 1-based
	EndLine   int
}

// SplitForms cuts a KIF document into its top-level parenthesized forms.
// Text after ';' up to the end of the line is a comment when not inside a
// quoted string. Top-level text outside of any list is ignored.
//
// The forms found before an unbalanced end of input are still returned.
func SplitForms(doc string) ([]Form, error) {
	var (
		forms        []Form
		current      strings.Builder
		depth        int
		line         = 1
		start        int
		insideQuote  bool
		quoteInForce rune
		inComment    bool
		prev         rune
	)
	for _, ch := range doc {
		newline := ch == '\n'
		if newline {
			inComment = false
		}
		switch {
		case inComment:
		case insideQuote:
			current.WriteRune(ch)
			if ch == quoteInForce && prev != '\\' {
				insideQuote = false
			}
		case ch == ';':
			inComment = true
		case ch == '(':
			if depth == 0 {
				start = line
				current.Reset()
			}
			depth++
			current.WriteRune(ch)
		case ch == ')':
			if depth == 0 {
				return forms, fmt.Errorf("%w: unexpected ')' on line %d", ErrUnbalanced, line)
			}
			depth--
			current.WriteRune(ch)
			if depth == 0 {
				forms = append(forms, Form{Text: current.String(), StartLine: start, EndLine: line})
				current.Reset()
			}
		case depth > 0 && isQuoteChar(ch) && prev != '\\':
			insideQuote = true
			quoteInForce = ch
			current.WriteRune(ch)
		case depth > 0:
			if ch == '\n' || ch == '\r' || ch == '\t' {
				ch = ' '
			}
			current.WriteRune(ch)
		}
		if newline {
			line++
		}
		prev = ch
	}
	if depth > 0 || insideQuote {
		return forms, fmt.Errorf("%w: form starting on line %d is not closed", ErrUnbalanced, start)
	}
	return forms, nil
}
