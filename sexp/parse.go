package sexp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmpty          = errors.New("empty expression")
	ErrUnbalanced     = errors.New("unbalanced parentheses")
	ErrUnclosedQuote  = errors.New("unterminated quoted string")
	ErrTrailingTokens = errors.New("more than one top-level expression")
)

func isQuoteChar(r rune) bool { return r == '"' || r == '\'' }

// ParseAll parses every top-level expression in text.
//
// Parsing is total: unbalanced input yields the tree that could be built
// (missing closing parens are implied at the end of input, stray closing
// parens are dropped) together with a non-nil error describing the problem.
//
// A quote character preceded by a backslash does not open or close a quoted
// span. Quoted spans are glued to the token they appear in.
func ParseAll(text string) ([]Node, error) {
	p := &parser{}
	p.run(text)
	return p.top, errors.Join(p.errs...)
}

// Parse parses text as a single expression.
// When text holds more than one top-level expression the first one is
// returned alongside ErrTrailingTokens.
func Parse(text string) (Node, error) {
	nodes, err := ParseAll(text)
	if len(nodes) == 0 {
		if err == nil {
			err = ErrEmpty
		}
		return nil, err
	}
	if len(nodes) > 1 {
		err = errors.Join(err, ErrTrailingTokens)
	}
	return nodes[0], err
}

// MustParse is like Parse but panics on any error
func MustParse(text string) Node {
	n, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("sexp: cannot parse %q: %v", text, err))
	}
	return n
}

type parser struct {
	top    []Node
	frames [][]Node
	token  strings.Builder
	errs   []error
}

func (p *parser) emit(n Node) {
	if len(p.frames) == 0 {
		p.top = append(p.top, n)
		return
	}
	last := len(p.frames) - 1
	p.frames[last] = append(p.frames[last], n)
}

func (p *parser) flush() {
	if p.token.Len() == 0 {
		return
	}
	p.emit(Atom{Value: p.token.String()})
	p.token.Reset()
}

func (p *parser) run(text string) {
	runes := []rune(text)
	prev := rune(0)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case unicode.IsSpace(ch):
			p.flush()
		case ch == '(':
			p.flush()
			p.frames = append(p.frames, nil)
		case ch == ')':
			p.flush()
			if len(p.frames) == 0 {
				p.errs = append(p.errs, fmt.Errorf("%w: unexpected ')' at offset %d", ErrUnbalanced, i))
				break
			}
			p.closeFrame()
		case isQuoteChar(ch) && prev != '\\':
			quote := ch
			p.token.WriteRune(ch)
			closed := false
			inner := ch
			for i+1 < len(runes) {
				i++
				c := runes[i]
				p.token.WriteRune(c)
				if c == quote && inner != '\\' {
					closed = true
					ch = c
					break
				}
				inner = c
				ch = c
			}
			if !closed {
				p.errs = append(p.errs, ErrUnclosedQuote)
			}
		default:
			p.token.WriteRune(ch)
		}
		prev = ch
	}
	p.flush()
	if len(p.frames) > 0 {
		p.errs = append(p.errs, fmt.Errorf("%w: %d unclosed '('", ErrUnbalanced, len(p.frames)))
	}
	for len(p.frames) > 0 {
		p.closeFrame()
	}
}

func (p *parser) closeFrame() {
	last := len(p.frames) - 1
	elems := p.frames[last]
	p.frames = p.frames[:last]
	p.emit(NewList(elems...))
}
