package sexp

import (
	"strings"
	"unicode"
)

// IsQuotedString reports whether s (ignoring surrounding whitespace) is
// wrapped in a matching pair of '"' or '\'' characters.
func IsQuotedString(s string) bool {
	str := strings.TrimSpace(s)
	if len(str) < 2 {
		return false
	}
	first := str[0]
	return (first == '"' || first == '\'') && str[len(str)-1] == first
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// IsAtom reports whether s is a LISP atom: a quoted string, or a non-empty
// string without ')' and without whitespace.
func IsAtom(s string) bool {
	str := strings.TrimSpace(s)
	if str == "" {
		return false
	}
	return IsQuotedString(s) || (!strings.Contains(str, ")") && !hasSpace(str))
}

// ListP reports whether s, trimmed, starts with '(' and ends with ')'
func ListP(s string) bool {
	str := strings.TrimSpace(s)
	return str != "" && strings.HasPrefix(str, "(") && strings.HasSuffix(str, ")")
}

// Empty reports whether s is the empty list: parentheses with only
// whitespace between them.
func Empty(s string) bool {
	if !ListP(s) {
		return false
	}
	str := strings.TrimSpace(s)
	return strings.TrimSpace(str[1:len(str)-1]) == ""
}

// IsBalancedList reports whether s is a list whose parentheses and quotes
// are balanced. Quote characters preceded by a backslash are ignored.
func IsBalancedList(s string) bool {
	if !ListP(s) {
		return false
	}
	if Empty(s) {
		return true
	}
	pLevel, qLevel := 0, 0
	prev := '0'
	insideQuote := false
	quoteInForce := '0'
	for _, ch := range strings.TrimSpace(s) {
		if !insideQuote {
			switch {
			case ch == '(':
				pLevel++
			case ch == ')':
				pLevel--
			case isQuoteChar(ch) && prev != '\\':
				insideQuote = true
				quoteInForce = ch
				qLevel++
			}
		} else if ch == quoteInForce && prev != '\\' {
			insideQuote = false
			quoteInForce = '0'
			qLevel--
		}
		prev = ch
	}
	return pLevel == 0 && qLevel == 0
}

// scanFirst walks the inside of the list s and returns the index just past
// the first top-level element along with the number of characters that
// element consumed.
func scanFirst(input []rune, visit func(rune)) (stop int, count int) {
	end := len(input) - 1
	level := 0
	prev := '0'
	insideQuote := false
	quoteInForce := '0'
	i := 1
	for ; i < end; i++ {
		ch := input[i]
		if !insideQuote {
			switch {
			case ch == '(':
				visit(ch)
				count++
				level++
			case ch == ')':
				visit(ch)
				count++
				level--
				if level <= 0 {
					return i, count
				}
			case unicode.IsSpace(ch) && level <= 0:
				if count > 0 {
					return i, count
				}
			case isQuoteChar(ch) && prev != '\\':
				visit(ch)
				count++
				insideQuote = true
				quoteInForce = ch
			default:
				visit(ch)
				count++
			}
		} else if ch == quoteInForce && prev != '\\' {
			visit(ch)
			count++
			insideQuote = false
			quoteInForce = '0'
			if level <= 0 {
				return i, count
			}
		} else {
			visit(ch)
			count++
		}
		prev = ch
	}
	return i, count
}

// Car returns the first element of the list s.
// It returns the empty string when s is not a list, and also when s is the
// empty list (unlike LISP, where the car of () is ()).
func Car(s string) string {
	if !ListP(s) || Empty(s) {
		return ""
	}
	sb := &strings.Builder{}
	scanFirst([]rune(strings.TrimSpace(s)), func(r rune) { sb.WriteRune(r) })
	return sb.String()
}

// Cdr returns the list s without its first element, wrapped in parens.
// It returns "()" for a single-element list, s itself for the empty list,
// and the empty string when s is not a list.
func Cdr(s string) string {
	if !ListP(s) {
		return ""
	}
	if Empty(s) {
		return s
	}
	input := []rune(strings.TrimSpace(s))
	end := len(input) - 1
	i, count := scanFirst(input, func(rune) {})
	if count == 0 {
		return ""
	}
	j := i + 1
	if j < end {
		return "(" + strings.TrimSpace(string(input[j:end])) + ")"
	}
	return "()"
}

// Cons returns a list with head as first element followed by the elements
// of target. When target is not a list the dotted pair "(head . target)" is
// returned. ok is false, and the result empty, when head or target is empty.
func Cons(head, target string) (result string, ok bool) {
	if strings.TrimSpace(head) == "" || strings.TrimSpace(target) == "" {
		return "", false
	}
	if !ListP(target) {
		return "(" + head + " . " + target + ")", true
	}
	if Empty(target) {
		return "(" + head + ")", true
	}
	str := strings.TrimSpace(target)
	return "(" + head + " " + str[1:len(str)-1] + ")", true
}

// Append splices the contents of other (without its outer parens, unless
// other is an atom) onto the end of the list receiver.
// ok is false, and receiver returned unchanged, when receiver is not a list.
func Append(receiver, other string) (result string, ok bool) {
	if !ListP(receiver) {
		return receiver, false
	}
	other = strings.TrimSpace(other)
	if other == "" || other == "()" {
		return receiver, true
	}
	if !IsAtom(other) && len(other) >= 2 {
		other = other[1 : len(other)-1]
	}
	if Empty(receiver) {
		return "(" + other + ")", true
	}
	lastParen := strings.LastIndex(receiver, ")")
	return receiver[:lastParen] + " " + other + ")", true
}
