package formula

import (
	"strings"
	"unicode"
)

const (
	TextIndent = "  "
	TextEOL    = "\n"
	HTMLIndent = "&nbsp;&nbsp;&nbsp;&nbsp;"
	HTMLEOL    = "<br>\n"

	// legalTermChars may appear in terms besides identifier characters
	legalTermChars = "-:"
	varStartChars  = "?@"
	// longCommentColumn is the offset after which a '/' in a quoted string
	// is followed by a space so that long URLs can wrap
	longCommentColumn = 70
)

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$' ||
		unicode.Is(unicode.Sc, r) || unicode.Is(unicode.Pc, r) || unicode.Is(unicode.Nl, r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

func isTermPart(r rune) bool {
	return isIdentPart(r) || strings.ContainsRune(legalTermChars, r)
}

// Format pretty-prints f. Every parenthesized subexpression other than the
// outermost one and quantifier variable lists starts on a new line, made of
// eol followed by one indent per nesting level. When hyperlink is not empty
// every term is wrapped in a link to hyperlink&term=<term>.
// Quoted strings are copied verbatim.
func (f *Formula) Format(hyperlink, indent, eol string) string {
	p := formatter{hyperlink: hyperlink, indent: indent, eol: eol}
	return p.format(f.text)
}

// String formats f as indented plain text
func (f *Formula) String() string {
	if f == nil {
		return ""
	}
	return f.Format("", TextIndent, TextEOL)
}

// TextFormat is String
func (f *Formula) TextFormat() string { return f.String() }

// HTMLFormat formats f as HTML, linking terms to href
func (f *Formula) HTMLFormat(href string) string {
	return f.Format(href, HTMLIndent, HTMLEOL)
}

// HTMLFormatKB formats f as HTML, linking terms to the browser page of
// knowledge base kbName on the host and port given by prefs
func (f *Formula) HTMLFormatKB(prefs Preferences, kbName string) string {
	hostname, port := "", ""
	if prefs != nil {
		hostname, port = prefs.Preference("hostname"), prefs.Preference("port")
	}
	if hostname == "" {
		hostname = "localhost"
	}
	if port == "" {
		port = "8080"
	}
	return f.HTMLFormat("http://" + hostname + ":" + port + "/sigma/Browse.jsp?kb=" + kbName)
}

type formatter struct {
	hyperlink, indent, eol string

	out   strings.Builder
	token strings.Builder
}

func (p *formatter) writeToken() {
	if p.hyperlink != "" {
		p.out.WriteString(`<a href="`)
		p.out.WriteString(p.hyperlink)
		p.out.WriteString("&term=")
		p.out.WriteString(p.token.String())
		p.out.WriteString(`">`)
		p.out.WriteString(p.token.String())
		p.out.WriteString("</a>")
	} else {
		p.out.WriteString(p.token.String())
	}
	p.token.Reset()
}

// dropTrailingSpace removes the last written byte when it is whitespace
func (p *formatter) dropTrailingSpace() {
	s := p.out.String()
	if s == "" || !unicode.IsSpace(rune(s[len(s)-1])) {
		return
	}
	p.out.Reset()
	p.out.WriteString(s[:len(s)-1])
}

func (p *formatter) format(text string) string {
	var (
		indentLevel  int
		inQuantifier bool
		inToken      bool
		inVariable   bool
		inVarList    bool
		inComment    bool
		prev         rune = '0'
	)
	for i, ch := range []rune(text) {
		if inComment {
			p.out.WriteRune(ch)
			if i > longCommentColumn && ch == '/' {
				p.out.WriteString(" ")
			}
			if ch == '"' {
				inComment = false
			}
			prev = ch
			continue
		}
		if ch == '(' && !inQuantifier && (indentLevel != 0 || i > 1) {
			if i > 0 && unicode.IsSpace(prev) {
				p.dropTrailingSpace()
			}
			p.out.WriteString(p.eol)
			p.out.WriteString(strings.Repeat(p.indent, indentLevel))
		}
		if i == 0 && indentLevel == 0 && ch == '(' {
			p.out.WriteRune(ch)
		}
		if !inToken && !inVariable && isIdentStart(ch) {
			p.token.Reset()
			inToken = true
		}
		if inToken && isTermPart(ch) {
			p.token.WriteRune(ch)
		}
		if ch == '(' {
			if inQuantifier {
				inQuantifier = false
				inVarList = true
				p.token.Reset()
			} else {
				indentLevel++
			}
		}
		if ch == '"' {
			inComment = true
		}
		if ch == ')' {
			if inVarList {
				inVarList = false
			} else {
				indentLevel--
			}
		}
		if tok := p.token.String(); strings.Contains(tok, Forall) || strings.Contains(tok, Exists) {
			inQuantifier = true
		}
		if inVariable && !isTermPart(ch) {
			inVariable = false
		}
		if strings.ContainsRune(varStartChars, ch) {
			inVariable = true
		}
		if inToken && !isTermPart(ch) {
			inToken = false
			p.writeToken()
		}
		if (i > 0 || ch != '(') && !inToken && !(unicode.IsSpace(ch) && prev == '(') {
			if unicode.IsSpace(ch) {
				if !unicode.IsSpace(prev) {
					p.out.WriteString(" ")
				}
			} else {
				p.out.WriteRune(ch)
			}
		}
		prev = ch
	}
	if inToken {
		p.writeToken()
	}
	return p.out.String()
}
