// Package ferr defines the diagnostics reported when checking the arity and
// grammar of KIF formulas.
package ferr

import (
	"fmt"
	"strconv"
)

type Code int

const (
	None Code = iota
	TooFewArgumentsCode
	WrongArgumentCountCode
	NoVarListCode
	MaybeTooManyArgumentsCode
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Location is where the offending formula was read from.
// The zero Location means unknown.
type Location struct {
	File string
	Line int
}

func (l Location) Known() bool { return l.File != "" && l.Line > 0 }

// String renders l as "near line N in FILE", or "" when unknown
func (l Location) String() string {
	if !l.Known() {
		return ""
	}
	return "near line " + strconv.Itoa(l.Line) + " in " + l.File
}

type Diagnostic interface {
	Error() string
	Code() Code
	Severity() Severity
	Location() Location
	// Formula is the text of the offending subformula
	Formula() string
}

func FormatWithCode(e Diagnostic) string {
	return fmt.Sprintf("(K%03d) %s: %s", e.Code(), e.Severity(), e.Error())
}

func at(l Location) string {
	if !l.Known() {
		return ""
	}
	return " " + l.String()
}

// Subject is embedded by every Diagnostic
type Subject struct {
	At   Location
	Text string
}

func (s Subject) Location() Location { return s.At }
func (s Subject) Formula() string    { return s.Text }

// TooFewArguments is reported for 'and' and 'or' with fewer than two arguments
type TooFewArguments struct {
	Subject
	Operator string
}

func (e TooFewArguments) Error() string {
	return fmt.Sprintf("too few arguments for '%s'%s: %s", e.Operator, at(e.At), e.Text)
}
func (e TooFewArguments) Code() Code         { return TooFewArgumentsCode }
func (e TooFewArguments) Severity() Severity { return SeverityError }

// WrongArgumentCount is reported for strictly binary operators and
// quantifiers used with another number of arguments
type WrongArgumentCount struct {
	Subject
	Operator string
	Expected int
	Found    int
}

func (e WrongArgumentCount) Error() string {
	return fmt.Sprintf("wrong number of arguments for '%s'%s (expected %d, found %d): %s", e.Operator, at(e.At), e.Expected, e.Found, e.Text)
}
func (e WrongArgumentCount) Code() Code         { return WrongArgumentCountCode }
func (e WrongArgumentCount) Severity() Severity { return SeverityError }

// NoVarList is reported for a quantifier whose first argument is not a list
type NoVarList struct {
	Subject
	Quantifier string
}

func (e NoVarList) Error() string {
	return fmt.Sprintf("no var list for quantifier '%s'%s: %s", e.Quantifier, at(e.At), e.Text)
}
func (e NoVarList) Code() Code         { return NoVarListCode }
func (e NoVarList) Severity() Severity { return SeverityError }

// MaybeTooManyArguments is a soft warning for relations applied to more
// arguments than the supported maximum arity
type MaybeTooManyArguments struct {
	Subject
	Relation string
	Max      int
	Found    int
}

func (e MaybeTooManyArguments) Error() string {
	return fmt.Sprintf("maybe too many arguments for '%s'%s (max %d, found %d): %s", e.Relation, at(e.At), e.Max, e.Found, e.Text)
}
func (e MaybeTooManyArguments) Code() Code         { return MaybeTooManyArgumentsCode }
func (e MaybeTooManyArguments) Severity() Severity { return SeverityWarning }
