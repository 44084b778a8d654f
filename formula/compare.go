package formula

import (
	"hash/fnv"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cottand/kif/clausal"
	"github.com/cottand/kif/sexp"
)

// normalized returns the canonical text of f with variables renamed by
// order of first occurrence
func (f *Formula) normalized() string {
	if f.node == nil {
		return f.text
	}
	return clausal.Normalize(f.node).String()
}

// TextEquals reports whether f and other print identically
func (f *Formula) TextEquals(other *Formula) bool {
	return f.Canonical() == other.Canonical()
}

// Equals reports whether f and other are equal up to a consistent renaming
// of variables
func (f *Formula) Equals(other *Formula) bool {
	if other == nil {
		return false
	}
	return f.normalized() == other.normalized()
}

// Hash is consistent with Equals
func (f *Formula) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(f.normalized()))
	return h.Sum64()
}

// DeepEquals reports whether f and other have the same text and were read
// from the same file
func (f *Formula) DeepEquals(other *Formula) bool {
	return f.text == other.text && f.source.File == other.source.File
}

// Compare orders formulas by their text
func (f *Formula) Compare(other *Formula) int {
	return strings.Compare(f.text, other.text)
}

// CreateID returns an identifier made of a hash of the text of f followed
// by the base name of its source file. Negative hashes are prefixed with N.
func (f *Formula) CreateID() string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(f.text))
	hc := int32(h.Sum32())
	fname := ""
	if f.source.File != "" {
		fname = filepath.Base(f.source.File)
	}
	if hc < 0 {
		return "N" + strconv.FormatInt(-int64(hc), 10) + fname
	}
	return strconv.FormatInt(int64(hc), 10) + fname
}

// LogicallyEquals reports whether f and other are equal when the arguments
// of every 'and' and 'or' are taken as an unordered bag, up to one consistent
// renaming of variables across the whole formula.
// Formulas that are single atoms must match exactly.
func (f *Formula) LogicallyEquals(other *Formula) bool {
	if other == nil {
		return false
	}
	_, fIsList := f.node.(sexp.List)
	_, otherIsList := other.node.(sexp.List)
	if !fIsList || !otherIsList {
		return f.Canonical() == other.Canonical()
	}
	return logicallyEqual(f.node, other.node, varMapping{}, func(varMapping) bool { return true })
}

// varMapping is a one to one renaming between the variables of two formulas.
// Extending it never modifies the receiver.
type varMapping struct {
	forward, backward map[string]string
}

func (m varMapping) bind(from, to string) (varMapping, bool) {
	if bound, ok := m.forward[from]; ok {
		return m, bound == to
	}
	if _, ok := m.backward[to]; ok {
		return m, false
	}
	next := varMapping{
		forward:  maps.Clone(m.forward),
		backward: maps.Clone(m.backward),
	}
	if next.forward == nil {
		next.forward, next.backward = map[string]string{}, map[string]string{}
	}
	next.forward[from] = to
	next.backward[to] = from
	return next, true
}

// logicallyEqual matches a against b under m and calls then with the
// extended mapping. When then fails, other ways of matching the bags of
// 'and' and 'or' arguments are tried.
func logicallyEqual(a, b sexp.Node, m varMapping, then func(varMapping) bool) bool {
	switch a := a.(type) {
	case sexp.Atom:
		bAtom, ok := b.(sexp.Atom)
		if !ok {
			return false
		}
		if a.IsVariable() && bAtom.IsVariable() && a.IsRowVariable() == bAtom.IsRowVariable() {
			next, ok := m.bind(a.Value, bAtom.Value)
			return ok && then(next)
		}
		return a.Value == bAtom.Value && then(m)
	case sexp.List:
		bList, ok := b.(sexp.List)
		if !ok || a.Len() != bList.Len() {
			return false
		}
		if a.IsEmpty() {
			return then(m)
		}
		head := sexp.HeadSymbol(a)
		if IsCommutative(head) {
			return sexp.HeadSymbol(bList) == head && bagEqual(a.Tail().Elems(), bList.Tail().Elems(), m, then)
		}
		return pairwiseEqual(a.Elems(), bList.Elems(), m, then)
	}
	return false
}

func pairwiseEqual(left, right []sexp.Node, m varMapping, then func(varMapping) bool) bool {
	if len(left) == 0 {
		return then(m)
	}
	return logicallyEqual(left[0], right[0], m, func(next varMapping) bool {
		return pairwiseEqual(left[1:], right[1:], next, then)
	})
}

// bagEqual pairs every element of left with a distinct, logically equal
// element of right
func bagEqual(left, right []sexp.Node, m varMapping, then func(varMapping) bool) bool {
	if len(left) != len(right) {
		return false
	}
	if len(left) == 0 {
		return then(m)
	}
	for j, r := range right {
		rest := slices.Delete(slices.Clone(right), j, j+1)
		matched := logicallyEqual(left[0], r, m, func(next varMapping) bool {
			return bagEqual(left[1:], rest, next, then)
		})
		if matched {
			return true
		}
	}
	return false
}
