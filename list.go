//-----------------------------------------------------------------------------
// List is an ordered, finite sequence of Values; the syntactic and
// semantic building block for call forms.
//-----------------------------------------------------------------------------

package scib

import (
	"io"
	"strings"
)

// List is an ordered sequence of child values, in original textual order.
// Unlike sxpf's cons-cell Pair, List is a plain slice: spec.md §3
// defines List as "(seq of Value)", not a chain of pairs, and the evaluator
// and backquote engine both index and re-slice lists directly.
type List []Value

// MakeList builds a List from the given values. The slice is not copied;
// callers that continue to hold onto objs must treat it as immutable
// afterwards, matching the immutable-once-constructed invariant of Value.
func MakeList(objs ...Value) List { return List(objs) }

func (l List) IsAtom() bool { return false }

func (l List) IsEqual(o Value) bool {
	ol, ok := o.(List)
	if !ok || len(l) != len(ol) {
		return false
	}
	for i, v := range l {
		if !v.IsEqual(ol[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	var sb strings.Builder
	_, _ = l.Print(&sb)
	return sb.String()
}

// Print writes the parenthesized, space-separated representation.
func (l List) Print(w io.Writer) (int, error) {
	total, err := io.WriteString(w, "(")
	if err != nil {
		return total, err
	}
	for i, v := range l {
		if i > 0 {
			n, err := io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err := Print(w, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, ")")
	total += n
	return total, err
}

// GetList returns v as a List, if possible. Nil counts as the empty list.
func GetList(v Value) (List, bool) {
	if IsNil(v) {
		return nil, true
	}
	l, ok := v.(List)
	return l, ok
}
