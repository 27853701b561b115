//-----------------------------------------------------------------------------
// Package scib provides the value model and environment of a small
// Lisp-family interpreter core.
//-----------------------------------------------------------------------------

package scib

import (
	"fmt"
	"io"
)

// Value is the generic type every s-expression value must satisfy.
//
// The constructor set is closed: Nil, True, Number, String, Label, List,
// Quote, Backquote, Unquote, UnquoteList, Function, Macro. No other type in
// this module implements Value.
type Value interface {
	fmt.Stringer

	// IsAtom reports whether the value is not further decomposable, i.e.
	// not a List, Quote, Backquote, Unquote, or UnquoteList.
	IsAtom() bool

	// IsEqual compares two values for deep, structural equality.
	IsEqual(Value) bool
}

// Printable values know how to render themselves onto a writer without
// first materializing a string. Used by error messages that need to show
// the offending value.
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes the string representation of v to w, preferring its Print
// method when available.
func Print(w io.Writer, v Value) (int, error) {
	if pr, ok := v.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, v.String())
}

// Repr renders a value the way it would appear in source, for use in error
// messages and diagnostics.
func Repr(v Value) string {
	if v == nil {
		return NilValue.String()
	}
	return v.String()
}
