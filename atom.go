//-----------------------------------------------------------------------------
// Atomic marker values: Nil (the empty/false marker) and True (the
// canonical truth marker).
//-----------------------------------------------------------------------------

package scib

// Nil is the type of the single Nil value.
type Nil struct{}

// NilValue is the canonical, only instance of Nil.
var NilValue = Nil{}

func (Nil) IsAtom() bool         { return true }
func (Nil) IsEqual(o Value) bool { _, ok := o.(Nil); return ok }
func (Nil) String() string       { return "nil" }

// True is the type of the single True value.
type True struct{}

// TrueValue is the canonical, only instance of True.
var TrueValue = True{}

func (True) IsAtom() bool         { return true }
func (True) IsEqual(o Value) bool { _, ok := o.(True); return ok }
func (True) String() string       { return "t" }

// IsNil reports whether v is the Nil value. A nil Go interface value also
// counts as Nil, mirroring sxpf's (*Pair)(nil) convention for the
// empty list.
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Nil)
	return ok
}

// IsTrue reports whether v is the True value.
func IsTrue(v Value) bool {
	_, ok := v.(True)
	return ok
}

// IsTruthy reports whether v should be treated as a true condition: every
// value except Nil is truthy (only True is produced by comparison builtins,
// but user code may treat any non-Nil value as true, e.g. the result of
// `list`).
func IsTruthy(v Value) bool { return !IsNil(v) }
