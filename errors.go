//-----------------------------------------------------------------------------
// Error kinds and the flat Error value used throughout lexing, parsing,
// and evaluation.
//
// Grounded on sxreader.Error / reader.Error (Cause, Begin/End
// position, Unwrap, Is, a Format verb), adapted to the spec's three-kind
// taxonomy (InvalidInput, InvalidData, Internal) instead of sxreader's
// open set of sentinel errors.
//-----------------------------------------------------------------------------

package scib

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an operation failed.
type ErrorKind int

const (
	// InvalidInput covers surface-syntax or semantic misuse: malformed
	// number, unterminated string, bad escape, stray paren, stray
	// unquote, wrong argument count, wrong argument type, bad definition
	// form. An unbound label is InvalidData, not InvalidInput.
	InvalidInput ErrorKind = iota
	// InvalidData covers environment lookup misses.
	InvalidData
	// Internal indicates the implementation reached an unreachable state.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvalidData:
		return "InvalidData"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the flat error value produced by every component. It carries
// enough context — the operation name and, when applicable, the offending
// value rendered as source text — to locate the problem.
type Error struct {
	Kind  ErrorKind
	Op    string
	Value Value // offending value, if any; may be nil
	Msg   string
	Cause error
}

func (e Error) Error() string {
	var s string
	if e.Value != nil {
		s = fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
		s += fmt.Sprintf(" (value: %s)", Repr(e.Value))
	} else {
		s = fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e Error) Unwrap() error { return e.Cause }

// Is reports whether target is an Error of the same Kind, or delegates to
// the wrapped cause.
func (e Error) Is(target error) bool {
	var other Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return errors.Is(e.Cause, target)
}

// NewError builds an Error with the given kind, operation name, and
// message.
func NewError(kind ErrorKind, op, msg string) error {
	return Error{Kind: kind, Op: op, Msg: msg}
}

// NewValueError builds an Error that additionally names the offending
// value.
func NewValueError(kind ErrorKind, op string, v Value, msg string) error {
	return Error{Kind: kind, Op: op, Value: v, Msg: msg}
}

// Wrap builds an Internal-kind Error wrapping cause, for states the
// implementation considers unreachable.
func Wrap(op string, cause error) error {
	return Error{Kind: Internal, Op: op, Msg: "unreachable", Cause: cause}
}
