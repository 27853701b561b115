//-----------------------------------------------------------------------------
// Package lexer tokenises the S-expression surface syntax, including
// quasiquotation markers, into an ordered token list.
//
// Grounded on sxreader.Reader's rune-buffer / pushback /
// position-tracking idiom (sxreader/sxreader.go), but restructured into the
// spec's explicit two-phase design: the reader's single-pass
// macro-dispatch-straight-to-Object approach is replaced by a first-class
// intermediate token list, since spec.md requires the parser to consume an
// observable token stream rather than reuse the reader's own recursion.
//-----------------------------------------------------------------------------

package lexer

import "github.com/czipperz/scib"

// Kind classifies a token.
type Kind int

const (
	OpenParen Kind = iota
	CloseParen
	Quote
	Backquote
	Unquote
	UnquoteList
	ValueToken
)

func (k Kind) String() string {
	switch k {
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Quote:
		return "Quote"
	case Backquote:
		return "Backquote"
	case Unquote:
		return "Unquote"
	case UnquoteList:
		return "UnquoteList"
	case ValueToken:
		return "ValueToken"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit. Value is populated only for ValueToken and
// holds one of scib.Number, scib.Str, scib.Label, scib.True, scib.Nil.
type Token struct {
	Kind  Kind
	Value scib.Value
	Pos   int // rune offset of the token's first character, for diagnostics
}
