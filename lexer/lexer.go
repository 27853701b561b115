package lexer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/czipperz/scib"
)

// numberPattern matches the lexeme shapes spec.md §4.1/§6 accept as
// numbers: optional sign, decimal digits, optional dot, optional trailing
// digits — or a leading dot followed by digits. This excludes strings like
// "NaN", "Inf", or hex floats that Go's strconv.ParseFloat would otherwise
// accept, which must lex as Label instead.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// isDispatch reports whether ch is one of the characters that both start a
// reader macro and terminate a label run. '.' is deliberately excluded: it is part of the
// number grammar (leading/trailing dot), not a dispatch character.
func isDispatch(ch rune) bool {
	switch ch {
	case '`', '\'', '(', ')', '"', ',':
		return true
	default:
		return false
	}
}

func isSpace(ch rune) bool { return unicode.IsSpace(ch) }

func isLabelChar(ch rune) bool { return !isSpace(ch) && !isDispatch(ch) }

// Lex converts a sequence of Unicode scalar values into an ordered token
// list.
func Lex(src []rune) ([]Token, error) {
	lx := &lexerState{src: src}
	var toks []Token
	for {
		lx.skipSpace()
		if lx.eof() {
			return toks, nil
		}
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

type lexerState struct {
	src []rune
	pos int
}

func (lx *lexerState) eof() bool       { return lx.pos >= len(lx.src) }
func (lx *lexerState) peek() rune      { return lx.src[lx.pos] }
func (lx *lexerState) peekAt(n int) (rune, bool) {
	if lx.pos+n >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos+n], true
}
func (lx *lexerState) advance() rune {
	ch := lx.src[lx.pos]
	lx.pos++
	return ch
}

func (lx *lexerState) skipSpace() {
	for !lx.eof() && isSpace(lx.peek()) {
		lx.pos++
	}
}

func (lx *lexerState) next() (Token, error) {
	start := lx.pos
	ch := lx.peek()
	switch ch {
	case '(':
		lx.advance()
		return Token{Kind: OpenParen, Pos: start}, nil
	case ')':
		lx.advance()
		return Token{Kind: CloseParen, Pos: start}, nil
	case '\'':
		lx.advance()
		return Token{Kind: Quote, Pos: start}, nil
	case '`':
		lx.advance()
		return Token{Kind: Backquote, Pos: start}, nil
	case ',':
		lx.advance()
		if next, ok := lx.peekAt(0); ok && next == '@' {
			lx.advance()
			return Token{Kind: UnquoteList, Pos: start}, nil
		}
		return Token{Kind: Unquote, Pos: start}, nil
	case '"':
		lx.advance()
		return lx.readString(start)
	default:
		return lx.readLabelRun(start)
	}
}

func (lx *lexerState) readString(start int) (Token, error) {
	var sb strings.Builder
	for {
		if lx.eof() {
			return Token{}, scib.NewError(scib.InvalidInput, "lex-string", "unterminated string literal")
		}
		ch := lx.advance()
		if ch == '"' {
			return Token{Kind: ValueToken, Value: scib.MakeString(sb.String()), Pos: start}, nil
		}
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}
		if lx.eof() {
			return Token{}, scib.NewError(scib.InvalidInput, "lex-string", "unterminated escape sequence")
		}
		esc := lx.advance()
		switch esc {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		default:
			return Token{}, scib.NewError(scib.InvalidInput, "lex-string", "invalid escape sequence \\"+string(esc))
		}
	}
}

func (lx *lexerState) readLabelRun(start int) (Token, error) {
	var sb strings.Builder
	for !lx.eof() && isLabelChar(lx.peek()) {
		sb.WriteRune(lx.advance())
	}
	lexeme := sb.String()

	if !lx.eof() {
		term := lx.peek()
		if term != '(' && term != ')' {
			// term must be a dispatch rune or whitespace by construction;
			// whitespace is a legal separator, anything else (`,',",`,`)
			// adjoining the lexeme is ambiguous and rejected.
			if !isSpace(term) {
				return Token{}, scib.NewError(scib.InvalidInput, "lex-label",
					"lexeme \""+lexeme+"\" directly adjoined by '"+string(term)+"'")
			}
		}
	}

	switch {
	case lexeme == "t":
		return Token{Kind: ValueToken, Value: scib.TrueValue, Pos: start}, nil
	case lexeme == "nil":
		return Token{Kind: ValueToken, Value: scib.NilValue, Pos: start}, nil
	case numberPattern.MatchString(lexeme):
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{}, scib.Wrap("lex-number", err)
		}
		return Token{Kind: ValueToken, Value: scib.Number(f), Pos: start}, nil
	default:
		return Token{Kind: ValueToken, Value: scib.Label(lexeme), Pos: start}, nil
	}
}
