//-----------------------------------------------------------------------------
// Package parser assembles a lexer.Token list into a tree of scib.Value,
// tracking a backquote-depth counter so that Unquote/UnquoteList occurring
// outside any enclosing Backquote is rejected.
//
// Grounded on sxreader.Reader.readList / macros.go quote /
// quasiquote / unquote dispatch, adapted to walk a token slice (produced by
// package lexer) instead of a rune stream directly.
//-----------------------------------------------------------------------------

package parser

import (
	"github.com/czipperz/scib"
	"github.com/czipperz/scib/lexer"
)

// Parse converts the given token list into an ordered sequence of top-level
// values.
func Parse(tokens []lexer.Token) ([]scib.Value, error) {
	p := &parserState{toks: tokens}
	var forms []scib.Value
	for !p.eof() {
		v, err := p.parseOne(0)
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
	return forms, nil
}

type parserState struct {
	toks []lexer.Token
	pos  int
}

func (p *parserState) eof() bool       { return p.pos >= len(p.toks) }
func (p *parserState) peek() lexer.Token { return p.toks[p.pos] }
func (p *parserState) advance() lexer.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// parseOne parses a single value, tracking the current backquote depth:
// Backquote increments it for its child, Unquote/UnquoteList decrement it
// for theirs. A bare Unquote/UnquoteList parsed while depth is <= 0 is an
// error (spec.md §4.2).
func (p *parserState) parseOne(depth int) (scib.Value, error) {
	if p.eof() {
		return nil, scib.NewError(scib.InvalidInput, "parse", "unexpected end of input")
	}
	tok := p.advance()
	switch tok.Kind {
	case lexer.ValueToken:
		return tok.Value, nil
	case lexer.OpenParen:
		return p.parseList(depth)
	case lexer.CloseParen:
		return nil, scib.NewError(scib.InvalidInput, "parse", "unmatched ')'")
	case lexer.Quote:
		child, err := p.parseOne(depth)
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: child}, nil
	case lexer.Backquote:
		child, err := p.parseOne(depth + 1)
		if err != nil {
			return nil, err
		}
		return scib.Backquote{Child: child}, nil
	case lexer.Unquote:
		if depth <= 0 {
			return nil, scib.NewError(scib.InvalidInput, "parse", "unquote outside backquote")
		}
		child, err := p.parseOne(depth - 1)
		if err != nil {
			return nil, err
		}
		return scib.Unquote{Child: child}, nil
	case lexer.UnquoteList:
		if depth <= 0 {
			return nil, scib.NewError(scib.InvalidInput, "parse", "unquote-splice outside backquote")
		}
		child, err := p.parseOne(depth - 1)
		if err != nil {
			return nil, err
		}
		return scib.UnquoteList{Child: child}, nil
	default:
		return nil, scib.Wrap("parse", nil)
	}
}

func (p *parserState) parseList(depth int) (scib.Value, error) {
	var items []scib.Value
	for {
		if p.eof() {
			return nil, scib.NewError(scib.InvalidInput, "parse", "unclosed list at end of input")
		}
		if p.peek().Kind == lexer.CloseParen {
			p.advance()
			return scib.MakeList(items...), nil
		}
		v, err := p.parseOne(depth)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}
