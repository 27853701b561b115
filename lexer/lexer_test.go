package lexer_test

import (
	"testing"

	"github.com/czipperz/scib"
	"github.com/czipperz/scib/lexer"
)

type lexCase struct {
	name    string
	src     string
	want    []lexer.Kind
	wantErr bool
}

func runLexCases(t *testing.T, cases []lexCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks, err := lexer.Lex([]rune(tc.src))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Lex(%q) succeeded, want error", tc.src)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tc.src, err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("Lex(%q) produced %d tokens, want %d", tc.src, len(toks), len(tc.want))
			}
			for i, k := range tc.want {
				if toks[i].Kind != k {
					t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLexStructure(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{name: "empty", src: "", want: nil},
		{name: "parens", src: "()", want: []lexer.Kind{lexer.OpenParen, lexer.CloseParen}},
		{name: "nested", src: "(1 (2 3))", want: []lexer.Kind{
			lexer.OpenParen, lexer.ValueToken, lexer.OpenParen, lexer.ValueToken, lexer.ValueToken,
			lexer.CloseParen, lexer.CloseParen,
		}},
		{name: "quote-forms", src: "'a `b ,c ,@d", want: []lexer.Kind{
			lexer.Quote, lexer.ValueToken,
			lexer.Backquote, lexer.ValueToken,
			lexer.Unquote, lexer.ValueToken,
			lexer.UnquoteList, lexer.ValueToken,
		}},
		{name: "unmatched-adjacency", src: "abc'def", wantErr: true},
	})
}

func TestLexValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		src  string
		want scib.Value
	}{
		{"true", "t", scib.TrueValue},
		{"nil", "nil", scib.NilValue},
		{"integer", "123", scib.Number(123)},
		{"negative", "-8", scib.Number(-8)},
		{"leading-dot", ".5", scib.Number(0.5)},
		{"trailing-dot", "13.", scib.Number(13)},
		{"label", "foo-bar?", scib.Label("foo-bar?")},
		{"string", `"hi\nthere"`, scib.MakeString("hi\nthere")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks, err := lexer.Lex([]rune(tc.src))
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tc.src, err)
			}
			if len(toks) != 1 {
				t.Fatalf("Lex(%q) produced %d tokens, want 1", tc.src, len(toks))
			}
			if !toks[0].Value.IsEqual(tc.want) {
				t.Errorf("Lex(%q) = %v, want %v", tc.src, toks[0].Value, tc.want)
			}
		})
	}
}

func TestLexStringErrors(t *testing.T) {
	t.Parallel()
	runLexCases(t, []lexCase{
		{name: "unterminated-string", src: `"abc`, wantErr: true},
		{name: "bad-escape", src: `"a\zb"`, wantErr: true},
		{name: "unterminated-escape", src: `"a\`, wantErr: true},
	})
}
