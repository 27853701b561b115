//-----------------------------------------------------------------------------
// LoadPrelude evaluates the seeded definitions that spec.md §4.5 says the
// startup sequence installs in addition to the primitive built-ins.
//
// Grounded on original_source/src/instance.rs Scib::new(), which evaluates
// the `when` definition as a literal source string at construction time,
// and on sxbuiltins' prelude-loading convention of running a
// fixed source string through the normal read/eval pipeline rather than
// constructing the macro's Value tree by hand.
//-----------------------------------------------------------------------------

package builtins

import (
	"github.com/czipperz/scib"
	"github.com/czipperz/scib/eval"
	"github.com/czipperz/scib/lexer"
	"github.com/czipperz/scib/parser"
)

// preludeSource is evaluated once, after Register, by LoadPrelude.
const preludeSource = "(defmacro (when cond &rest rest) `(if ,cond (progn ,@rest)))"

// LoadPrelude evaluates preludeSource in env.
func LoadPrelude(env *scib.Environment) error {
	toks, err := lexer.Lex([]rune(preludeSource))
	if err != nil {
		return scib.Wrap("prelude", err)
	}
	forms, err := parser.Parse(toks)
	if err != nil {
		return scib.Wrap("prelude", err)
	}
	for _, f := range forms {
		if _, err := eval.Eval(env, f); err != nil {
			return scib.Wrap("prelude", err)
		}
	}
	return nil
}
