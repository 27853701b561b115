//-----------------------------------------------------------------------------
// Register installs every primitive into a fresh environment. The seeded
// prelude definitions are loaded separately, by LoadPrelude.
//
// Grounded on original_source/src/instance.rs Scib::new(), which installs
// each built-in by hand and then evaluates one seeded `defmacro` string.
//-----------------------------------------------------------------------------

package builtins

import (
	"github.com/czipperz/scib"
)

// Register installs every primitive function and macro into env.
func Register(env *scib.Environment) {
	for name, fn := range map[string]scib.Function{
		"=":     Equal,
		"+":     Sum,
		"-":     Difference,
		"*":     Product,
		"/":     Quotient,
		"<":     Less,
		">":     Greater,
		"<=":    LessEqual,
		">=":    GreaterEqual,
		"not":   Not,
		"list":  List,
		"car":   Car,
		"cdr":   Cdr,
		"cons":  Cons,
		"print": Print,
	} {
		env.Set(name, fn)
	}
	for name, m := range map[string]scib.Macro{
		"setq":     Setq,
		"progn":    Progn,
		"if":       If,
		"define":   Define,
		"defmacro": Defmacro,
		"let":      Let,
	} {
		env.Set(name, m)
	}
}
