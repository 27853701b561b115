//-----------------------------------------------------------------------------
// print: the one I/O primitive, writing to the environment's configured
// Output writer (scib.Environment.Output, set via interp.WithOutput).
//
// Not part of the original language; supplemented per SPEC_FULL.md so that
// programs have an observable side effect to test against, grounded on the
// sxbuiltins convention of routing all output through an injected io.Writer
// rather than writing to os.Stdout directly.
//-----------------------------------------------------------------------------

package builtins

import "github.com/czipperz/scib"

var Print = scib.MakeBuiltinFunction("print",
	scib.Parameters{Rest: "_print-rest", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		raw, _ := env.Unbind("_print-rest")
		lst, _ := scib.GetList(raw)
		for i, v := range lst {
			if i > 0 {
				if _, err := env.Output.Write([]byte(" ")); err != nil {
					return nil, scib.Wrap("print", err)
				}
			}
			if _, err := scib.Print(env.Output, v); err != nil {
				return nil, scib.Wrap("print", err)
			}
		}
		if _, err := env.Output.Write([]byte("\n")); err != nil {
			return nil, scib.Wrap("print", err)
		}
		if len(lst) == 0 {
			return scib.NilValue, nil
		}
		return lst[len(lst)-1], nil
	})
