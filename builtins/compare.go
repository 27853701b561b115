//-----------------------------------------------------------------------------
// Comparison primitives: =, plus the supplemented <, >, <=, >=, and not.
//
// `=` is grounded on original_source/src/builtins.rs equalsign_f. The
// ordering comparisons and `not` are not part of the original language but
// are named in SPEC_FULL.md's supplemented built-ins list. The ordering
// comparisons follow the same (first &rest rest) chained-comparison shape as
// `=` itself; `not` takes exactly one argument.
//-----------------------------------------------------------------------------

package builtins

import "github.com/czipperz/scib"

func boolValue(b bool) scib.Value {
	if b {
		return scib.TrueValue
	}
	return scib.NilValue
}

func equalFn(env *scib.Environment) (scib.Value, error) {
	first, _ := env.Unbind("_=-first")
	rawRest, _ := env.Unbind("_=-rest")
	rest, _ := scib.GetList(rawRest)
	for _, v := range rest {
		if !first.IsEqual(v) {
			return scib.NilValue, nil
		}
	}
	return scib.TrueValue, nil
}

var Equal = scib.MakeBuiltinFunction("=",
	scib.Parameters{Required: []scib.Label{"_=-first"}, Rest: "_=-rest", HasRest: true}, equalFn)

// numericChain builds a chained-comparison primitive called name: every
// adjacent pair (x[i], x[i+1]) of its arguments, taken in order, must
// satisfy cmp, or the result is Nil.
func numericChain(name, firstSlot, restSlot string, cmp func(a, b scib.Number) bool) scib.Function {
	return scib.MakeBuiltinFunction(name,
		scib.Parameters{Required: []scib.Label{scib.Label(firstSlot)}, Rest: scib.Label(restSlot), HasRest: true},
		func(env *scib.Environment) (scib.Value, error) {
			rawFirst, _ := env.Unbind(firstSlot)
			prev, ok := scib.GetNumber(rawFirst)
			if !ok {
				return nil, scib.NewValueError(scib.InvalidInput, name, rawFirst, name+"'s arguments must all be numbers")
			}
			rest, err := numberSlice(env, name, restSlot)
			if err != nil {
				return nil, err
			}
			for _, n := range rest {
				if !cmp(prev, n) {
					return scib.NilValue, nil
				}
				prev = n
			}
			return scib.TrueValue, nil
		})
}

var Less = numericChain("<", "_<-first", "_<-rest", func(a, b scib.Number) bool { return a < b })
var Greater = numericChain(">", "_>-first", "_>-rest", func(a, b scib.Number) bool { return a > b })
var LessEqual = numericChain("<=", "_<=-first", "_<=-rest", func(a, b scib.Number) bool { return a <= b })
var GreaterEqual = numericChain(">=", "_>=-first", "_>=-rest", func(a, b scib.Number) bool { return a >= b })

var Not = scib.MakeBuiltinFunction("not",
	scib.Parameters{Required: []scib.Label{"_not-x"}},
	func(env *scib.Environment) (scib.Value, error) {
		x, _ := env.Unbind("_not-x")
		return boolValue(scib.IsNil(x)), nil
	})
