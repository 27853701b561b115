//-----------------------------------------------------------------------------
// List primitives: list (original), plus the supplemented car/cdr/cons.
//
// `list` is grounded on original_source/src/builtins.rs list_f. car/cdr/
// cons are not part of the original language but are named in
// SPEC_FULL.md's supplemented built-ins list, modeled after
// sxbuiltins/list.go's head/tail/prepend primitives, adapted from cons pairs
// to this module's slice-based List.
//-----------------------------------------------------------------------------

package builtins

import "github.com/czipperz/scib"

var List = scib.MakeBuiltinFunction("list",
	scib.Parameters{Rest: "_list-rest", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		rest, _ := env.Unbind("_list-rest")
		return rest, nil
	})

var Car = scib.MakeBuiltinFunction("car",
	scib.Parameters{Required: []scib.Label{"_car-x"}},
	func(env *scib.Environment) (scib.Value, error) {
		raw, _ := env.Unbind("_car-x")
		if scib.IsNil(raw) {
			return nil, scib.NewValueError(scib.InvalidInput, "car", raw, "car's argument must not be nil")
		}
		lst, ok := raw.(scib.List)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "car", raw, "car's argument must be a list")
		}
		if len(lst) == 0 {
			return scib.NilValue, nil
		}
		return lst[0], nil
	})

var Cdr = scib.MakeBuiltinFunction("cdr",
	scib.Parameters{Required: []scib.Label{"_cdr-x"}},
	func(env *scib.Environment) (scib.Value, error) {
		raw, _ := env.Unbind("_cdr-x")
		if scib.IsNil(raw) {
			return nil, scib.NewValueError(scib.InvalidInput, "cdr", raw, "cdr's argument must not be nil")
		}
		lst, ok := raw.(scib.List)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "cdr", raw, "cdr's argument must be a list")
		}
		if len(lst) == 0 {
			return scib.NilValue, nil
		}
		return scib.MakeList(lst[1:]...), nil
	})

var Cons = scib.MakeBuiltinFunction("cons",
	scib.Parameters{Required: []scib.Label{"_cons-head", "_cons-tail"}},
	func(env *scib.Environment) (scib.Value, error) {
		head, _ := env.Unbind("_cons-head")
		rawTail, _ := env.Unbind("_cons-tail")
		tail, ok := scib.GetList(rawTail)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "cons", rawTail, "cons's second argument must be a list")
		}
		out := make(scib.List, 0, len(tail)+1)
		out = append(out, head)
		out = append(out, tail...)
		return out, nil
	})
