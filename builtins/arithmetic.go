//-----------------------------------------------------------------------------
// Numeric primitives: +, -, *, /.
//
// Grounded on original_source/src/builtins.rs sum_f/difference_f/
// product_f/quotient_f, with parameter-slot names adapted from those
// original_source/src/instance.rs registers them under (the `-` slots are
// renamed to _--minuend/_--subtrahends).
//-----------------------------------------------------------------------------

package builtins

import "github.com/czipperz/scib"

func numberSlice(env *scib.Environment, op, slot string) ([]scib.Number, error) {
	raw, _ := env.Unbind(slot)
	lst, ok := scib.GetList(raw)
	if !ok {
		return nil, scib.Wrap(op, nil)
	}
	nums := make([]scib.Number, len(lst))
	for i, v := range lst {
		n, ok := scib.GetNumber(v)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, op, v, op+"'s arguments must all be numbers")
		}
		nums[i] = n
	}
	return nums, nil
}

func oneNumber(env *scib.Environment, op, slot string) (scib.Number, error) {
	raw, _ := env.Unbind(slot)
	n, ok := scib.GetNumber(raw)
	if !ok {
		return 0, scib.NewValueError(scib.InvalidInput, op, raw, op+"'s arguments must all be numbers")
	}
	return n, nil
}

func sumFn(env *scib.Environment) (scib.Value, error) {
	xs, err := numberSlice(env, "+", "_+-rest")
	if err != nil {
		return nil, err
	}
	var res scib.Number
	for _, x := range xs {
		res += x
	}
	return res, nil
}

func differenceFn(env *scib.Environment) (scib.Value, error) {
	res, err := oneNumber(env, "-", "_--minuend")
	if err != nil {
		return nil, err
	}
	ys, err := numberSlice(env, "-", "_--subtrahends")
	if err != nil {
		return nil, err
	}
	for _, y := range ys {
		res -= y
	}
	return res, nil
}

func productFn(env *scib.Environment) (scib.Value, error) {
	xs, err := numberSlice(env, "*", "_*-rest")
	if err != nil {
		return nil, err
	}
	res := scib.Number(1)
	for _, x := range xs {
		res *= x
	}
	return res, nil
}

func quotientFn(env *scib.Environment) (scib.Value, error) {
	res, err := oneNumber(env, "/", "_/-numerator")
	if err != nil {
		return nil, err
	}
	dens, err := numberSlice(env, "/", "_/-denominator")
	if err != nil {
		return nil, err
	}
	for _, d := range dens {
		res /= d
	}
	return res, nil
}

var Sum = scib.MakeBuiltinFunction("+",
	scib.Parameters{Rest: "_+-rest", HasRest: true}, sumFn)

var Difference = scib.MakeBuiltinFunction("-",
	scib.Parameters{Required: []scib.Label{"_--minuend"}, Rest: "_--subtrahends", HasRest: true}, differenceFn)

var Product = scib.MakeBuiltinFunction("*",
	scib.Parameters{Rest: "_*-rest", HasRest: true}, productFn)

var Quotient = scib.MakeBuiltinFunction("/",
	scib.Parameters{Required: []scib.Label{"_/-numerator"}, Rest: "_/-denominator", HasRest: true}, quotientFn)
