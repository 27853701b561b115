//-----------------------------------------------------------------------------
// Package eval walks the value tree produced by package parser, dispatching
// to built-in and user-defined functions and macros, and implements the
// quasiquotation ("backquote") engine.
//
// Grounded on sxpf/eval.Engine.Eval's single-entry-point style,
// collapsed to one direct recursive function per spec.md's flat,
// non-compiled evaluation model: the sxeval package instead compiles
// to a bytecode program with lexical Frames and a tail-call trampoline, both
// of which spec.md's Non-goals explicitly rule out (no TCO, no real lexical
// closures), so that package's compiler/frame machinery was not a fit here.
//-----------------------------------------------------------------------------

package eval

import (
	"github.com/czipperz/scib"
)

// Eval evaluates v in env and returns its result.
func Eval(env *scib.Environment, v scib.Value) (scib.Value, error) {
	leave, err := env.EnterEval()
	defer leave()
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case scib.Nil, scib.True, scib.Number, scib.Str, scib.Function, scib.Macro:
		return v, nil
	case scib.Label:
		val, ok := env.Lookup(x.Name())
		if !ok {
			return nil, scib.NewValueError(scib.InvalidData, "eval", x, "unbound label")
		}
		return val, nil
	case scib.Quote:
		return x.Child, nil
	case scib.Backquote:
		return evalBackquote(env, x.Child, 1)
	case scib.Unquote:
		return nil, scib.NewValueError(scib.InvalidInput, "eval", x, "unquote outside backquote")
	case scib.UnquoteList:
		return nil, scib.NewValueError(scib.InvalidInput, "eval", x, "unquote-splice outside backquote")
	case scib.List:
		return evalList(env, x)
	default:
		return nil, scib.Wrap("eval", nil)
	}
}

// evalList implements the call form: empty list -> Nil; otherwise evaluate
// the head to obtain a callee and dispatch on whether it is a Function or
// Macro (spec.md §4.3, §4.3.2).
func evalList(env *scib.Environment, xs scib.List) (scib.Value, error) {
	if len(xs) == 0 {
		return scib.NilValue, nil
	}
	callee, err := Eval(env, xs[0])
	if err != nil {
		return nil, err
	}
	args := xs[1:]

	rec, isMacro, ok := scib.GetCallable(callee)
	if !ok {
		return nil, scib.NewValueError(scib.InvalidInput, "eval", callee, "not callable")
	}
	if !rec.Params.CheckArity(len(args)) {
		return nil, scib.NewValueError(scib.InvalidInput, "eval", xs, "wrong number of arguments")
	}

	if isMacro {
		expansion, err := callRec(env, rec, args)
		if err != nil {
			return nil, err
		}
		return Eval(env, expansion)
	}
	evaluated := make([]scib.Value, len(args))
	for i, a := range args {
		v, err := Eval(env, a)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}
	return callRec(env, rec, evaluated)
}

// callRec binds args (already evaluated for a Function call; raw,
// unevaluated for a Macro call) under the callable's parameter names and
// runs its body (spec.md §4.3.3, §4.4).
func callRec(env *scib.Environment, rec scib.FunctionRec, args []scib.Value) (scib.Value, error) {
	names, values := bindParameters(rec.Params, args)
	return env.WithBindings(names, values, func() (scib.Value, error) {
		if rec.Body.IsBuiltin() {
			return rec.Body.Builtin(env)
		}
		return evalSequence(env, rec.Body.Exprs)
	})
}

// EvalSequence evaluates exprs in order and returns the last result, or Nil
// for an empty sequence. Exported for package builtins, whose `progn`,
// `if`, `let`, and `define` primitives all need to evaluate a body sequence
// the same way a user-defined function's body does.
func EvalSequence(env *scib.Environment, exprs []scib.Value) (scib.Value, error) {
	return evalSequence(env, exprs)
}

// evalSequence evaluates exprs in order and returns the last result, or
// Nil for an empty sequence.
func evalSequence(env *scib.Environment, exprs []scib.Value) (scib.Value, error) {
	if len(exprs) == 0 {
		return scib.NilValue, nil
	}
	var result scib.Value = scib.NilValue
	for _, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// bindParameters assembles the (names, values) pairs for
// Environment.WithBindings from a parameter list and an argument list whose
// length has already passed CheckArity.
func bindParameters(params scib.Parameters, args []scib.Value) ([]scib.Label, []scib.Value) {
	total := len(params.Required) + len(params.Optional)
	if params.HasRest {
		total++
	}
	names := make([]scib.Label, 0, total)
	values := make([]scib.Value, 0, total)

	idx := 0
	for _, name := range params.Required {
		names = append(names, name)
		values = append(values, args[idx])
		idx++
	}
	for _, name := range params.Optional {
		names = append(names, name)
		if idx < len(args) {
			values = append(values, args[idx])
			idx++
		} else {
			values = append(values, scib.NilValue)
		}
	}
	if params.HasRest {
		rest := append([]scib.Value(nil), args[idx:]...)
		names = append(names, params.Rest)
		values = append(values, scib.MakeList(rest...))
	}
	return names, values
}

// evalBackquote implements the quasiquotation engine described in
// spec.md §4.3.1.
func evalBackquote(env *scib.Environment, x scib.Value, depth int) (scib.Value, error) {
	if x == nil || x.IsAtom() {
		return x, nil
	}
	switch v := x.(type) {
	case scib.Unquote:
		if depth == 1 {
			return Eval(env, v.Child)
		}
		child, err := evalBackquote(env, v.Child, depth-1)
		if err != nil {
			return nil, err
		}
		return scib.Unquote{Child: child}, nil
	case scib.UnquoteList:
		if depth == 1 {
			return Eval(env, v.Child)
		}
		child, err := evalBackquote(env, v.Child, depth-1)
		if err != nil {
			return nil, err
		}
		return scib.UnquoteList{Child: child}, nil
	case scib.Quote:
		child, err := evalBackquote(env, v.Child, depth)
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: child}, nil
	case scib.Backquote:
		child, err := evalBackquote(env, v.Child, depth+1)
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: child}, nil
	case scib.List:
		return evalBackquoteList(env, v, depth)
	default:
		return x, nil
	}
}

func evalBackquoteList(env *scib.Environment, items scib.List, depth int) (scib.Value, error) {
	result := make(scib.List, 0, len(items))
	for _, item := range items {
		if ul, isSplice := item.(scib.UnquoteList); isSplice && depth == 1 {
			spliced, err := Eval(env, ul.Child)
			if err != nil {
				return nil, err
			}
			if lst, ok := spliced.(scib.List); ok {
				result = append(result, lst...)
			} else if !scib.IsNil(spliced) {
				result = append(result, spliced)
			}
			continue
		}
		v, err := evalBackquote(env, item, depth)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
