//-----------------------------------------------------------------------------
// The core special forms: setq, progn, if, define, defmacro, let.
//
// All six are macros (spec.md §4.5): their arguments are bound unevaluated,
// and each one that produces a value already computed at expansion time
// wraps it in Quote so the evaluator's mandatory post-expansion Eval call
// (spec.md §4.3.2 step 4) does not evaluate it a second time. `if`'s
// then-branch is the sole, deliberate exception: it is returned
// unevaluated so the expansion step evaluates it exactly once (spec.md
// §9).
//
// Grounded on original_source/src/builtins.rs setq_f/progn_f/if_f/
// define_f/defmacro_f/let_f and the registration in
// original_source/src/instance.rs, with `let` — present in builtins.rs but
// never wired into Scib::new() in the original — newly registered here
// since spec.md §4.5 names it as a mandatory built-in.
//-----------------------------------------------------------------------------

package builtins

import (
	"github.com/czipperz/scib"
	"github.com/czipperz/scib/eval"
)

var Setq = scib.MakeBuiltinMacro("setq",
	scib.Parameters{Required: []scib.Label{"_setq-label", "_setq-value"}},
	func(env *scib.Environment) (scib.Value, error) {
		rawLabel, _ := env.Unbind("_setq-label")
		rawValue, _ := env.Unbind("_setq-value")
		label, ok := scib.GetLabel(rawLabel)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "setq", rawLabel, "setq's first argument must be a label")
		}
		value, err := eval.Eval(env, rawValue)
		if err != nil {
			return nil, err
		}
		env.Set(label.Name(), value)
		return scib.Quote{Child: value}, nil
	})

var Progn = scib.MakeBuiltinMacro("progn",
	scib.Parameters{Rest: "_progn-rest", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		raw, _ := env.Unbind("_progn-rest")
		body, _ := scib.GetList(raw)
		result, err := eval.EvalSequence(env, body)
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: result}, nil
	})

var If = scib.MakeBuiltinMacro("if",
	scib.Parameters{Required: []scib.Label{"_if-cond", "_if-then"}, Rest: "_if-else", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		rawCond, _ := env.Unbind("_if-cond")
		rawThen, _ := env.Unbind("_if-then")
		rawElse, _ := env.Unbind("_if-else")

		cond, err := eval.Eval(env, rawCond)
		if err != nil {
			return nil, err
		}
		if scib.IsTruthy(cond) {
			return rawThen, nil
		}
		elseBody, _ := scib.GetList(rawElse)
		result, err := eval.EvalSequence(env, elseBody)
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: result}, nil
	})

var Define = scib.MakeBuiltinMacro("define",
	scib.Parameters{Required: []scib.Label{"_define-name"}, Rest: "_define-value", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		rawName, _ := env.Unbind("_define-name")
		rawValue, _ := env.Unbind("_define-value")
		body, _ := scib.GetList(rawValue)

		switch name := rawName.(type) {
		case scib.Label:
			result, err := eval.EvalSequence(env, body)
			if err != nil {
				return nil, err
			}
			env.Set(name.Name(), result)
			return scib.Quote{Child: result}, nil
		case scib.List:
			defName, params, err := parseHead(name)
			if err != nil {
				return nil, err
			}
			fn := scib.MakeFunction(params, body)
			env.Set(defName.Name(), fn)
			return scib.Quote{Child: fn}, nil
		default:
			return nil, scib.NewValueError(scib.InvalidInput, "define", rawName, "definition name must be a list or a label")
		}
	})

var Defmacro = scib.MakeBuiltinMacro("defmacro",
	scib.Parameters{Required: []scib.Label{"_defmacro-name"}, Rest: "_defmacro-value", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		rawName, _ := env.Unbind("_defmacro-name")
		rawValue, _ := env.Unbind("_defmacro-value")
		body, _ := scib.GetList(rawValue)

		head, ok := rawName.(scib.List)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "defmacro", rawName, "macro parameters must be a list")
		}
		name, params, err := parseHead(head)
		if err != nil {
			return nil, err
		}
		m := scib.MakeMacro(params, body)
		env.Set(name.Name(), m)
		return scib.Quote{Child: m}, nil
	})

var Let = scib.MakeBuiltinMacro("let",
	scib.Parameters{Required: []scib.Label{"_let-binds"}, Rest: "_let-body", HasRest: true},
	func(env *scib.Environment) (scib.Value, error) {
		rawBinds, _ := env.Unbind("_let-binds")
		rawBody, _ := env.Unbind("_let-body")
		body, _ := scib.GetList(rawBody)

		bindList, ok := scib.GetList(rawBinds)
		if !ok {
			return nil, scib.NewValueError(scib.InvalidInput, "let", rawBinds, "let requires a list of bindings as its first parameter")
		}

		names := make([]scib.Label, 0, len(bindList))
		values := make([]scib.Value, 0, len(bindList))
		for _, b := range bindList {
			switch bind := b.(type) {
			case scib.Label:
				names = append(names, bind)
				values = append(values, scib.NilValue)
			case scib.List:
				if len(bind) != 2 {
					return nil, scib.NewValueError(scib.InvalidInput, "let", b, "a binding must have a name and a value only")
				}
				name, ok := scib.GetLabel(bind[0])
				if !ok {
					return nil, scib.NewValueError(scib.InvalidInput, "let", bind[0], "a binding's name must be a label")
				}
				value, err := eval.Eval(env, bind[1])
				if err != nil {
					return nil, err
				}
				names = append(names, name)
				values = append(values, value)
			default:
				return nil, scib.NewValueError(scib.InvalidInput, "let", b, "a binding must be '(name value)' or a bare name")
			}
		}

		result, err := env.WithBindings(names, values, func() (scib.Value, error) {
			return eval.EvalSequence(env, body)
		})
		if err != nil {
			return nil, err
		}
		return scib.Quote{Child: result}, nil
	})
