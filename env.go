//-----------------------------------------------------------------------------
// Environment (the spec's "Scib"): a flat, process-wide mapping from label
// to value, with save-and-restore scoped binding.
//
// Grounded on sxpf/env.go's root/child environment pair, but
// collapsed to a single flat map: spec.md §3/§4.4 is explicit that lexical
// scoping is simulated purely by save-and-restore over one global
// namespace, not by nested environment frames.
//-----------------------------------------------------------------------------

package scib

import (
	"io"

	"t73f.de/r/zero/set"
)

// DefaultMaxDepth bounds eval recursion so that runaway user recursion
// surfaces as an Internal error instead of crashing the process (spec.md
// §5), mirroring sxreader.DefaultNestingLimit.
const DefaultMaxDepth = 10000

// Environment is the single mutable mapping from label name to value that
// the evaluator, built-ins, and parameter binder all read and write. It
// also carries the small amount of ambient configuration built-ins need:
// the output writer for `print`, and the recursion-depth guard.
type Environment struct {
	vars     map[string]Value
	Output   io.Writer
	MaxDepth int
	depth    int
}

// NewEnvironment creates an empty environment with default configuration.
func NewEnvironment() *Environment {
	return &Environment{
		vars:     make(map[string]Value, 64),
		Output:   io.Discard,
		MaxDepth: DefaultMaxDepth,
	}
}

// EnterEval increments the recursion depth and returns a function that
// must be deferred to decrement it again. It returns an error instead when
// the configured MaxDepth would be exceeded.
func (env *Environment) EnterEval() (leave func(), err error) {
	max := env.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	if env.depth >= max {
		return func() {}, NewError(Internal, "eval", "maximum recursion depth exceeded")
	}
	env.depth++
	return func() { env.depth-- }, nil
}

// Lookup returns the value bound to name, and whether it was found.
func (env *Environment) Lookup(name string) (Value, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Set installs value under name, returning the previous value (if any) and
// whether one existed.
func (env *Environment) Set(name string, value Value) (prev Value, hadPrev bool) {
	prev, hadPrev = env.vars[name]
	env.vars[name] = value
	return prev, hadPrev
}

// Unbind removes name from the environment, returning its previous value
// (if any) and whether one existed. Built-ins use this to consume their
// argument slots after reading them, preventing aliasing across nested
// calls (spec.md §9, "Built-in parameter conventions").
func (env *Environment) Unbind(name string) (prev Value, hadPrev bool) {
	prev, hadPrev = env.vars[name]
	delete(env.vars, name)
	return prev, hadPrev
}

// saved records the pre-call state of one label, for restoration after a
// scoped binding exits.
type saved struct {
	name    string
	value   Value
	hadPrev bool
}

// WithBindings installs each (name, value) pair in order, runs body, then
// restores the environment to exactly its pre-call state for every
// distinct name involved — including when a name appears more than once in
// pairs, which spec.md §3 explicitly permits ("duplicate names ... shadow
// earlier entries of the same name at bind time"). Restoration runs on
// every exit path, including a panic or error returned from body.
//
// Only the first occurrence of each distinct name needs its prior value
// saved; later occurrences merely shadow it. seenNames tracks which names
// have already been captured this call using t73f.de/r/zero/set's small
// generic-set utility rather than a hand-rolled map[string]struct{}.
func (env *Environment) WithBindings(names []Label, values []Value, body func() (Value, error)) (Value, error) {
	saves := make([]saved, 0, len(names))
	seenNames := set.New[string]()
	for i, name := range names {
		key := name.Name()
		if !seenNames.Contains(key) {
			prev, hadPrev := env.vars[key]
			saves = append(saves, saved{name: key, value: prev, hadPrev: hadPrev})
			seenNames.Add(key)
		}
		env.vars[key] = values[i]
	}
	defer func() {
		for i := len(saves) - 1; i >= 0; i-- {
			s := saves[i]
			if s.hadPrev {
				env.vars[s.name] = s.value
			} else {
				delete(env.vars, s.name)
			}
		}
	}()
	return body()
}
