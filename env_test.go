package scib_test

import (
	"errors"
	"testing"

	"github.com/czipperz/scib"
)

func TestEnvironmentSetLookupUnbind(t *testing.T) {
	t.Parallel()
	env := scib.NewEnvironment()
	if _, ok := env.Lookup("x"); ok {
		t.Error("x should not yet be bound")
	}
	if _, had := env.Set("x", scib.Number(1)); had {
		t.Error("first Set should report no previous value")
	}
	if v, ok := env.Lookup("x"); !ok || v != scib.Value(scib.Number(1)) {
		t.Errorf("Lookup(x) = %v, %v; want Number(1), true", v, ok)
	}
	prev, had := env.Set("x", scib.Number(2))
	if !had || prev != scib.Value(scib.Number(1)) {
		t.Errorf("second Set should report previous Number(1), got %v, %v", prev, had)
	}
	prev, had = env.Unbind("x")
	if !had || prev != scib.Value(scib.Number(2)) {
		t.Errorf("Unbind should report the last value, got %v, %v", prev, had)
	}
	if _, ok := env.Lookup("x"); ok {
		t.Error("x should be unbound after Unbind")
	}
}

func TestWithBindingsRestoresOnSuccess(t *testing.T) {
	t.Parallel()
	env := scib.NewEnvironment()
	env.Set("x", scib.Number(1))

	result, err := env.WithBindings(
		[]scib.Label{"x", "y"},
		[]scib.Value{scib.Number(99), scib.Number(2)},
		func() (scib.Value, error) {
			vx, _ := env.Lookup("x")
			vy, _ := env.Lookup("y")
			if vx != scib.Value(scib.Number(99)) || vy != scib.Value(scib.Number(2)) {
				t.Errorf("bindings not installed during body: x=%v y=%v", vx, vy)
			}
			return scib.Number(3), nil
		},
	)
	if err != nil || result != scib.Value(scib.Number(3)) {
		t.Fatalf("WithBindings returned (%v, %v)", result, err)
	}
	if vx, _ := env.Lookup("x"); vx != scib.Value(scib.Number(1)) {
		t.Errorf("x should be restored to Number(1), got %v", vx)
	}
	if _, ok := env.Lookup("y"); ok {
		t.Error("y should be unbound again, having had no prior value")
	}
}

func TestWithBindingsRestoresOnError(t *testing.T) {
	t.Parallel()
	env := scib.NewEnvironment()
	sentinel := errors.New("boom")

	_, err := env.WithBindings(
		[]scib.Label{"z"},
		[]scib.Value{scib.Number(1)},
		func() (scib.Value, error) { return nil, sentinel },
	)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if _, ok := env.Lookup("z"); ok {
		t.Error("z should be unbound again after an error exit")
	}
}

func TestWithBindingsDuplicateNameRestoresOriginal(t *testing.T) {
	t.Parallel()
	env := scib.NewEnvironment()
	env.Set("x", scib.Number(1))

	_, _ = env.WithBindings(
		[]scib.Label{"x", "x"},
		[]scib.Value{scib.Number(10), scib.Number(20)},
		func() (scib.Value, error) {
			if v, _ := env.Lookup("x"); v != scib.Value(scib.Number(20)) {
				t.Errorf("later duplicate binding should shadow the earlier one, got %v", v)
			}
			return scib.NilValue, nil
		},
	)
	if v, _ := env.Lookup("x"); v != scib.Value(scib.Number(1)) {
		t.Errorf("x should be restored to its single pre-call value, got %v", v)
	}
}

func TestEnterEvalMaxDepth(t *testing.T) {
	t.Parallel()
	env := scib.NewEnvironment()
	env.MaxDepth = 2

	leave1, err := env.EnterEval()
	if err != nil {
		t.Fatalf("unexpected error at depth 1: %v", err)
	}
	defer leave1()

	leave2, err := env.EnterEval()
	if err != nil {
		t.Fatalf("unexpected error at depth 2: %v", err)
	}
	defer leave2()

	if _, err := env.EnterEval(); err == nil {
		t.Error("expected an error once MaxDepth is exceeded")
	}
}
