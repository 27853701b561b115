//-----------------------------------------------------------------------------
// Package interp is the composition root: it wires package lexer, parser,
// eval, and builtins together behind a small construct-then-evaluate API,
// the way cmd/main.go wires sx, sxreader, sxeval, and sxbuiltins together
// rather than having any of those packages import one another.
//-----------------------------------------------------------------------------

package interp

import (
	"io"
	"os"

	"github.com/czipperz/scib"
	"github.com/czipperz/scib/builtins"
	"github.com/czipperz/scib/eval"
	"github.com/czipperz/scib/lexer"
	"github.com/czipperz/scib/parser"
)

// Option configures an Interpreter at construction time.
type Option func(*scib.Environment)

// WithMaxDepth overrides the default evaluation recursion guard (spec.md §5).
func WithMaxDepth(n int) Option {
	return func(env *scib.Environment) { env.MaxDepth = n }
}

// WithOutput sets the writer that the `print` built-in writes to. The
// default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(env *scib.Environment) { env.Output = w }
}

// Interpreter bundles a configured environment with every primitive and
// the seeded prelude already loaded.
type Interpreter struct {
	Env *scib.Environment
}

// New builds an Interpreter: a fresh Environment, every built-in registered,
// and the seeded prelude (spec.md §4.5, "the startup sequence additionally
// evaluates...") loaded, in that order.
func New(opts ...Option) (*Interpreter, error) {
	env := scib.NewEnvironment()
	for _, opt := range opts {
		opt(env)
	}
	builtins.Register(env)
	if err := builtins.LoadPrelude(env); err != nil {
		return nil, err
	}
	return &Interpreter{Env: env}, nil
}

// EvalSource reads every top-level form from src, evaluates them in order,
// and returns the last result (Nil if src contains no forms).
func (ip *Interpreter) EvalSource(src io.Reader) (scib.Value, error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, scib.Wrap("eval-source", err)
	}
	toks, err := lexer.Lex([]rune(string(text)))
	if err != nil {
		return nil, err
	}
	forms, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return eval.EvalSequence(ip.Env, forms)
}

// EvalFile opens path and evaluates its contents as by EvalSource.
func (ip *Interpreter) EvalFile(path string) (scib.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scib.Wrap("eval-file", err)
	}
	defer f.Close()
	return ip.EvalSource(f)
}
