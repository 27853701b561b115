package interp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/czipperz/scib/interp"
)

func TestEvalSource(t *testing.T) {
	t.Parallel()
	ip, err := interp.New()
	if err != nil {
		t.Fatalf("interp.New: %v", err)
	}
	got, err := ip.EvalSource(strings.NewReader("(+ 1 2)"))
	if err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("EvalSource((+ 1 2)) = %s, want 3", got.String())
	}
}

func TestEvalFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scib")
	if err := os.WriteFile(path, []byte("(setq x 10) (* x x)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ip, err := interp.New()
	if err != nil {
		t.Fatalf("interp.New: %v", err)
	}
	got, err := ip.EvalFile(path)
	if err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	if got.String() != "100" {
		t.Errorf("EvalFile result = %s, want 100", got.String())
	}
}

func TestEvalFileMissing(t *testing.T) {
	t.Parallel()
	ip, err := interp.New()
	if err != nil {
		t.Fatalf("interp.New: %v", err)
	}
	if _, err := ip.EvalFile(filepath.Join(t.TempDir(), "nope.scib")); err == nil {
		t.Error("EvalFile on a missing path should return an error")
	}
}

func TestWithOutputCapturesPrint(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	ip, err := interp.New(interp.WithOutput(&sb))
	if err != nil {
		t.Fatalf("interp.New: %v", err)
	}
	if _, err := ip.EvalSource(strings.NewReader(`(print "hi" 42)`)); err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if got, want := sb.String(), "\"hi\" 42\n"; got != want {
		t.Errorf("captured output = %q, want %q", got, want)
	}
}

func TestWithMaxDepthLimitsRecursion(t *testing.T) {
	t.Parallel()
	ip, err := interp.New(interp.WithMaxDepth(8))
	if err != nil {
		t.Fatalf("interp.New: %v", err)
	}
	src := "(define (loop n) (loop (+ n 1))) (loop 0)"
	if _, err := ip.EvalSource(strings.NewReader(src)); err == nil {
		t.Error("unbounded recursion should fail once MaxDepth is exceeded")
	}
}
