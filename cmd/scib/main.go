// Command scib is a minimal batch/REPL runner over package interp.
//
// Grounded on cmd/main.go's construction-then-read-loop shape,
// stripped of its bytecode-compiler observer/logging machinery (not
// applicable here — this interpreter has no compile or improve passes) and
// its goroutine/WaitGroup-based REPL driver, replaced by a plain
// bufio.Scanner loop: spec.md explicitly keeps "any REPL or CLI wrapping"
// external to the evaluator core, so this command carries no behavior of
// its own beyond driving interp.Interpreter from the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/czipperz/scib/interp"
)

func main() {
	maxDepth := flag.Int("max-depth", 0, "maximum evaluation recursion depth (0 = default)")
	flag.Parse()

	opts := []interp.Option{interp.WithOutput(os.Stdout)}
	if *maxDepth > 0 {
		opts = append(opts, interp.WithMaxDepth(*maxDepth))
	}
	ip, err := interp.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scib: prelude:", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		for _, path := range args {
			if _, err := ip.EvalFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "scib: %s: %v\n", path, err)
				os.Exit(1)
			}
		}
		return
	}

	repl(ip)
}

func repl(ip *interp.Interpreter) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		result, err := ip.EvalSource(strings.NewReader(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Println(result)
		}
		fmt.Print("> ")
	}
	fmt.Println()
}
