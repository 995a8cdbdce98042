package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"lox/internal"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
)

// stdoutPrinter writes print-statement output straight to stdout.
type stdoutPrinter struct{}

func (stdoutPrinter) Print(s string) { fmt.Println(s) }

// usage, file-open and exit-code conventions follow spec.md §6.2:
// 64 for a bad invocation, 65 for a static error, 70 for a runtime
// error, 74 when the source file can't be opened. Grounded on the
// teacher's cmd/grotsky/main.go, generalized from its single-mode
// file runner into the REPL/file dual mode spec.md §6.1 requires.
func main() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GROTSKY_NO_COLOR") != "" {
		color.Disable()
	}

	debug := false
	args := os.Args[1:]
	var filtered []string
	for _, a := range args {
		if a == "-debug" {
			debug = true
			continue
		}
		filtered = append(filtered, a)
	}

	switch len(filtered) {
	case 0:
		runPrompt(debug)
	case 1:
		runFile(filtered[0], debug)
	default:
		fmt.Println("Usage: lox [-debug] [script]")
		os.Exit(64)
	}
}

func runFile(path string, debug bool) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(74)
	}

	diag := internal.NewDiag(os.Stderr, debug)
	run := internal.NewRun(os.Stderr, stdoutPrinter{}, diag, debug)
	run.Source(string(source))

	if run.HadError() {
		os.Exit(65)
	}
	if run.HadRuntimeError() {
		os.Exit(70)
	}
}

// runPrompt is the REPL described in spec.md §6.1 and §8.1: one line at
// a time, each line's static-error flag reset before it runs so a typo
// on line 3 doesn't poison line 4, and `.exit` ends the session.
func runPrompt(debug bool) {
	diag := internal.NewDiag(os.Stderr, debug)
	run := internal.NewRun(os.Stderr, stdoutPrinter{}, diag, debug)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Cyan("> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == ".exit" {
			return
		}
		run.Source(line)
	}
}
