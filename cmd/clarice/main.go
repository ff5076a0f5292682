package main

// This is an interpreter for the Clarice programming language written in Go.

import (
	"bufio"
	"fmt"
	"os"

	"github.com/AeriaVelocity/clarice/internal/clarice"
)

const version = "0.1.0"

const helpText = `Clarice understands these keywords:
  with NAME as VALUE    bind NAME for the next statement only
  set NAME to VALUE     bind NAME for the rest of the run
  then STMT             separate statements on one line
  do STMT               run the wrapped statement
  print VALUE           write VALUE on its own line
  where COND do STMT otherwise do STMT
                        run one branch depending on COND
  loop STMT             repeat STMT forever
  iter NAME in VALUE STMT
                        run STMT once per element of VALUE
Type 'exit' to leave the interactive mode.`

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: clarice [script]")
		os.Exit(64)
	}

	reporter := clarice.NewSimpleReporter(os.Stderr)
	if len(args) != 1 {
		runPrompt(reporter)
	} else {
		runFile(args[0], reporter)
	}
}

// Run the interpreter in REPL mode. Every line is evaluated against a fresh
// environment; no state persists between lines.
func runPrompt(reporter clarice.Reporter) {
	fmt.Printf("Clarice v%s\n", version)
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("Clarice> ")
		if !s.Scan() {
			break
		}
		// `exit` and `help` are reserved lines, handled before the core
		// ever sees them
		switch line := s.Text(); line {
		case "exit":
			fmt.Println("Okay, shutting down the Clarice interactive mode.")
			return
		case "help":
			fmt.Println(helpText)
		default:
			clarice.EvaluateLine(line, os.Stdout, reporter)
			reporter.Reset()
		}
	}
	exitOnError(s.Err(), 1)
}

// Run the given file as a script
func runFile(fpath string, reporter clarice.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	outcome := clarice.EvaluateLine(string(bytes), os.Stdout, reporter)
	exitIf(outcome.Kind != clarice.OutcomeOK, 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
