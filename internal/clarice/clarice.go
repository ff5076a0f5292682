package clarice

import "io"

const (
	// OutcomeOK means the program ran; runtime diagnostics may still have
	// been reported along the way.
	OutcomeOK OutcomeKind = iota
	// OutcomeParseError means at least one statement or expression shape was
	// malformed. The rest of the input was still parsed so every syntax
	// error could be reported, but nothing was executed.
	OutcomeParseError
	// OutcomeCheckError means the checker rejected the program; nothing was
	// executed.
	OutcomeCheckError
)

// OutcomeKind classifies the result of evaluating one piece of program text.
type OutcomeKind uint

// Outcome is what a caller gets back from EvaluateLine: the kind of result
// and, for parse and check failures, the first diagnostic.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// EvaluateLine runs one piece of program text through the whole pipeline:
// scanning, parsing, checking, evaluation. Each call starts from a fresh
// symbol table and a fresh environment; nothing survives between calls.
// Program output is written to output, diagnostics go through reporter.
//
// A program containing `loop` does not return on its own; bounding it is the
// caller's concern.
func EvaluateLine(source string, output io.Writer, reporter Reporter) Outcome {
	parser := NewParser(NewScanner([]rune(source)), reporter)
	program, err := parser.Parse()
	if diagnostics := parser.Diagnostics(); len(diagnostics) != 0 {
		return Outcome{OutcomeParseError, diagnostics[0]}
	}
	if err != nil {
		reporter.Report(err)
		return Outcome{OutcomeCheckError, err}
	}
	NewInterpreter(output, reporter).Interpret(program)
	return Outcome{Kind: OutcomeOK}
}
