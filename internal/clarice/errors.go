package clarice

import "fmt"

// ParseError reports a malformed statement or expression shape. The parser
// substitutes a placeholder for the offending construct and keeps scanning,
// so a single parse may report several of these.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parse error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf("Parse error at end: %s", err.message)
	}
	return fmt.Sprintf("Parse error at '%s': %s", err.token.Lexeme, err.message)
}

// CheckError reports a failure of the static checking pass. The first check
// error aborts the pass, and the program never starts executing.
type CheckError struct {
	message string
}

// NewCheckError creates a new check error
func NewCheckError(message string) error {
	return &CheckError{message}
}

func (err *CheckError) Error() string {
	return fmt.Sprintf("Check error: %s", err.message)
}

// RuntimeError reports a per-statement evaluation failure. Evaluation resumes
// with the next statement after one of these is reported.
type RuntimeError struct {
	message string
}

// NewRuntimeError creates a new runtime error
func NewRuntimeError(message string) error {
	return &RuntimeError{message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s", err.message)
}
