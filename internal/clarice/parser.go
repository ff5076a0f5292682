package clarice

import "fmt"

// Parser composes the syntax tree for the Clarice language from the token
// stream, pulling one token at a time from the scanner with a single token of
// lookahead. Statement dispatch keys on the leading keyword; any other
// leading token is a parse error.
//
// Error recovery works at statement granularity: a statement whose shape does
// not match is reported, replaced with a placeholder print statement, and
// parsing resumes from the following token. A malformed expression inside a
// well-formed statement shape likewise becomes a placeholder string
// expression. The parse itself never aborts; after the whole tree is built it
// is handed to the checker, and Parse fails only when the checker rejects it.
type Parser struct {
	scanner  *Scanner
	current  *Token
	reporter Reporter
	errs     []error
}

// NewParser creates a new parser for the Clarice language
func NewParser(scanner *Scanner, reporter Reporter) *Parser {
	parser := &Parser{scanner: scanner, reporter: reporter}
	parser.advance()
	return parser
}

// Parse builds the syntax tree for the whole input and runs the checker over
// it. The returned error is the checker's first finding; recoverable syntax
// errors are reported through the reporter and recorded in Diagnostics.
func (parser *Parser) Parse() ([]Stmt, error) {
	program := parser.program(false)
	if err := NewChecker().Check(program); err != nil {
		return nil, err
	}
	return program, nil
}

// Diagnostics returns the recoverable syntax errors found while parsing.
func (parser *Parser) Diagnostics() []error {
	return parser.errs
}

// program parses statements up to the end of the input or, inside the true
// branch of a `where`, up to the `otherwise` keyword.
func (parser *Parser) program(stopAtOtherwise bool) []Stmt {
	statements := make([]Stmt, 0)
	for !parser.isEOF() {
		if stopAtOtherwise && parser.checkKeyword("otherwise") {
			break
		}
		statements = append(statements, parser.statement())
	}
	return statements
}

func (parser *Parser) statement() Stmt {
	if parser.current.Typ != KEYWORD {
		if parser.current.Typ == IDENTIFIER {
			return parser.placeholder(
				"Unexpected Identifier.",
				fmt.Sprintf("Expected a statement, got identifier '%s'.", parser.current.Lexeme),
			)
		}
		return parser.placeholder("No Statement.", "Expected a statement.")
	}
	switch parser.current.Lexeme {
	case "with":
		return parser.withStatement()
	case "set":
		return parser.setStatement()
	case "as":
		return parser.asStatement()
	case "to":
		return parser.toStatement()
	case "then":
		return parser.thenStatement()
	case "do":
		return parser.doStatement()
	case "print":
		return parser.printStatement()
	case "where":
		return parser.whereStatement()
	case "loop":
		return parser.loopStatement()
	case "iter":
		return parser.iterStatement()
	}
	// the only keyword left is `otherwise`
	return parser.placeholder("No Statement.", "'otherwise' without a matching 'where'.")
}

// withStatement --> "with" IDENTIFIER "as" expression ;
func (parser *Parser) withStatement() Stmt {
	parser.advance()
	if parser.current.Typ != IDENTIFIER {
		return parser.placeholder("No Expression (With).", "Expected identifier after 'with'.")
	}
	name := parser.current.Lexeme
	parser.advance()
	if !parser.matchKeyword("as") {
		return parser.placeholder("No Expression (With).", "Expected 'as' after the variable name.")
	}
	return NewWithStmt(name, parser.expression())
}

// setStatement --> "set" IDENTIFIER "to" expression ;
func (parser *Parser) setStatement() Stmt {
	parser.advance()
	if parser.current.Typ != IDENTIFIER {
		return parser.placeholder("No Expression (Set).", "Expected identifier after 'set'.")
	}
	name := parser.current.Lexeme
	parser.advance()
	if !parser.matchKeyword("to") {
		return parser.placeholder("No Expression (Set).", "Expected 'to' after the variable name.")
	}
	return NewSetStmt(name, parser.expression())
}

// asStatement --> "as" IDENTIFIER expression ;
//
// The standalone form parses but is invalid at runtime; `as` normally only
// appears as the continuation token inside a with statement.
func (parser *Parser) asStatement() Stmt {
	parser.advance()
	if parser.current.Typ != IDENTIFIER {
		return parser.placeholder("No Expression (As).", "Expected identifier after 'as'.")
	}
	name := parser.current.Lexeme
	parser.advance()
	return NewAsStmt(name, parser.expression())
}

// toStatement --> "to" IDENTIFIER expression ;
//
// Standalone counterpart of `to` inside a set statement; invalid at runtime.
func (parser *Parser) toStatement() Stmt {
	parser.advance()
	if parser.current.Typ != IDENTIFIER {
		return parser.placeholder("No Expression (To).", "Expected identifier after 'to'.")
	}
	name := parser.current.Lexeme
	parser.advance()
	return NewToStmt(name, parser.expression())
}

// thenStatement --> "then" statement ;
func (parser *Parser) thenStatement() Stmt {
	parser.advance()
	return NewThenStmt(parser.statement())
}

// doStatement --> "do" statement ;
func (parser *Parser) doStatement() Stmt {
	parser.advance()
	return NewDoStmt(parser.statement())
}

// printStatement --> "print" expression ;
func (parser *Parser) printStatement() Stmt {
	parser.advance()
	return NewPrintStmt(parser.expression())
}

// whereStatement --> "where" expression program ( "otherwise" program )? ;
//
// Both branches are freshly parsed sub-programs owned by the statement, not
// references into the enclosing one. The true branch runs to `otherwise` or
// the end of input, the false branch to the end of input.
func (parser *Parser) whereStatement() Stmt {
	parser.advance()
	cond := parser.expression()
	trueBranch := parser.program(true)
	var falseBranch []Stmt
	if parser.matchKeyword("otherwise") {
		falseBranch = parser.program(false)
	}
	return NewWhereStmt(cond, trueBranch, falseBranch)
}

// loopStatement --> "loop" statement ;
//
// The body repeats unconditionally and indefinitely. There is no termination
// condition and no break construct; the only halt is an external interrupt.
func (parser *Parser) loopStatement() Stmt {
	parser.advance()
	return NewLoopStmt(parser.statement())
}

// iterStatement --> "iter" IDENTIFIER "in" expression statement ;
//
// `in` is not a keyword, it is matched as a plain identifier in this one
// position.
func (parser *Parser) iterStatement() Stmt {
	parser.advance()
	if parser.current.Typ != IDENTIFIER {
		return parser.placeholder("No Identifier (Iter).", "Expected identifier after 'iter'.")
	}
	name := parser.current.Lexeme
	parser.advance()
	if parser.current.Typ != IDENTIFIER || parser.current.Lexeme != "in" {
		return parser.placeholder("No Iterable (Iter).", "Expected 'in' after the loop variable.")
	}
	parser.advance()
	iterable := parser.expression()
	return NewIterStmt(name, iterable, parser.statement())
}

// expression --> IDENTIFIER | INTEGER | STRING
//              | "true" | "false"
//              | "[" ( expression ( "," expression )* )? "]"
//              | IDENTIFIER "(" ( expression ( "," expression )* )? ")" ;
//
// There are no infix operators, no parentheses for grouping, and no
// precedence; arithmetic and comparison operators are tokenized but never
// composed into expressions. `true` and `false` are ordinary identifier
// tokens that parse as boolean literals. List and call expressions parse so
// the checker can reject them with a structural diagnostic.
func (parser *Parser) expression() Expr {
	tok := parser.current
	switch tok.Typ {
	case IDENTIFIER:
		parser.advance()
		switch tok.Lexeme {
		case "true":
			return NewBooleanExpr(true)
		case "false":
			return NewBooleanExpr(false)
		}
		if parser.matchSeparator("(") {
			return parser.callExpression(tok.Lexeme)
		}
		return NewIdentifierExpr(tok.Lexeme)
	case INTEGER:
		parser.advance()
		return NewIntegerExpr(tok.Literal.(int64))
	case STRING:
		parser.advance()
		return NewStringExpr(tok.Literal.(string))
	case SEPARATOR:
		if tok.Lexeme == "[" {
			parser.advance()
			return parser.listExpression()
		}
	}
	parser.report(NewParseError(tok, "Expected an expression."))
	parser.advance()
	return NewStringExpr("No Expression.")
}

// callExpression parses the argument list after `name(` was consumed.
func (parser *Parser) callExpression(name string) Expr {
	args := make([]Expr, 0)
	if !parser.matchSeparator(")") {
		for {
			args = append(args, parser.expression())
			if !parser.matchSeparator(",") {
				break
			}
		}
		if !parser.matchSeparator(")") {
			parser.report(NewParseError(parser.current, "Expected ')' after arguments."))
		}
	}
	return NewCallExpr(name, args)
}

// listExpression parses the elements after `[` was consumed.
func (parser *Parser) listExpression() Expr {
	elements := make([]Expr, 0)
	if !parser.matchSeparator("]") {
		for {
			elements = append(elements, parser.expression())
			if !parser.matchSeparator(",") {
				break
			}
		}
		if !parser.matchSeparator("]") {
			parser.report(NewParseError(parser.current, "Expected ']' after list elements."))
		}
	}
	return NewListExpr(elements)
}

// placeholder reports a malformed statement shape and substitutes a print
// statement carrying a short description, resuming from the following token.
func (parser *Parser) placeholder(description, message string) Stmt {
	parser.report(NewParseError(parser.current, message))
	parser.advance()
	return NewPrintStmt(NewStringExpr(description))
}

func (parser *Parser) report(err error) {
	parser.errs = append(parser.errs, err)
	parser.reporter.Report(err)
}

func (parser *Parser) checkKeyword(word string) bool {
	return parser.current.Typ == KEYWORD && parser.current.Lexeme == word
}

func (parser *Parser) matchKeyword(word string) bool {
	if parser.checkKeyword(word) {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) matchSeparator(symbol string) bool {
	if parser.current.Typ == SEPARATOR && parser.current.Lexeme == symbol {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) isEOF() bool {
	return parser.current.Typ == EOF
}

func (parser *Parser) advance() {
	parser.current = parser.scanner.Next()
}
