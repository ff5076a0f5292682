package clarice

import (
	"fmt"
	"io"
)

// Interpreter walks a checked syntax tree and executes it against a single
// mutable environment. Runtime failures are reported through the Reporter and
// evaluation resumes with the next statement; only parse and check failures
// keep a program from running at all.
type Interpreter struct {
	environment *Environment
	output      io.Writer
	reporter    Reporter

	// loopLimit bounds the number of `loop` iterations so tests can rein the
	// construct in. Zero leaves it unbounded, which is the documented
	// behavior: `loop` has no termination condition of its own.
	loopLimit int
}

// NewInterpreter creates an interpreter with a fresh root environment
func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{NewEnvironment(nil), output, reporter, 0}
}

// Interpret executes the program's statements strictly in order. A `with`
// binding is pushed for exactly the statement that follows it in the sequence
// and popped again afterwards, whether or not that statement read it. The
// pairing is structural, not positional: `then` and `do` wrappers are seen
// through, and a `with` governed by another `with` stacks a further frame over
// the statement that follows the chain.
func (in *Interpreter) Interpret(program []Stmt) {
	in.execSequence(program)
}

func (in *Interpreter) execSequence(statements []Stmt) {
	for i := 0; i < len(statements); {
		i = in.execFrom(statements, i)
	}
}

// execFrom runs the statement at index i and returns the index to resume
// from. A with-binding at i is evaluated into a fresh frame that covers the
// next statement; since that statement may itself be a with-binding, the
// frames stack until a governed statement is reached.
func (in *Interpreter) execFrom(statements []Stmt, i int) int {
	with, ok := asWithBinding(statements[i])
	if !ok || i+1 >= len(statements) {
		in.exec(statements[i])
		return i + 1
	}
	scope := NewEnvironment(in.environment)
	scope.Define(with.Name, in.eval(with.Value))
	in.environment = scope
	defer func() { in.environment = scope.enclosing }()
	return in.execFrom(statements, i+1)
}

// asWithBinding unwraps `then` and `do` down to a with-binding, if the
// statement holds one. The wrappers are transparent at execution time, so
// `A then with x as V then B` pairs the binding with B just as a bare
// `with x as V` would.
func asWithBinding(stmt Stmt) (*WithStmt, bool) {
	switch stmt := stmt.(type) {
	case *WithStmt:
		return stmt, true
	case *ThenStmt:
		return asWithBinding(stmt.Statement)
	case *DoStmt:
		return asWithBinding(stmt.Statement)
	}
	return nil, false
}

// exec runs one statement, reporting its failure instead of propagating it.
func (in *Interpreter) exec(stmt Stmt) {
	if _, err := stmt.Accept(in); err != nil {
		in.reporter.Report(err)
	}
}

// VisitWithStmt handles a `with` that has nothing to govern: the last
// statement of a sequence, or the body of a loop or iter. The binding would
// be dropped before anything could read it, so only the expression is
// evaluated.
func (in *Interpreter) VisitWithStmt(stmt *WithStmt) (interface{}, error) {
	in.eval(stmt.Value)
	return nil, nil
}

func (in *Interpreter) VisitSetStmt(stmt *SetStmt) (interface{}, error) {
	in.environment.DefineGlobal(stmt.Name, in.eval(stmt.Value))
	return nil, nil
}

func (in *Interpreter) VisitAsStmt(stmt *AsStmt) (interface{}, error) {
	return nil, NewRuntimeError("'as' cannot be used on its own - use 'with name as value'.")
}

func (in *Interpreter) VisitToStmt(stmt *ToStmt) (interface{}, error) {
	return nil, NewRuntimeError("'to' cannot be used on its own - use 'set name to value'.")
}

func (in *Interpreter) VisitThenStmt(stmt *ThenStmt) (interface{}, error) {
	return stmt.Statement.Accept(in)
}

// VisitDoStmt executes the wrapped statement. It does not introduce a new
// variable scope; the environment stays flat across `do`.
func (in *Interpreter) VisitDoStmt(stmt *DoStmt) (interface{}, error) {
	return stmt.Statement.Accept(in)
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	fmt.Fprintln(in.output, stringify(in.eval(stmt.Expression)))
	return nil, nil
}

func (in *Interpreter) VisitWhereStmt(stmt *WhereStmt) (interface{}, error) {
	cond, ok := in.eval(stmt.Cond).(BooleanValue)
	if !ok {
		return nil, NewRuntimeError("A 'where' condition must be a boolean.")
	}
	if cond.Value {
		in.execSequence(stmt.TrueBranch)
	} else if stmt.FalseBranch != nil {
		in.execSequence(stmt.FalseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitLoopStmt(stmt *LoopStmt) (interface{}, error) {
	for i := 0; in.loopLimit == 0 || i < in.loopLimit; i++ {
		in.exec(stmt.Body)
	}
	return nil, nil
}

func (in *Interpreter) VisitIterStmt(stmt *IterStmt) (interface{}, error) {
	switch iterable := in.eval(stmt.Iterable).(type) {
	case StringValue:
		for _, r := range iterable.Value {
			in.environment.Define(stmt.Name, StringValue{string(r)})
			in.exec(stmt.Body)
		}
	case IntegerValue:
		// the count drives repetition only, the loop variable is not updated
		for i := int64(0); i < iterable.Value; i++ {
			in.exec(stmt.Body)
		}
	case ListValue:
		// elements are reduced one at a time, at the moment they come up
		for _, element := range iterable.Elements {
			in.environment.Define(stmt.Name, in.eval(element))
			in.exec(stmt.Body)
		}
	default:
		return nil, NewRuntimeError(fmt.Sprintf("Cannot iterate over %s.", stringify(iterable)))
	}
	return nil, nil
}

// VisitExprStmt evaluates the expression and discards its value; the only
// observable effect is the diagnostic an identifier lookup may report.
func (in *Interpreter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	in.eval(stmt.Expression)
	return nil, nil
}

// VisitIdentifierExpr resolves a name against the environment, not against
// the checker's discarded symbol table; a binding introduced after checking
// is honored here. A missing name is reported and yields void.
func (in *Interpreter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	value, err := in.environment.Get(expr.Name)
	if err != nil {
		in.reporter.Report(err)
		return VoidValue{}, nil
	}
	return value, nil
}

func (in *Interpreter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return IntegerValue{expr.Value}, nil
}

func (in *Interpreter) VisitStringExpr(expr *StringExpr) (interface{}, error) {
	return StringValue{expr.Value}, nil
}

func (in *Interpreter) VisitBooleanExpr(expr *BooleanExpr) (interface{}, error) {
	return BooleanValue{expr.Value}, nil
}

func (in *Interpreter) VisitListExpr(expr *ListExpr) (interface{}, error) {
	return ListValue{expr.Elements}, nil
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return ClosureValue{expr.Name, expr.Args}, nil
}

// eval reduces an expression to a value. Expression evaluation cannot fail:
// an unresolvable identifier already reported itself and became void.
func (in *Interpreter) eval(expr Expr) Value {
	value, _ := expr.Accept(in)
	return value.(Value)
}
