package clarice

import "fmt"

// Checker performs a single forward pass over the syntax tree before any
// execution happens. It resolves the type of every governing expression,
// records the bindings made by with/set/as/to in a flat symbol table, and
// rejects list and call expressions outright. The pass stops at the first
// failing statement; nothing is annotated and nothing is kept around for the
// evaluator, which resolves names on its own at runtime.
type Checker struct {
	table *SymbolTable
}

// NewChecker creates a checker with an empty symbol table
func NewChecker() *Checker {
	return &Checker{NewSymbolTable()}
}

// Check walks the statements front to back and returns the first error found.
func (checker *Checker) Check(program []Stmt) error {
	for _, stmt := range program {
		if _, err := stmt.Accept(checker); err != nil {
			return err
		}
	}
	return nil
}

func (checker *Checker) VisitWithStmt(stmt *WithStmt) (interface{}, error) {
	return nil, checker.record(stmt.Name, stmt.Value)
}

func (checker *Checker) VisitSetStmt(stmt *SetStmt) (interface{}, error) {
	return nil, checker.record(stmt.Name, stmt.Value)
}

func (checker *Checker) VisitAsStmt(stmt *AsStmt) (interface{}, error) {
	return nil, checker.record(stmt.Name, stmt.Value)
}

func (checker *Checker) VisitToStmt(stmt *ToStmt) (interface{}, error) {
	return nil, checker.record(stmt.Name, stmt.Value)
}

func (checker *Checker) VisitThenStmt(stmt *ThenStmt) (interface{}, error) {
	return stmt.Statement.Accept(checker)
}

func (checker *Checker) VisitDoStmt(stmt *DoStmt) (interface{}, error) {
	return stmt.Statement.Accept(checker)
}

func (checker *Checker) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	_, err := checker.resolve(stmt.Expression)
	return nil, err
}

func (checker *Checker) VisitWhereStmt(stmt *WhereStmt) (interface{}, error) {
	if _, err := checker.resolve(stmt.Cond); err != nil {
		return nil, err
	}
	if err := checker.Check(stmt.TrueBranch); err != nil {
		return nil, err
	}
	return nil, checker.Check(stmt.FalseBranch)
}

func (checker *Checker) VisitLoopStmt(stmt *LoopStmt) (interface{}, error) {
	return stmt.Body.Accept(checker)
}

// VisitIterStmt resolves the iterable, then records the loop variable with
// the element type it will be bound to, so the body can refer to it.
func (checker *Checker) VisitIterStmt(stmt *IterStmt) (interface{}, error) {
	typ, err := checker.resolve(stmt.Iterable)
	if err != nil {
		return nil, err
	}
	checker.table.Insert(stmt.Name, elementType(typ))
	return stmt.Body.Accept(checker)
}

func (checker *Checker) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	_, err := checker.resolve(stmt.Expression)
	return nil, err
}

func (checker *Checker) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	if symbol, ok := checker.table.Lookup(expr.Name); ok {
		return symbol.Type, nil
	}
	return nil, NewCheckError(fmt.Sprintf("Undefined variable '%s'.", expr.Name))
}

func (checker *Checker) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return TypeInteger, nil
}

func (checker *Checker) VisitStringExpr(expr *StringExpr) (interface{}, error) {
	return TypeString, nil
}

func (checker *Checker) VisitBooleanExpr(expr *BooleanExpr) (interface{}, error) {
	return TypeBoolean, nil
}

func (checker *Checker) VisitListExpr(expr *ListExpr) (interface{}, error) {
	return nil, checker.invalid(expr)
}

func (checker *Checker) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return nil, checker.invalid(expr)
}

// record resolves the type of a binding statement's expression and writes the
// (name, type) pair into the table, last write wins.
func (checker *Checker) record(name string, value Expr) error {
	typ, err := checker.resolve(value)
	if err != nil {
		return err
	}
	checker.table.Insert(name, typ)
	return nil
}

func (checker *Checker) resolve(expr Expr) (Type, error) {
	typ, err := expr.Accept(checker)
	if err != nil {
		return TypeVoid, err
	}
	return typ.(Type), nil
}

func (checker *Checker) invalid(expr Expr) error {
	printer := new(astPrinter)
	return NewCheckError(fmt.Sprintf("Invalid expression '%s'.", printer.print(expr)))
}

// elementType maps an iterable's type to the type its elements are bound
// with: iterating a string binds one-character strings, iterating an integer
// only counts repetitions.
func elementType(typ Type) Type {
	if typ == TypeString {
		return TypeString
	}
	return typ
}
