package clarice

import (
	"strconv"
	"strings"
)

// astPrinter renders an expression back into source-like text. It backs the
// rendering of unevaluated list and closure values, where `print` writes the
// literal structure rather than a reduced result.
type astPrinter struct{}

func (printer *astPrinter) print(expr Expr) string {
	text, _ := expr.Accept(printer)
	return text.(string)
}

func (printer *astPrinter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *astPrinter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return strconv.FormatInt(expr.Value, 10), nil
}

func (printer *astPrinter) VisitStringExpr(expr *StringExpr) (interface{}, error) {
	return "\"" + expr.Value + "\"", nil
}

func (printer *astPrinter) VisitBooleanExpr(expr *BooleanExpr) (interface{}, error) {
	return strconv.FormatBool(expr.Value), nil
}

func (printer *astPrinter) VisitListExpr(expr *ListExpr) (interface{}, error) {
	return "[" + printer.printAll(expr.Elements) + "]", nil
}

func (printer *astPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return expr.Name + "(" + printer.printAll(expr.Args) + ")", nil
}

func (printer *astPrinter) printAll(exprs []Expr) string {
	var out strings.Builder
	for i, expr := range exprs {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(printer.print(expr))
	}
	return out.String()
}
