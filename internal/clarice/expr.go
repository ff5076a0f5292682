package clarice

type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error)
	VisitIntegerExpr(expr *IntegerExpr) (interface{}, error)
	VisitStringExpr(expr *StringExpr) (interface{}, error)
	VisitBooleanExpr(expr *BooleanExpr) (interface{}, error)
	VisitListExpr(expr *ListExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
}
type IdentifierExpr struct {
	Name string
}

func NewIdentifierExpr(Name string) *IdentifierExpr {
	return &IdentifierExpr{Name}
}
func (expr *IdentifierExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitIdentifierExpr(expr)
}

type IntegerExpr struct {
	Value int64
}

func NewIntegerExpr(Value int64) *IntegerExpr {
	return &IntegerExpr{Value}
}
func (expr *IntegerExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitIntegerExpr(expr)
}

type StringExpr struct {
	Value string
}

func NewStringExpr(Value string) *StringExpr {
	return &StringExpr{Value}
}
func (expr *StringExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitStringExpr(expr)
}

type BooleanExpr struct {
	Value bool
}

func NewBooleanExpr(Value bool) *BooleanExpr {
	return &BooleanExpr{Value}
}
func (expr *BooleanExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBooleanExpr(expr)
}

type ListExpr struct {
	Elements []Expr
}

func NewListExpr(Elements []Expr) *ListExpr {
	return &ListExpr{Elements}
}
func (expr *ListExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitListExpr(expr)
}

type CallExpr struct {
	Name string
	Args []Expr
}

func NewCallExpr(Name string, Args []Expr) *CallExpr {
	return &CallExpr{Name, Args}
}
func (expr *CallExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitCallExpr(expr)
}
