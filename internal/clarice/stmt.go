package clarice

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitWithStmt(stmt *WithStmt) (interface{}, error)
	VisitSetStmt(stmt *SetStmt) (interface{}, error)
	VisitAsStmt(stmt *AsStmt) (interface{}, error)
	VisitToStmt(stmt *ToStmt) (interface{}, error)
	VisitThenStmt(stmt *ThenStmt) (interface{}, error)
	VisitDoStmt(stmt *DoStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitWhereStmt(stmt *WhereStmt) (interface{}, error)
	VisitLoopStmt(stmt *LoopStmt) (interface{}, error)
	VisitIterStmt(stmt *IterStmt) (interface{}, error)
	VisitExprStmt(stmt *ExprStmt) (interface{}, error)
}
type WithStmt struct {
	Name  string
	Value Expr
}

func NewWithStmt(Name string, Value Expr) *WithStmt {
	return &WithStmt{Name, Value}
}
func (stmt *WithStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWithStmt(stmt)
}

type SetStmt struct {
	Name  string
	Value Expr
}

func NewSetStmt(Name string, Value Expr) *SetStmt {
	return &SetStmt{Name, Value}
}
func (stmt *SetStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitSetStmt(stmt)
}

type AsStmt struct {
	Name  string
	Value Expr
}

func NewAsStmt(Name string, Value Expr) *AsStmt {
	return &AsStmt{Name, Value}
}
func (stmt *AsStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitAsStmt(stmt)
}

type ToStmt struct {
	Name  string
	Value Expr
}

func NewToStmt(Name string, Value Expr) *ToStmt {
	return &ToStmt{Name, Value}
}
func (stmt *ToStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitToStmt(stmt)
}

type ThenStmt struct {
	Statement Stmt
}

func NewThenStmt(Statement Stmt) *ThenStmt {
	return &ThenStmt{Statement}
}
func (stmt *ThenStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitThenStmt(stmt)
}

type DoStmt struct {
	Statement Stmt
}

func NewDoStmt(Statement Stmt) *DoStmt {
	return &DoStmt{Statement}
}
func (stmt *DoStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitDoStmt(stmt)
}

type PrintStmt struct {
	Expression Expr
}

func NewPrintStmt(Expression Expr) *PrintStmt {
	return &PrintStmt{Expression}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

type WhereStmt struct {
	Cond        Expr
	TrueBranch  []Stmt
	FalseBranch []Stmt
}

func NewWhereStmt(Cond Expr, TrueBranch []Stmt, FalseBranch []Stmt) *WhereStmt {
	return &WhereStmt{Cond, TrueBranch, FalseBranch}
}
func (stmt *WhereStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhereStmt(stmt)
}

type LoopStmt struct {
	Body Stmt
}

func NewLoopStmt(Body Stmt) *LoopStmt {
	return &LoopStmt{Body}
}
func (stmt *LoopStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitLoopStmt(stmt)
}

type IterStmt struct {
	Name     string
	Iterable Expr
	Body     Stmt
}

func NewIterStmt(Name string, Iterable Expr, Body Stmt) *IterStmt {
	return &IterStmt{Name, Iterable, Body}
}
func (stmt *IterStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIterStmt(stmt)
}

type ExprStmt struct {
	Expression Expr
}

func NewExprStmt(Expression Expr) *ExprStmt {
	return &ExprStmt{Expression}
}
func (stmt *ExprStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExprStmt(stmt)
}
