/*
Package clarice implements the front end and execution engine of the Clarice
scripting language: a lazy scanner, a recursive-descent parser with
statement-level error recovery, a single-pass static checker, and a
tree-walking evaluator.

Grammars

	program    --> stmt* EOF ;
	stmt       --> withStmt
	             | setStmt
	             | asStmt
	             | toStmt
	             | thenStmt
	             | doStmt
	             | printStmt
	             | whereStmt
	             | loopStmt
	             | iterStmt ;
	withStmt   --> "with" IDENT "as" expr ;
	setStmt    --> "set" IDENT "to" expr ;
	asStmt     --> "as" IDENT expr ;
	toStmt     --> "to" IDENT expr ;
	thenStmt   --> "then" stmt ;
	doStmt     --> "do" stmt ;
	printStmt  --> "print" expr ;
	whereStmt  --> "where" expr program ( "otherwise" program )? ;
	loopStmt   --> "loop" stmt ;
	iterStmt   --> "iter" IDENT "in" expr stmt ;
	expr       --> IDENT | INTEGER | STRING
	             | "true" | "false"
	             | "[" ( expr ( "," expr )* )? "]"
	             | IDENT "(" ( expr ( "," expr )* )? ")" ;

Arithmetic and comparison operators are tokenized but never composed into
expressions; this is a deliberate extension boundary. List and call
expressions parse only so the checker can reject them with a structural
diagnostic before execution.
*/
package clarice
