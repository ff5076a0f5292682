package clarice

import "fmt"

// Token groups the characters of a single lexeme with the information that
// was obtained during scanning. Tokens carry no position information, so
// diagnostics cannot point at a line or column.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Literal = literal
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ.String(), t.Lexeme, t.Literal)
}

// keywords is the fixed set of words that the scanner classifies as KEYWORD;
// every other word becomes an IDENTIFIER.
var keywords = map[string]bool{
	"with":      true,
	"set":       true,
	"as":        true,
	"to":        true,
	"then":      true,
	"do":        true,
	"print":     true,
	"where":     true,
	"otherwise": true,
	"loop":      true,
	"iter":      true,
}

const (
	KEYWORD TokenType = iota
	IDENTIFIER
	INTEGER
	STRING
	OPERATOR
	SEPARATOR
	EOF
)

// TokenType identifies the lexical class a token belongs to.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case KEYWORD:
		return "KEYWORD"
	case IDENTIFIER:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	case SEPARATOR:
		return "SEPARATOR"
	case EOF:
		return "EOF"
	}
	return ""
}
