package clarice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(src string) []*Token {
	scanner := NewScanner([]rune(src))
	tokens := make([]*Token, 0)
	for {
		tok := scanner.Next()
		tokens = append(tokens, tok)
		if tok.Typ == EOF {
			return tokens
		}
	}
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// keywords
		{"with", []*Token{{KEYWORD, "with", nil}, tokEOF()}},
		{"set", []*Token{{KEYWORD, "set", nil}, tokEOF()}},
		{"as", []*Token{{KEYWORD, "as", nil}, tokEOF()}},
		{"to", []*Token{{KEYWORD, "to", nil}, tokEOF()}},
		{"then", []*Token{{KEYWORD, "then", nil}, tokEOF()}},
		{"do", []*Token{{KEYWORD, "do", nil}, tokEOF()}},
		{"print", []*Token{{KEYWORD, "print", nil}, tokEOF()}},
		{"where", []*Token{{KEYWORD, "where", nil}, tokEOF()}},
		{"otherwise", []*Token{{KEYWORD, "otherwise", nil}, tokEOF()}},
		{"loop", []*Token{{KEYWORD, "loop", nil}, tokEOF()}},
		{"iter", []*Token{{KEYWORD, "iter", nil}, tokEOF()}},
		// identifiers, including words that are only contextually special
		{"x", []*Token{{IDENTIFIER, "x", nil}, tokEOF()}},
		{"tomato", []*Token{{IDENTIFIER, "tomato", nil}, tokEOF()}},
		{"abc123", []*Token{{IDENTIFIER, "abc123", nil}, tokEOF()}},
		{"a_b_c", []*Token{{IDENTIFIER, "a_b_c", nil}, tokEOF()}},
		{"in", []*Token{{IDENTIFIER, "in", nil}, tokEOF()}},
		{"true", []*Token{{IDENTIFIER, "true", nil}, tokEOF()}},
		{"false", []*Token{{IDENTIFIER, "false", nil}, tokEOF()}},
		{"With", []*Token{{IDENTIFIER, "With", nil}, tokEOF()}},
		// integers keep their lexeme even when the value normalizes
		{"0", []*Token{{INTEGER, "0", int64(0)}, tokEOF()}},
		{"42", []*Token{{INTEGER, "42", int64(42)}, tokEOF()}},
		{"007", []*Token{{INTEGER, "007", int64(7)}, tokEOF()}},
		// a numeral too large for 64 bits collapses to 0, it never fails
		{"99999999999999999999", []*Token{{INTEGER, "99999999999999999999", int64(0)}, tokEOF()}},
		// strings, no escape sequences
		{`""`, []*Token{{STRING, `""`, ""}, tokEOF()}},
		{`"hello, world!"`, []*Token{{STRING, `"hello, world!"`, "hello, world!"}, tokEOF()}},
		{`"a\nb"`, []*Token{{STRING, `"a\nb"`, `a\nb`}, tokEOF()}},
		// an unterminated string consumes everything to the end of input
		{`"abc`, []*Token{{STRING, `"abc`, "abc"}, tokEOF()}},
		// operators
		{"+", []*Token{{OPERATOR, "+", nil}, tokEOF()}},
		{"-", []*Token{{OPERATOR, "-", nil}, tokEOF()}},
		{"*", []*Token{{OPERATOR, "*", nil}, tokEOF()}},
		{"/", []*Token{{OPERATOR, "/", nil}, tokEOF()}},
		{"=", []*Token{{OPERATOR, "=", nil}, tokEOF()}},
		// separators
		{"(", []*Token{{SEPARATOR, "(", nil}, tokEOF()}},
		{")", []*Token{{SEPARATOR, ")", nil}, tokEOF()}},
		{"{", []*Token{{SEPARATOR, "{", nil}, tokEOF()}},
		{"}", []*Token{{SEPARATOR, "}", nil}, tokEOF()}},
		{"[", []*Token{{SEPARATOR, "[", nil}, tokEOF()}},
		{"]", []*Token{{SEPARATOR, "]", nil}, tokEOF()}},
		{":", []*Token{{SEPARATOR, ":", nil}, tokEOF()}},
		{";", []*Token{{SEPARATOR, ";", nil}, tokEOF()}},
		{",", []*Token{{SEPARATOR, ",", nil}, tokEOF()}},
		{".", []*Token{{SEPARATOR, ".", nil}, tokEOF()}},
		// nothing at all
		{"", []*Token{tokEOF()}},
		{"    \t\r\n", []*Token{tokEOF()}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, scanAll(tc.src), tc.src)
	}
}

func TestScanSkipsUnknownCharacters(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// characters that cannot begin a token vanish without a diagnostic
		{"@", []*Token{tokEOF()}},
		{"#?!", []*Token{tokEOF()}},
		{"@x", []*Token{{IDENTIFIER, "x", nil}, tokEOF()}},
		// an underscore cannot begin a word, only continue one
		{"_abc", []*Token{{IDENTIFIER, "abc", nil}, tokEOF()}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, scanAll(tc.src), tc.src)
	}
}

func TestScanStatement(t *testing.T) {
	toks := scanAll(`with x as "hello" then print x`)
	assert.Equal(t, []*Token{
		{KEYWORD, "with", nil},
		{IDENTIFIER, "x", nil},
		{KEYWORD, "as", nil},
		{STRING, `"hello"`, "hello"},
		{KEYWORD, "then", nil},
		{KEYWORD, "print", nil},
		{IDENTIFIER, "x", nil},
		tokEOF(),
	}, toks)
}

func TestScanStaysAtEOF(t *testing.T) {
	assert := assert.New(t)
	scanner := NewScanner([]rune("x"))

	assert.Equal(IDENTIFIER, scanner.Next().Typ)
	assert.Equal(EOF, scanner.Next().Typ)
	assert.Equal(EOF, scanner.Next().Typ)
}

func TestScanRoundTrip(t *testing.T) {
	// re-rendering a scanned token recovers the original text
	sources := []string{
		"with", "set", "as", "to", "then", "do",
		"print", "where", "otherwise", "loop", "iter",
		"x", "tomato", "celery_42",
		"0", "12345", "007",
		`"hello, world!"`, `""`,
	}

	assert := assert.New(t)
	for _, src := range sources {
		tok := NewScanner([]rune(src)).Next()
		assert.Equal(src, tok.Lexeme, src)
	}
}
