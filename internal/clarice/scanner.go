package clarice

import (
	"strconv"
	"unicode"
)

// Scanner turns raw source text into a stream of tokens. Tokens are produced
// lazily: each call to Next returns the token that follows the current scan
// position, and the stream is terminated by an explicit EOF token.
type Scanner struct {
	start   int
	current int
	source  []rune
}

// NewScanner creates a new Clarice token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	return scanner
}

// Next returns the next token found in the source. Whitespace is skipped, and
// so is any character that cannot begin a token; neither is an error. Once the
// input is exhausted every call returns an EOF token.
func (scanner *Scanner) Next() *Token {
	for scanner.hasNext() {
		scanner.start = scanner.current
		r := scanner.advance()
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsDigit(r) {
			return scanner.scanInteger()
		}
		if unicode.IsLetter(r) {
			return scanner.scanWord()
		}
		switch r {
		case '+', '-', '*', '/', '=':
			return scanner.emit(OPERATOR, nil)
		case '(', ')', '{', '}', '[', ']', ':', ';', ',', '.':
			return scanner.emit(SEPARATOR, nil)
		case '"':
			return scanner.scanString()
		}
	}
	return NewToken(EOF, "", nil)
}

// scanInteger consumes a maximal run of digits. A numeral that does not fit
// in 64 bits collapses to 0 instead of failing the scan.
func (scanner *Scanner) scanInteger() *Token {
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		literal = 0
	}
	return scanner.emit(INTEGER, literal)
}

// scanWord consumes a maximal run of alphanumeric/underscore characters and
// classifies the result as either a keyword or an identifier.
func (scanner *Scanner) scanWord() *Token {
	for isWordRune(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if keywords[lexeme] {
		return scanner.emit(KEYWORD, nil)
	}
	return scanner.emit(IDENTIFIER, nil)
}

// scanString reads until the closing '"'. Escape sequences are not supported,
// and an unterminated string consumes everything up to the end of the input.
func (scanner *Scanner) scanString() *Token {
	for scanner.peek() != '"' && scanner.hasNext() {
		scanner.advance()
	}
	content := string(scanner.source[scanner.start+1 : scanner.current])
	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
	}
	return scanner.emit(STRING, content)
}

// emit builds a token of the given type from the lexeme between `start` and
// `current`, carrying the given literal
func (scanner *Scanner) emit(typ TokenType, literal interface{}) *Token {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	return NewToken(typ, lexeme, literal)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
