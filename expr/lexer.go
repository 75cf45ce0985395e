package expr

import (
	"errors"
	"unicode"
)

type token struct {
	id  int
	val string
	pos int
}

type charPredicate func(byte) bool

const (
	symbol = iota
	number
	operator
	openparen
	closeparen
)

const underscore = '_'

var (
	invalidCharacter     = errors.New("invalid character")
	unexpectedToken      = errors.New("unexpected token")
	incompleteExpression = errors.New("incomplete expression")
	unbalancedParens     = errors.New("unbalanced parentheses")
	eof                  = errors.New("eof")
)

type exprLex struct {
	code          string
	initialLength int
}

func newLexer(code string) *exprLex {
	return &exprLex{
		code:          code,
		initialLength: len(code)}
}

func (t token) String() string { return t.val }

func isWhitespace(c byte) bool { return unicode.IsSpace(rune(c)) }
func isUnderscore(c byte) bool { return c == underscore }
func isAlpha(c byte) bool      { return unicode.IsLetter(rune(c)) }
func isDigit(c byte) bool      { return unicode.IsDigit(rune(c)) }
func isSymbolChar(c byte) bool { return isUnderscore(c) || isAlpha(c) || isDigit(c) }
func isNumberChar(c byte) bool { return c == '.' || isDigit(c) }

func isOperatorChar(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func scanWhile(code string, p charPredicate) ([]byte, string) {
	var b []byte
	for len(code) > 0 && p(code[0]) {
		b = append(b, code[0])
		code = code[1:]
	}

	return b, code
}

func scanVoid(code string, p charPredicate) string {
	_, rest := scanWhile(code, p)
	return rest
}

// offset returns the position of the unscanned rest of the input.
func (l *exprLex) offset() int {
	return l.initialLength - len(l.code)
}

func (l *exprLex) next() (token, error) {
	l.code = scanVoid(l.code, isWhitespace)
	if len(l.code) == 0 {
		return token{}, eof
	}

	pos := l.offset()
	c := l.code[0]
	switch {
	case isOperatorChar(c):
		l.code = l.code[1:]
		return token{id: operator, val: string(c), pos: pos}, nil
	case c == '(':
		l.code = l.code[1:]
		return token{id: openparen, val: "(", pos: pos}, nil
	case c == ')':
		l.code = l.code[1:]
		return token{id: closeparen, val: ")", pos: pos}, nil
	case isDigit(c):
		b, rest := scanWhile(l.code, isNumberChar)
		l.code = rest
		return token{id: number, val: string(b), pos: pos}, nil
	case isAlpha(c) || isUnderscore(c):
		b, rest := scanWhile(l.code, isSymbolChar)
		l.code = rest
		return token{id: symbol, val: string(b), pos: pos}, nil
	}

	return token{}, invalidCharacter
}
