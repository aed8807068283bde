package parser

import (
	"fmt"
	"unicode"
)

// TokenKind distinguishes the different kinds of token produced by the lexer.
type TokenKind uint8

const (
	// NUMBER is an integer or decimal literal.
	NUMBER TokenKind = iota
	// VARIABLE is a single-letter identifier.
	VARIABLE
	// NAME is a multi-letter identifier (i.e. a function name).
	NAME
	// PLUS is "+".
	PLUS
	// MINUS is "-".
	MINUS
	// STAR is "*".
	STAR
	// CARET is "^".
	CARET
	// LPAREN is "(".
	LPAREN
	// RPAREN is ")".
	RPAREN
)

// Token is a lexical token along with the span of input text it covers.
type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

// lex splits the input text into tokens, or fails with a
// MalformedExpressionError on the first character which cannot begin one.
func lex(text []rune) ([]Token, error) {
	var tokens []Token
	//
	i := 0
	//
	for i < len(text) {
		ch := text[i]
		//
		switch {
		case unicode.IsSpace(ch):
			i++
		case unicode.IsDigit(ch):
			token := lexNumber(text, i)
			tokens = append(tokens, token)
			i = token.Span.End()
		case unicode.IsLetter(ch):
			token := lexWord(text, i)
			tokens = append(tokens, token)
			i = token.Span.End()
		default:
			kind, ok := operators[ch]
			//
			if !ok {
				span := NewSpan(i, i+1)
				return nil, NewMalformedExpressionError(text, span, fmt.Sprintf("invalid input character '%c'", ch))
			}
			//
			tokens = append(tokens, Token{kind, string(ch), NewSpan(i, i + 1)})
			i++
		}
	}
	//
	return tokens, nil
}

var operators = map[rune]TokenKind{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'^': CARET,
	'(': LPAREN,
	')': RPAREN,
}

// lexNumber consumes a run of digits containing at most one decimal point.
func lexNumber(text []rune, start int) Token {
	i := start
	dotSeen := false
	//
	for i < len(text) {
		if unicode.IsDigit(text[i]) {
			i++
		} else if text[i] == '.' && !dotSeen {
			dotSeen = true
			i++
		} else {
			break
		}
	}
	//
	return Token{NUMBER, string(text[start:i]), NewSpan(start, i)}
}

// lexWord consumes a run of letters.  A single letter is a variable; anything
// longer is a function name.
func lexWord(text []rune, start int) Token {
	i := start
	//
	for i < len(text) && unicode.IsLetter(text[i]) {
		i++
	}
	//
	kind := NAME
	//
	if i-start == 1 {
		kind = VARIABLE
	}
	//
	return Token{kind, string(text[start:i]), NewSpan(start, i)}
}
