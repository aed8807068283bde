package parser

import (
	"fmt"
)

// MalformedExpressionError is a structured error which retains the index into
// the original string where an error occurred, along with an error message.
// It signals input text which does not match the grammar; input which parses
// but falls outside the supported algebraic domain is reported as an
// expr.UnsupportedExpressionError instead.
type MalformedExpressionError struct {
	// Text of enclosing input.
	text []rune
	// Index into string being parsed where error arose.
	span Span
	// Error message being reported.
	msg string
}

// NewMalformedExpressionError simply constructs a new error.
func NewMalformedExpressionError(text []rune, span Span, msg string) *MalformedExpressionError {
	return &MalformedExpressionError{text, span, msg}
}

// Text returns the input text within which this error arose.
func (p *MalformedExpressionError) Text() []rune {
	return p.text
}

// Span returns the span of the original text on which this error is reported.
func (p *MalformedExpressionError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *MalformedExpressionError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *MalformedExpressionError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}
