// Package parser converts input strings into raw expression trees.  The
// parser guarantees syntactic correctness (producing structurally well-formed
// trees over the seven node kinds) but does not enforce algebraic invariants
// or canonical structure; all structural cleanup and domain validation is
// performed by the normalizer.
package parser

import (
	"fmt"
	"regexp"

	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/util/math"
)

// Grammar accepted by this parser:
//
//	expr  := mul (('+' | '-') mul)*
//	mul   := power (('*' power) | power)*
//	power := term ('^' power)?
//	term  := NUMBER | VARIABLE | NAME '(' expr ')' | '(' expr ')' | '-' term
//
// Multiplication may be implicit (2x, x sin(x)); exponents must be constant
// non-negative integers; exactly one distinct variable letter may appear.

// Parse converts a given input string into a raw expression tree, along with
// the variable name the user actually wrote (defaulting to "x" for constant
// expressions), or fails with a *MalformedExpressionError (grammar) or an
// *expr.UnsupportedExpressionError (unknown function name, bad exponent).
func Parse(input string) (expr.Expr, string, error) {
	text := []rune(desugar(input))
	//
	tokens, err := lex(text)
	//
	if err != nil {
		return nil, "", err
	}
	//
	p := &parser{text: text, tokens: tokens}
	//
	ast, err := p.parseExpr()
	//
	if err != nil {
		return nil, "", err
	}
	// Sanity check everything was parsed
	if tok := p.lookahead(); tok != nil {
		return nil, "", p.errorOn(*tok, "unexpected trailing input")
	}
	//
	variable := p.variable
	//
	if variable == "" {
		variable = "x"
	}
	//
	return ast, variable, nil
}

// sugaredPower matches function-power shorthand such as sin^2(x), which is
// rewritten to (sin(x))^2 before lexing.  This step exists purely to simplify
// parsing and performs no algebraic transformation.
var sugaredPower = regexp.MustCompile(`(sin|cos|exp)\^(\d+)\(([^()]*)\)`)

func desugar(input string) string {
	return sugaredPower.ReplaceAllString(input, "($1($3))^$2")
}

// parser represents a parser in the process of parsing a given token stream
// into an expression tree.
type parser struct {
	// Text being parsed.
	text []rune
	// Tokens being consumed.
	tokens []Token
	// Position within the token stream.
	index int
	// First variable letter seen, if any.
	variable string
}

func (p *parser) parseExpr() (expr.Expr, error) {
	var terms []expr.Expr
	//
	left, err := p.parseMul()
	//
	if err != nil {
		return nil, err
	}
	//
	terms = append(terms, left)
	// expr := mul (('+' | '-') mul)*
	for tok := p.lookahead(); tok != nil && (tok.Kind == PLUS || tok.Kind == MINUS); tok = p.lookahead() {
		op := p.consume()
		//
		right, err := p.parseMul()
		//
		if err != nil {
			return nil, err
		}
		// a - b parses as a + (-1)b
		if op.Kind == MINUS {
			right = expr.Mul{Coeff: math.NewRatFromInt64(-1), Arg: right}
		}
		//
		terms = append(terms, right)
	}
	//
	if len(terms) == 1 {
		return terms[0], nil
	}
	//
	return expr.Sum{Terms: terms}, nil
}

func (p *parser) parseMul() (expr.Expr, error) {
	var (
		coefficient = math.One()
		factors     []expr.Expr
	)
	// Fold parsed constants into the coefficient, collect everything else.
	classify := func(e expr.Expr) {
		if c, ok := e.(expr.Const); ok {
			coefficient = coefficient.Mul(c.Value)
		} else {
			factors = append(factors, e)
		}
	}
	//
	node, err := p.parsePower()
	//
	if err != nil {
		return nil, err
	}
	//
	classify(node)
	// mul := power (('*' power) | power)*
	for {
		tok := p.lookahead()
		explicit := tok != nil && tok.Kind == STAR
		implicit := tok != nil && canStartTerm(tok.Kind)
		//
		if !explicit && !implicit {
			break
		}
		//
		if explicit {
			p.consume()
		}
		//
		if node, err = p.parsePower(); err != nil {
			return nil, err
		}
		//
		classify(node)
	}
	//
	switch len(factors) {
	case 0:
		return expr.NewConst(coefficient), nil
	case 1:
		if coefficient.IsOne() {
			return factors[0], nil
		}
		//
		return expr.Mul{Coeff: coefficient, Arg: factors[0]}, nil
	}
	//
	prod := expr.Prod{Factors: factors}
	//
	if coefficient.IsOne() {
		return prod, nil
	}
	//
	return expr.Mul{Coeff: coefficient, Arg: prod}, nil
}

func (p *parser) parsePower() (expr.Expr, error) {
	base, err := p.parseTerm()
	//
	if err != nil {
		return nil, err
	}
	// power := term ('^' power)?
	if tok := p.lookahead(); tok != nil && tok.Kind == CARET {
		caret := p.consume()
		// Right-associative
		exponent, err := p.parsePower()
		//
		if err != nil {
			return nil, err
		}
		//
		return p.buildPower(caret, base, exponent)
	}
	//
	return base, nil
}

// buildPower validates an exponent, which must be a constant non-negative
// integer.
func (p *parser) buildPower(caret Token, base expr.Expr, exponent expr.Expr) (expr.Expr, error) {
	value, ok := constValue(exponent)
	//
	if !ok {
		return nil, p.errorOn(caret, "exponent must be a constant")
	}
	//
	if !value.IsInt() {
		return nil, &expr.UnsupportedExpressionError{Reason: "exponent must be an integer", Node: exponent}
	}
	//
	if value.Sign() < 0 {
		return nil, &expr.UnsupportedExpressionError{Reason: "negative exponents not supported", Node: exponent}
	}
	//
	num := value.Num()
	//
	if !num.IsInt64() {
		return nil, p.errorOn(caret, "exponent too large")
	}
	//
	return expr.Power{Base: base, Exponent: uint(num.Int64())}, nil
}

// constValue extracts the rational value of a constant subtree, including
// negated constants such as -2 (which parse as a scalar multiple of 2).
func constValue(e expr.Expr) (math.Rat, bool) {
	switch t := e.(type) {
	case expr.Const:
		return t.Value, true
	case expr.Mul:
		if c, ok := t.Arg.(expr.Const); ok {
			return t.Coeff.Mul(c.Value), true
		}
	}
	//
	return math.Rat{}, false
}

func (p *parser) parseTerm() (expr.Expr, error) {
	tok := p.lookahead()
	//
	if tok == nil {
		return nil, p.errorAtEnd("unexpected end of input")
	}
	//
	switch tok.Kind {
	case MINUS:
		p.consume()
		//
		next, err := p.parseTerm()
		//
		if err != nil {
			return nil, err
		}
		//
		return expr.Mul{Coeff: math.NewRatFromInt64(-1), Arg: next}, nil
	case NUMBER:
		return p.parseNumber()
	case VARIABLE:
		return p.parseVariable()
	case NAME:
		return p.parseCall()
	case LPAREN:
		p.consume()
		//
		inner, err := p.parseExpr()
		//
		if err != nil {
			return nil, err
		}
		//
		if err := p.expect(RPAREN, "parenthesis mismatch"); err != nil {
			return nil, err
		}
		//
		return inner, nil
	}
	//
	return nil, p.errorOn(*tok, "unexpected token")
}

func (p *parser) parseNumber() (expr.Expr, error) {
	tok := p.consume()
	// Exact conversion, hence decimal literals never round.
	value, err := math.ParseRat(tok.Text)
	//
	if err != nil {
		return nil, p.errorOn(tok, "malformed number")
	}
	//
	return expr.NewConst(value), nil
}

func (p *parser) parseVariable() (expr.Expr, error) {
	tok := p.consume()
	//
	if p.variable == "" {
		p.variable = tok.Text
	} else if p.variable != tok.Text {
		msg := fmt.Sprintf("multiple variables not supported: %s, %s", p.variable, tok.Text)
		return nil, p.errorOn(tok, msg)
	}
	//
	return expr.Var{}, nil
}

func (p *parser) parseCall() (expr.Expr, error) {
	tok := p.consume()
	//
	name, ok := expr.ParseFuncName(tok.Text)
	//
	if !ok {
		return nil, &expr.UnsupportedExpressionError{
			Reason: fmt.Sprintf("unsupported function \"%s\"", tok.Text),
		}
	}
	//
	if err := p.expect(LPAREN, fmt.Sprintf("expected '(' after function name %s", tok.Text)); err != nil {
		return nil, err
	}
	//
	arg, err := p.parseExpr()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(RPAREN, "parenthesis mismatch in function call"); err != nil {
		return nil, err
	}
	//
	return expr.Func{Name: name, Arg: arg}, nil
}

// canStartTerm checks whether a token of the given kind can begin a term,
// which determines where implicit multiplication applies.
func canStartTerm(kind TokenKind) bool {
	switch kind {
	case NUMBER, VARIABLE, NAME, LPAREN:
		return true
	}
	//
	return false
}

func (p *parser) lookahead() *Token {
	if p.index < len(p.tokens) {
		return &p.tokens[p.index]
	}
	//
	return nil
}

func (p *parser) consume() Token {
	tok := p.tokens[p.index]
	p.index++
	//
	return tok
}

func (p *parser) expect(kind TokenKind, msg string) error {
	tok := p.lookahead()
	//
	if tok == nil {
		return p.errorAtEnd(msg)
	} else if tok.Kind != kind {
		return p.errorOn(*tok, msg)
	}
	//
	p.consume()
	//
	return nil
}

func (p *parser) errorOn(tok Token, msg string) error {
	return NewMalformedExpressionError(p.text, tok.Span, msg)
}

func (p *parser) errorAtEnd(msg string) error {
	span := NewSpan(len(p.text), len(p.text))
	return NewMalformedExpressionError(p.text, span, msg)
}
