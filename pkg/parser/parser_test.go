package parser

import (
	"errors"
	"testing"

	"github.com/consensys/go-cas/pkg/expr"
)

// ============================================================================
// Accepted inputs (raw trees, prior to normalization)
// ============================================================================

func TestParse_01(t *testing.T) {
	CheckParse(t, "5", "5")
}

func TestParse_02(t *testing.T) {
	CheckParse(t, "x", "x")
}

func TestParse_03(t *testing.T) {
	CheckParse(t, "2x + 3", "(+ (* 2 x) 3)")
}

func TestParse_04(t *testing.T) {
	// Subtraction sugars into a negated term
	CheckParse(t, "x - 3", "(+ x (* -1 3))")
}

func TestParse_05(t *testing.T) {
	CheckParse(t, "-x", "(* -1 x)")
}

func TestParse_06(t *testing.T) {
	CheckParse(t, "x^2", "(^ x 2)")
}

func TestParse_07(t *testing.T) {
	// Grammar permits composite bases; the normalizer rejects them later.
	CheckParse(t, "(x + 1)^2", "(^ (+ x 1) 2)")
}

func TestParse_08(t *testing.T) {
	CheckParse(t, "sin(x)", "(sin x)")
}

func TestParse_09(t *testing.T) {
	// sin^2(x) is shorthand for (sin(x))^2
	CheckParse(t, "sin^2(x)", "(^ (sin x) 2)")
}

func TestParse_10(t *testing.T) {
	// Implicit multiplication
	CheckParse(t, "2 x sin(x)", "(* 2 (prod x (sin x)))")
}

func TestParse_11(t *testing.T) {
	CheckParse(t, "x*x", "(prod x x)")
}

func TestParse_12(t *testing.T) {
	// Constants fold leftwards into a single coefficient
	CheckParse(t, "2*3x", "(* 6 x)")
}

func TestParse_13(t *testing.T) {
	// Decimal literals convert exactly
	CheckParse(t, "0.1", "1/10")
}

func TestParse_14(t *testing.T) {
	CheckParse(t, "((x))", "x")
}

func TestParse_15(t *testing.T) {
	CheckParse(t, "2^3", "(^ 2 3)")
}

// ============================================================================
// Variable naming
// ============================================================================

func TestParse_20(t *testing.T) {
	CheckVariable(t, "t^2 + 1", "t")
}

func TestParse_21(t *testing.T) {
	// Constant expressions default the variable
	CheckVariable(t, "3 + 4", "x")
}

func TestParse_22(t *testing.T) {
	CheckVariable(t, "sin(y) + y", "y")
}

// ============================================================================
// Malformed inputs
// ============================================================================

func TestParse_30(t *testing.T) {
	CheckMalformed(t, "")
}

func TestParse_31(t *testing.T) {
	CheckMalformed(t, "2 +")
}

func TestParse_32(t *testing.T) {
	CheckMalformed(t, "(x + 1")
}

func TestParse_33(t *testing.T) {
	CheckMalformed(t, "x + 1)")
}

func TestParse_34(t *testing.T) {
	CheckMalformed(t, "x + $")
}

func TestParse_35(t *testing.T) {
	CheckMalformed(t, "x + y")
}

func TestParse_36(t *testing.T) {
	// Non-constant exponents have no representation
	CheckMalformed(t, "x^x")
}

func TestParse_37(t *testing.T) {
	CheckMalformed(t, "sin x")
}

func TestParse_38(t *testing.T) {
	// Errors carry the offending span
	_, _, err := Parse("x + $")
	//
	var malformed *MalformedExpressionError
	//
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed-expression error, got %v", err)
	}
	//
	span := malformed.Span()
	//
	if span.Start() != 4 || span.End() != 5 {
		t.Errorf("expected span 4:5, got %d:%d", span.Start(), span.End())
	}
}

// ============================================================================
// Unsupported constructs
// ============================================================================

func TestParse_40(t *testing.T) {
	CheckUnsupported(t, "tan(x)")
}

func TestParse_41(t *testing.T) {
	CheckUnsupported(t, "x^0.5")
}

func TestParse_42(t *testing.T) {
	CheckUnsupported(t, "x^-2")
}

// ============================================================================
// Helpers
// ============================================================================

// CheckParse checks an input parses into an expected raw tree.
func CheckParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	ast, _, err := Parse(input)
	//
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	//
	if ast.String() != expected {
		t.Errorf("expected %s, got %s", expected, ast.String())
	}
}

// CheckVariable checks the variable name reported for an input.
func CheckVariable(t *testing.T, input string, variable string) {
	t.Helper()
	//
	_, v, err := Parse(input)
	//
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	//
	if v != variable {
		t.Errorf("expected variable %s, got %s", variable, v)
	}
}

// CheckMalformed checks an input is rejected as not matching the grammar.
func CheckMalformed(t *testing.T, input string) {
	t.Helper()
	//
	_, _, err := Parse(input)
	//
	var malformed *MalformedExpressionError
	//
	if !errors.As(err, &malformed) {
		t.Errorf("expected malformed-expression error, got %v", err)
	}
}

// CheckUnsupported checks an input parses syntactically but is rejected as
// outside the supported domain.
func CheckUnsupported(t *testing.T, input string) {
	t.Helper()
	//
	_, _, err := Parse(input)
	//
	var unsupported *expr.UnsupportedExpressionError
	//
	if !errors.As(err, &unsupported) {
		t.Errorf("expected unsupported-expression error, got %v", err)
	}
}
