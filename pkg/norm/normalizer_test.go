// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package norm

import (
	"errors"
	"testing"

	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/parser"
)

// ============================================================================
// Leaves and powers
// ============================================================================

func TestNorm_01(t *testing.T) {
	CheckNorm(t, "5", "5")
}

func TestNorm_02(t *testing.T) {
	CheckNorm(t, "x", "x")
}

func TestNorm_03(t *testing.T) {
	CheckNorm(t, "x^0", "1")
}

func TestNorm_04(t *testing.T) {
	CheckNorm(t, "x^1", "x")
}

func TestNorm_05(t *testing.T) {
	CheckNorm(t, "x^3", "(^ x 3)")
}

func TestNorm_06(t *testing.T) {
	// Constant bases fold exactly
	CheckNorm(t, "2^3", "8")
}

func TestNorm_07(t *testing.T) {
	CheckNorm(t, "0.5x", "(* 1/2 x)")
}

// ============================================================================
// Scalar multiples
// ============================================================================

func TestNorm_10(t *testing.T) {
	CheckNorm(t, "1x", "x")
}

func TestNorm_11(t *testing.T) {
	CheckNorm(t, "0x", "0")
}

func TestNorm_12(t *testing.T) {
	// Nested scalar multiples collapse
	CheckNorm(t, "-2*-3x", "(* 6 x)")
}

func TestNorm_13(t *testing.T) {
	// Coefficients distribute over sums
	CheckNorm(t, "2(x+1)", "(+ (* 2 x) 2)")
}

func TestNorm_14(t *testing.T) {
	CheckNorm(t, "-(x+1)", "(+ (* -1 x) -1)")
}

// ============================================================================
// Products
// ============================================================================

func TestNorm_20(t *testing.T) {
	CheckNorm(t, "x*x", "(^ x 2)")
}

func TestNorm_21(t *testing.T) {
	CheckNorm(t, "x*x^2", "(^ x 3)")
}

func TestNorm_22(t *testing.T) {
	CheckNorm(t, "2x*3x", "(* 6 (^ x 2))")
}

func TestNorm_23(t *testing.T) {
	CheckNorm(t, "x*sin(x)", "(prod x (sin x))")
}

func TestNorm_24(t *testing.T) {
	// Factors sort by the canonical order
	CheckNorm(t, "sin(x)*x", "(prod x (sin x))")
}

func TestNorm_25(t *testing.T) {
	CheckNorm(t, "cos(x)sin(x)", "(prod (sin x) (cos x))")
}

func TestNorm_26(t *testing.T) {
	CheckNorm(t, "0*sin(x)", "0")
}

func TestNorm_27(t *testing.T) {
	CheckNorm(t, "2x*sin(x)", "(* 2 (prod x (sin x)))")
}

// ============================================================================
// Sums
// ============================================================================

func TestNorm_30(t *testing.T) {
	CheckNorm(t, "2x + 3", "(+ (* 2 x) 3)")
}

func TestNorm_31(t *testing.T) {
	CheckNorm(t, "2 + 3", "5")
}

func TestNorm_32(t *testing.T) {
	CheckNorm(t, "x + 0", "x")
}

func TestNorm_33(t *testing.T) {
	CheckNorm(t, "x - x", "0")
}

func TestNorm_34(t *testing.T) {
	// Like terms combine
	CheckNorm(t, "x + x", "(* 2 x)")
}

func TestNorm_35(t *testing.T) {
	CheckNorm(t, "exp(x) + exp(x)", "(* 2 (exp x))")
}

func TestNorm_36(t *testing.T) {
	// Constants order last
	CheckNorm(t, "3 + x", "(+ x 3)")
}

func TestNorm_37(t *testing.T) {
	CheckNorm(t, "cos(x) + sin(x)", "(+ (sin x) (cos x))")
}

func TestNorm_38(t *testing.T) {
	// Nested sums splice
	CheckNorm(t, "(x + 1) + (x + 2)", "(+ (* 2 x) 3)")
}

func TestNorm_39(t *testing.T) {
	CheckNorm(t, "x^2 + x", "(+ x (^ x 2))")
}

func TestNorm_40(t *testing.T) {
	CheckNorm(t, "3x^2 + 2x + 4", "(+ (* 2 x) (* 3 (^ x 2)) 4)")
}

func TestNorm_41(t *testing.T) {
	CheckNorm(t, "2x - 2x + 7", "7")
}

func TestNorm_42(t *testing.T) {
	// 2(x+1) and 2x+2 canonicalize identically
	CheckEqualNorm(t, "2(x+1)", "2x + 2")
}

// ============================================================================
// Functions
// ============================================================================

func TestNorm_50(t *testing.T) {
	CheckNorm(t, "sin(x)", "(sin x)")
}

func TestNorm_51(t *testing.T) {
	CheckNormFails(t, "sin(x^2)")
}

func TestNorm_52(t *testing.T) {
	CheckNormFails(t, "cos(x + 1)")
}

func TestNorm_53(t *testing.T) {
	// sin^2(x) desugars to (sin(x))^2, a chain-rule shape
	CheckNormFails(t, "sin^2(x)")
}

func TestNorm_54(t *testing.T) {
	CheckNormFails(t, "(x+1)^2")
}

func TestNorm_55(t *testing.T) {
	CheckNormFails(t, "(x+1)(x+2)")
}

func TestNorm_56(t *testing.T) {
	// Constant arguments are composite too
	CheckNormFails(t, "sin(1)")
}

// ============================================================================
// Helpers
// ============================================================================

// CheckNorm checks an input normalizes to an expected canonical form, that
// the canonical form passes the invariant checker, and that normalization is
// idempotent.
func CheckNorm(t *testing.T, input string, expected string) {
	t.Helper()
	//
	canonical := normalizeString(t, input)
	//
	if canonical.String() != expected {
		t.Errorf("expected %s, got %s", expected, canonical.String())
	}
	//
	if err := expr.Check("normalize", canonical); err != nil {
		t.Errorf("canonical form fails checker: %v", err)
	}
	// Idempotence
	again, err := Normalize(canonical)
	//
	if err != nil {
		t.Fatalf("renormalization failed: %v", err)
	} else if !again.Equal(canonical) {
		t.Errorf("not idempotent: %s renormalized to %s", canonical.String(), again.String())
	}
}

// CheckEqualNorm checks two semantically equal inputs reach structurally
// identical canonical forms.
func CheckEqualNorm(t *testing.T, left string, right string) {
	t.Helper()
	//
	l := normalizeString(t, left)
	r := normalizeString(t, right)
	//
	if !l.Equal(r) {
		t.Errorf("expected identical canonical forms, got %s and %s", l.String(), r.String())
	}
}

// CheckNormFails checks an input is rejected as outside the supported domain.
func CheckNormFails(t *testing.T, input string) {
	t.Helper()
	//
	raw, _, err := parser.Parse(input)
	//
	if err == nil {
		_, err = Normalize(raw)
	}
	//
	var unsupported *expr.UnsupportedExpressionError
	//
	if !errors.As(err, &unsupported) {
		t.Errorf("expected unsupported-expression error, got %v", err)
	}
}

func normalizeString(t *testing.T, input string) expr.Expr {
	t.Helper()
	//
	raw, _, err := parser.Parse(input)
	//
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	//
	canonical, err := Normalize(raw)
	//
	if err != nil {
		t.Fatalf("normalization failed: %v", err)
	}
	//
	return canonical
}
