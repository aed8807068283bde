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
package math

import (
	"errors"
	"testing"
)

// ============================================================================
// Construction
// ============================================================================

func TestRat_01(t *testing.T) {
	CheckRat(t, "1/2", rat(t, 2, 4))
}

func TestRat_02(t *testing.T) {
	// Sign normalizes onto the numerator
	CheckRat(t, "-1/2", rat(t, 2, -4))
}

func TestRat_03(t *testing.T) {
	CheckRat(t, "-1/2", rat(t, -2, 4))
}

func TestRat_04(t *testing.T) {
	CheckRat(t, "0", rat(t, 0, 5))
}

func TestRat_05(t *testing.T) {
	_, err := NewRat(1, 0)
	//
	var dbz *DivisionByZeroError
	//
	if !errors.As(err, &dbz) {
		t.Errorf("expected division-by-zero error, got %v", err)
	}
}

func TestRat_06(t *testing.T) {
	CheckRat(t, "7", NewRatFromInt64(7))
}

// ============================================================================
// Parsing
// ============================================================================

func TestRat_10(t *testing.T) {
	CheckRat(t, "3", parse(t, "3"))
}

func TestRat_11(t *testing.T) {
	CheckRat(t, "1/2", parse(t, "0.5"))
}

func TestRat_12(t *testing.T) {
	// Exact, not the nearest float
	CheckRat(t, "1/10", parse(t, "0.1"))
}

func TestRat_13(t *testing.T) {
	if _, err := ParseRat("abc"); err == nil {
		t.Errorf("expected parse failure")
	}
}

// ============================================================================
// Arithmetic
// ============================================================================

func TestRat_20(t *testing.T) {
	CheckRat(t, "5/6", rat(t, 1, 2).Add(rat(t, 1, 3)))
}

func TestRat_21(t *testing.T) {
	CheckRat(t, "1/6", rat(t, 1, 2).Sub(rat(t, 1, 3)))
}

func TestRat_22(t *testing.T) {
	CheckRat(t, "1/6", rat(t, 1, 2).Mul(rat(t, 1, 3)))
}

func TestRat_23(t *testing.T) {
	q, err := rat(t, 1, 2).Div(rat(t, 1, 4))
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	CheckRat(t, "2", q)
}

func TestRat_24(t *testing.T) {
	_, err := One().Div(Zero())
	//
	var dbz *DivisionByZeroError
	//
	if !errors.As(err, &dbz) {
		t.Errorf("expected division-by-zero error, got %v", err)
	}
}

func TestRat_25(t *testing.T) {
	CheckRat(t, "-1/2", rat(t, 1, 2).Neg())
}

func TestRat_26(t *testing.T) {
	CheckRat(t, "8/27", rat(t, 2, 3).Pow(3))
}

func TestRat_27(t *testing.T) {
	CheckRat(t, "1", rat(t, 2, 3).Pow(0))
}

func TestRat_28(t *testing.T) {
	// Sums stay exact across many small increments
	acc := Zero()
	third := rat(t, 1, 3)
	//
	for i := 0; i < 3; i++ {
		acc = acc.Add(third)
	}
	//
	if !acc.IsOne() {
		t.Errorf("expected exactly one, got %s", acc.String())
	}
}

// ============================================================================
// Predicates
// ============================================================================

func TestRat_30(t *testing.T) {
	if !Zero().IsZero() || Zero().IsOne() || !Zero().IsInt() {
		t.Errorf("zero misclassified")
	}
}

func TestRat_31(t *testing.T) {
	if !One().IsOne() || One().IsZero() {
		t.Errorf("one misclassified")
	}
}

func TestRat_32(t *testing.T) {
	if rat(t, 1, 2).IsInt() {
		t.Errorf("1/2 is not an integer")
	}
}

func TestRat_33(t *testing.T) {
	if c := rat(t, 1, 3).Cmp(rat(t, 1, 2)); c >= 0 {
		t.Errorf("expected 1/3 < 1/2, got %d", c)
	}
}

func TestRat_34(t *testing.T) {
	if rat(t, -1, 2).Sign() != -1 || rat(t, 1, 2).Sign() != 1 || Zero().Sign() != 0 {
		t.Errorf("sign misreported")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// CheckRat checks a rational renders as expected.
func CheckRat(t *testing.T, expected string, actual Rat) {
	t.Helper()
	//
	if actual.String() != expected {
		t.Errorf("expected %s, got %s", expected, actual.String())
	}
}

func rat(t *testing.T, num int64, den int64) Rat {
	t.Helper()
	//
	r, err := NewRat(num, den)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	return r
}

func parse(t *testing.T, s string) Rat {
	t.Helper()
	//
	r, err := ParseRat(s)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	return r
}
