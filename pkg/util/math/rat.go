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
	"fmt"
	"math/big"
)

// Rat represents an exact rational number.  A rational is always held in
// reduced form: the numerator and denominator share no common factor, the
// denominator is strictly positive, and zero is represented as 0/1.  Values
// are immutable once constructed; every arithmetic operation allocates a
// fresh result.  This is the only numeric representation used within
// expression trees, ensuring that no floating-point rounding ever enters a
// computation.
type Rat struct {
	val big.Rat
}

// DivisionByZeroError signals an attempt to construct or evaluate a rational
// with a zero denominator.
type DivisionByZeroError struct {
	// Operation during which the division arose.
	Op string
}

// Error implements the error interface.
func (p *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", p.Op)
}

// NewRat constructs the rational num/den in reduced form, or fails with a
// DivisionByZeroError if den is zero.
func NewRat(num int64, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, &DivisionByZeroError{"rat"}
	}
	//
	var r Rat
	//
	r.val.SetFrac64(num, den)
	//
	return r, nil
}

// NewRatFromInt64 constructs the rational n/1.
func NewRatFromInt64(n int64) Rat {
	var r Rat
	//
	r.val.SetInt64(n)
	//
	return r
}

// ParseRat parses an integer or decimal literal (e.g. "3", "0.5") into an
// exact rational.  Decimal literals are converted exactly, hence "0.1"
// becomes 1/10 rather than the nearest float.
func ParseRat(s string) (Rat, error) {
	var r Rat
	//
	if _, ok := r.val.SetString(s); !ok {
		return Rat{}, fmt.Errorf("malformed rational literal \"%s\"", s)
	}
	//
	return r, nil
}

// Zero returns the rational 0/1.
func Zero() Rat { return Rat{} }

// One returns the rational 1/1.
func One() Rat { return NewRatFromInt64(1) }

// Add returns p + q.
func (p Rat) Add(q Rat) Rat {
	var r Rat
	//
	r.val.Add(&p.val, &q.val)
	//
	return r
}

// Sub returns p - q.
func (p Rat) Sub(q Rat) Rat {
	var r Rat
	//
	r.val.Sub(&p.val, &q.val)
	//
	return r
}

// Mul returns p * q.
func (p Rat) Mul(q Rat) Rat {
	var r Rat
	//
	r.val.Mul(&p.val, &q.val)
	//
	return r
}

// Div returns p / q, or fails with a DivisionByZeroError if q is zero.
func (p Rat) Div(q Rat) (Rat, error) {
	if q.IsZero() {
		return Rat{}, &DivisionByZeroError{"div"}
	}
	//
	var r Rat
	//
	r.val.Quo(&p.val, &q.val)
	//
	return r, nil
}

// Neg returns -p.
func (p Rat) Neg() Rat {
	var r Rat
	//
	r.val.Neg(&p.val)
	//
	return r
}

// Pow returns p raised to the given non-negative integer power, computed
// exactly by square-and-multiply.
func (p Rat) Pow(n uint) Rat {
	acc := One()
	base := p
	// Square-and-multiply
	for n > 0 {
		if n%2 == 1 {
			acc = acc.Mul(base)
		}
		//
		base = base.Mul(base)
		n = n / 2
	}
	//
	return acc
}

// Cmp compares p and q, returning -1 if p < q, 0 if p == q and +1 if p > q.
func (p Rat) Cmp(q Rat) int {
	return p.val.Cmp(&q.val)
}

// Sign returns -1, 0 or +1 according to the sign of p.
func (p Rat) Sign() int { return p.val.Sign() }

// IsZero checks whether p is zero.
func (p Rat) IsZero() bool { return p.val.Sign() == 0 }

// IsOne checks whether p is one.
func (p Rat) IsOne() bool { return p.val.IsInt() && p.val.Num().IsInt64() && p.val.Num().Int64() == 1 }

// IsInt checks whether p is an integer (i.e. has denominator one).
func (p Rat) IsInt() bool { return p.val.IsInt() }

// Num returns a copy of the (reduced) numerator of p.
func (p Rat) Num() *big.Int {
	return new(big.Int).Set(p.val.Num())
}

// Den returns a copy of the (reduced, strictly positive) denominator of p.
func (p Rat) Den() *big.Int {
	return new(big.Int).Set(p.val.Denom())
}

// Float64 returns the nearest float64 to p.  This exists purely for
// display-time decimal rendering; it must never feed back into a tree.
func (p Rat) Float64() float64 {
	f, _ := p.val.Float64()
	return f
}

// String returns "n" for integral values, otherwise "n/d".
func (p Rat) String() string {
	if p.val.IsInt() {
		return p.val.Num().String()
	}
	//
	return p.val.RatString()
}
