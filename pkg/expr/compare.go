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
package expr

import (
	"github.com/consensys/go-cas/pkg/util/math"
)

// Compare imposes the canonical total order over (canonical) terms, such
// that two semantically equal trees sort their children identically.  Terms
// compare first by kernel (the term with any enclosing Mul coefficient
// stripped) and only then by coefficient.  Kernels compare by kind using the
// fixed precedence Var < Power < Func < Prod, with Const ordered after every
// variable-containing kernel; within Power by exponent ascending; within
// Func by the fixed order sin < cos < exp; Prod kernels lexicographically
// factor by factor.  Returns a negative value if l orders before r, zero if
// the two are structurally identical, and a positive value otherwise.
func Compare(l Expr, r Expr) int {
	lCoeff, lKernel := Split(l)
	rCoeff, rKernel := Split(r)
	// Kernels dominate
	if c := compareKernels(lKernel, rKernel); c != 0 {
		return c
	}
	// Coefficients break ties
	return lCoeff.Cmp(rCoeff)
}

// Split decomposes a term into its constant coefficient and its kernel.  A
// Mul yields its coefficient and multiplicand; any other term is its own
// kernel with coefficient one.
func Split(e Expr) (math.Rat, Expr) {
	if m, ok := e.(Mul); ok {
		return m.Coeff, m.Arg
	}
	//
	return math.One(), e
}

// rank assigns each kernel kind its position within the fixed precedence.
func rank(e Expr) int {
	switch t := e.(type) {
	case Var:
		return 0
	case Power:
		return 1
	case Func:
		return 2
	case Prod:
		return 3
	case Sum:
		return 4
	case Const:
		return 5
	case Mul:
		// non-canonical, but keep the order total
		return rank(t.Arg)
	}
	//
	return 6
}

func compareKernels(l Expr, r Expr) int {
	lRank, rRank := rank(l), rank(r)
	//
	if lRank != rRank {
		return lRank - rRank
	}
	//
	switch lt := l.(type) {
	case Var:
		return 0
	case Power:
		rt := r.(Power)
		//
		if lt.Exponent < rt.Exponent {
			return -1
		} else if lt.Exponent > rt.Exponent {
			return 1
		}
		//
		return compareKernels(lt.Base, rt.Base)
	case Func:
		rt := r.(Func)
		//
		if lt.Name != rt.Name {
			return int(lt.Name) - int(rt.Name)
		}
		//
		return compareKernels(lt.Arg, rt.Arg)
	case Prod:
		return compareSlices(lt.Factors, r.(Prod).Factors)
	case Sum:
		return compareSlices(lt.Terms, r.(Sum).Terms)
	case Const:
		return lt.Value.Cmp(r.(Const).Value)
	}
	//
	return 0
}

// compareSlices orders two factor (or term) sequences lexicographically,
// with length as the final tie-break.
func compareSlices(l []Expr, r []Expr) int {
	n := min(len(l), len(r))
	//
	for i := 0; i < n; i++ {
		if c := Compare(l[i], r[i]); c != 0 {
			return c
		}
	}
	//
	return len(l) - len(r)
}
