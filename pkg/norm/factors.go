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
	"slices"

	"github.com/consensys/go-cas/pkg/expr"
)

// combinePowers merges all occurrences of the variable within a factor list
// by summing exponents, such that x * x^2 contributes x^3.  Function factors
// pass through untouched since the data model has no representation for
// powers of functions.
func combinePowers(atoms []expr.Atom) []expr.Atom {
	var exponent uint
	//
	others := make([]expr.Atom, 0, len(atoms))
	//
	for _, a := range atoms {
		switch t := a.(type) {
		case expr.Var:
			exponent++
		case expr.Power:
			// base is the variable (canonical by this point)
			exponent += t.Exponent
		default:
			others = append(others, a)
		}
	}
	//
	if exponent == 1 {
		others = append(others, expr.Var{})
	} else if exponent >= 2 {
		others = append(others, expr.Power{Base: expr.Var{}, Exponent: exponent})
	}
	//
	return others
}

// sortAtoms orders product factors by the canonical total order.
func sortAtoms(atoms []expr.Atom) {
	slices.SortStableFunc(atoms, func(l expr.Atom, r expr.Atom) int {
		return expr.Compare(l, r)
	})
}

// sortTerms orders sum terms by the canonical total order, which places the
// constant (if any) last.
func sortTerms(terms []expr.Expr) {
	slices.SortStableFunc(terms, func(l expr.Expr, r expr.Expr) int {
		return expr.Compare(l, r)
	})
}
