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
	"fmt"

	"github.com/consensys/go-cas/pkg/util/math"
)

// Mul is a constant scalar multiple of an expression.  In canonical form the
// coefficient is neither zero nor one, and the multiplicand is either an atom
// or a Prod: a Mul never wraps another Mul, a Const, or a Sum (coefficients
// over sums are distributed during normalization).
type Mul struct {
	Coeff math.Rat
	Arg   Expr
}

// Equal implementation for the Expr interface.
func (p Mul) Equal(o Expr) bool {
	q, ok := o.(Mul)
	return ok && p.Coeff.Cmp(q.Coeff) == 0 && p.Arg.Equal(q.Arg)
}

// String implementation for the Expr interface.
func (p Mul) String() string {
	return fmt.Sprintf("(* %s %s)", p.Coeff.String(), p.Arg.String())
}

func (p Mul) node() {}
