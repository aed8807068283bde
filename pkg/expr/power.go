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
)

// Power is the monomial x^n.  In canonical form the base is always Var and
// the exponent is at least two (exponent zero collapses to Const one,
// exponent one collapses to Var).  The base field is typed Expr rather than
// Var so the parser can hand over out-of-domain shapes, such as a function
// base arising from sin^2(x), for the normalizer to reject explicitly.
type Power struct {
	Base     Expr
	Exponent uint
}

// Equal implementation for the Expr interface.
func (p Power) Equal(o Expr) bool {
	q, ok := o.(Power)
	return ok && p.Exponent == q.Exponent && p.Base.Equal(q.Base)
}

// String implementation for the Expr interface.
func (p Power) String() string {
	return fmt.Sprintf("(^ %s %d)", p.Base.String(), p.Exponent)
}

func (p Power) node() {}

func (p Power) atom() {}
