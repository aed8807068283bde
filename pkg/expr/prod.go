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
	"strings"
)

// Prod is a product of terms.  In canonical form it holds at least two
// atomic factors in canonical order, with any constant contribution hoisted
// out into an enclosing Mul.  The factor slice is typed []Expr rather than
// []Atom so the parser can hand over products of arbitrary subexpressions,
// e.g. (x+1)(x+2), for the normalizer to reject.
type Prod struct {
	Factors []Expr
}

// Equal implementation for the Expr interface.
func (p Prod) Equal(o Expr) bool {
	q, ok := o.(Prod)
	//
	if !ok || len(p.Factors) != len(q.Factors) {
		return false
	}
	//
	for i := range p.Factors {
		if !p.Factors[i].Equal(q.Factors[i]) {
			return false
		}
	}
	//
	return true
}

// String implementation for the Expr interface.
func (p Prod) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(prod")
	//
	for _, f := range p.Factors {
		builder.WriteString(" ")
		builder.WriteString(f.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func (p Prod) node() {}
