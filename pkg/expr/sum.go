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

// Sum is a sum of terms.  In canonical form it holds at least two terms,
// none of which is itself a Sum, sorted by the canonical total order with at
// most one (non-zero) constant term ordered last.
type Sum struct {
	Terms []Expr
}

// Equal implementation for the Expr interface.
func (p Sum) Equal(o Expr) bool {
	q, ok := o.(Sum)
	//
	if !ok || len(p.Terms) != len(q.Terms) {
		return false
	}
	//
	for i := range p.Terms {
		if !p.Terms[i].Equal(q.Terms[i]) {
			return false
		}
	}
	//
	return true
}

// String implementation for the Expr interface.
func (p Sum) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(+")
	//
	for _, term := range p.Terms {
		builder.WriteString(" ")
		builder.WriteString(term.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func (p Sum) node() {}
