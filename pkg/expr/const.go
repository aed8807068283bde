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

// Const is a literal rational constant.
type Const struct {
	Value math.Rat
}

// NewConst constructs a constant from a given rational.
func NewConst(value math.Rat) Const {
	return Const{value}
}

// NewConst64 constructs a constant from a given integer.
func NewConst64(value int64) Const {
	return Const{math.NewRatFromInt64(value)}
}

// Equal implementation for the Expr interface.
func (p Const) Equal(o Expr) bool {
	q, ok := o.(Const)
	return ok && p.Value.Cmp(q.Value) == 0
}

// String implementation for the Expr interface.
func (p Const) String() string {
	return p.Value.String()
}

func (p Const) node() {}
