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

// Var is the single canonical variable.  The parser maps whichever letter the
// user wrote onto this node and remembers the original name for printing;
// within the core there is exactly one variable and it needs no identity.
type Var struct{}

// Equal implementation for the Expr interface.
func (p Var) Equal(o Expr) bool {
	_, ok := o.(Var)
	return ok
}

// String implementation for the Expr interface.
func (p Var) String() string {
	return "x"
}

func (p Var) node() {}

func (p Var) atom() {}
