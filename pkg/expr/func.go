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

// FuncName identifies one of the supported elementary functions.  The set is
// fixed at sin, cos and exp; any other name is rejected at parse time and
// never becomes a tree value.
type FuncName uint8

const (
	// Sin is the sine function.
	Sin FuncName = iota
	// Cos is the cosine function.
	Cos
	// Exp is the natural exponential function.
	Exp
)

// ParseFuncName maps a textual function name onto a FuncName, indicating
// whether or not the name is supported.
func ParseFuncName(name string) (FuncName, bool) {
	switch name {
	case "sin":
		return Sin, true
	case "cos":
		return Cos, true
	case "exp":
		return Exp, true
	}
	//
	return 0, false
}

// String implementation for the Stringer interface.
func (p FuncName) String() string {
	switch p {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Exp:
		return "exp"
	}
	//
	return fmt.Sprintf("func#%d", uint8(p))
}

// Func is an elementary function applied to an argument.  In canonical form
// the argument is exactly Var, which is the mechanism that rules out the
// chain rule by construction: a composite argument fails normalization
// rather than reaching a calculus engine.
type Func struct {
	Name FuncName
	Arg  Expr
}

// Equal implementation for the Expr interface.
func (p Func) Equal(o Expr) bool {
	q, ok := o.(Func)
	return ok && p.Name == q.Name && p.Arg.Equal(q.Arg)
}

// String implementation for the Expr interface.
func (p Func) String() string {
	return fmt.Sprintf("(%s %s)", p.Name.String(), p.Arg.String())
}

func (p Func) node() {}

func (p Func) atom() {}
