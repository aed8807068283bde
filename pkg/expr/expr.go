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

// Expr represents a node within an expression tree over a single canonical
// variable.  The set of implementations is closed: Const, Var, Power, Mul,
// Prod, Sum and Func are the only seven node kinds, and every consumer
// dispatches over them exhaustively.  Trees are immutable values; every
// transformation allocates fresh output and no node holds a reference to its
// parent.
type Expr interface {
	// Equal determines whether this node is structurally identical to
	// another.  Over canonical trees, structural equality coincides with
	// semantic equality.
	Equal(Expr) bool
	// String returns a lisp-style rendering of this node, used for
	// diagnostics.  Human-facing output is the concern of the printer
	// package.
	String() string
	// node restricts implementations of Expr to this package.
	node()
}

// Atom is implemented by the indivisible node kinds (Var, Power and Func).
// Only atoms may appear as factors of a Prod, or as the multiplicand of a
// canonical Mul.
type Atom interface {
	Expr
	// atom restricts implementations of Atom to Var, Power and Func.
	atom()
}

// WalkFunc is applied to every node during a traversal.
type WalkFunc func(Expr)

// Walk applies a function to every node of a tree in pre-order.
func Walk(e Expr, fn WalkFunc) {
	fn(e)
	//
	switch t := e.(type) {
	case Const, Var:
		// leaves
	case Power:
		Walk(t.Base, fn)
	case Mul:
		Walk(t.Arg, fn)
	case Prod:
		for _, f := range t.Factors {
			Walk(f, fn)
		}
	case Sum:
		for _, term := range t.Terms {
			Walk(term, fn)
		}
	case Func:
		Walk(t.Arg, fn)
	}
}
