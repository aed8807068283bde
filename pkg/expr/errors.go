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

// UnsupportedExpressionError signals an expression which, whilst
// grammatically well-formed, falls outside the supported algebraic domain.
// Examples include a function applied to anything other than the bare
// variable (an implicit chain-rule case), a power whose base is not the
// variable, and a product over non-atomic subexpressions.
type UnsupportedExpressionError struct {
	// Reason this expression cannot be canonicalized.
	Reason string
	// Offending (sub)expression.
	Node Expr
}

// Error implements the error interface.
func (p *UnsupportedExpressionError) Error() string {
	if p.Node == nil {
		return fmt.Sprintf("unsupported expression: %s", p.Reason)
	}
	//
	return fmt.Sprintf("unsupported expression: %s (in %s)", p.Reason, p.Node.String())
}

// UnsupportedOperationError signals a differentiation or integration request
// which hits a domain boundary by design, such as either engine encountering
// a product of non-constant terms (the product rule is deliberately out of
// scope).
type UnsupportedOperationError struct {
	// Operation which was requested (e.g. "differentiate").
	Op string
	// Reason the operation is unsupported.
	Reason string
	// Offending (sub)expression.
	Node Expr
}

// Error implements the error interface.
func (p *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("cannot %s: %s (in %s)", p.Op, p.Reason, p.Node.String())
}

// InvariantViolation signals that a tree-producing operation returned a tree
// which fails the canonical-form checker.  Unlike the other errors in this
// taxonomy it indicates a defect in the engine itself, never a problem with
// user input, and must not be converted into a user-facing failure.
type InvariantViolation struct {
	// Producer which built the offending tree (e.g. "normalize").
	Producer string
	// Invariant which failed.
	Invariant string
	// Offending (sub)tree.
	Node Expr
}

// Error implements the error interface.
func (p *InvariantViolation) Error() string {
	return fmt.Sprintf("internal defect: %s produced a tree violating \"%s\" (at %s)",
		p.Producer, p.Invariant, p.Node.String())
}
