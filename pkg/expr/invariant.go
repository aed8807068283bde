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

// Check validates that a given tree is in canonical form, returning nil when
// every invariant holds and an *InvariantViolation naming the first failing
// invariant otherwise.  It never mutates its input.  Check is invoked after
// every tree-producing operation (normalization, differentiation,
// integration); a violation therefore indicates a defect in the producer,
// identified by name for diagnostic purposes, and is never a user input
// error.
func Check(producer string, e Expr) error {
	return check(producer, e)
}

func check(producer string, e Expr) error {
	switch t := e.(type) {
	case Const, Var:
		return nil
	case Power:
		return checkPower(producer, t)
	case Mul:
		return checkMul(producer, t)
	case Prod:
		return checkProd(producer, t)
	case Sum:
		return checkSum(producer, t)
	case Func:
		return checkFunc(producer, t)
	}
	//
	return violation(producer, "known node kind", e)
}

func checkPower(producer string, p Power) error {
	if _, ok := p.Base.(Var); !ok {
		return violation(producer, "power base is the variable", p)
	}
	//
	if p.Exponent < 2 {
		return violation(producer, "power exponent at least two", p)
	}
	//
	return nil
}

func checkMul(producer string, m Mul) error {
	if m.Coeff.IsZero() {
		return violation(producer, "mul coefficient non-zero", m)
	}
	//
	if m.Coeff.IsOne() {
		return violation(producer, "mul coefficient not one", m)
	}
	// A mul wraps a single atom or a product; in particular it never wraps
	// another mul, a constant, or a sum.
	switch m.Arg.(type) {
	case Var, Power, Func, Prod:
		return check(producer, m.Arg)
	}
	//
	return violation(producer, "mul wraps an atom or product", m)
}

func checkProd(producer string, p Prod) error {
	if len(p.Factors) < 2 {
		return violation(producer, "prod has at least two factors", p)
	}
	//
	variablePowers := 0
	//
	for i, f := range p.Factors {
		if _, ok := f.(Atom); !ok {
			return violation(producer, "prod factors are atomic", p)
		}
		// Var and Power factors share the variable as their base, hence at
		// most one may remain after exponents are summed.
		switch f.(type) {
		case Var, Power:
			variablePowers++
		}
		//
		if variablePowers > 1 {
			return violation(producer, "powers of the variable are combined", p)
		}
		//
		if i > 0 && Compare(p.Factors[i-1], f) > 0 {
			return violation(producer, "prod factors are ordered", p)
		}
		//
		if err := check(producer, f); err != nil {
			return err
		}
	}
	//
	return nil
}

func checkSum(producer string, s Sum) error {
	if len(s.Terms) < 2 {
		return violation(producer, "sum has at least two terms", s)
	}
	//
	for i, term := range s.Terms {
		if _, ok := term.(Sum); ok {
			return violation(producer, "sums are flattened", s)
		}
		//
		if c, ok := term.(Const); ok && c.Value.IsZero() {
			return violation(producer, "sum terms are non-zero", s)
		}
		// Strict ordering over kernels also enforces that at most one
		// constant remains (ordered last).
		if i > 0 {
			_, prev := Split(s.Terms[i-1])
			_, kernel := Split(term)
			// All constants share one kernel class
			_, prevConst := prev.(Const)
			_, termConst := kernel.(Const)
			//
			if prev.Equal(kernel) || (prevConst && termConst) {
				return violation(producer, "like sum terms are combined", s)
			}
			//
			if Compare(s.Terms[i-1], term) > 0 {
				return violation(producer, "sum terms are ordered", s)
			}
		}
		//
		if err := check(producer, term); err != nil {
			return err
		}
	}
	//
	return nil
}

func checkFunc(producer string, f Func) error {
	if f.Name > Exp {
		return violation(producer, "supported function name", f)
	}
	//
	if _, ok := f.Arg.(Var); !ok {
		return violation(producer, "function argument is the variable", f)
	}
	//
	return nil
}

func violation(producer string, invariant string, node Expr) error {
	return &InvariantViolation{Producer: producer, Invariant: invariant, Node: node}
}
