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
package calc

import (
	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/norm"
	"github.com/consensys/go-cas/pkg/util/math"
)

// Integrate computes an antiderivative of a canonical tree with respect to
// the variable, producing a new canonical tree along with a derivation trace
// of one line per rule application.  The additive constant of integration is
// intentionally omitted from the result; callers needing it append it at
// presentation time.  Products of non-constant terms fail with an
// *expr.UnsupportedOperationError, since neither substitution nor
// product-based integration is in scope.
func Integrate(e expr.Expr) (expr.Expr, []string, error) {
	tr := &trace{}
	//
	i, err := integrate(e, tr)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	if err := expr.Check("integrate", i); err != nil {
		return nil, nil, err
	}
	//
	return i, tr.steps, nil
}

func integrate(e expr.Expr, tr *trace) (expr.Expr, error) {
	switch t := e.(type) {
	case expr.Const:
		// ∫ c dx = c.x
		tr.stepf("∫ %s dx = %sx + C", t.Value.String(), t.Value.String())
		//
		return norm.Normalize(expr.Mul{Coeff: t.Value, Arg: expr.Var{}})
	case expr.Var:
		// ∫ x dx = x^2/2
		tr.stepf("∫ x dx = x^2/2 + C")
		//
		return integratePower(expr.Power{Base: expr.Var{}, Exponent: 1})
	case expr.Power:
		// ∫ x^n dx = x^(n+1)/(n+1)
		tr.stepf("∫ x^%d dx = x^%d/%d + C", t.Exponent, t.Exponent+1, t.Exponent+1)
		//
		return integratePower(t)
	case expr.Mul:
		// ∫ c.f dx = c.∫ f dx
		tr.stepf("extracted the constant %s:", t.Coeff.String())
		//
		inner, err := integrate(t.Arg, tr)
		//
		if err != nil {
			return nil, err
		}
		//
		return norm.Normalize(expr.Mul{Coeff: t.Coeff, Arg: inner})
	case expr.Sum:
		// ∫ (f + g + ...) dx = ∫ f dx + ∫ g dx + ...
		return integrateSum(t, tr)
	case expr.Prod:
		return nil, &expr.UnsupportedOperationError{
			Op: "integrate", Reason: "integration of products not supported", Node: t,
		}
	case expr.Func:
		return integrateFunc(t, tr)
	}
	//
	return nil, &expr.UnsupportedOperationError{Op: "integrate", Reason: "unknown node kind", Node: e}
}

// integratePower applies the power rule.  This is total for non-negative
// exponents: n+1 is at least one, hence the coefficient 1/(n+1) is always
// well-defined, and the logarithmic case x^-1 cannot be represented at all.
func integratePower(p expr.Power) (expr.Expr, error) {
	coefficient, err := math.NewRat(1, int64(p.Exponent)+1)
	//
	if err != nil {
		return nil, err
	}
	//
	return norm.Normalize(expr.Mul{
		Coeff: coefficient,
		Arg:   expr.Power{Base: expr.Var{}, Exponent: p.Exponent + 1},
	})
}

func integrateSum(s expr.Sum, tr *trace) (expr.Expr, error) {
	tr.stepf("using linearity of integration:")
	//
	terms := make([]expr.Expr, len(s.Terms))
	//
	for i, term := range s.Terms {
		ith, err := integrate(term, tr)
		//
		if err != nil {
			return nil, err
		}
		//
		terms[i] = ith
	}
	//
	return norm.Normalize(expr.Sum{Terms: terms})
}

func integrateFunc(f expr.Func, tr *trace) (expr.Expr, error) {
	switch f.Name {
	case expr.Sin:
		// ∫ sin x dx = -cos x
		tr.stepf("∫ sin(x) dx = -cos(x) + C")
		//
		return norm.Normalize(expr.Mul{
			Coeff: math.NewRatFromInt64(-1),
			Arg:   expr.Func{Name: expr.Cos, Arg: f.Arg},
		})
	case expr.Cos:
		// ∫ cos x dx = sin x
		tr.stepf("∫ cos(x) dx = sin(x) + C")
		//
		return expr.Func{Name: expr.Sin, Arg: f.Arg}, nil
	case expr.Exp:
		// ∫ exp x dx = exp x
		tr.stepf("∫ exp(x) dx = exp(x) + C")
		//
		return f, nil
	}
	//
	return nil, &expr.UnsupportedOperationError{Op: "integrate", Reason: "unsupported function", Node: f}
}
