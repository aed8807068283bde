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

// Package calc implements rule-based differentiation and integration by
// structural recursion over canonical trees.  Both engines require canonical
// input, re-normalize every intermediate result, record one derivation step
// per rule application, and validate the final tree against the
// canonical-form checker before returning it.  Constructs
// requiring the product rule, the chain rule or logarithms are rejected
// explicitly: the first two cannot reach the engines at all (canonical form
// excludes composite function arguments, and products fail with a typed
// error), whilst the logarithm case is structurally unreachable since
// exponents are restricted to non-negative integers.
package calc

import (
	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/norm"
	"github.com/consensys/go-cas/pkg/util/math"
)

// Differentiate computes the derivative of a canonical tree with respect to
// the variable, producing a new canonical tree along with a derivation trace
// of one line per rule application.  Products of non-constant terms fail
// with an *expr.UnsupportedOperationError, since the product rule is
// deliberately out of scope.
func Differentiate(e expr.Expr) (expr.Expr, []string, error) {
	tr := &trace{}
	//
	d, err := derive(e, tr)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	if err := expr.Check("differentiate", d); err != nil {
		return nil, nil, err
	}
	//
	return d, tr.steps, nil
}

func derive(e expr.Expr, tr *trace) (expr.Expr, error) {
	switch t := e.(type) {
	case expr.Const:
		// d/dx c = 0
		tr.stepf("d/dx(%s) = 0", t.Value.String())
		//
		return expr.NewConst64(0), nil
	case expr.Var:
		// d/dx x = 1
		tr.stepf("d/dx(x) = 1")
		//
		return expr.NewConst64(1), nil
	case expr.Power:
		// d/dx x^n = n.x^(n-1)
		tr.stepf("d/dx(x^%d) = %dx^(%d)", t.Exponent, t.Exponent, t.Exponent-1)
		//
		return norm.Normalize(expr.Mul{
			Coeff: math.NewRatFromInt64(int64(t.Exponent)),
			Arg:   expr.Power{Base: expr.Var{}, Exponent: t.Exponent - 1},
		})
	case expr.Mul:
		// d/dx c.f = c.f'
		tr.stepf("extracted the constant %s:", t.Coeff.String())
		//
		inner, err := derive(t.Arg, tr)
		//
		if err != nil {
			return nil, err
		}
		//
		return norm.Normalize(expr.Mul{Coeff: t.Coeff, Arg: inner})
	case expr.Sum:
		// d/dx (f + g + ...) = f' + g' + ...
		return deriveSum(t, tr)
	case expr.Prod:
		return nil, &expr.UnsupportedOperationError{
			Op: "differentiate", Reason: "product rule not supported", Node: t,
		}
	case expr.Func:
		return deriveFunc(t, tr)
	}
	//
	return nil, &expr.UnsupportedOperationError{Op: "differentiate", Reason: "unknown node kind", Node: e}
}

func deriveSum(s expr.Sum, tr *trace) (expr.Expr, error) {
	tr.stepf("using linearity of differentiation:")
	//
	terms := make([]expr.Expr, len(s.Terms))
	//
	for i, term := range s.Terms {
		d, err := derive(term, tr)
		//
		if err != nil {
			return nil, err
		}
		//
		terms[i] = d
	}
	//
	return norm.Normalize(expr.Sum{Terms: terms})
}

func deriveFunc(f expr.Func, tr *trace) (expr.Expr, error) {
	switch f.Name {
	case expr.Sin:
		// d/dx sin x = cos x
		tr.stepf("d/dx(sin(x)) = cos(x)")
		//
		return expr.Func{Name: expr.Cos, Arg: f.Arg}, nil
	case expr.Cos:
		// d/dx cos x = -sin x
		tr.stepf("d/dx(cos(x)) = -sin(x)")
		//
		return norm.Normalize(expr.Mul{
			Coeff: math.NewRatFromInt64(-1),
			Arg:   expr.Func{Name: expr.Sin, Arg: f.Arg},
		})
	case expr.Exp:
		// d/dx exp x = exp x
		tr.stepf("d/dx(exp(x)) = exp(x)")
		//
		return f, nil
	}
	//
	return nil, &expr.UnsupportedOperationError{Op: "differentiate", Reason: "unsupported function", Node: f}
}
