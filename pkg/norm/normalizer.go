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

// Package norm rewrites arbitrary well-formed expression trees into the
// unique canonical form for their semantic value.  Normalization is bottom-up
// (children first), may change node kinds, and is idempotent: normalizing a
// canonical tree returns it unchanged.  Trees which are well-formed but fall
// outside the supported algebraic domain (e.g. a function applied to a
// composite argument) fail explicitly rather than being approximated.
package norm

import (
	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/util/math"
)

// Normalize rewrites a raw tree into canonical form, or fails with an
// *expr.UnsupportedExpressionError when the tree lies outside the supported
// domain.  The result always passes expr.Check.
func Normalize(e expr.Expr) (expr.Expr, error) {
	switch t := e.(type) {
	case expr.Const:
		return t, nil
	case expr.Var:
		return t, nil
	case expr.Power:
		return normalizePower(t)
	case expr.Mul:
		return normalizeMul(t)
	case expr.Prod:
		return normalizeProd(t)
	case expr.Sum:
		return normalizeSum(t)
	case expr.Func:
		return normalizeFunc(t)
	}
	//
	return nil, &expr.UnsupportedExpressionError{Reason: "unknown node kind", Node: e}
}

// normalizePower applies x^0 → 1 and x^1 → x, folds constant bases exactly,
// and rejects any remaining non-variable base (a chain-rule shape such as
// (sin(x))^2 or (x+1)^2).
func normalizePower(p expr.Power) (expr.Expr, error) {
	base, err := Normalize(p.Base)
	//
	if err != nil {
		return nil, err
	}
	//
	if p.Exponent == 0 {
		return expr.NewConst64(1), nil
	} else if p.Exponent == 1 {
		return base, nil
	}
	//
	switch b := base.(type) {
	case expr.Const:
		return expr.NewConst(b.Value.Pow(p.Exponent)), nil
	case expr.Var:
		return expr.Power{Base: b, Exponent: p.Exponent}, nil
	}
	//
	return nil, &expr.UnsupportedExpressionError{Reason: "power base must be the variable", Node: p}
}

// normalizeMul absorbs nested muls and constants by multiplying coefficients,
// folds zero and identity coefficients away, and distributes the coefficient
// over sums so that a canonical mul only ever wraps an atom or a product.
func normalizeMul(m expr.Mul) (expr.Expr, error) {
	if m.Coeff.IsZero() {
		return expr.NewConst64(0), nil
	}
	//
	arg, err := Normalize(m.Arg)
	//
	if err != nil {
		return nil, err
	}
	//
	switch a := arg.(type) {
	case expr.Const:
		return expr.NewConst(m.Coeff.Mul(a.Value)), nil
	case expr.Mul:
		return wrapCoefficient(m.Coeff.Mul(a.Coeff), a.Arg), nil
	case expr.Sum:
		// Distribute, e.g. 2(x+1) and 2x+2 must canonicalize identically.
		terms := make([]expr.Expr, len(a.Terms))
		//
		for i, term := range a.Terms {
			terms[i] = expr.Mul{Coeff: m.Coeff, Arg: term}
		}
		//
		return normalizeSum(expr.Sum{Terms: terms})
	}
	//
	return wrapCoefficient(m.Coeff, arg), nil
}

// normalizeProd flattens nested products, hoists every constant contribution
// into a single running coefficient, combines powers of the variable by
// summing exponents, orders the surviving atomic factors, and rebuilds the
// smallest node expressing the result.  Products over non-atomic terms, such
// as (x+1)(x+2), are outside the domain.
func normalizeProd(p expr.Prod) (expr.Expr, error) {
	var (
		coefficient = math.One()
		atoms       []expr.Atom
		worklist    = make([]expr.Expr, 0, len(p.Factors))
	)
	// Normalize children up front
	for _, f := range p.Factors {
		nf, err := Normalize(f)
		//
		if err != nil {
			return nil, err
		}
		//
		worklist = append(worklist, nf)
	}
	// Classify factors, splicing products and hoisting coefficients
	for len(worklist) > 0 {
		f := worklist[0]
		worklist = worklist[1:]
		//
		switch t := f.(type) {
		case expr.Const:
			if t.Value.IsZero() {
				return expr.NewConst64(0), nil
			}
			//
			coefficient = coefficient.Mul(t.Value)
		case expr.Mul:
			coefficient = coefficient.Mul(t.Coeff)
			worklist = append(worklist, t.Arg)
		case expr.Prod:
			worklist = append(worklist, t.Factors...)
		case expr.Var:
			atoms = append(atoms, t)
		case expr.Power:
			atoms = append(atoms, t)
		case expr.Func:
			atoms = append(atoms, t)
		default:
			return nil, &expr.UnsupportedExpressionError{Reason: "non-atomic factor in product", Node: f}
		}
	}
	// Combine powers of the variable
	atoms = combinePowers(atoms)
	// Order factors canonically
	sortAtoms(atoms)
	// Rebuild the smallest expressing node
	switch len(atoms) {
	case 0:
		return expr.NewConst(coefficient), nil
	case 1:
		return wrapCoefficient(coefficient, atoms[0]), nil
	}
	//
	factors := make([]expr.Expr, len(atoms))
	//
	for i, a := range atoms {
		factors[i] = a
	}
	//
	return wrapCoefficient(coefficient, expr.Prod{Factors: factors}), nil
}

// normalizeSum flattens nested sums, combines like terms by summing the
// coefficients of equal kernels (e.g. exp(x) + exp(x) becomes 2exp(x)),
// folds constants into at most one trailing term, drops anything which
// cancels to zero, and orders what remains.
func normalizeSum(s expr.Sum) (expr.Expr, error) {
	var (
		flattened []expr.Expr
		kernels   []expr.Expr
		coeffs    []math.Rat
		constant  = math.Zero()
	)
	// Normalize children, splicing nested sums
	for _, term := range s.Terms {
		nt, err := Normalize(term)
		//
		if err != nil {
			return nil, err
		}
		//
		if inner, ok := nt.(expr.Sum); ok {
			flattened = append(flattened, inner.Terms...)
		} else {
			flattened = append(flattened, nt)
		}
	}
	// Group like terms by kernel, folding constants separately
	for _, term := range flattened {
		if c, ok := term.(expr.Const); ok {
			constant = constant.Add(c.Value)
			continue
		}
		//
		coeff, kernel := expr.Split(term)
		matched := false
		//
		for i := range kernels {
			if kernels[i].Equal(kernel) {
				coeffs[i] = coeffs[i].Add(coeff)
				matched = true
				//
				break
			}
		}
		//
		if !matched {
			kernels = append(kernels, kernel)
			coeffs = append(coeffs, coeff)
		}
	}
	// Rebuild surviving terms, dropping cancellations
	terms := make([]expr.Expr, 0, len(kernels)+1)
	//
	for i := range kernels {
		if !coeffs[i].IsZero() {
			terms = append(terms, wrapCoefficient(coeffs[i], kernels[i]))
		}
	}
	//
	if !constant.IsZero() {
		terms = append(terms, expr.NewConst(constant))
	}
	//
	switch len(terms) {
	case 0:
		return expr.NewConst64(0), nil
	case 1:
		return terms[0], nil
	}
	//
	sortTerms(terms)
	//
	return expr.Sum{Terms: terms}, nil
}

// normalizeFunc accepts a function whose (normalized) argument is the bare
// variable, and rejects everything else as an implicit chain-rule case.
func normalizeFunc(f expr.Func) (expr.Expr, error) {
	arg, err := Normalize(f.Arg)
	//
	if err != nil {
		return nil, err
	}
	//
	if _, ok := arg.(expr.Var); !ok {
		return nil, &expr.UnsupportedExpressionError{Reason: "function argument must be the variable", Node: f}
	}
	//
	return expr.Func{Name: f.Name, Arg: arg}, nil
}

// wrapCoefficient builds the canonical scalar multiple of a (canonical,
// non-constant) kernel, eliding the wrapper for an identity coefficient.
func wrapCoefficient(coefficient math.Rat, kernel expr.Expr) expr.Expr {
	if coefficient.IsZero() {
		return expr.NewConst64(0)
	} else if coefficient.IsOne() {
		return kernel
	}
	//
	return expr.Mul{Coeff: coefficient, Arg: kernel}
}
