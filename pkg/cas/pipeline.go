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

// Package cas wires the full pipeline together: parse, normalize, validate,
// apply a calculus rule engine, validate again, and render.  It is the public
// surface intended for callers who hold expression text rather than trees;
// callers holding canonical trees can use the norm and calc packages
// directly.
package cas

import (
	"github.com/consensys/go-cas/pkg/calc"
	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/norm"
	"github.com/consensys/go-cas/pkg/parser"
	"github.com/consensys/go-cas/pkg/printer"
	log "github.com/sirupsen/logrus"
)

// Result packages the outcome of a pipeline run: the canonical tree itself,
// its rendering, the variable name the user originally wrote and, for the
// calculus operations, the derivation trace (one line per rule applied).
type Result struct {
	// Canonical output tree.
	Expr expr.Expr
	// Rendering of the output tree.
	Output string
	// Original variable name.
	Variable string
	// Derivation trace (empty for simplification).
	Steps []string
}

// Simplify parses and normalizes an input string, rendering the canonical
// form.
func Simplify(input string, mode printer.Mode) (Result, error) {
	canonical, variable, err := normalizeString(input)
	//
	if err != nil {
		return Result{}, err
	}
	//
	return Result{canonical, printer.Print(canonical, mode, variable), variable, nil}, nil
}

// Differentiate parses, normalizes and symbolically differentiates an input
// string, reporting the derivation alongside the result.
func Differentiate(input string, mode printer.Mode) (Result, error) {
	canonical, variable, err := normalizeString(input)
	//
	if err != nil {
		return Result{}, err
	}
	//
	derivative, steps, err := calc.Differentiate(canonical)
	//
	if err != nil {
		return Result{}, err
	}
	//
	log.Debugf("differentiated %s => %s", canonical.String(), derivative.String())
	//
	return Result{derivative, printer.Print(derivative, mode, variable), variable, steps}, nil
}

// Integrate parses, normalizes and symbolically integrates an input string,
// reporting the derivation alongside the result.  The rendered output
// carries the additive constant of integration; the result tree
// intentionally does not.
func Integrate(input string, mode printer.Mode) (Result, error) {
	canonical, variable, err := normalizeString(input)
	//
	if err != nil {
		return Result{}, err
	}
	//
	integral, steps, err := calc.Integrate(canonical)
	//
	if err != nil {
		return Result{}, err
	}
	//
	log.Debugf("integrated %s => %s", canonical.String(), integral.String())
	//
	return Result{integral, printer.Print(integral, mode, variable) + " + C", variable, steps}, nil
}

// normalizeString parses an input string and canonicalizes the raw tree,
// validating the result against the invariant checker.
func normalizeString(input string) (expr.Expr, string, error) {
	raw, variable, err := parser.Parse(input)
	//
	if err != nil {
		return nil, "", err
	}
	//
	log.Debugf("parsed \"%s\" => %s", input, raw.String())
	//
	canonical, err := norm.Normalize(raw)
	//
	if err != nil {
		return nil, "", err
	}
	//
	log.Debugf("normalized %s => %s", raw.String(), canonical.String())
	// A failure here is a defect in the normalizer, not a user error.
	if err := expr.Check("normalize", canonical); err != nil {
		return nil, "", err
	}
	//
	return canonical, variable, nil
}
