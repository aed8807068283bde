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

// Package printer renders canonical expression trees as human-readable
// mathematical text.  It assumes every canonical-form invariant already
// holds; raw trees must be normalized before printing.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/util/math"
)

// Mode selects how rational constants are displayed.
type Mode uint8

const (
	// Fraction renders rationals exactly, e.g. "1/3".
	Fraction Mode = iota
	// Decimal renders rationals as decimals, e.g. "0.3333333333333333".
	// This is a display-time approximation only; trees remain exact.
	Decimal
)

// Print renders a canonical tree using the variable name the user originally
// wrote.
func Print(e expr.Expr, mode Mode, variable string) string {
	switch t := e.(type) {
	case expr.Const:
		return printRat(t.Value, mode)
	case expr.Var:
		return variable
	case expr.Power:
		return fmt.Sprintf("%s^%d", Print(t.Base, mode, variable), t.Exponent)
	case expr.Mul:
		return printMul(t, mode, variable)
	case expr.Prod:
		// Atomic factors juxtapose without an operator, e.g. "x sin(x)"
		// renders as xsin(x).
		var builder strings.Builder
		//
		for _, f := range t.Factors {
			builder.WriteString(Print(f, mode, variable))
		}
		//
		return builder.String()
	case expr.Sum:
		return printSum(t, mode, variable)
	case expr.Func:
		return fmt.Sprintf("%s(%s)", t.Name.String(), variable)
	}
	// unreachable for well-formed trees
	return e.String()
}

func printMul(m expr.Mul, mode Mode, variable string) string {
	inner := Print(m.Arg, mode, variable)
	// Products and (non-canonical) sums need bracketing under a coefficient.
	switch m.Arg.(type) {
	case expr.Prod, expr.Sum:
		inner = fmt.Sprintf("(%s)", inner)
	}
	//
	if m.Coeff.Cmp(math.NewRatFromInt64(-1)) == 0 {
		return "-" + inner
	}
	//
	return printRat(m.Coeff, mode) + inner
}

func printSum(s expr.Sum, mode Mode, variable string) string {
	var builder strings.Builder
	//
	for i, term := range s.Terms {
		str := Print(term, mode, variable)
		//
		switch {
		case i == 0:
			builder.WriteString(str)
		case strings.HasPrefix(str, "-"):
			builder.WriteString(" - ")
			builder.WriteString(str[1:])
		default:
			builder.WriteString(" + ")
			builder.WriteString(str)
		}
	}
	//
	return builder.String()
}

func printRat(value math.Rat, mode Mode) string {
	if value.IsInt() || mode == Fraction {
		return value.String()
	}
	//
	return strconv.FormatFloat(value.Float64(), 'g', -1, 64)
}
