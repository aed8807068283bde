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
package cmd

import (
	"fmt"

	"github.com/consensys/go-cas/pkg/cas"
	"github.com/consensys/go-cas/pkg/printer"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] expression",
	Short: "check an expression canonicalizes.",
	Long: `Parse and canonicalize an expression, validate the result against every
	 canonical-form invariant, and report the canonical tree.  Useful for
	 debugging the normalizer and for reproducing invariant violations.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		// Simplify already runs the invariant checker over its output.
		result, err := cas.Simplify(args[0], printer.Fraction)
		//
		if err != nil {
			reportError(err)
		}
		//
		fmt.Printf("OK %s\n", result.Expr.String())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
