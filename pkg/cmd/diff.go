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
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] expression",
	Short: "differentiate an expression.",
	Long: `Parse and canonicalize an expression, then compute its derivative with
	 respect to the variable.  Products of non-constant terms are rejected, since
	 the product rule is out of scope.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		result, err := cas.Differentiate(args[0], displayMode(cmd))
		//
		if err != nil {
			reportError(err)
		}
		//
		if GetFlag(cmd, "steps") {
			printSteps(result.Steps)
		}
		//
		fmt.Println(result.Output)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("steps", false, "report one line per rule applied")
}
