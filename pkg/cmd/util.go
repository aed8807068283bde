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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/printer"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging applies the persistent logging flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// displayMode determines the rendering mode from the persistent flags.
func displayMode(cmd *cobra.Command) printer.Mode {
	if GetFlag(cmd, "decimal") {
		return printer.Decimal
	}
	//
	return printer.Fraction
}

// printSteps renders a derivation trace, one rule application per line.
func printSteps(steps []string) {
	for _, step := range steps {
		fmt.Println(step)
	}
}

// reportError renders a pipeline failure and exits.  Invariant violations are
// engine defects rather than user errors, and are surfaced as such through
// the fatal log rather than as ordinary output.
func reportError(err error) {
	var violation *expr.InvariantViolation
	//
	if errors.As(err, &violation) {
		log.Fatal(violation)
	}
	//
	fmt.Println(err)
	os.Exit(1)
}
