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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-cas/pkg/cas"
	"github.com/consensys/go-cas/pkg/expr"
	"github.com/consensys/go-cas/pkg/printer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "interactive calculus session.",
	Long: `Start an interactive session.  A bare expression is canonicalized;
	 "diff <expression>" differentiates it and "int <expression>" integrates it.
	 Leave with "quit".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if err := repl(displayMode(cmd)); err != nil {
			reportError(err)
		}
	},
}

// repl drives a raw-mode read/eval/print loop until end-of-input.
func repl(mode printer.Mode) error {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	//
	if err != nil {
		return err
	}
	// Restore original state on exit.
	defer func() {
		_ = term.Restore(fd, state)
	}()
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	terminal := term.NewTerminal(screen, "> ")
	//
	for {
		line, err := terminal.ReadLine()
		//
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		//
		if err := evalLine(terminal, strings.TrimSpace(line), mode); err != nil {
			if err == io.EOF {
				return nil
			}
			// An engine defect aborts the session; user errors were already
			// reported in-loop.
			return err
		}
	}
}

// evalLine dispatches a single line of input, writing its outcome to the
// terminal.  Returns io.EOF when the user quits, or an error only for
// internal defects.
func evalLine(terminal *term.Terminal, line string, mode printer.Mode) error {
	var (
		result cas.Result
		err    error
	)
	//
	switch {
	case line == "":
		return nil
	case line == "quit" || line == "exit":
		return io.EOF
	case strings.HasPrefix(line, "diff "):
		result, err = cas.Differentiate(strings.TrimPrefix(line, "diff "), mode)
	case strings.HasPrefix(line, "int "):
		result, err = cas.Integrate(strings.TrimPrefix(line, "int "), mode)
	default:
		result, err = cas.Simplify(line, mode)
	}
	//
	if err != nil {
		var violation *expr.InvariantViolation
		// Defects propagate; user errors report and continue.
		if errors.As(err, &violation) {
			return violation
		}
		//
		fmt.Fprintln(terminal, err)
		//
		return nil
	}
	//
	fmt.Fprintln(terminal, result.Output)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
}
