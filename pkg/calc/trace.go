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
	"fmt"
)

// trace accumulates one human-readable line per rule application, in
// application order.  Both engines thread a trace through their recursion so
// that every result can be replayed as a derivation.
type trace struct {
	steps []string
}

// stepf records a single rule application.
func (p *trace) stepf(format string, args ...any) {
	p.steps = append(p.steps, fmt.Sprintf(format, args...))
}
