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
package stark

import "fmt"

// Violation reports a named polynomial identity which failed to vanish.  Any
// violation is fatal for the proof instance: the argument is valid for the
// entire trace or the proof is rejected outright.
type Violation struct {
	// Handle of the failing constraint.
	Handle string
	// Row at which the constraint failed to vanish.
	Row int
}

func (p *Violation) Error() string {
	return fmt.Sprintf("constraint %q does not hold (row %d)", p.Handle, p.Row)
}

// DegreeError reports a constraint whose polynomial degree exceeds the bound
// the system declares to the proof engine.  This is fatal, and caught at
// setup/test time rather than during proving.
type DegreeError struct {
	// Handle of the offending constraint.
	Handle string
	// Degree actually computed for the constraint.
	Degree uint
	// Bound declared by the constraint system.
	Bound uint
}

func (p *DegreeError) Error() string {
	return fmt.Sprintf("constraint %q has degree %d, exceeding declared bound %d", p.Handle, p.Degree, p.Bound)
}
