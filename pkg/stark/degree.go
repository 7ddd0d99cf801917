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

import (
	"github.com/ed255/plonky2/pkg/circuit"
)

// CheckDegree verifies that no constraint emitted by a system exceeds its
// declared degree bound, returning the largest degree observed.  Column
// accesses count as degree one.  The surrounding engine sizes its low-degree
// extension from the declared bound, so exceeding it is fatal; this check is
// intended for setup/test time.
func CheckDegree(s Stark) (uint, error) {
	width := s.Columns()
	// Build the circuit form of every constraint
	builder := circuit.NewBuilder()
	vars := Vars[circuit.Variable]{
		Local: make([]circuit.Variable, width),
		Next:  make([]circuit.Variable, width),
	}

	for c := 0; c < width; c++ {
		vars.Local[c] = builder.Input()
	}

	for c := 0; c < width; c++ {
		vars.Next[c] = builder.Input()
	}
	//
	yield := NewConsumer[circuit.Variable]()
	s.EvalCircuit(builder, vars, yield)
	// Bound the degree of each constraint wire
	var observed uint

	for _, e := range yield.Emitted() {
		degree := builder.Degree(e.Value)
		if degree > s.ConstraintDegree() {
			return degree, &DegreeError{e.Handle, degree, s.ConstraintDegree()}
		}

		observed = max(observed, degree)
	}
	// Success
	return observed, nil
}
