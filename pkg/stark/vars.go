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

// Package stark provides the constraint-evaluation contract between a trace
// and a proof engine: evaluation variables, the constraint consumer, native
// and recursive checking drivers, and constraint-degree analysis.
package stark

import (
	"github.com/ed255/plonky2/pkg/circuit"
	"github.com/ed255/plonky2/pkg/field"
)

// Vars holds the column values of a pair of adjacent rows under the cyclic
// successor convention: the successor of the last row is the first row.  All
// constraints are expressed over such a pair.
type Vars[E any] struct {
	// Local holds one value per column for the row under evaluation.
	Local []E
	// Next holds one value per column for its (cyclic) successor.
	Next []E
}

// Stark is the two-entry-point evaluation contract handed to the proof
// engine.  Both entry points declare the same column layout and emit the same
// polynomial system; the packed form serves proving and native verification
// while the circuit form serves recursive verification.
type Stark interface {
	// Columns returns the number of columns this system evaluates over.
	Columns() int
	// PublicInputs returns the number of public inputs (zero for arguments
	// which are entirely trace-internal).
	PublicInputs() int
	// ConstraintDegree returns the declared bound on the degree of any
	// emitted constraint.
	ConstraintDegree() uint
	// EvalPacked evaluates every constraint over packed row batches.
	EvalPacked(vars Vars[field.Packed], yield *Consumer[field.Packed])
	// EvalCircuit evaluates every constraint symbolically, emitting gates
	// into the given builder.
	EvalCircuit(builder *circuit.Builder, vars Vars[circuit.Variable], yield *Consumer[circuit.Variable])
}
