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
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/ed255/plonky2/pkg/circuit"
	"github.com/ed255/plonky2/pkg/field"
)

// Check verifies that every constraint of a system vanishes over a given
// trace, using packed evaluation.  Row pairs are batched PackedWidth at a
// time; partial batches are padded by replicating the final pair, with padded
// lanes excluded from reporting.  Row batches are independent, so the result
// does not depend on batching.
func Check(s Stark, tr TraceView) error {
	n := tr.Height()
	width := s.Columns()
	//
	if tr.Width() != width {
		return fmt.Errorf("trace has %d columns, system declares %d", tr.Width(), width)
	}
	//
	local := make([]field.Packed, width)
	next := make([]field.Packed, width)
	//
	for base := 0; base < n; base += field.PackedWidth {
		// Assemble one packed row pair per column
		for c := 0; c < width; c++ {
			var cur, nxt [field.PackedWidth]goldilocks.Element

			for l := 0; l < field.PackedWidth; l++ {
				i := min(base+l, n-1)
				cur[l] = tr.Get(c, i)
				nxt[l] = tr.Get(c, (i+1)%n)
			}

			local[c] = field.Pack(cur)
			next[c] = field.Pack(nxt)
		}
		// Evaluate all constraints over this batch
		yield := NewConsumer[field.Packed]()
		s.EvalPacked(Vars[field.Packed]{Local: local, Next: next}, yield)
		// Check each lane against the applicable kinds
		for _, e := range yield.Emitted() {
			for l := 0; l < field.PackedWidth; l++ {
				row := base + l
				if row >= n {
					break
				}

				if !AppliesAt(e.Kind, row, n) {
					continue
				}

				if v := e.Value.Lane(l); !v.IsZero() {
					return &Violation{e.Handle, row}
				}
			}
		}
	}
	// Success
	return nil
}

// CheckCircuit verifies that every constraint of a system vanishes over a
// given trace when evaluated through its circuit form.  The circuit is built
// once, then run per row pair over the extension field with base-field column
// values embedded.  Agreement with Check is a correctness requirement of the
// two evaluation entry points, not a matter of luck.
func CheckCircuit(s Stark, tr TraceView) error {
	n := tr.Height()
	width := s.Columns()
	//
	if tr.Width() != width {
		return fmt.Errorf("trace has %d columns, system declares %d", tr.Width(), width)
	}
	// Build the circuit once: local row wires, then next row wires
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
	//
	assignment := make([]field.Ext, 2*width)
	raw := make([]goldilocks.Element, width)
	//
	for row := 0; row < n; row++ {
		tr.Row(row, raw)
		for c := 0; c < width; c++ {
			assignment[c] = field.NewExt(raw[c])
		}

		tr.Row((row+1)%n, raw)
		for c := 0; c < width; c++ {
			assignment[width+c] = field.NewExt(raw[c])
		}
		//
		out, err := builder.Run(assignment)
		if err != nil {
			return err
		}
		//
		for _, e := range yield.Emitted() {
			if !AppliesAt(e.Kind, row, n) {
				continue
			}

			if !out[e.Value.Index()].IsZero() {
				return &Violation{e.Handle, row}
			}
		}
	}
	// Success
	return nil
}

// TraceView is the read-only slice of a trace the checking drivers need.
type TraceView interface {
	// Height returns the number of rows.
	Height() int
	// Width returns the number of columns.
	Width() int
	// Get returns the value at a given column and row.
	Get(col, row int) goldilocks.Element
	// Row copies the values of every column at a given row into dst.
	Row(row int, dst []goldilocks.Element)
}
