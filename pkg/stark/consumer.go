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

// Kind determines on which rows an emitted constraint must vanish.
type Kind uint8

const (
	// EveryRow constraints must vanish on all row pairs, including the
	// wrap-around pair joining the last row back to the first.
	EveryRow Kind = iota
	// Transition constraints are ignored on the last row (which has no
	// genuine successor).
	Transition
	// LastRow constraints are evaluated only on the wrap-around pair, whose
	// next-row values are those of the first row.
	LastRow
)

// Emitted is a single constraint produced during evaluation, tagged with the
// rows it applies to and a handle identifying it in violation reports.
type Emitted[E any] struct {
	// Handle uniquely identifies this constraint.  This is primarily useful
	// for debugging.
	Handle string
	// Kind determines the rows on which this constraint applies.
	Kind Kind
	// Value is the evaluated (or symbolic) constraint expression.
	Value E
}

// Consumer accumulates the constraints emitted during a single evaluation
// pass, in emission order.
type Consumer[E any] struct {
	emitted []Emitted[E]
}

// NewConsumer constructs an empty constraint consumer.
func NewConsumer[E any]() *Consumer[E] {
	return &Consumer[E]{}
}

// Constraint emits a constraint which must vanish on every row.
func (p *Consumer[E]) Constraint(handle string, value E) {
	p.emitted = append(p.emitted, Emitted[E]{handle, EveryRow, value})
}

// ConstraintTransition emits a constraint which must vanish on every row
// except the last.
func (p *Consumer[E]) ConstraintTransition(handle string, value E) {
	p.emitted = append(p.emitted, Emitted[E]{handle, Transition, value})
}

// ConstraintLastRow emits a constraint evaluated only on the wrap-around pair
// (last row, first row).
func (p *Consumer[E]) ConstraintLastRow(handle string, value E) {
	p.emitted = append(p.emitted, Emitted[E]{handle, LastRow, value})
}

// Emitted returns the constraints accumulated so far, in emission order.
func (p *Consumer[E]) Emitted() []Emitted[E] {
	return p.emitted
}

// AppliesAt determines whether a constraint of a given kind must vanish on
// the pair rooted at a given row, for a trace of a given height.
func AppliesAt(kind Kind, row, height int) bool {
	switch kind {
	case Transition:
		return row < height-1
	case LastRow:
		return row == height-1
	default:
		return true
	}
}
