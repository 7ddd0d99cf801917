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
package memory

import (
	"fmt"

	"github.com/ed255/plonky2/pkg/circuit"
	"github.com/ed255/plonky2/pkg/field"
	"github.com/ed255/plonky2/pkg/stark"
)

// Stark is the memory consistency argument's constraint system.  It declares
// the column layout of the memory trace and evaluates the same polynomial
// identities through two entry points: packed field values for proving and
// native verification, and circuit variables for recursive verification.  The
// argument is entirely trace-internal, so it carries no public inputs.
type Stark struct{}

// ConstraintDegreeBound is the declared bound on the degree of any constraint
// emitted by the memory argument.  The surrounding engine sizes its
// low-degree extension from this.
const ConstraintDegreeBound = 3

// Columns returns the width of the memory trace.
func (s Stark) Columns() int {
	return NumColumns
}

// PublicInputs returns zero: the argument is entirely trace-internal.
func (s Stark) PublicInputs() int {
	return 0
}

// ConstraintDegree returns the declared degree bound.
func (s Stark) ConstraintDegree() uint {
	return ConstraintDegreeBound
}

// EvalPacked evaluates every constraint over packed row batches.
func (s Stark) EvalPacked(vars stark.Vars[field.Packed], yield *stark.Consumer[field.Packed]) {
	evalConstraints(vars, yield)
}

// EvalCircuit evaluates every constraint symbolically, emitting explicit
// gates into the given builder.  The builder itself is reached through the
// wires in vars; it is passed here to make the construction side effect part
// of the signature.
func (s Stark) EvalCircuit(builder *circuit.Builder, vars stark.Vars[circuit.Variable], yield *stark.Consumer[circuit.Variable]) {
	evalConstraints(vars, yield)
}

// evalConstraints is the single definition of the memory argument's
// polynomial system.  It is instantiated once per backend via the generic
// element interface, so the packed and circuit evaluators cannot diverge.
func evalConstraints[E field.Element[E]](vars stark.Vars[E], yield *stark.Consumer[E]) {
	one := vars.Local[Timestamp].One()

	timestamp := vars.Local[SortedTimestamp]
	addrContext := vars.Local[SortedAddrContext]
	addrSegment := vars.Local[SortedAddrSegment]
	addrVirtual := vars.Local[SortedAddrVirtual]

	nextTimestamp := vars.Next[SortedTimestamp]
	nextIsRead := vars.Next[SortedIsRead]
	nextAddrContext := vars.Next[SortedAddrContext]
	nextAddrSegment := vars.Next[SortedAddrSegment]
	nextAddrVirtual := vars.Next[SortedAddrVirtual]

	contextFirstChange := vars.Local[ContextFirstChange]
	segmentFirstChange := vars.Local[SegmentFirstChange]
	virtualFirstChange := vars.Local[VirtualFirstChange]
	addressUnchanged := one.Sub(contextFirstChange).Sub(segmentFirstChange).Sub(virtualFirstChange)

	rangeCheck := vars.Local[RangeCheck]

	// First set of ordering constraints: first-change flags are boolean.
	yield.Constraint("memory:context_first_change:bool",
		contextFirstChange.Mul(one.Sub(contextFirstChange)))
	yield.Constraint("memory:segment_first_change:bool",
		segmentFirstChange.Mul(one.Sub(segmentFirstChange)))
	yield.Constraint("memory:virtual_first_change:bool",
		virtualFirstChange.Mul(one.Sub(virtualFirstChange)))
	yield.Constraint("memory:address_unchanged:bool",
		addressUnchanged.Mul(one.Sub(addressUnchanged)))

	contextDiff := nextAddrContext.Sub(addrContext)
	segmentDiff := nextAddrSegment.Sub(addrSegment)
	virtualDiff := nextAddrVirtual.Sub(addrVirtual)
	timestampDiff := nextTimestamp.Sub(timestamp)

	// Second set of ordering constraints: no change in any column of higher
	// priority than the one whose first-change flag fired.
	yield.ConstraintTransition("memory:segment_first_change:context_unchanged",
		segmentFirstChange.Mul(contextDiff))
	yield.ConstraintTransition("memory:virtual_first_change:context_unchanged",
		virtualFirstChange.Mul(contextDiff))
	yield.ConstraintTransition("memory:virtual_first_change:segment_unchanged",
		virtualFirstChange.Mul(segmentDiff))
	yield.ConstraintTransition("memory:address_unchanged:context_unchanged",
		addressUnchanged.Mul(contextDiff))
	yield.ConstraintTransition("memory:address_unchanged:segment_unchanged",
		addressUnchanged.Mul(segmentDiff))
	yield.ConstraintTransition("memory:address_unchanged:virtual_unchanged",
		addressUnchanged.Mul(virtualDiff))

	// Third set of ordering constraints: the committed range-check value is
	// the gap of whichever column must be increasing.
	rangeCheckValue := contextFirstChange.Mul(contextDiff.Sub(one)).
		Add(segmentFirstChange.Mul(segmentDiff.Sub(one))).
		Add(virtualFirstChange.Mul(virtualDiff.Sub(one))).
		Add(addressUnchanged.Mul(timestampDiff.Sub(one)))
	yield.ConstraintTransition("memory:range_check:value",
		rangeCheck.Sub(rangeCheckValue))

	// Reads from an unchanged address must return the previous row's word.
	for i := 0; i < NumValueLimbs; i++ {
		valueDiff := vars.Next[SortedValueLimb(i)].Sub(vars.Local[SortedValueLimb(i)])
		yield.Constraint(fmt.Sprintf("memory:read_consistency:%d", i),
			nextIsRead.Mul(addressUnchanged).Mul(valueDiff))
	}

	// Lookup argument for the range check.
	localPermutedInput := vars.Local[RangeCheckPermuted]
	nextPermutedInput := vars.Next[RangeCheckPermuted]
	nextPermutedTable := vars.Next[CounterPermuted]

	// A "vertical" diff between the local and next permuted inputs.
	diffInputPrev := nextPermutedInput.Sub(localPermutedInput)
	// A "horizontal" diff between the next permuted input and table value.
	diffInputTable := nextPermutedInput.Sub(nextPermutedTable)

	yield.Constraint("memory:lookup:step", diffInputPrev.Mul(diffInputTable))

	// On the wrap-around pair the next row is the first row, so this in
	// effect constrains the first row of the lookup columns.
	yield.ConstraintLastRow("memory:lookup:boundary", diffInputTable)
}
