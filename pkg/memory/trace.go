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
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/ed255/plonky2/pkg/lookup"
	"github.com/ed255/plonky2/pkg/trace"
	"github.com/ed255/plonky2/pkg/util"
)

// GenerateTrace materialises the fixed-width memory trace for a given
// execution-order operation log: raw columns in issue order, their sorted
// counterparts, the derived first-change flags, the range-check and counter
// columns, and the two permuted columns of the lookup argument.  The trace is
// built once per proof instance and is immutable thereafter.
func (s Stark) GenerateTrace(ops []Op) (*trace.ArrayTrace, error) {
	stats := util.NewPerfStats()
	defer stats.Log("generated memory trace")
	//
	n := len(ops)
	//
	sorted, err := Canonicalize(ops)
	if err != nil {
		return nil, err
	}
	//
	columns := make([][]goldilocks.Element, NumColumns)
	for i := range columns {
		columns[i] = make([]goldilocks.Element, n)
	}
	// Raw columns, in execution order
	for i, op := range ops {
		fillOp(columns, Timestamp, i, &op)
	}
	// Sorted columns, in address-then-time order
	for i, op := range sorted {
		fillOp(columns, SortedTimestamp, i, &op)
	}
	// Derived columns
	contextFirstChange, segmentFirstChange, virtualFirstChange := firstChangeFlags(sorted)
	columns[ContextFirstChange] = contextFirstChange
	columns[SegmentFirstChange] = segmentFirstChange
	columns[VirtualFirstChange] = virtualFirstChange
	columns[RangeCheck] = rangeCheckValues(sorted, contextFirstChange, segmentFirstChange, virtualFirstChange)
	columns[Counter] = counterValues(n)
	// Lookup argument columns
	permutedInputs, permutedTable, err := lookup.PermutedCols(columns[RangeCheck], columns[Counter])
	if err != nil {
		return nil, err
	}

	columns[RangeCheckPermuted] = permutedInputs
	columns[CounterPermuted] = permutedTable
	// Materialise the named-column table
	names := ColumnNames()
	traceColumns := make([]trace.ArrayTraceColumn, NumColumns)

	for i := range columns {
		traceColumns[i] = trace.NewColumn(names[i], columns[i])
	}
	//
	return trace.NewArrayTrace(traceColumns)
}

// fillOp writes one operation into the five scalar columns and eight value
// limbs rooted at a given base column (Timestamp for the raw block,
// SortedTimestamp for the sorted block; both blocks share one layout).
func fillOp(columns [][]goldilocks.Element, base, row int, op *Op) {
	columns[base+Timestamp][row].SetUint64(op.Timestamp)
	columns[base+AddrContext][row].SetUint64(op.Addr.Context)
	columns[base+AddrSegment][row].SetUint64(op.Addr.Segment)
	columns[base+AddrVirtual][row].SetUint64(op.Addr.Virtual)

	if op.IsRead {
		columns[base+IsRead][row].SetOne()
	}

	for j := 0; j < NumValueLimbs; j++ {
		columns[base+valueStart+j][row] = op.Value[j]
	}
}
