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

// Package memory implements the memory consistency argument: the
// arithmetization which converts a raw, execution-order sequence of memory
// operations into a set of polynomial identities proving that every read
// returns the value of the most recent write to the same address, and that no
// operation was invented, dropped or reordered undetected, without revealing
// the underlying permutation.
package memory

import "fmt"

// NumValueLimbs is the number of field elements encoding one memory word.
// Each limb carries up to 32 bits of the wide word.
const NumValueLimbs = 8

// Raw (execution-order) columns.
const (
	// Timestamp is the monotonically issued operation counter.
	Timestamp = iota
	// IsRead is one for loads and zero for stores.
	IsRead
	// AddrContext is the context component of the operation address.
	AddrContext
	// AddrSegment is the segment component of the operation address.
	AddrSegment
	// AddrVirtual is the virtual-address component of the operation address.
	AddrVirtual
)

// Value limbs occupy the columns immediately after the raw address.
const valueStart = AddrVirtual + 1

// Sorted counterparts of the raw columns, in address-then-time order.
const (
	// SortedTimestamp is the timestamp column in sorted order.
	SortedTimestamp = valueStart + NumValueLimbs + iota
	// SortedIsRead is the read flag column in sorted order.
	SortedIsRead
	// SortedAddrContext is the context column in sorted order.
	SortedAddrContext
	// SortedAddrSegment is the segment column in sorted order.
	SortedAddrSegment
	// SortedAddrVirtual is the virtual-address column in sorted order.
	SortedAddrVirtual
)

const sortedValueStart = SortedAddrVirtual + 1

// Derived columns.
const (
	// ContextFirstChange is one exactly when the next sorted row begins a
	// different context.
	ContextFirstChange = sortedValueStart + NumValueLimbs + iota
	// SegmentFirstChange is one exactly when the context is unchanged but
	// the segment differs on the next sorted row.
	SegmentFirstChange
	// VirtualFirstChange is one exactly when context and segment are
	// unchanged but the virtual address differs on the next sorted row.
	VirtualFirstChange
	// RangeCheck holds the monotonic delta which the lookup argument proves
	// to lie in [0, N).
	RangeCheck
	// Counter is the strictly increasing column 0..N-1 serving as the
	// lookup table.
	Counter
	// RangeCheckPermuted is the permuted range-check column of the lookup
	// argument.
	RangeCheckPermuted
	// CounterPermuted is the permuted counter column of the lookup
	// argument.
	CounterPermuted
	// NumColumns is the total width of the memory trace.
	NumColumns
)

// ValueLimb returns the column index of the ith raw value limb.
func ValueLimb(i int) int {
	return valueStart + i
}

// SortedValueLimb returns the column index of the ith sorted value limb.
func SortedValueLimb(i int) int {
	return sortedValueStart + i
}

// ColumnNames returns the name of every column of the memory trace, in column
// order.
func ColumnNames() []string {
	names := make([]string, NumColumns)
	names[Timestamp] = "timestamp"
	names[IsRead] = "is_read"
	names[AddrContext] = "addr_context"
	names[AddrSegment] = "addr_segment"
	names[AddrVirtual] = "addr_virtual"
	names[SortedTimestamp] = "sorted_timestamp"
	names[SortedIsRead] = "sorted_is_read"
	names[SortedAddrContext] = "sorted_addr_context"
	names[SortedAddrSegment] = "sorted_addr_segment"
	names[SortedAddrVirtual] = "sorted_addr_virtual"
	names[ContextFirstChange] = "context_first_change"
	names[SegmentFirstChange] = "segment_first_change"
	names[VirtualFirstChange] = "virtual_first_change"
	names[RangeCheck] = "range_check"
	names[Counter] = "counter"
	names[RangeCheckPermuted] = "range_check_permuted"
	names[CounterPermuted] = "counter_permuted"

	for i := 0; i < NumValueLimbs; i++ {
		names[ValueLimb(i)] = fmt.Sprintf("value_%d", i)
		names[SortedValueLimb(i)] = fmt.Sprintf("sorted_value_%d", i)
	}

	return names
}
