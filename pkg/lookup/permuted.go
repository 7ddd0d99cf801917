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

// Package lookup provides the multiset argument used to prove that every
// value of a column belongs to a known table, without revealing which value
// maps to which table entry.
package lookup

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// PermutedCols builds the two permuted columns of a lookup argument.  Given
// equal-length sequences of inputs (the values to bound) and a table (the
// permitted domain), it returns permutations A' of the inputs and B' of the
// table such that, for every index i, either A'[i] == A'[i-1] or A'[i] ==
// B'[i].  A' is sorted ascending by canonical value.  An error is returned
// when some input value does not occur in the table.
func PermutedCols(inputs, table []goldilocks.Element) ([]goldilocks.Element, []goldilocks.Element, error) {
	n := len(inputs)
	//
	if len(table) != n {
		return nil, nil, fmt.Errorf("lookup table has %d entries, expected %d", len(table), n)
	}
	// Sort both sequences by canonical value
	permutedInputs := sortedClone(inputs)
	sortedTable := sortedClone(table)
	//
	permutedTable := make([]goldilocks.Element, n)
	used := bitset.New(uint(n))
	// Pair each first occurrence with its matching table entry
	ti := 0

	for i := 0; i < n; i++ {
		if i > 0 && permutedInputs[i].Equal(&permutedInputs[i-1]) {
			// Repeated value; slot filled below.
			continue
		}
		// Advance to the matching table entry
		for ti < n && sortedTable[ti].Cmp(&permutedInputs[i]) < 0 {
			ti++
		}

		if ti == n || !sortedTable[ti].Equal(&permutedInputs[i]) {
			return nil, nil, fmt.Errorf("lookup input %s outside table domain", permutedInputs[i].String())
		}
		//
		permutedTable[i] = sortedTable[ti]
		used.Set(uint(ti))
		ti++
	}
	// Fill repeat slots with the unused table entries.  Exactly one unused
	// entry exists per repeat slot.
	cursor := uint(0)

	for i := 1; i < n; i++ {
		if !permutedInputs[i].Equal(&permutedInputs[i-1]) {
			continue
		}
		//
		index, ok := used.NextClear(cursor)
		if !ok || index >= uint(n) {
			panic("internal failure")
		}
		//
		permutedTable[i] = sortedTable[index]
		used.Set(index)
		cursor = index + 1
	}
	// Done
	return permutedInputs, permutedTable, nil
}

func sortedClone(elements []goldilocks.Element) []goldilocks.Element {
	clone := make([]goldilocks.Element, len(elements))
	copy(clone, elements)
	sort.Slice(clone, func(i, j int) bool {
		return clone[i].Cmp(&clone[j]) < 0
	})

	return clone
}
