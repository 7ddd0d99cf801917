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
	"math/rand/v2"
)

// RandomOps generates a valid execution-order operation log of n operations
// from an unshared pseudo-random source.  The first operation is always a
// write; subsequent reads target a previously written address and return the
// word most recently stored there.  Address components are bounded by the log
// length (as well as their natural ranges), so every delta of the honestly
// sorted log lies inside the lookup domain [0, n).  The source is not
// cryptographically meaningful; this is a test and benchmarking fixture.
func RandomOps(n int, rng *rand.Rand) []Op {
	ops := make([]Op, 0, n)
	contents := make(map[Address]Word)
	written := make([]Address, 0, n)

	for i := 0; i < n; i++ {
		isRead := i > 0 && rng.IntN(2) == 0
		//
		var (
			addr  Address
			value Word
		)
		//
		if isRead {
			addr = written[rng.IntN(len(written))]
			value = contents[addr]
		} else {
			addr = Address{
				Context: rng.Uint64N(boundedBy(256, n)),
				Segment: rng.Uint64N(boundedBy(8, n)),
				Virtual: rng.Uint64N(boundedBy(20, n)),
			}

			for j := 0; j < NumValueLimbs; j++ {
				value[j].SetUint64(uint64(rng.Uint32()))
			}

			if _, ok := contents[addr]; !ok {
				written = append(written, addr)
			}

			contents[addr] = value
		}
		//
		ops = append(ops, Op{
			Timestamp: uint64(i),
			IsRead:    isRead,
			Addr:      addr,
			Value:     value,
		})
	}
	//
	return ops
}

// boundedBy caps an address-component range by the log length, keeping the
// largest possible address gap strictly below n.
func boundedBy(limit, n int) uint64 {
	return uint64(min(limit, n))
}
