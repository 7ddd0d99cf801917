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
)

// rangeCheckValues computes, for each transition of a sorted log, the
// monotonic delta that must lie in [0, N): the gap (next - current - 1) of
// whichever address component fired its first-change flag, or of the
// timestamp when the address is unchanged.  The last row's delta is zero.
// All arithmetic is field arithmetic, so a forged ordering wraps to a large
// representative and falls outside the lookup domain rather than going
// negative.
func rangeCheckValues(sorted []Op, contextFirstChange, segmentFirstChange, virtualFirstChange []goldilocks.Element) []goldilocks.Element {
	n := len(sorted)
	one := goldilocks.One()
	rangeCheck := make([]goldilocks.Element, n)

	for i := 0; i < n-1; i++ {
		var cur, next goldilocks.Element

		switch {
		case !contextFirstChange[i].IsZero():
			cur.SetUint64(sorted[i].Addr.Context)
			next.SetUint64(sorted[i+1].Addr.Context)
		case !segmentFirstChange[i].IsZero():
			cur.SetUint64(sorted[i].Addr.Segment)
			next.SetUint64(sorted[i+1].Addr.Segment)
		case !virtualFirstChange[i].IsZero():
			cur.SetUint64(sorted[i].Addr.Virtual)
			next.SetUint64(sorted[i+1].Addr.Virtual)
		default:
			cur.SetUint64(sorted[i].Timestamp)
			next.SetUint64(sorted[i+1].Timestamp)
		}
		//
		rangeCheck[i].Sub(&next, &cur)
		rangeCheck[i].Sub(&rangeCheck[i], &one)
	}
	//
	return rangeCheck
}

// counterValues is the literal lookup domain 0..n-1, materialised as the
// strictly increasing counter column.
func counterValues(n int) []goldilocks.Element {
	counter := make([]goldilocks.Element, n)
	for i := 0; i < n; i++ {
		counter[i].SetUint64(uint64(i))
	}

	return counter
}
