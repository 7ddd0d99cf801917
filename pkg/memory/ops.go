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
	"errors"
	"sort"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// ErrEmptyLog indicates an attempt to build a trace from an empty operation
// log.  The argument requires at least one operation.
var ErrEmptyLog = errors.New("empty memory operation log")

// Address identifies one memory cell as a (context, segment, virtual address)
// triple of small non-negative integers.
type Address struct {
	Context uint64
	Segment uint64
	Virtual uint64
}

// Word is the wide value held at one address, encoded as eight field-element
// limbs of up to 32 bits each.
type Word [NumValueLimbs]goldilocks.Element

// Op is a single memory operation, immutable once issued by the virtual
// machine's trace producer.
type Op struct {
	// Timestamp is the monotonically issued operation counter.
	Timestamp uint64
	// IsRead distinguishes loads from stores.
	IsRead bool
	// Addr is the cell this operation touches.
	Addr Address
	// Value is the word read or written.
	Value Word
}

// Canonicalize validates an execution-order operation log and returns the
// same operations sorted ascending by (context, segment, virtual address,
// timestamp).  Ties occur only across distinct timestamps for the same
// address, so the order is total.  Sorting is idempotent: canonicalizing
// sorted output is a no-op.  Rejects empty logs and logs in which a read
// precedes any write to its address; such malformed input is a caller bug and
// this layer fails fast rather than recovering.
func Canonicalize(ops []Op) ([]Op, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyLog
	}
	// Enforce the read-after-write discipline
	if _, err := Replay(ops); err != nil {
		return nil, err
	}
	//
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	//
	sort.SliceStable(sorted, func(i, j int) bool {
		l, r := &sorted[i], &sorted[j]
		//
		if l.Addr.Context != r.Addr.Context {
			return l.Addr.Context < r.Addr.Context
		}

		if l.Addr.Segment != r.Addr.Segment {
			return l.Addr.Segment < r.Addr.Segment
		}

		if l.Addr.Virtual != r.Addr.Virtual {
			return l.Addr.Virtual < r.Addr.Virtual
		}
		//
		return l.Timestamp < r.Timestamp
	})
	//
	return sorted, nil
}

// firstChangeFlags computes the priority-encoded address-change flags for a
// sorted operation log.  For each adjacent pair, exactly one flag fires for
// the highest-priority differing address component (context before segment
// before virtual); when the address is unchanged, none fire.  The last row
// has no successor and all its flags are zero by convention.
func firstChangeFlags(sorted []Op) (contextFirstChange, segmentFirstChange, virtualFirstChange []goldilocks.Element) {
	n := len(sorted)
	one := goldilocks.One()
	contextFirstChange = make([]goldilocks.Element, n)
	segmentFirstChange = make([]goldilocks.Element, n)
	virtualFirstChange = make([]goldilocks.Element, n)

	for i := 0; i < n-1; i++ {
		cur, next := &sorted[i].Addr, &sorted[i+1].Addr

		switch {
		case cur.Context != next.Context:
			contextFirstChange[i] = one
		case cur.Segment != next.Segment:
			segmentFirstChange[i] = one
		case cur.Virtual != next.Virtual:
			virtualFirstChange[i] = one
		}
	}
	//
	return contextFirstChange, segmentFirstChange, virtualFirstChange
}
