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
	"fmt"
)

// ErrUnwrittenRead indicates a read of an address with no prior write.  Like
// ErrEmptyLog, this marks malformed caller input rather than a forgeable
// trace.
var ErrUnwrittenRead = errors.New("read with no prior write")

// Replay applies an execution-order operation log to an address-keyed memory,
// enforcing the read-after-write discipline: every read must target an
// address holding a previously written word.  It returns the final memory
// contents.  Note that read values are deliberately not compared against the
// stored word here; a lying read is exactly what the constraint system must
// catch, so it has to survive trace construction.
func Replay(ops []Op) (map[Address]Word, error) {
	contents := make(map[Address]Word)

	for _, op := range ops {
		if !op.IsRead {
			contents[op.Addr] = op.Value
			continue
		}

		if _, ok := contents[op.Addr]; !ok {
			return nil, fmt.Errorf("%w (t=%d, context=%d, segment=%d, virtual=%d)",
				ErrUnwrittenRead, op.Timestamp, op.Addr.Context, op.Addr.Segment, op.Addr.Virtual)
		}
	}
	//
	return contents, nil
}
