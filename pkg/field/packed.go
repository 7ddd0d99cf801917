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
package field

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// PackedWidth determines how many row instances a single packed element spans.
// Evaluating one constraint over a packed element evaluates it simultaneously
// for this many (independent) rows.
const PackedWidth = 4

// Packed is a fixed-width vector of Goldilocks elements, evaluated lane-wise.
// It conforms to the field.Element interface and is the substrate for batched
// constraint evaluation.
type Packed struct {
	lanes [PackedWidth]goldilocks.Element
}

// Broadcast constructs a packed element holding the same scalar in every lane.
func Broadcast(e goldilocks.Element) Packed {
	var p Packed
	for i := range p.lanes {
		p.lanes[i] = e
	}

	return p
}

// Pack constructs a packed element from individual lanes.
func Pack(lanes [PackedWidth]goldilocks.Element) Packed {
	return Packed{lanes}
}

// Lane returns the scalar held in a given lane.
func (x Packed) Lane(i int) goldilocks.Element {
	return x.lanes[i]
}

// Add x + y
func (x Packed) Add(y Packed) Packed {
	var z Packed
	for i := range z.lanes {
		z.lanes[i].Add(&x.lanes[i], &y.lanes[i])
	}

	return z
}

// Sub x - y
func (x Packed) Sub(y Packed) Packed {
	var z Packed
	for i := range z.lanes {
		z.lanes[i].Sub(&x.lanes[i], &y.lanes[i])
	}

	return z
}

// Mul x * y
func (x Packed) Mul(y Packed) Packed {
	var z Packed
	for i := range z.lanes {
		z.lanes[i].Mul(&x.lanes[i], &y.lanes[i])
	}

	return z
}

// One the multiplicative identity (in every lane).
func (x Packed) One() Packed {
	return Broadcast(goldilocks.One())
}

// IsZero checks whether every lane is zero.
func (x Packed) IsZero() bool {
	for i := range x.lanes {
		if !x.lanes[i].IsZero() {
			return false
		}
	}

	return true
}
