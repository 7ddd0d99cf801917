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

// Gl wraps goldilocks.Element to conform to the field.Element interface.  The
// Goldilocks prime is 2^64 - 2^32 + 1.
type Gl struct {
	inner goldilocks.Element
}

// NewGl constructs the element representing a given unsigned value.
func NewGl(v uint64) Gl {
	return Gl{goldilocks.NewElement(v)}
}

// GlFrom wraps a raw Goldilocks element.
func GlFrom(e goldilocks.Element) Gl {
	return Gl{e}
}

// Add x + y
func (x Gl) Add(y Gl) Gl {
	var z goldilocks.Element
	z.Add(&x.inner, &y.inner)

	return Gl{z}
}

// Sub x - y
func (x Gl) Sub(y Gl) Gl {
	var z goldilocks.Element
	z.Sub(&x.inner, &y.inner)

	return Gl{z}
}

// Mul x * y
func (x Gl) Mul(y Gl) Gl {
	var z goldilocks.Element
	z.Mul(&x.inner, &y.inner)

	return Gl{z}
}

// One the multiplicative identity.
func (x Gl) One() Gl {
	return Gl{goldilocks.One()}
}

// IsZero checks whether this element is zero.
func (x Gl) IsZero() bool {
	return x.inner.IsZero()
}

// Unwrap returns the underlying Goldilocks element.
func (x Gl) Unwrap() goldilocks.Element {
	return x.inner
}

// Uint64 returns the canonical numerical value of x.
func (x Gl) Uint64() uint64 {
	return x.inner.Uint64()
}

func (x Gl) String() string {
	return x.inner.String()
}
