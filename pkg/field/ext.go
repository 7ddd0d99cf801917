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
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// extW is the quadratic non-residue defining the extension: x^2 = 7.  This is
// the canonical degree-2 extension of the Goldilocks field used by recursive
// verification circuits.
var extW = goldilocks.NewElement(7)

// Ext is an element a + b·x of the quadratic extension of the Goldilocks
// field.  It conforms to the field.Element interface and is the value domain
// over which recursion circuits are evaluated.
type Ext struct {
	a, b goldilocks.Element
}

// NewExt embeds a base field element into the extension.
func NewExt(a goldilocks.Element) Ext {
	return Ext{a: a}
}

// NewExtPair constructs an extension element from both coefficients.
func NewExtPair(a, b goldilocks.Element) Ext {
	return Ext{a, b}
}

// Add x + y
func (x Ext) Add(y Ext) Ext {
	var z Ext
	z.a.Add(&x.a, &y.a)
	z.b.Add(&x.b, &y.b)

	return z
}

// Sub x - y
func (x Ext) Sub(y Ext) Ext {
	var z Ext
	z.a.Sub(&x.a, &y.a)
	z.b.Sub(&x.b, &y.b)

	return z
}

// Mul x * y.  Specifically, (a0 + b0·x)(a1 + b1·x) = a0a1 + 7·b0b1 + (a0b1 + b0a1)·x.
func (x Ext) Mul(y Ext) Ext {
	var z Ext
	var t0, t1 goldilocks.Element
	// a0a1 + 7·b0b1
	t0.Mul(&x.a, &y.a)
	t1.Mul(&x.b, &y.b).Mul(&t1, &extW)
	z.a.Add(&t0, &t1)
	// a0b1 + b0a1
	t0.Mul(&x.a, &y.b)
	t1.Mul(&x.b, &y.a)
	z.b.Add(&t0, &t1)

	return z
}

// One the multiplicative identity.
func (x Ext) One() Ext {
	return Ext{a: goldilocks.One()}
}

// IsZero checks whether both coefficients are zero.
func (x Ext) IsZero() bool {
	return x.a.IsZero() && x.b.IsZero()
}

// Equal checks whether two extension elements coincide.
func (x Ext) Equal(y Ext) bool {
	return x.a.Equal(&y.a) && x.b.Equal(&y.b)
}

func (x Ext) String() string {
	return fmt.Sprintf("%s+%s·x", x.a.String(), x.b.String())
}
