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

// Element captures the ring operations shared by every evaluation backend:
// native Goldilocks scalars, packed row batches and recursive-circuit
// variables.  Constraint logic is written once against this interface and then
// instantiated per backend, meaning all backends necessarily describe the same
// polynomial system.
type Element[E any] interface {
	Add(y E) E // Add x+y
	Sub(y E) E // Sub x-y
	Mul(y E) E // Mul x*y
	One() E    // One is the multiplicative identity of this backend
}
