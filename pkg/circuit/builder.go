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

// Package circuit provides a symbolic arithmetic-circuit builder over the
// quadratic extension of the Goldilocks field.  Constraint systems evaluated
// through a Builder produce an explicit gate list suitable for embedding
// inside a recursive verification circuit, and carry enough degree
// information to bound the polynomial degree of every emitted constraint.
package circuit

import (
	"fmt"

	"github.com/ed255/plonky2/pkg/field"
)

type gateOp uint8

const (
	opInput gateOp = iota
	opOne
	opAdd
	opSub
	opMul
)

// gate is a single node of the circuit DAG.  Operands refer to earlier gates.
type gate struct {
	op   gateOp
	x, y uint32
}

// Variable is a handle on a circuit wire.  It conforms to the field.Element
// interface, so constraint logic written against that interface can be
// instantiated symbolically: every ring operation becomes an explicit
// circuit-building call.
type Variable struct {
	builder *Builder
	id      uint32
}

// Builder incrementally constructs an arithmetic circuit.  Wires are
// identified by their gate index, and each wire carries the maximum polynomial
// degree of the expression it computes (inputs count as degree one).
type Builder struct {
	gates   []gate
	degrees []uint
	inputs  uint
	// Cached index of the constant one gate, if any.
	one *Variable
}

// NewBuilder constructs an empty circuit builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Input appends a fresh input wire.  Inputs are bound to column accesses by
// the caller and therefore have polynomial degree one.
func (b *Builder) Input() Variable {
	v := b.append(gate{op: opInput}, 1)
	b.inputs++

	return v
}

// One returns the constant-one wire, creating it on first use.
func (b *Builder) One() Variable {
	if b.one == nil {
		v := b.append(gate{op: opOne}, 0)
		b.one = &v
	}

	return *b.one
}

// NumInputs returns the number of input wires appended so far.
func (b *Builder) NumInputs() uint {
	return b.inputs
}

// NumGates returns the total number of gates in the circuit.
func (b *Builder) NumGates() int {
	return len(b.gates)
}

// Degree returns an upper bound on the polynomial degree of a given wire,
// where input wires count as degree one.
func (b *Builder) Degree(v Variable) uint {
	return b.degrees[v.id]
}

// Run evaluates every gate of the circuit under a given assignment of the
// input wires, returning one value per gate.  The value of a Variable v is
// found at index v.id.
func (b *Builder) Run(assignment []field.Ext) ([]field.Ext, error) {
	if uint(len(assignment)) != b.inputs {
		return nil, fmt.Errorf("circuit expects %d inputs, got %d", b.inputs, len(assignment))
	}
	//
	out := make([]field.Ext, len(b.gates))
	next := 0

	for i, g := range b.gates {
		switch g.op {
		case opInput:
			out[i] = assignment[next]
			next++
		case opOne:
			out[i] = out[i].One()
		case opAdd:
			out[i] = out[g.x].Add(out[g.y])
		case opSub:
			out[i] = out[g.x].Sub(out[g.y])
		case opMul:
			out[i] = out[g.x].Mul(out[g.y])
		}
	}
	// Done
	return out, nil
}

func (b *Builder) append(g gate, degree uint) Variable {
	b.gates = append(b.gates, g)
	b.degrees = append(b.degrees, degree)

	return Variable{b, uint32(len(b.gates) - 1)}
}

func (b *Builder) binary(op gateOp, x, y Variable) Variable {
	if x.builder != b || y.builder != b {
		panic("operands constructed by a different circuit builder")
	}
	//
	var degree uint
	if op == opMul {
		degree = b.degrees[x.id] + b.degrees[y.id]
	} else {
		degree = max(b.degrees[x.id], b.degrees[y.id])
	}
	//
	return b.append(gate{op, x.id, y.id}, degree)
}

// Add x + y
func (x Variable) Add(y Variable) Variable {
	return x.builder.binary(opAdd, x, y)
}

// Sub x - y
func (x Variable) Sub(y Variable) Variable {
	return x.builder.binary(opSub, x, y)
}

// Mul x * y
func (x Variable) Mul(y Variable) Variable {
	return x.builder.binary(opMul, x, y)
}

// One the constant-one wire of the enclosing circuit.
func (x Variable) One() Variable {
	return x.builder.One()
}

// Index returns the gate index of this wire, identifying its value in the
// output of Builder.Run.
func (x Variable) Index() int {
	return int(x.id)
}
