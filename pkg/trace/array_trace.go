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

// Package trace provides a fixed-width named-column table of field elements.
// A trace is built once per proof instance, is immutable by convention once
// materialised, and is consumed by constraint evaluation and commitment.  It
// is never persisted.
package trace

import (
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// ArrayTrace provides an implementation of a trace which stores columns as an
// array.  All columns have the same height.
type ArrayTrace struct {
	// Holds the height of every column in the trace
	height int
	// Holds the columns of this trace, in declaration order
	columns []ArrayTraceColumn
}

// NewArrayTrace constructs a trace from a set of equally tall columns.
func NewArrayTrace(columns []ArrayTraceColumn) (*ArrayTrace, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("trace requires at least one column")
	}
	//
	height := columns[0].Height()
	// Sanity check columns
	for i := range columns {
		if columns[i].Height() != height {
			return nil, fmt.Errorf("column %q has height %d, expected %d",
				columns[i].name, columns[i].Height(), height)
		}

		for j := 0; j < i; j++ {
			if columns[j].name == columns[i].name {
				return nil, fmt.Errorf("duplicate column %q", columns[i].name)
			}
		}
	}
	// Done
	return &ArrayTrace{height, columns}, nil
}

// Width returns the number of columns in this trace.
func (p *ArrayTrace) Width() int {
	return len(p.columns)
}

// Height returns the number of rows in this trace.
func (p *ArrayTrace) Height() int {
	return p.height
}

// Column returns the ith column in this trace.
func (p *ArrayTrace) Column(index int) *ArrayTraceColumn {
	return &p.columns[index]
}

// ColumnIndex returns the column index of the column with the given name in
// this trace, or returns false if no such column exists.
func (p *ArrayTrace) ColumnIndex(name string) (int, bool) {
	for i := range p.columns {
		if p.columns[i].name == name {
			return i, true
		}
	}
	// Column does not exist
	return 0, false
}

// Get returns the value held at a given column and row of this trace.
func (p *ArrayTrace) Get(col, row int) goldilocks.Element {
	return p.columns[col].Get(row)
}

// Set overwrites the value held at a given column and row.  This exists for
// callers deriving adversarial variants of a trace; honest construction never
// mutates a materialised trace.
func (p *ArrayTrace) Set(col, row int, val goldilocks.Element) {
	p.columns[col].data[row] = val
}

// Row copies the values of every column at a given row into dst, which must
// hold one slot per column.
func (p *ArrayTrace) Row(row int, dst []goldilocks.Element) {
	if len(dst) != len(p.columns) {
		panic("destination width does not match trace width")
	}

	for i := range p.columns {
		dst[i] = p.columns[i].data[row]
	}
}

// Clone creates an identical clone of this trace.
func (p *ArrayTrace) Clone() *ArrayTrace {
	clone := new(ArrayTrace)
	clone.columns = make([]ArrayTraceColumn, len(p.columns))
	clone.height = p.height
	//
	for i := range p.columns {
		clone.columns[i] = p.columns[i].Clone()
	}
	// done
	return clone
}

func (p *ArrayTrace) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder

	id.WriteString("{")

	for i := range p.columns {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(p.columns[i].name)
		id.WriteString("={")

		for j := 0; j < p.height; j++ {
			jth := p.columns[i].Get(j)

			if j != 0 {
				id.WriteString(",")
			}

			id.WriteString(jth.String())
		}
		id.WriteString("}")
	}
	id.WriteString("}")
	//
	return id.String()
}

// ===================================================================
// Array Trace Column
// ===================================================================

// ArrayTraceColumn represents a column of data within an array trace.
type ArrayTraceColumn struct {
	// Holds the name of this column
	name string
	// Holds the raw data making up this column
	data []goldilocks.Element
}

// NewColumn constructs a column backed by an array of data values.
func NewColumn(name string, data []goldilocks.Element) ArrayTraceColumn {
	return ArrayTraceColumn{name, data}
}

// Name returns the name of the given column.
func (p *ArrayTraceColumn) Name() string {
	return p.name
}

// Height determines the height of this column.
func (p *ArrayTraceColumn) Height() int {
	return len(p.data)
}

// Data returns the data for the given column.
func (p *ArrayTraceColumn) Data() []goldilocks.Element {
	return p.data
}

// Get the value at a given row in this column.
func (p *ArrayTraceColumn) Get(row int) goldilocks.Element {
	return p.data[row]
}

// Clone an ArrayTraceColumn
func (p *ArrayTraceColumn) Clone() ArrayTraceColumn {
	var clone ArrayTraceColumn
	clone.name = p.name
	clone.data = make([]goldilocks.Element, len(p.data))
	copy(clone.data, p.data)

	return clone
}
