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
package trace

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// PrintTrace prints a trace in a human-friendly fashion, one printed row per
// trace column.  When standard output is a terminal, printed rows are
// truncated to the terminal width.
func PrintTrace(tr *ArrayTrace) {
	n := tr.Width()
	//
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = traceColumnData(tr, i)
	}
	//
	widths := traceRowWidths(tr.Height(), rows)
	limit := terminalWidth()
	//
	printHorizontalRule(widths, limit)
	//
	for _, r := range rows {
		printTraceRow(r, widths, limit)
		printHorizontalRule(widths, limit)
	}
}

func traceColumnData(tr *ArrayTrace, col int) []string {
	n := tr.Height()
	data := make([]string, n+2)
	data[0] = fmt.Sprintf("#%d", col)
	data[1] = tr.Column(col).Name()

	for row := 0; row < n; row++ {
		ith := tr.Get(col, row)
		data[row+2] = ith.String()
	}

	return data
}

func traceRowWidths(height int, rows [][]string) []int {
	widths := make([]int, height+2)

	for _, row := range rows {
		for i, col := range row {
			w := utf8.RuneCountInString(col)
			widths[i] = max(w, widths[i])
		}
	}

	return widths
}

func printTraceRow(row []string, widths []int, limit int) {
	written := 0

	for i, col := range row {
		if limit > 0 && written+widths[i]+3 > limit {
			fmt.Print(" …")
			break
		}

		fmt.Printf(" %*s |", widths[i], col)
		written += widths[i] + 3
	}

	fmt.Println()
}

func printHorizontalRule(widths []int, limit int) {
	written := 0

	for _, w := range widths {
		if limit > 0 && written+w+3 > limit {
			break
		}

		fmt.Print("-")

		for i := 0; i < w; i++ {
			fmt.Print("-")
		}

		fmt.Print("-+")
		written += w + 3
	}

	fmt.Println()
}

// terminalWidth returns the width of the enclosing terminal, or zero when
// standard output is not a terminal (in which case no truncation applies).
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	//
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	//
	return width
}
