// SPDX-License-Identifier: MIT

// Package matrix - text format.
//
// Format:
//   - rows are separated by '\n' (a trailing newline and '\r' are tolerated);
//   - cells within a row are separated by runs of spaces or tabs;
//   - the dimension n is the number of rows, and every row must hold n integers.
//
// Render writes the same format with every cell right-justified, so Parse
// accepts anything Render produces.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const ctxParse = "Parse"

// Parse builds a matrix from its text form. The dimension is inferred from the
// number of rows.
//
// Errors:
//   - ErrFormat wrapped with the offending row (and column for bad tokens) when
//     the text is empty, a row's token count differs from the row count, or a
//     token is not a base-10 integer.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Parse(text string) (*Dense, error) {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: empty input: %w", ctxParse, ErrFormat)
	}

	lines := strings.Split(text, "\n")
	n := len(lines)
	m, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParse, err)
	}

	for i, line := range lines {
		fields := strings.Fields(strings.TrimSuffix(line, "\r"))
		if len(fields) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxParse, i, len(fields), n, ErrFormat)
		}
		row := m.data[i*n : (i+1)*n]
		for j, tok := range fields {
			v, perr := strconv.ParseInt(tok, 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %q is not an integer: %w", ctxParse, i, j, tok, ErrFormat)
			}
			row[j] = v
		}
	}

	return m, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(text string) *Dense {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return m
}

// Render returns the text form with every cell right-justified to width
// columns, cells separated by one space, rows joined by '\n' and no trailing
// newline. Widths below 1 are treated as 1.
// Complexity: O(n²).
func (m *Dense) Render(width int) string {
	if width < 1 {
		width = 1
	}
	var sb strings.Builder
	sb.Grow(m.n * m.n * (width + 1))
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, m.data[i*m.n+j])
		}
	}

	return sb.String()
}

// String implements fmt.Stringer using CellWidth.
func (m *Dense) String() string {
	return m.Render(CellWidth)
}
