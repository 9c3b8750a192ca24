// SPDX-License-Identifier: MIT
// Package: stream
//
// reader.go - line-oriented edge-list parsing.
//
// Format:
//   - One edge per line: "u v [ignored columns...]".
//   - Separators: any run of whitespace and/or commas.
//   - Blank lines and lines whose first non-space rune is '#' or '%' are skipped
//     (SNAP and MatrixMarket style headers).
//   - Vertex IDs are base-10 int64.
//
// Complexity: O(len(line)) per edge, O(1) extra beyond the line buffer.

package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/triest/triest"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Reader yields edges from an edge-list text stream.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader wraps r. The reader does not close r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Line returns the number of input lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Next returns the next edge, or io.EOF once the input is exhausted.
func (r *Reader) Next() (triest.Edge[int64], error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		e, err := parseEdge(text)
		if err != nil {
			return triest.Edge[int64]{}, fmt.Errorf("Reader: line %d: %w", r.line, err)
		}
		return e, nil
	}
	if err := r.sc.Err(); err != nil {
		return triest.Edge[int64]{}, fmt.Errorf("Reader: line %d: %w", r.line+1, err)
	}
	return triest.Edge[int64]{}, io.EOF
}

func isSeparator(c rune) bool { return c == ',' || unicode.IsSpace(c) }

func parseEdge(text string) (triest.Edge[int64], error) {
	fields := strings.FieldsFunc(text, isSeparator)
	if len(fields) < 2 {
		return triest.Edge[int64]{}, fmt.Errorf("%q: want 2 vertex IDs: %w", text, ErrMalformedLine)
	}
	u, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return triest.Edge[int64]{}, fmt.Errorf("%q: %w", fields[0], ErrMalformedLine)
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return triest.Edge[int64]{}, fmt.Errorf("%q: %w", fields[1], ErrMalformedLine)
	}
	return triest.Edge[int64]{U: u, V: v}, nil
}
