// SPDX-License-Identifier: MIT
// Package: stream
//
// writer.go - the inverse of Reader: "u v" lines.

package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/triest/triest"
)

// WriteEdges writes edges to w, one "u v" line each, and flushes.
func WriteEdges(w io.Writer, edges []triest.Edge[int64]) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 48)
	for i, e := range edges {
		buf = strconv.AppendInt(buf[:0], e.U, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.V, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteEdges: edge %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdges: flush: %w", err)
	}
	return nil
}
