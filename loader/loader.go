// SPDX-License-Identifier: MIT
// Package loader converts a square matrix of weight strings into a core.Graph.
//
// Contract:
//   - Row i lists the outgoing weights of node i; column j is the destination.
//   - Width is fixed by the first row; node count = width; the matrix must be square.
//   - A cell is connected iff the ZeroPolicy says so; connected cells must parse
//     as finite float64 values.
//   - Each connected off-diagonal cell (i,j) adds edge i→j after its weight has
//     been folded into node i's polarity. Diagonal cells feed polarity only.
//
// Complexity:
//   - Time O(V²) cell scans, Memory O(V + E).
//
// Errors:
//   - ErrNilReader, ErrRead, ErrRaggedRow, ErrNonSquare, ErrBadWeight,
//     core.ErrDaleViolation (wrapped with the node index).
package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/neuromotif/core"
)

// RowReader yields one row of cell strings per call and io.EOF at the end.
// *csv.Reader satisfies it.
type RowReader interface {
	Read() ([]string, error)
}

// loaderState carries the in-progress graph across rows.
type loaderState struct {
	opts  Options
	graph *core.Graph
	width int
	stats Stats
}

// Load reads rows until io.EOF and returns the populated Graph.
// An empty source yields an empty Graph.
func Load(rows RowReader, opts ...Option) (*core.Graph, error) {
	// 1. Validate input
	if rows == nil {
		return nil, ErrNilReader
	}

	// 2. Apply options
	lopts := DefaultOptions()
	for _, fn := range opts {
		fn(&lopts)
	}

	st := &loaderState{opts: lopts}

	// 3. Scan rows
	for row := 0; ; row++ {
		record, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %w", row, ErrRead, err)
		}
		if err = st.consume(row, record); err != nil {
			return nil, err
		}
	}

	// 4. Finalize: empty input or row count check
	if st.graph == nil {
		st.graph, _ = core.NewGraph(0)
	}
	if st.stats.Rows != st.width {
		return nil, fmt.Errorf("read %d rows for %d columns: %w", st.stats.Rows, st.width, ErrNonSquare)
	}
	st.stats.Edges = st.graph.EdgeCount()
	if lopts.Stats != nil {
		*lopts.Stats = st.stats
	}

	return st.graph, nil
}

// LoadRecords is Load over an in-memory matrix.
func LoadRecords(records [][]string, opts ...Option) (*core.Graph, error) {
	return Load(&sliceReader{records: records}, opts...)
}

// consume validates the shape of one row and folds its cells into the graph.
func (st *loaderState) consume(row int, record []string) error {
	// First row fixes the width and therefore the node count.
	if st.graph == nil {
		g, err := core.NewGraph(len(record))
		if err != nil {
			return err
		}
		st.graph, st.width = g, len(record)
	}

	if len(record) != st.width {
		return fmt.Errorf("row %d doesn't have %d columns (has %d): %w", row, st.width, len(record), ErrRaggedRow)
	}
	if row >= st.width {
		return fmt.Errorf("row %d exceeds %d columns: %w", row, st.width, ErrNonSquare)
	}
	st.stats.Rows++

	var (
		w   float64
		err error
	)
	for col, field := range record {
		if !st.opts.ZeroPolicy.connected(field) {
			continue
		}

		// Parse weight; NaN and ±Inf carry no usable sign.
		w, err = strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("can't parse node=%d value=%q: %w", row, field, ErrBadWeight)
		}
		if w == 0 {
			st.stats.ZeroConnected++
		}

		if err = st.graph.ObserveWeight(row, w); err != nil {
			return err
		}

		if col == row {
			st.stats.SkippedLoops++
			continue
		}
		if err = st.graph.AddEdge(row, col); err != nil {
			return err
		}
	}

	return nil
}

// sliceReader adapts [][]string to RowReader.
type sliceReader struct {
	records [][]string
	next    int
}

func (r *sliceReader) Read() ([]string, error) {
	if r.next >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.next]
	r.next++

	return rec, nil
}
