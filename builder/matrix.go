// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// matrix.go - the dense connectome produced by BuildMatrix.

package builder

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
)

// Matrix is a dense n×n connectome: row = source, column = destination.
// A zero weight means "no connection".
type Matrix struct {
	n          int
	weights    []float64 // row-major, len n*n
	inhibitory []bool    // polarity per node
	format     func(float64) string
}

func newMatrix(n int, format func(float64) string) *Matrix {
	return &Matrix{
		n:          n,
		weights:    make([]float64, n*n),
		inhibitory: make([]bool, n),
		format:     format,
	}
}

// N returns the node count.
func (m *Matrix) N() int { return m.n }

// Weight returns the weight of i→j, or 0 when either index is out of range.
func (m *Matrix) Weight(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}

	return m.weights[i*m.n+j]
}

// Inhibitory reports whether node i was drawn inhibitory.
func (m *Matrix) Inhibitory(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.inhibitory[i]
}

// EdgeCount returns the number of non-zero weights.
func (m *Matrix) EdgeCount() int {
	count := 0
	for _, w := range m.weights {
		if w != 0 {
			count++
		}
	}

	return count
}

// Records renders the matrix as rows of cell strings.
// Complexity: O(n²).
func (m *Matrix) Records() [][]string {
	out := make([][]string, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]string, m.n)
		for j := 0; j < m.n; j++ {
			row[j] = m.format(m.weights[i*m.n+j])
		}
		out[i] = row
	}

	return out
}

// WriteCSV writes the matrix as headerless CSV.
func (m *Matrix) WriteCSV(w io.Writer) error {
	return WriteCSV(w, m.Records())
}

// WriteCSV writes records as headerless CSV and flushes.
func WriteCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// drawPolarities assigns each node a polarity per cfg.inhibitoryFraction.
// Fractions 0 and 1 need no RNG.
func (m *Matrix) drawPolarities(cfg builderConfig) error {
	f := cfg.inhibitoryFraction
	if f > MinProbability && f < MaxProbability && cfg.rng == nil {
		return builderErrorf(MethodBuildMatrix, ErrNeedRandSource, "inhibitory fraction %.3f", f)
	}
	for i := 0; i < m.n; i++ {
		switch {
		case f == MinProbability:
			m.inhibitory[i] = false
		case f == MaxProbability:
			m.inhibitory[i] = true
		default:
			m.inhibitory[i] = cfg.rng.Float64() < f
		}
	}

	return nil
}

// connect writes a signed weight for i→j, drawing the magnitude from cfg.
func (m *Matrix) connect(method string, i, j int, cfg builderConfig) error {
	mag := cfg.weightFn(cfg.rng)
	if !(mag > 0) || math.IsInf(mag, 0) {
		return builderErrorf(method, ErrOptionViolation, "weight magnitude %g for %d→%d", mag, i, j)
	}
	if m.inhibitory[i] {
		mag = -mag
	}
	m.weights[i*m.n+j] = mag

	return nil
}
