// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(n, bopts, cons...). Creates the matrix, draws node
//     polarities, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Dale's Law by construction: every weight written by a constructor takes the sign
//     of its source node, so generated matrices always load cleanly.

package builder

import (
	"fmt"
)

// Constructor applies a deterministic mutation to m using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors (no panics) and write weights only through m.connect.
type Constructor func(m *Matrix, cfg builderConfig) error

// BuildMatrix creates an n×n connectome, draws each node's polarity
// (inhibitory with probability cfg.inhibitoryFraction), and applies all
// constructors in order. Constructor errors are wrapped with "BuildMatrix: %w".
//
// Complexity:
//   - O(n²) allocation + O(n) polarity draws + Σ cost of constructors.
//
// Errors:
//   - ErrTooFewVertices: n < MinNodes.
//   - ErrNeedRandSource: 0 < inhibitory fraction < 1 without WithSeed/WithRand.
//   - ErrConstructFailed: nil constructor.
//   - any constructor error.
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) (*Matrix, error) {
	// 1) Validate size
	if n < MinNodes {
		return nil, builderErrorf(MethodBuildMatrix, ErrTooFewVertices, "n=%d < min=%d", n, MinNodes)
	}

	// 2) Resolve configuration
	cfg := newBuilderConfig(bopts...)

	// 3) Draw polarities
	m := newMatrix(n, cfg.formatFn)
	if err := m.drawPolarities(cfg); err != nil {
		return nil, err
	}

	// 4) Apply constructors in order
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return m, nil
}

// RandomConnectome is BuildMatrix(n, opts, RandomSparse(p)) rendered as string
// records, ready for loader.LoadRecords or WriteCSV.
func RandomConnectome(n int, p float64, opts ...BuilderOption) ([][]string, error) {
	m, err := BuildMatrix(n, opts, RandomSparse(p))
	if err != nil {
		return nil, err
	}

	return m.Records(), nil
}
