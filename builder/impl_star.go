// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// impl_star.go - implementation of Star(hub) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); 0 ≤ hub < n (else ErrConstructFailed).
//   - Emits spokes in stable order hub → leaf, leaf → hub for leaves in ascending index.
//   - Weight policy: ±cfg.weightFn(cfg.rng), sign from the source node.
//   - Returns only sentinel errors; never panics at runtime.
//
// Motif census of a star with L = n-1 leaves (all spokes reciprocal):
//   - Convergent C(L,2), Divergent C(L,2), Chain L(L-1), Reciprocal L.
//
// Complexity:
//   - Time: O(n) spokes. Space: O(1) extra.

package builder

// File-local constants (no magic numbers/strings; stable method tags).
const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that links hub with every other node in both
// directions.
func Star(hub int) Constructor {
	return func(m *Matrix, cfg builderConfig) error {
		// Validate the parameter domain early to avoid partial work.
		if m.n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", m.n, minStarNodes)
		}
		if hub < 0 || hub >= m.n {
			return builderErrorf(methodStar, ErrConstructFailed, "hub %d outside [0,%d)", hub, m.n)
		}

		for leaf := 0; leaf < m.n; leaf++ {
			if leaf == hub {
				continue
			}
			if err := m.connect(methodStar, hub, leaf, cfg); err != nil {
				return err
			}
			if err := m.connect(methodStar, leaf, hub, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
