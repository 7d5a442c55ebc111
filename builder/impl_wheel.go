// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// impl_wheel.go - implementation of Ring() and Wheel() constructors.
//
// Canonical definitions:
//   • Ring: directed cycle 0 → 1 → … → n-1 → 0 over all nodes (n ≥ 3).
//   • Wheel: Ring over nodes 1..n-1 plus node 0 as a hub with reciprocal spokes (n ≥ 4).
//
// Motif census:
//   • Ring of n: exactly n chains and nothing else.
//   • Wheel of n (rim R = n-1): each rim node has in {hub, prev} and out {hub, next}.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// File-local constants for method tags and minima.
const (
	methodRing    = "Ring"
	methodWheel   = "Wheel"
	minRingNodes  = 3
	minWheelNodes = 4 // because the rim has size (n-1) which must be ≥ 3
	wheelHub      = 0
)

// Ring returns a Constructor that links every node to its successor, wrapping
// the last node back to node 0.
func Ring() Constructor {
	return func(m *Matrix, cfg builderConfig) error {
		if m.n < minRingNodes {
			return builderErrorf(methodRing, ErrTooFewVertices, "n=%d < min=%d", m.n, minRingNodes)
		}

		return ringOver(methodRing, m, cfg, 0)
	}
}

// Wheel returns a Constructor that builds a rim cycle over nodes 1..n-1 and
// links node 0 to every rim node in both directions.
func Wheel() Constructor {
	return func(m *Matrix, cfg builderConfig) error {
		// Early validation (no work on invalid input).
		if m.n < minWheelNodes {
			return builderErrorf(methodWheel, ErrTooFewVertices, "n=%d < min=%d", m.n, minWheelNodes)
		}

		// Rim first, then spokes; both in ascending index order.
		if err := ringOver(methodWheel, m, cfg, wheelHub+1); err != nil {
			return err
		}
		for rim := wheelHub + 1; rim < m.n; rim++ {
			if err := m.connect(methodWheel, wheelHub, rim, cfg); err != nil {
				return err
			}
			if err := m.connect(methodWheel, rim, wheelHub, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// ringOver links first → first+1 → … → n-1 → first.
func ringOver(method string, m *Matrix, cfg builderConfig, first int) error {
	for i := first; i < m.n; i++ {
		next := i + 1
		if next == m.n {
			next = first
		}
		if err := m.connect(method, i, next, cfg); err != nil {
			return err
		}
	}

	return nil
}
