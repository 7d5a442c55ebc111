// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood views (OutNeighbors, InNeighbors) and degree queries.
// Determinism:
//   - Views preserve discovery order; no sorting is applied.
// Concurrency:
//   - Read-only; views alias graph storage and must not be modified.

package core

// OutNeighbors returns the out-neighbors of node i in discovery order.
//
// The returned slice aliases internal storage: it is a read-only view meant for
// hot loops such as motif enumeration, where copying every adjacency list would
// dominate the cost. Use Node(i) for an owned copy.
//
// Errors:
//   - ErrNodeOutOfRange: if i is outside [0, Len()).
//
// Complexity: O(1).
func (g *Graph) OutNeighbors(i int) ([]int, error) {
	if err := g.check(i); err != nil {
		return nil, err
	}

	return g.nodes[i].EdgesTo, nil
}

// InNeighbors returns the in-neighbors of node i in discovery order.
// Same aliasing contract as OutNeighbors.
//
// Complexity: O(1).
func (g *Graph) InNeighbors(i int) ([]int, error) {
	if err := g.check(i); err != nil {
		return nil, err
	}

	return g.nodes[i].EdgesFrom, nil
}

// OutDegree returns len(EdgesTo) of node i, or 0 for an out-of-range index.
func (g *Graph) OutDegree(i int) int {
	if g.check(i) != nil {
		return 0
	}

	return len(g.nodes[i].EdgesTo)
}

// InDegree returns len(EdgesFrom) of node i, or 0 for an out-of-range index.
func (g *Graph) InDegree(i int) int {
	if g.check(i) != nil {
		return 0
	}

	return len(g.nodes[i].EdgesFrom)
}
