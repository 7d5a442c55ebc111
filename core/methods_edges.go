// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion and polarity inference (the only mutators), plus edge queries.
// Determinism:
//   - AddEdge appends; adjacency order equals call order.
// Concurrency:
//   - Mutators are for the loading phase only; they are not safe for concurrent use.

package core

import "fmt"

// AddEdge records the directed edge from→to.
//
// Implementation:
//   - Stage 1: Validate both indices (ErrNodeOutOfRange) and reject from == to (ErrSelfLoop).
//   - Stage 2: Append to to nodes[from].EdgesTo.
//   - Stage 3: Append from to nodes[to].EdgesFrom.
//
// AddEdge does not check for duplicates; the loader visits every matrix cell
// exactly once, which keeps both lists duplicate-free.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	// 1) Validate endpoints
	if err := g.check(from); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	if err := g.check(to); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrSelfLoop)
	}

	// 2) Outgoing side
	g.nodes[from].EdgesTo = append(g.nodes[from].EdgesTo, to)

	// 3) Incoming side
	g.nodes[to].EdgesFrom = append(g.nodes[to].EdgesFrom, from)
	g.edges++

	return nil
}

// ObserveWeight folds one outgoing weight of node from into its polarity.
//
// Decision table (sign of w × current polarity):
//
//	w < 0, Undetermined → Inhibitory
//	w < 0, Inhibitory   → unchanged
//	w < 0, Excitatory   → ErrDaleViolation
//	w > 0, Undetermined → Excitatory
//	w > 0, Excitatory   → unchanged
//	w > 0, Inhibitory   → ErrDaleViolation
//	w == 0 (incl. -0)   → unchanged
//
// NaN compares false on both sides and therefore never changes polarity;
// the loader rejects non-finite weights before they get here.
//
// Complexity: O(1).
func (g *Graph) ObserveWeight(from int, w float64) error {
	if err := g.check(from); err != nil {
		return fmt.Errorf("ObserveWeight(%d): %w", from, err)
	}

	n := &g.nodes[from]
	switch {
	case w < 0:
		if n.Polarity == Excitatory {
			return fmt.Errorf("node %d (weight %g after excitatory output): %w", from, w, ErrDaleViolation)
		}
		n.Polarity = Inhibitory
	case w > 0:
		if n.Polarity == Inhibitory {
			return fmt.Errorf("node %d (weight %g after inhibitory output): %w", from, w, ErrDaleViolation)
		}
		n.Polarity = Excitatory
	}

	return nil
}

// EdgeCount returns the number of directed edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// HasEdge reports whether from→to exists. Out-of-range indices yield false.
// Complexity: O(out-degree(from)).
func (g *Graph) HasEdge(from, to int) bool {
	if g.check(from) != nil || g.check(to) != nil {
		return false
	}
	for _, v := range g.nodes[from].EdgesTo {
		if v == to {
			return true
		}
	}

	return false
}

// IsMutual reports whether both a→b and b→a exist.
// Complexity: O(out-degree(a) + out-degree(b)).
func (g *Graph) IsMutual(a, b int) bool {
	return g.HasEdge(a, b) && g.HasEdge(b, a)
}
