// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node queries: count, snapshot copies, polarity and polarity statistics.
//
// Determinism:
//   - Node(i) returns slices in discovery order.
//
// Concurrency:
//   - Read-only; safe for concurrent use once loading is complete.
package core

// check validates a node index against the current node count.
func (g *Graph) check(i int) error {
	if i < 0 || i >= len(g.nodes) {
		return ErrNodeOutOfRange
	}

	return nil
}

// Len returns the number of nodes (the matrix width).
// Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns a copy of node i.
//
// Implementation:
//   - Stage 1: Validate i (ErrNodeOutOfRange).
//   - Stage 2: Copy both adjacency slices so callers cannot alias graph storage.
//
// Complexity: O(deg(i)).
func (g *Graph) Node(i int) (Node, error) {
	if err := g.check(i); err != nil {
		return Node{}, err
	}
	n := g.nodes[i]

	return Node{
		EdgesTo:   append([]int(nil), n.EdgesTo...),
		EdgesFrom: append([]int(nil), n.EdgesFrom...),
		Polarity:  n.Polarity,
	}, nil
}

// Polarity returns the inferred polarity of node i.
// Complexity: O(1).
func (g *Graph) Polarity(i int) (Polarity, error) {
	if err := g.check(i); err != nil {
		return Undetermined, err
	}

	return g.nodes[i].Polarity, nil
}

// PolarityCounts tallies nodes by polarity.
// Complexity: O(V).
func (g *Graph) PolarityCounts() (excitatory, inhibitory, undetermined int) {
	for i := range g.nodes {
		switch g.nodes[i].Polarity {
		case Excitatory:
			excitatory++
		case Inhibitory:
			inhibitory++
		default:
			undetermined++
		}
	}

	return excitatory, inhibitory, undetermined
}
