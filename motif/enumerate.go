// SPDX-License-Identifier: MIT
// Package motif enumerates two- and three-node motifs of a core.Graph.
//
// Emission model, per anchor node (ascending index):
//
//  1. Convergent - every pair (i<j) of EdgesFrom: Convergent(from[i], node, from[j]).
//  2. Divergent  - every pair (i<j) of EdgesTo:   Divergent(to[i], node, to[j]).
//  3. Chain      - every (in, out) with in ≠ out: Chain(in, node, out).
//  4. Reciprocal - every out that is also an in, with node < out: Reciprocal(node, out).
//
// Complexity:
//
//   - Time:   O(Σ deg_in² + deg_out² + deg_in·deg_out) over all nodes.
//   - Memory: O(1) beyond the graph; shapes are passed by value.
package motif

import (
	"fmt"

	"github.com/katalvlaran/neuromotif/core"
)

// Enumerate calls fn once per motif occurrence of g, in emission order.
// The first handler error aborts the walk and is returned unchanged.
func Enumerate(g *core.Graph, fn Handler) error {
	if g == nil {
		return ErrGraphNil
	}

	return EnumerateRange(g, 0, g.Len(), fn)
}

// EnumerateRange is Enumerate restricted to anchor nodes in [lo, hi).
// Concatenating the emissions of adjacent ranges reproduces Enumerate exactly,
// which is what sharded census runs rely on.
func EnumerateRange(g *core.Graph, lo, hi int, fn Handler) error {
	// 1. Validate
	if g == nil {
		return ErrGraphNil
	}
	if lo < 0 || hi > g.Len() || lo > hi {
		return fmt.Errorf("EnumerateRange[%d,%d) on %d nodes: %w", lo, hi, g.Len(), ErrBadRange)
	}

	// 2. Walk anchors
	for node := lo; node < hi; node++ {
		if err := enumerateAnchor(g, node, fn); err != nil {
			return err
		}
	}

	return nil
}

// Collect returns all occurrences of g in emission order.
func Collect(g *core.Graph) ([]Shape, error) {
	var out []Shape
	err := Enumerate(g, func(s Shape) error {
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// enumerateAnchor emits every motif anchored at node.
func enumerateAnchor(g *core.Graph, node int, fn Handler) error {
	// Views alias graph storage; node is known to be in range.
	from, _ := g.InNeighbors(node)
	to, _ := g.OutNeighbors(node)

	var i, j int

	// 1) Convergent: node has several inputs
	for i = 0; i+1 < len(from); i++ {
		for j = i + 1; j < len(from); j++ {
			if err := fn(ConvergentOf(from[i], node, from[j])); err != nil {
				return err
			}
		}
	}

	// 2) Divergent: node has several outputs
	for i = 0; i+1 < len(to); i++ {
		for j = i + 1; j < len(to); j++ {
			if err := fn(DivergentOf(to[i], node, to[j])); err != nil {
				return err
			}
		}
	}

	// 3) Chain: in → node → out through distinct endpoints
	for _, in := range from {
		for _, out := range to {
			if in == out {
				continue
			}
			if err := fn(ChainOf(in, node, out)); err != nil {
				return err
			}
		}
	}

	// 4) Reciprocal: emitted from the lower index only
	for _, out := range to {
		if out <= node {
			continue
		}
		for _, in := range from {
			if in == out {
				if err := fn(ReciprocalOf(node, out)); err != nil {
					return err
				}
				break
			}
		}
	}

	return nil
}
