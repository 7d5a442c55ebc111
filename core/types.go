// SPDX-License-Identifier: MIT
// Package core defines the connectivity Graph: a fixed-size, index-addressed
// list of Nodes with ordered directed adjacency and inferred polarity.
//
// This file declares Polarity, Node, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrBadSize          - negative node count.
//	ErrNodeOutOfRange   - node index outside [0, Len()).
//	ErrSelfLoop         - edge from a node to itself.
//	ErrDaleViolation    - a node's outgoing weights take both signs.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates a negative node count was requested.
	ErrBadSize = errors.New("core: node count must be >= 0")

	// ErrNodeOutOfRange indicates an operation referenced a node index outside the graph.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	// Self-loops never enter the adjacency lists.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDaleViolation indicates a node emitted both a positive and a negative
	// outgoing weight (Dale's Law: one neuron, one transmitter sign).
	ErrDaleViolation = errors.New("core: node violating Dale's Law")
)

// Polarity is the inferred transmitter sign of a node.
// The zero value is Undetermined.
type Polarity uint8

const (
	// Undetermined: no strictly positive or negative outgoing weight seen yet.
	Undetermined Polarity = iota
	// Excitatory: at least one strictly positive outgoing weight.
	Excitatory
	// Inhibitory: at least one strictly negative outgoing weight.
	Inhibitory
)

// String returns the polarity name.
func (p Polarity) String() string {
	switch p {
	case Excitatory:
		return "Excitatory"
	case Inhibitory:
		return "Inhibitory"
	default:
		return "Undetermined"
	}
}

// Short returns the one-letter tag used in category names: "E", "I" or "?".
func (p Polarity) Short() string {
	switch p {
	case Excitatory:
		return "E"
	case Inhibitory:
		return "I"
	default:
		return "?"
	}
}

// Node is one neuron of the connectivity matrix; its index is its position
// in the Graph.
//
// EdgesTo and EdgesFrom keep discovery order: EdgesTo follows the column scan
// of the node's own row, EdgesFrom follows the row scan down the node's column.
// Both are duplicate-free because each matrix cell is visited once.
type Node struct {
	// EdgesTo lists out-neighbor indices in discovery order.
	EdgesTo []int

	// EdgesFrom lists in-neighbor indices in discovery order.
	EdgesFrom []int

	// Polarity is inferred from the signs of outgoing weights.
	Polarity Polarity
}

// Graph is a fixed-size list of Nodes.
//
// The node count is fixed at construction. Adjacency and polarity are mutated
// only while loading (AddEdge, ObserveWeight); afterwards the Graph is treated
// as immutable, and concurrent readers need no locking.
type Graph struct {
	nodes []Node // index → Node
	edges int    // total directed edges added
}

// NewGraph creates a Graph with n nodes, no edges, and all polarities Undetermined.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	return &Graph{nodes: make([]Node, n)}, nil
}
