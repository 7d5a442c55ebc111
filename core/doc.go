// SPDX-License-Identifier: MIT
// Package core provides the connectivity Graph used by motif analysis: a
// fixed-size list of neurons (Nodes) addressed by matrix index, each holding
// its ordered out- and in-adjacency and an inferred Polarity.
//
// The Graph G = (V,E) is built once from a square weight matrix and then read:
//
//   - Index-addressed nodes - node i is row i and column i of the matrix.
//   - Discovery-ordered adjacency - EdgesTo follows the column scan of row i,
//     EdgesFrom follows the row scan of column i. Nothing is sorted afterwards.
//   - No self-loops - AddEdge(v,v) → ErrSelfLoop.
//   - Polarity by Dale's Law - a node is Excitatory after its first strictly
//     positive outgoing weight, Inhibitory after its first strictly negative one;
//     the opposite sign afterwards → ErrDaleViolation. Zero weights and nodes
//     without outgoing weights stay Undetermined.
//
// Why a dedicated type rather than a general string-keyed graph?
//
//   - Motif census walks every node's adjacency lists in tight nested loops;
//     integer indices and plain slices keep that walk allocation-free.
//   - Discovery order is part of the motif contract (it fixes which endpoint of
//     a convergent or divergent pair comes first), so lists are never re-sorted.
//
// Core Methods:
//
//	// Construction (loading phase only)
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(from, to int) error              // O(1) amortized
//	ObserveWeight(from int, w float64) error // O(1)
//
//	// Query
//	Len() int                                // O(1)
//	Node(i int) (Node, error)                // O(deg): owned copy
//	OutNeighbors(i int) ([]int, error)       // O(1): read-only view
//	InNeighbors(i int) ([]int, error)        // O(1): read-only view
//	OutDegree(i), InDegree(i) int            // O(1)
//	Polarity(i int) (Polarity, error)        // O(1)
//	PolarityCounts() (e, i, u int)           // O(V)
//	EdgeCount() int                          // O(1)
//	HasEdge(from, to int) bool               // O(out-degree)
//	IsMutual(a, b int) bool                  // O(out-degree)
//
// Errors:
//
//	ErrBadSize        – negative node count
//	ErrNodeOutOfRange – index outside [0, Len())
//	ErrSelfLoop       – AddEdge(v, v)
//	ErrDaleViolation  – mixed-sign outgoing weights
//
// Concurrency: mutators are not synchronized. Once loading is finished the Graph
// is immutable by contract and may be shared by any number of readers.
package core
