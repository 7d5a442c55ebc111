// SPDX-License-Identifier: MIT
// Package motif defines motif shapes, the enumerator handler type, and
// sentinel errors.
package motif

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate
	// or ByPolarity.
	ErrGraphNil = errors.New("motif: graph is nil")

	// ErrBadRange indicates an anchor range outside [0, Len()] or with lo > hi.
	ErrBadRange = errors.New("motif: anchor range out of bounds")

	// ErrUndeterminedPolarity indicates an anchor node without inferred polarity
	// was reached by a polarity classification.
	ErrUndeterminedPolarity = errors.New("motif: anchor node has undetermined polarity")

	// ErrUnknownShape indicates a Shape whose Kind is outside the four known kinds.
	ErrUnknownShape = errors.New("motif: unknown shape kind")

	// ErrUnknownMode indicates an unrecognized classification mode string.
	ErrUnknownMode = errors.New("motif: unknown classification mode")
)

// Kind tags the motif shape.
type Kind uint8

const (
	// Chain is the directed path A→B→C with A ≠ C.
	Chain Kind = iota
	// Convergent is A→B←C: two sources sharing the target B.
	Convergent
	// Divergent is A←B→C: one source B with two targets.
	Divergent
	// Reciprocal is A↔B.
	Reciprocal
)

// String returns the lowercase shape name used in motif rendering.
func (k Kind) String() string {
	switch k {
	case Chain:
		return "chain"
	case Convergent:
		return "convergent"
	case Divergent:
		return "divergent"
	case Reciprocal:
		return "reciprocal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape identifies one motif occurrence by node identity.
//
// For Convergent and Divergent, A precedes C in B's adjacency discovery order
// (ascending index for loaded matrices). For Reciprocal, A < B and C is -1.
// Shapes are small values; they are produced and consumed per occurrence.
type Shape struct {
	Kind    Kind
	A, B, C int
}

// ChainOf returns the Chain a→b→c.
func ChainOf(a, b, c int) Shape { return Shape{Kind: Chain, A: a, B: b, C: c} }

// ConvergentOf returns the Convergent a→b←c.
func ConvergentOf(a, b, c int) Shape { return Shape{Kind: Convergent, A: a, B: b, C: c} }

// DivergentOf returns the Divergent a←b→c.
func DivergentOf(a, b, c int) Shape { return Shape{Kind: Divergent, A: a, B: b, C: c} }

// ReciprocalOf returns the Reciprocal a↔b.
func ReciprocalOf(a, b int) Shape { return Shape{Kind: Reciprocal, A: a, B: b, C: -1} }

// Nodes returns the node indices the shape references, in field order.
func (s Shape) Nodes() []int {
	if s.Kind == Reciprocal {
		return []int{s.A, s.B}
	}

	return []int{s.A, s.B, s.C}
}

// String renders the shape with arrows, e.g. "chain: 0 → 1 → 2".
func (s Shape) String() string {
	switch s.Kind {
	case Chain:
		return fmt.Sprintf("chain: %d → %d → %d", s.A, s.B, s.C)
	case Convergent:
		return fmt.Sprintf("convergent: %d → %d ← %d", s.A, s.B, s.C)
	case Divergent:
		return fmt.Sprintf("divergent: %d ← %d → %d", s.A, s.B, s.C)
	case Reciprocal:
		return fmt.Sprintf("reciprocal: %d ↔ %d", s.A, s.B)
	default:
		return fmt.Sprintf("%s: %d %d %d", s.Kind, s.A, s.B, s.C)
	}
}

// Handler receives one Shape per occurrence, synchronously, in emission order.
// Returning a non-nil error stops the enumeration; the error is returned as is.
type Handler func(Shape) error
