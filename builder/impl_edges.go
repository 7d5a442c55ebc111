// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// impl_edges.go - explicit fixtures: Polarities(...) and Edges(...).
//
// Use these to pin small hand-made motifs in tests and examples:
//
//	BuildMatrix(3, nil, Polarities(1), Edges(Edge{0, 1}, Edge{1, 2}))
//
// Polarities must precede Edges: connect reads the source polarity at write time.

package builder

// Edge is a directed connection From→To for the Edges constructor.
type Edge struct {
	From, To int
}

// Polarities returns a Constructor that marks the listed nodes inhibitory and
// every other node excitatory, overriding the random draw.
func Polarities(inhibitory ...int) Constructor {
	return func(m *Matrix, _ builderConfig) error {
		for i := range m.inhibitory {
			m.inhibitory[i] = false
		}
		for _, i := range inhibitory {
			if i < 0 || i >= m.n {
				return builderErrorf(MethodPolarities, ErrConstructFailed, "node %d outside [0,%d)", i, m.n)
			}
			m.inhibitory[i] = true
		}

		return nil
	}
}

// Edges returns a Constructor that writes each listed connection with a
// magnitude from cfg.weightFn. Self-loops and out-of-range endpoints fail.
func Edges(edges ...Edge) Constructor {
	return func(m *Matrix, cfg builderConfig) error {
		for _, e := range edges {
			if e.From < 0 || e.From >= m.n || e.To < 0 || e.To >= m.n || e.From == e.To {
				return builderErrorf(MethodEdges, ErrConstructFailed, "edge %d→%d on %d nodes", e.From, e.To, m.n)
			}
			if err := m.connect(MethodEdges, e.From, e.To, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
