// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: include each ordered pair (i,j), i≠j,
//     independently with probability p. The diagonal is never written.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight = ±cfg.weightFn(cfg.rng), sign from the source node's polarity.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical matrix.

package builder

// RandomSparse returns a Constructor that samples directed connections with
// independent probability p.
func RandomSparse(p float64) Constructor {
	return func(m *Matrix, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		// 2) Sample ordered pairs with a stable order.
		rng := cfg.rng
		var i, j int
		for i = 0; i < m.n; i++ {
			for j = 0; j < m.n; j++ {
				if i == j {
					continue
				}
				// Deterministic edge set for p ∈ {0,1}; strict < keeps p=0 empty.
				if rng == nil {
					if p < MaxProbability {
						continue
					}
				} else if !(rng.Float64() < p) {
					continue
				}
				if err := m.connect(MethodRandomSparse, i, j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
