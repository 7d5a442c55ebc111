// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng                = nil          (pure/deterministic unless seeded)
//   • weightFn           = DefaultWeightFn (constant magnitude 1)
//   • inhibitoryFraction = DefaultInhibitoryFraction
//   • formatFn           = shortest round-trip decimal ("1", "-0.25")

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Magnitude generator for connection weights; must return > 0.
	weightFn WeightFn
	// Probability that a node is drawn inhibitory.
	inhibitoryFraction float64
	// Cell renderer for Matrix.Records.
	formatFn func(float64) string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:                nil,
		weightFn:           DefaultWeightFn,
		inhibitoryFraction: DefaultInhibitoryFraction,
		formatFn:           formatWeight,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// formatWeight renders w with the fewest digits that round-trip, so zero is "0"
// and the loader's literal zero check treats it as "no connection".
func formatWeight(w float64) string {
	if w == 0 {
		return "0"
	}

	return strconv.FormatFloat(w, 'g', -1, 64)
}
