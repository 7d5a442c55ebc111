// SPDX-License-Identifier: MIT
// Package: neuromotif/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating a builderConfig instance
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge magnitude generator. The sign comes from
// the source node's polarity. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithInhibitoryFraction sets the probability that a node is inhibitory.
// Panics unless 0 ≤ f ≤ 1.
func WithInhibitoryFraction(f float64) BuilderOption {
	if f < MinProbability || f > MaxProbability {
		panic(fmt.Sprintf("builder: WithInhibitoryFraction(%g) not in [0,1]", f))
	}
	return func(c *builderConfig) {
		c.inhibitoryFraction = f
	}
}

// WithFormat overrides how weights are rendered by Matrix.Records.
// Panics on nil.
func WithFormat(fn func(float64) string) BuilderOption {
	if fn == nil {
		panic("builder: WithFormat(nil)")
	}
	return func(c *builderConfig) {
		c.formatFn = fn
	}
}
