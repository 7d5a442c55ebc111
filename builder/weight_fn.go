// SPDX-License-Identifier: MIT
// Package builder provides the magnitude distributions used for synthetic
// connection weights. Signs are applied separately from node polarity.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the magnitude assigned to each connection when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a strictly positive connection magnitude given an optional
// *rand.Rand source. It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value ≤ 0.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max. With a nil rng it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// LogNormalWeightFn returns a WeightFn sampling exp(N(mu, sigma)), the usual
// heavy-tailed model of synaptic strength. Panics if sigma < 0.
// With a nil rng it yields DefaultEdgeWeight.
func LogNormalWeightFn(mu, sigma float64) WeightFn {
	if sigma < 0 {
		panic(fmt.Sprintf("LogNormalWeightFn: sigma must be ≥ 0, got %g", sigma))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return expClamp(rng.NormFloat64()*sigma + mu)
	}
}

// Magnitude bounds for LogNormalWeightFn; exp underflow would yield 0, which
// the loader reads as "no connection".
const (
	minLogNormalWeight = 1e-12
	maxLogNormalWeight = 1e12
)

// expClamp returns exp(x) clamped to [minLogNormalWeight, maxLogNormalWeight].
func expClamp(x float64) float64 {
	return math.Min(math.Max(math.Exp(x), minLogNormalWeight), maxLogNormalWeight)
}

// WithConstantWeight sets a fixed magnitude via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets magnitudes ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithLogNormalWeight sets magnitudes ∼ LogNormal(mu, sigma).
func WithLogNormalWeight(mu, sigma float64) BuilderOption {
	return WithWeightFn(LogNormalWeightFn(mu, sigma))
}
