// SPDX-License-Identifier: MIT
// Package census defines run options and sentinel errors for motif censuses.
package census

import (
	"context"
	"errors"

	"github.com/katalvlaran/neuromotif/motif"
)

var (
	// ErrClassifierNil is returned when Run receives a nil motif.Classifier.
	ErrClassifierNil = errors.New("census: classifier is nil")

	// ErrUnknownCategory indicates a category outside the tally's scheme.
	ErrUnknownCategory = errors.New("census: category not in tally")

	// ErrTallyNil is returned when a nil *Tally is merged or rendered.
	ErrTallyNil = errors.New("census: tally is nil")
)

// MotifHook observes every classified occurrence. Returning an error aborts
// the census with that error.
type MotifHook func(s motif.Shape, c motif.Category) error

// Option configures Run.
type Option func(*Options)

// Options holds Run parameters.
type Options struct {
	// Ctx is checked between anchor nodes; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of anchor shards counted concurrently.
	// Values ≤ 1 select the sequential walk.
	Workers int

	// OnMotif, if non-nil, receives occurrences in emission order.
	// Installing it forces the sequential walk.
	OnMotif MotifHook
}

// DefaultOptions returns a background context, one worker and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnMotif: nil,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the shard count for the parallel census.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOnMotif installs a per-occurrence hook (verbose logging).
func WithOnMotif(fn MotifHook) Option {
	return func(o *Options) {
		o.OnMotif = fn
	}
}
