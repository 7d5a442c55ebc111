// SPDX-License-Identifier: MIT
// Package census runs the enumerate → classify → count pipeline.
//
// Run walks anchors in ascending order. With WithWorkers(n > 1) and no OnMotif
// hook, anchors are split into n contiguous ranges, each counted by its own
// errgroup goroutine into a private Tally; the tallies are merged at the end.
// The graph is read-only after loading, so shards share it without locks.
//
// Complexity: the enumeration cost plus O(1) per occurrence.
package census

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/neuromotif/core"
	"github.com/katalvlaran/neuromotif/motif"
)

// shard is a half-open anchor range.
type shard struct{ lo, hi int }

// Run counts every motif of g under classifier c.
//
// Errors:
//   - motif.ErrGraphNil, ErrClassifierNil.
//   - the first classification or hook error (fatal; no partial tally).
//   - ctx.Err() wrapped with the anchor at which cancellation was noticed.
func Run(g *core.Graph, c motif.Classifier, opts ...Option) (*Tally, error) {
	// 1. Validate input
	if g == nil {
		return nil, motif.ErrGraphNil
	}
	if c == nil {
		return nil, ErrClassifierNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Sequential walk keeps emission order for the hook
	if o.Workers <= 1 || o.OnMotif != nil || g.Len() < 2 {
		t := NewTally(c.Categories())
		if err := countRange(o.Ctx, g, c, shard{0, g.Len()}, t, o.OnMotif); err != nil {
			return nil, err
		}

		return t, nil
	}

	// 4. Parallel walk over contiguous shards
	return runSharded(o.Ctx, g, c, o.Workers)
}

func runSharded(ctx context.Context, g *core.Graph, c motif.Classifier, workers int) (*Tally, error) {
	shards := splitAnchors(g.Len(), workers)
	tallies := make([]*Tally, len(shards))

	eg, egctx := errgroup.WithContext(ctx)
	for i, sh := range shards {
		idx, rng := i, sh
		tallies[idx] = NewTally(c.Categories())
		eg.Go(func() error {
			return countRange(egctx, g, c, rng, tallies[idx], nil)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Reduce in shard order.
	total := NewTally(c.Categories())
	for _, t := range tallies {
		if err := total.Merge(t); err != nil {
			return nil, err
		}
	}

	return total, nil
}

// countRange enumerates anchors of sh one at a time so ctx is honored between
// anchors, classifying and counting every occurrence.
func countRange(ctx context.Context, g *core.Graph, c motif.Classifier, sh shard, t *Tally, hook MotifHook) error {
	fn := func(s motif.Shape) error {
		cat, err := c.Classify(s)
		if err != nil {
			return err
		}
		if err = t.Add(cat); err != nil {
			return err
		}
		if hook != nil {
			return hook(s, cat)
		}

		return nil
	}

	for node := sh.lo; node < sh.hi; node++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run: anchor %d: %w", node, err)
		}
		if err := motif.EnumerateRange(g, node, node+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// splitAnchors cuts [0,n) into at most workers contiguous, near-equal ranges.
func splitAnchors(n, workers int) []shard {
	if workers > n {
		workers = n
	}
	out := make([]shard, 0, workers)
	size, extra := n/workers, n%workers
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		out = append(out, shard{lo, hi})
		lo = hi
	}

	return out
}
