// SPDX-License-Identifier: MIT
// File: tally.go
// Role: ordered per-category counters.
//
// A Tally is seeded with every category of a scheme, in ordinal order, so
// zero-count categories are kept and reports print in definition order.
// It is not safe for concurrent use; parallel runs give each shard its own.
package census

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/neuromotif/motif"
)

// Count is one report line.
type Count struct {
	Name string
	N    int
}

// Tally maps Category → occurrences, preserving seed order.
type Tally struct {
	counts *linkedhashmap.Map
	total  int
}

// NewTally returns a zeroed tally over categories (use Classifier.Categories()).
func NewTally(categories []motif.Category) *Tally {
	m := linkedhashmap.New()
	for _, c := range categories {
		m.Put(c, 0)
	}

	return &Tally{counts: m}
}

// Add increments c by one.
func (t *Tally) Add(c motif.Category) error {
	return t.addN(c, 1)
}

func (t *Tally) addN(c motif.Category, n int) error {
	v, ok := t.counts.Get(c)
	if !ok {
		return fmt.Errorf("Add(%v): %w", c, ErrUnknownCategory)
	}
	t.counts.Put(c, v.(int)+n)
	t.total += n

	return nil
}

// Count returns the occurrences recorded for c (0 for unknown categories).
func (t *Tally) Count(c motif.Category) int {
	if v, ok := t.counts.Get(c); ok {
		return v.(int)
	}

	return 0
}

// Total returns the sum over all categories.
func (t *Tally) Total() int { return t.total }

// Categories lists the tally's categories in seed order.
func (t *Tally) Categories() []motif.Category {
	out := make([]motif.Category, 0, t.counts.Size())
	it := t.counts.Iterator()
	for it.Next() {
		out = append(out, it.Key().(motif.Category))
	}

	return out
}

// Counts returns (name, count) pairs in seed order, zero counts included.
func (t *Tally) Counts() []Count {
	out := make([]Count, 0, t.counts.Size())
	it := t.counts.Iterator()
	for it.Next() {
		out = append(out, Count{
			Name: fmt.Sprint(it.Key()),
			N:    it.Value().(int),
		})
	}

	return out
}

// Merge adds every count of o into t. Both must share the same scheme.
func (t *Tally) Merge(o *Tally) error {
	if o == nil {
		return ErrTallyNil
	}
	it := o.counts.Iterator()
	for it.Next() {
		if err := t.addN(it.Key().(motif.Category), it.Value().(int)); err != nil {
			return fmt.Errorf("Merge: %w", err)
		}
	}

	return nil
}
