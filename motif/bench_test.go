// SPDX-License-Identifier: MIT
package motif_test

import (
	"testing"

	"github.com/katalvlaran/neuromotif/builder"
	"github.com/katalvlaran/neuromotif/motif"
)

// BenchmarkEnumerate_Sparse walks a 500-node random connectome at 2% density.
func BenchmarkEnumerate_Sparse(b *testing.B) {
	g := mustBuild(b, 500, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(0.02))
	count := 0
	fn := func(motif.Shape) error {
		count++
		return nil
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.Len() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = motif.Enumerate(g, fn)
	}
}

// BenchmarkClassify_ByPolarity measures enumeration plus polarity classification.
func BenchmarkClassify_ByPolarity(b *testing.B) {
	g := mustBuild(b, 300, []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomSparse(0.05))
	c, err := motif.ByPolarity(g)
	if err != nil {
		b.Fatal(err)
	}
	fn := func(s motif.Shape) error {
		_, err := c.Classify(s)
		return err
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := motif.Enumerate(g, fn); err != nil {
			b.Fatal(err)
		}
	}
}
