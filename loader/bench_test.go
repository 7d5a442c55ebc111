// SPDX-License-Identifier: MIT
package loader_test

import (
	"testing"

	"github.com/katalvlaran/neuromotif/builder"
	"github.com/katalvlaran/neuromotif/loader"
)

// BenchmarkLoadRecords loads a 500×500 matrix at 5% density.
func BenchmarkLoadRecords(b *testing.B) {
	recs, err := builder.RandomConnectome(500, 0.05, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(recs) * len(recs)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := loader.LoadRecords(recs); err != nil {
			b.Fatal(err)
		}
	}
}
