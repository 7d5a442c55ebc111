// SPDX-License-Identifier: MIT
// Package census counts motif occurrences per category and renders the result.
//
// Pipeline:
//
//	g, _ := loader.Load(rows)
//	c, _ := motif.NewClassifier(mode, g)
//	t, _ := census.Run(g, c, census.WithWorkers(4))
//	_ = census.Render(os.Stdout, t, census.RenderOptions{})
//
// Counting is sequential and deterministic by default. WithWorkers shards
// anchors across goroutines (golang.org/x/sync/errgroup); totals equal the
// sequential run. WithOnMotif streams each classified occurrence in emission
// order, e.g. for verbose output via FormatMotif.
//
// Tally keeps every category of the scheme in definition order, backed by a
// linked hash map, so Render prints zero-count categories too.
package census
