// SPDX-License-Identifier: MIT
package cli

import (
	"bufio"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/neuromotif/census"
	"github.com/katalvlaran/neuromotif/core"
	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/logger"
	"github.com/katalvlaran/neuromotif/motif"
	"github.com/katalvlaran/neuromotif/source"
)

// runCensus loads the matrix at location, counts its motifs and prints the report.
func (a *app) runCensus(cmd *cobra.Command, location string) error {
	ctx := cmd.Context()
	log := logger.Get()
	cfg := a.cfg

	// 1. Load
	g, err := a.load(cmd, location)
	if err != nil {
		return err
	}

	// 2. Classify
	classifier, err := motif.NewClassifier(cfg.ClassMode(), g)
	if err != nil {
		return err
	}

	// 3. Count, streaming verbose lines ahead of the report
	out := bufio.NewWriter(cmd.OutOrStdout())
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []census.Option{census.WithContext(ctx), census.WithWorkers(workers)}
	if cfg.Verbose {
		opts = append(opts, census.WithOnMotif(func(s motif.Shape, c motif.Category) error {
			_, err := fmt.Fprintln(out, census.FormatMotif(s, c))
			return err
		}))
	}

	start := time.Now()
	tally, err := census.Run(g, classifier, opts...)
	if err != nil {
		// Occurrences printed before the failure stay visible.
		_ = out.Flush()
		return err
	}
	log.Info("census complete",
		zap.String("mode", classifier.Mode().String()),
		zap.Int("motifs", tally.Total()),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	// 4. Report
	if err = census.Render(out, tally, census.RenderOptions{Pretty: cfg.Pretty}); err != nil {
		return err
	}

	return out.Flush()
}

// load opens location and builds the graph, logging load diagnostics.
func (a *app) load(cmd *cobra.Command, location string) (*core.Graph, error) {
	log := logger.Get()

	rc, err := source.Open(cmd.Context(), location,
		source.WithStdin(cmd.InOrStdin()),
		source.WithS3(a.cfg.Source()),
	)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var stats loader.Stats
	g, err := loader.Load(source.NewCSVReader(rc),
		loader.WithZeroPolicy(a.cfg.Zero()),
		loader.WithStats(&stats),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	exc, inh, und := g.PolarityCounts()
	log.Info("loaded connectivity",
		zap.String("source", location),
		zap.Int("nodes", g.Len()),
		zap.Int("edges", stats.Edges),
		zap.Int("self_loops", stats.SkippedLoops),
		zap.Int("excitatory", exc),
		zap.Int("inhibitory", inh),
		zap.Int("undetermined", und),
	)
	if stats.ZeroConnected > 0 && a.cfg.Zero() == loader.ZeroLiteral {
		log.Warn("zero-valued cells counted as connections; use --zero-policy numeric to drop them",
			zap.Int("cells", stats.ZeroConnected))
	}

	return g, nil
}
