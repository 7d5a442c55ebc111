// SPDX-License-Identifier: MIT
// Command neuromotif counts connectivity motifs of a neuronal network.
//
// Usage:
//
//	neuromotif [--count-by-category] [--verbose] [--workers N] <connectivity>
//	neuromotif generate --nodes 200 --density 0.05 --seed 1 --out m.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/neuromotif/cli"
	"github.com/katalvlaran/neuromotif/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		logger.Get().Error("neuromotif failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
