// SPDX-License-Identifier: MIT
// Package cli implements the neuromotif command line: the census root command
// and the generate subcommand.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/neuromotif/config"
	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/logger"
	"github.com/katalvlaran/neuromotif/motif"
)

const longRoot = `Enumerate chain, convergent, divergent and reciprocal motifs of a
neuronal connectivity matrix and print the count of each category.

The matrix is a headerless square CSV: row i lists the outgoing weights of
neuron i, column j the target. Empty and zero cells mean "no connection".
Positive weights mark excitatory neurons, negative ones inhibitory; a neuron
with both signs violates Dale's Law and aborts the run.

<connectivity> is a file path, "-" for stdin, or s3://bucket/key.`

// app carries per-invocation state shared by the commands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config

	countByCategory bool
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "neuromotif [flags] <connectivity>",
		Short:         "Census of neuronal connectivity motifs",
		Long:          longRoot,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCensus(cmd, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("log-level", "warn", "diagnostic level: debug, info, warn, error")
	pf.String("log-format", logger.FormatConsole, "diagnostic encoding: console or json")

	f := root.Flags()
	f.BoolVar(&a.countByCategory, "count-by-category", false, "Separate the motif count by the polarity of their nodes")
	f.String("mode", motif.ModeBasic.String(), "classification: basic or polarity")
	f.BoolP("verbose", "v", false, "Output all the individual identified motifs")
	f.IntP("workers", "w", 1, "anchor shards counted in parallel (0 = GOMAXPROCS)")
	f.String("zero-policy", loader.ZeroLiteral.String(), `which cells are unconnected: literal ("", "0", "0.0") or numeric (any zero)`)
	f.Bool("pretty", false, "render the report as a table")

	bind(a.v, root, map[string]string{
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
		config.KeyMode:       "mode",
		config.KeyVerbose:    "verbose",
		config.KeyWorkers:    "workers",
		config.KeyZeroPolicy: "zero-policy",
		config.KeyPretty:     "pretty",
	})

	root.AddCommand(newGenerateCommand(a))

	return root
}

// Execute runs the command tree with args under ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// bind ties config keys to flags; persistent flags are looked up there too.
func bind(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil {
			fl = cmd.PersistentFlags().Lookup(name)
		}
		_ = v.BindPFlag(key, fl)
	}
}

// setup loads configuration and initializes the global logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.countByCategory {
		cfg.Mode = motif.ModeByPolarity.String()
	}
	if err = logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}
