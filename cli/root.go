// Package cli implements the preprocess command tree on cobra.
//
// Data arguments are coerced with [ParseValue], so "none" is a missing value,
// "3" is an integer and "[1,2]" is a nested list. Results print as
// "Result: <value>" or, with --format, as JSON or YAML documents.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Gobd/preprocess"
	"github.com/Gobd/preprocess/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	cfg Config
	log zerolog.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "preprocess",
		Short:         "Run data preprocessing transforms from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: trace, debug, info, warn, error ($"+EnvLogLevel+")")
	flags.StringVarP(&a.cfg.Format, "format", "o", a.cfg.Format, "output format: text, json, yaml ($"+EnvFormat+")")
	flags.IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimal places for float output, -1 for full precision ($"+EnvPrecision+")")

	root.AddCommand(
		a.cleanCmd(),
		a.numericCmd(),
		a.textCmd(),
		a.structCmd(),
		a.serveCmd(),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are written to the command's error stream.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.applyEnv(cmd.Flags()); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger.New(cmd.ErrOrStderr(), cmd.ErrOrStderr(), level)
	return nil
}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), format: a.cfg.Format, precision: a.cfg.Precision}
}

// sequence logs a sequence transform and prints its result.
func (a *app) sequence(cmd *cobra.Command, in, out preprocess.Sequence) error {
	a.log.Debug().
		Str("transform", cmd.CommandPath()).
		Int("in", len(in)).
		Int("out", len(out)).
		Int("dropped", max(len(in)-len(out), 0)).
		Msg("applied")
	return a.printer(cmd).print(out)
}

// text logs a text transform and prints its result.
func (a *app) text(cmd *cobra.Command, in, out string) error {
	a.log.Debug().
		Str("transform", cmd.CommandPath()).
		Int("in_bytes", len(in)).
		Int("out_bytes", len(out)).
		Msg("applied")
	return a.printer(cmd).print(out)
}

func group(use, short string, cmds ...*cobra.Command) *cobra.Command {
	g := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	g.AddCommand(cmds...)
	return g
}
