package cli

import (
	"github.com/Gobd/preprocess"
	"github.com/spf13/cobra"
)

func (a *app) numericCmd() *cobra.Command {
	return group("numeric", "Numeric transforms",
		a.normalizeCmd(),
		a.standardizeCmd(),
		a.clipCmd(),
		a.toIntegersCmd(),
		a.logTransformCmd(),
	)
}

func rangeFlags(cmd *cobra.Command, lo, hi *float64, what string) {
	cmd.Flags().Float64Var(lo, "min-val", 0, what+" lower bound")
	cmd.Flags().Float64Var(hi, "max-val", 1, what+" upper bound")
}

func (a *app) normalizeCmd() *cobra.Command {
	var lo, hi float64
	cmd := &cobra.Command{
		Use:     "normalize DATA...",
		Short:   "Rescale numbers linearly into [min-val, max-val]",
		Example: `  preprocess numeric normalize 10 20 30 40 50 --min-val 0 --max-val 1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.NormalizeMinMax(in, lo, hi))
		},
	}
	rangeFlags(cmd, &lo, &hi, "target range")
	return cmd
}

func (a *app) standardizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "standardize DATA...",
		Short:   "Z-score standardization with the population deviation",
		Example: `  preprocess numeric standardize 10 20 30 40 50`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.StandardizeZScore(in))
		},
	}
}

func (a *app) clipCmd() *cobra.Command {
	var lo, hi float64
	cmd := &cobra.Command{
		Use:     "clip DATA...",
		Short:   "Bound numbers to [min-val, max-val]",
		Example: `  preprocess numeric clip 5 10 15 20 25 --min-val 10 --max-val 20`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			out, err := preprocess.Clip(in, lo, hi)
			if err != nil {
				return err
			}
			return a.sequence(cmd, in, out)
		},
	}
	rangeFlags(cmd, &lo, &hi, "clip")
	return cmd
}

func (a *app) toIntegersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-integers DATA...",
		Short:   "Parse strings as numbers and truncate them to integers",
		Example: `  preprocess numeric to-integers 10.5 20 30.0 texto`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := rawValues(args)
			return a.sequence(cmd, in, preprocess.ToIntegers(in))
		},
	}
}

func (a *app) logTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "log-transform DATA...",
		Short:   "Natural logarithm of the positive numbers",
		Example: `  preprocess numeric log-transform -- 1 10 100 -5 0`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.LogTransform(in))
		},
	}
}
