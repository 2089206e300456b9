package cli

import (
	"github.com/Gobd/preprocess"
	"github.com/spf13/cobra"
)

func (a *app) cleanCmd() *cobra.Command {
	return group("clean", "Data cleaning transforms",
		a.removeMissingCmd(),
		a.fillMissingCmd(),
		a.uniqueCmd(),
	)
}

func (a *app) removeMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-missing DATA...",
		Short:   "Drop missing values (none, nan, empty strings)",
		Example: `  preprocess clean remove-missing 10 20.5 none "" 30 nan text`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.RemoveMissing(in))
		},
	}
}

func (a *app) fillMissingCmd() *cobra.Command {
	var fill string
	cmd := &cobra.Command{
		Use:   "fill-missing DATA...",
		Short: "Replace missing values with a fill value",
		Example: `  preprocess clean fill-missing 10 20 none --fill-value -1
  preprocess clean fill-missing 10 20 none --fill-value NA`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.FillMissing(in, ParseValue(fill)))
		},
	}
	cmd.Flags().StringVar(&fill, "fill-value", "0", "value used for missing entries, coerced like DATA")
	return cmd
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unique DATA...",
		Aliases: []string{"deduplicate"},
		Short:   "Drop repeated values, keeping the first occurrence",
		Example: `  preprocess clean unique 10 20 10 30 20 10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.Deduplicate(in))
		},
	}
}
