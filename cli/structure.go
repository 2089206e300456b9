package cli

import (
	"github.com/Gobd/preprocess"
	"github.com/spf13/cobra"
)

func (a *app) structCmd() *cobra.Command {
	return group("struct", "Structural transforms",
		a.flattenCmd(),
		a.shuffleCmd(),
	)
}

func (a *app) flattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flatten DATA...",
		Short:   "Splice nested lists into the sequence, one level deep",
		Example: `  preprocess struct flatten '[1,2]' '[3,4]' 5`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			return a.sequence(cmd, in, preprocess.Flatten(in))
		},
	}
}

func (a *app) shuffleCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:     "shuffle DATA...",
		Short:   "Randomly reorder the sequence",
		Example: `  preprocess struct shuffle 1 2 3 4 5 --seed 42`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ParseValues(args)
			if cmd.Flags().Changed("seed") {
				return a.sequence(cmd, in, preprocess.ShuffleSeeded(in, seed))
			}
			return a.sequence(cmd, in, preprocess.Shuffle(in))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible order")
	return cmd
}
