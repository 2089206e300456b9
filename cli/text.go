package cli

import (
	"github.com/Gobd/preprocess"
	"github.com/spf13/cobra"
)

func (a *app) textCmd() *cobra.Command {
	return group("text", "Text transforms",
		a.tokenizeCmd(),
		a.removePunctuationCmd(),
		a.removeStopsCmd(),
	)
}

func (a *app) tokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tokenize TEXT",
		Short:   "Lower-case text and keep only its words",
		Example: `  preprocess text tokenize "Hola, mundo! Esto es 1 prueba."`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.text(cmd, args[0], preprocess.Tokenize(args[0]))
		},
	}
}

func (a *app) removePunctuationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-punctuation TEXT",
		Short:   "Keep only ASCII letters, digits and whitespace",
		Example: `  preprocess text remove-punctuation "Test... con acentos? Sí!"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.text(cmd, args[0], preprocess.SelectAlphanumericAndSpaces(args[0]))
		},
	}
}

func (a *app) removeStopsCmd() *cobra.Command {
	var stops []string
	cmd := &cobra.Command{
		Use:     "remove-stops TEXT",
		Short:   "Drop stop words from lower-cased text",
		Example: `  preprocess text remove-stops "este es un texto de prueba" --stop-word un --stop-word de`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.text(cmd, args[0], preprocess.RemoveStopWords(args[0], stops))
		},
	}
	cmd.Flags().StringArrayVar(&stops, "stop-word", nil, "word to drop, repeat for several")
	return cmd
}
