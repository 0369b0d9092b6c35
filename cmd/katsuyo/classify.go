package main

import (
	"github.com/at-ishikawa/katsuyo/internal/cli"
	"github.com/spf13/cobra"
)

func newClassifyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify VERB",
		Short: "Print the conjugation class (godan, ichidan, suru or kuru) of a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}

			verb := args[0]
			class, err := classifyVerb(verb, s)
			if err != nil {
				return err
			}
			return newPrinter(cmd, s).PrintClass(cli.NewResult(verb, class, nil, false))
		},
	}
}
