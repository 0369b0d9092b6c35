package main

import (
	"fmt"

	"github.com/at-ishikawa/katsuyo/internal/cli"
	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	"github.com/spf13/cobra"
)

func newTableCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table VERB",
		Short: "Print every supported form of a verb",
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
			inflections, err := conjugation.ConjugateAllAs(verb, class)
			if err != nil {
				return fmt.Errorf("conjugation.ConjugateAllAs(%s, %s) > %w", verb, class, err)
			}
			return newPrinter(cmd, s).PrintTable(cli.NewResult(verb, class, inflections, s.romaji))
		},
	}
}
