package main

import (
	"fmt"

	"github.com/at-ishikawa/katsuyo/internal/cli"
	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	"github.com/spf13/cobra"
)

func newConjugateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conjugate VERB FORM",
		Short: fmt.Sprintf("Conjugate a verb into a form. Possible forms are %v", conjugation.Forms()),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verb := args[0]
			form, err := conjugation.ParseForm(args[1])
			if err != nil {
				return err
			}

			s, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			class, err := classifyVerb(verb, s)
			if err != nil {
				return err
			}

			surface, err := conjugation.ConjugateAs(verb, class, form)
			if err != nil {
				return fmt.Errorf("conjugation.ConjugateAs(%s, %s, %s) > %w", verb, class, form, err)
			}
			inflections := []conjugation.Inflection{{Form: form, Surface: surface}}
			return newPrinter(cmd, s).PrintSurface(cli.NewResult(verb, class, inflections, s.romaji))
		},
	}
}
