package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	opts := &rootOptions{format: outputFormatText}

	rootCommand := &cobra.Command{
		Use:           "katsuyo",
		Short:         "Classify Japanese verbs and conjugate them into masu, nai, ta and te forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&opts.format, "format", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	flags.BoolVar(&opts.romaji, "romaji", false, "Show Hepburn romanization of the inflected forms")
	flags.BoolVar(&opts.reading, "reading", false, "Classify verbs by their kana reading from the morphological analyzer")

	rootCommand.AddCommand(
		newClassifyCommand(opts),
		newConjugateCommand(opts),
		newTableCommand(opts),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
