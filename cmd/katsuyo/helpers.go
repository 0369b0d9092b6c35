package main

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/katsuyo/internal/cli"
	"github.com/at-ishikawa/katsuyo/internal/config"
	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	"github.com/at-ishikawa/katsuyo/internal/reading"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type outputFormat string

func (f *outputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

const (
	outputFormatText outputFormat = config.OutputFormatText
	outputFormatYAML outputFormat = config.OutputFormatYAML
)

var (
	_                pflag.Value = (*outputFormat)(nil)
	allOutputFormats             = []outputFormat{outputFormatText, outputFormatYAML}
)

// rootOptions holds persistent flags. Flags that were set override the configuration file.
type rootOptions struct {
	configFile string
	format     outputFormat
	romaji     bool
	reading    bool
}

type settings struct {
	format         string
	romaji         bool
	color          bool
	useReading     bool
	userDictionary string
}

// newResolver is replaced in tests so that the dictionary isn't loaded
var newResolver = func(userDictionary string) (reading.Resolver, error) {
	return reading.NewKagome(userDictionary)
}

func loadSettings(cmd *cobra.Command, opts *rootOptions) (settings, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	s := settings{
		format:         cfg.Output.Format,
		romaji:         cfg.Output.Romaji,
		color:          cfg.Output.Color,
		useReading:     cfg.Analysis.UseReading,
		userDictionary: cfg.Analysis.UserDictionary,
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		s.format = opts.format.String()
	}
	if flags.Changed("romaji") {
		s.romaji = opts.romaji
	}
	if flags.Changed("reading") {
		s.useReading = opts.reading
	}
	return s, nil
}

func classifyVerb(verb string, s settings) (conjugation.VerbClass, error) {
	if !s.useReading {
		class, err := conjugation.Classify(verb)
		if err != nil {
			return "", fmt.Errorf("conjugation.Classify(%s) > %w", verb, err)
		}
		slog.Default().Debug("classified a verb",
			slog.String("verb", verb),
			slog.String("class", string(class)),
		)
		return class, nil
	}

	resolver, err := newResolver(s.userDictionary)
	if err != nil {
		return "", fmt.Errorf("failed to create a reading resolver: %w", err)
	}
	class, err := reading.Classify(resolver, verb)
	if err != nil {
		return "", fmt.Errorf("reading.Classify(%s) > %w", verb, err)
	}
	slog.Default().Debug("classified a verb by its reading",
		slog.String("verb", verb),
		slog.String("class", string(class)),
	)
	return class, nil
}

func newPrinter(cmd *cobra.Command, s settings) *cli.ConjugationPrinter {
	return cli.NewConjugationPrinter(cmd.OutOrStdout(), s.format, s.color)
}
