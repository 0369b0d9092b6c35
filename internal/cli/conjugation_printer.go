package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/katsuyo/internal/config"
	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	"github.com/fatih/color"
	"github.com/kotaroooo0/gojaconv/jaconv"
	"gopkg.in/yaml.v3"
)

// Result is what a command prints for a single verb
type Result struct {
	Verb        string             `yaml:"verb"`
	Class       string             `yaml:"class"`
	Inflections []InflectionResult `yaml:"inflections,omitempty"`
}

type InflectionResult struct {
	Form    string `yaml:"form"`
	Surface string `yaml:"surface"`
	Romaji  string `yaml:"romaji,omitempty"`
}

// NewResult builds a Result, adding Hepburn romanization of each surface when romaji is set
func NewResult(verb string, class conjugation.VerbClass, inflections []conjugation.Inflection, romaji bool) Result {
	result := Result{
		Verb:  verb,
		Class: string(class),
	}
	for _, inflection := range inflections {
		r := InflectionResult{
			Form:    string(inflection.Form),
			Surface: inflection.Surface,
		}
		if romaji {
			r.Romaji = toRomaji(inflection.Surface)
		}
		result.Inflections = append(result.Inflections, r)
	}
	return result
}

// Kanji are left as they are
func toRomaji(surface string) string {
	return jaconv.ToHebon(jaconv.KatakanaToHiragana(surface))
}

// ConjugationPrinter writes results as plain text or YAML
type ConjugationPrinter struct {
	stdoutWriter io.Writer
	format       string
	bold         *color.Color
	faint        *color.Color
}

func NewConjugationPrinter(stdoutWriter io.Writer, format string, colored bool) *ConjugationPrinter {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if !colored {
		bold.DisableColor()
		faint.DisableColor()
	}
	return &ConjugationPrinter{
		stdoutWriter: stdoutWriter,
		format:       format,
		bold:         bold,
		faint:        faint,
	}
}

// PrintClass prints the conjugation class of the verb
func (p *ConjugationPrinter) PrintClass(result Result) error {
	if p.format == config.OutputFormatYAML {
		return p.printYAML(result)
	}
	if _, err := fmt.Fprintln(p.stdoutWriter, result.Class); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// PrintSurface prints only the inflected forms, one per line, so that text output can be piped
func (p *ConjugationPrinter) PrintSurface(result Result) error {
	if p.format == config.OutputFormatYAML {
		return p.printYAML(result)
	}
	for _, inflection := range result.Inflections {
		line := inflection.Surface
		if inflection.Romaji != "" {
			line = fmt.Sprintf("%s %s", line, inflection.Romaji)
		}
		if _, err := fmt.Fprintln(p.stdoutWriter, line); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

// PrintTable prints the verb and its class followed by every inflection
func (p *ConjugationPrinter) PrintTable(result Result) error {
	if p.format == config.OutputFormatYAML {
		return p.printYAML(result)
	}

	if _, err := fmt.Fprintf(p.stdoutWriter, "%s %s\n",
		p.bold.Sprint(result.Verb),
		p.faint.Sprintf("(%s)", result.Class),
	); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	for _, inflection := range result.Inflections {
		line := fmt.Sprintf("  %-4s %s", inflection.Form, inflection.Surface)
		if inflection.Romaji != "" {
			line += " " + p.faint.Sprint(inflection.Romaji)
		}
		if _, err := fmt.Fprintln(p.stdoutWriter, line); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

func (p *ConjugationPrinter) printYAML(result Result) error {
	encoder := yaml.NewEncoder(p.stdoutWriter)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Close() > %w", err)
	}
	return nil
}
