package cli

import (
	"bytes"
	"testing"

	"github.com/at-ishikawa/katsuyo/internal/config"
	"github.com/at-ishikawa/katsuyo/internal/conjugation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	inflections := []conjugation.Inflection{
		{Form: conjugation.FormPoliteNonPast, Surface: "たべます"},
		{Form: conjugation.FormPastPlain, Surface: "たべた"},
	}

	tests := []struct {
		name   string
		romaji bool
		want   Result
	}{
		{
			name:   "without romaji",
			romaji: false,
			want: Result{
				Verb:  "たべる",
				Class: "ichidan",
				Inflections: []InflectionResult{
					{Form: "masu", Surface: "たべます"},
					{Form: "ta", Surface: "たべた"},
				},
			},
		},
		{
			name:   "with romaji",
			romaji: true,
			want: Result{
				Verb:  "たべる",
				Class: "ichidan",
				Inflections: []InflectionResult{
					{Form: "masu", Surface: "たべます", Romaji: "tabemasu"},
					{Form: "ta", Surface: "たべた", Romaji: "tabeta"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResult("たべる", conjugation.VerbClassIchidan, inflections, tt.romaji)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConjugationPrinter(t *testing.T) {
	result := Result{
		Verb:  "来る",
		Class: "kuru",
		Inflections: []InflectionResult{
			{Form: "masu", Surface: "きます"},
			{Form: "te", Surface: "きて", Romaji: "kite"},
		},
	}

	tests := []struct {
		name   string
		format string
		print  func(p *ConjugationPrinter) error
		want   string
	}{
		{
			name:   "class as text",
			format: config.OutputFormatText,
			print:  func(p *ConjugationPrinter) error { return p.PrintClass(result) },
			want:   "kuru\n",
		},
		{
			name:   "surface as text",
			format: config.OutputFormatText,
			print:  func(p *ConjugationPrinter) error { return p.PrintSurface(result) },
			want:   "きます\nきて kite\n",
		},
		{
			name:   "table as text",
			format: config.OutputFormatText,
			print:  func(p *ConjugationPrinter) error { return p.PrintTable(result) },
			want:   "来る (kuru)\n  masu きます\n  te   きて kite\n",
		},
		{
			name:   "table as yaml",
			format: config.OutputFormatYAML,
			print:  func(p *ConjugationPrinter) error { return p.PrintTable(result) },
			want: `verb: 来る
class: kuru
inflections:
  - form: masu
    surface: きます
  - form: te
    surface: きて
    romaji: kite
`,
		},
		{
			name:   "class as yaml",
			format: config.OutputFormatYAML,
			print: func(p *ConjugationPrinter) error {
				return p.PrintClass(Result{Verb: "する", Class: "suru"})
			},
			want: "verb: する\nclass: suru\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer := NewConjugationPrinter(&buf, tt.format, false)

			require.NoError(t, tt.print(printer))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
