package reading

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// readingFeature is the index of the katakana reading in IPA dictionary features
const readingFeature = 7

// Kagome wraps the kagome tokenizer so callers don't depend on it directly
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

// NewKagome loads the IPA NEologd dictionary, plus a user dictionary when userDictPath isn't empty
func NewKagome(userDictPath string) (*Kagome, error) {
	options := []tokenizer.Option{tokenizer.OmitBosEos()}
	if userDictPath != "" {
		userDict, err := dict.NewUserDict(userDictPath)
		if err != nil {
			return nil, fmt.Errorf("dict.NewUserDict(%s) > %w", userDictPath, err)
		}
		options = append(options, tokenizer.UserDict(userDict))
	}

	t, err := tokenizer.New(ipaneologd.Dict(), options...)
	if err != nil {
		return nil, fmt.Errorf("tokenizer.New() > %w", err)
	}
	return &Kagome{
		kagome: t,
	}, nil
}

// Resolve joins the readings of every token of verb. Tokens without a reading keep their surface.
func (k *Kagome) Resolve(verb string) (string, error) {
	var reading strings.Builder
	for _, token := range k.kagome.Tokenize(verb) {
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			reading.WriteString(features[readingFeature])
			continue
		}
		reading.WriteString(token.Surface)
	}
	return jaconv.KatakanaToHiragana(reading.String()), nil
}
