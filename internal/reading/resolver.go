// Package reading resolves the kana reading of a verb so that verbs written with
// kanji before the final る can be classified by their pronunciation.
package reading

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/katsuyo/internal/conjugation"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/reading/mock_resolver.go -package=mock_reading

// Resolver returns the hiragana reading of a verb in dictionary form
type Resolver interface {
	Resolve(verb string) (string, error)
}

// Classify classifies verb by its reading. Known godan exceptions are matched on
// the written form first, since their readings collide with ichidan verbs.
func Classify(resolver Resolver, verb string) (conjugation.VerbClass, error) {
	if verb == "" {
		return conjugation.Classify(verb)
	}
	if conjugation.IsGodanException(verb) {
		return conjugation.VerbClassGodan, nil
	}

	kana, err := resolver.Resolve(verb)
	if err != nil {
		return "", fmt.Errorf("resolver.Resolve(%s) > %w", verb, err)
	}
	if kana == "" {
		return conjugation.Classify(verb)
	}

	class, err := conjugation.Classify(kana)
	if err != nil {
		return "", err
	}
	// A reading such as つくる for 作る only looks irregular
	if !hasIrregularEnding(verb, class) {
		return conjugation.ClassifyByVowel(kana), nil
	}
	return class, nil
}

func hasIrregularEnding(verb string, class conjugation.VerbClass) bool {
	switch class {
	case conjugation.VerbClassSuru:
		return strings.HasSuffix(verb, "する")
	case conjugation.VerbClassKuru:
		return strings.HasSuffix(verb, "くる") || strings.HasSuffix(verb, "来る")
	}
	return true
}
