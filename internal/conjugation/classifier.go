package conjugation

import (
	"fmt"
	"strings"
)

// IsGodanException reports whether verb is a known godan verb that looks like an ichidan verb
func IsGodanException(verb string) bool {
	_, ok := godanExceptions[verb]
	return ok
}

// Classify returns the conjugation class of a verb in dictionary form.
// The exception list is consulted before the る heuristic.
func Classify(verb string) (VerbClass, error) {
	if verb == "" {
		return "", fmt.Errorf("%w: empty verb", ErrInvalidArgument)
	}
	if IsGodanException(verb) {
		return VerbClassGodan, nil
	}

	switch {
	case strings.HasSuffix(verb, "する"):
		return VerbClassSuru, nil
	case strings.HasSuffix(verb, "くる"), strings.HasSuffix(verb, "来る"):
		return VerbClassKuru, nil
	case strings.HasSuffix(verb, "る"):
		return classifyRuVerb(verb), nil
	}
	return VerbClassGodan, nil
}

// ClassifyByVowel applies only the る heuristic, skipping the exception list and the irregular endings
func ClassifyByVowel(verb string) VerbClass {
	if !strings.HasSuffix(verb, "る") {
		return VerbClassGodan
	}
	return classifyRuVerb(verb)
}

// classifyRuVerb looks at the vowel before the final る: i or e means ichidan
func classifyRuVerb(verb string) VerbClass {
	runes := []rune(verb)
	if len(runes) < 2 {
		return VerbClassGodan
	}
	vowel, ok := vowelOf(runes[len(runes)-2])
	if ok && (vowel == 'i' || vowel == 'e') {
		return VerbClassIchidan
	}
	return VerbClassGodan
}
