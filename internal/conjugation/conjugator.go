package conjugation

import (
	"fmt"
	"strings"
)

// Conjugate inflects verb into the form named by tag (masu, nai, ta or te)
func Conjugate(verb string, tag string) (string, error) {
	form, err := ParseForm(tag)
	if err != nil {
		return "", err
	}
	return ConjugateForm(verb, form)
}

// ConjugateForm classifies verb and inflects it into form
func ConjugateForm(verb string, form Form) (string, error) {
	class, err := Classify(verb)
	if err != nil {
		return "", err
	}
	return ConjugateAs(verb, class, form)
}

// ConjugateAll returns every supported form of verb in canonical order
func ConjugateAll(verb string) ([]Inflection, error) {
	class, err := Classify(verb)
	if err != nil {
		return nil, err
	}
	return ConjugateAllAs(verb, class)
}

// ConjugateAllAs is ConjugateAll with a class decided by the caller
func ConjugateAllAs(verb string, class VerbClass) ([]Inflection, error) {
	inflections := make([]Inflection, 0, len(allForms))
	for _, form := range allForms {
		surface, err := ConjugateAs(verb, class, form)
		if err != nil {
			return nil, err
		}
		inflections = append(inflections, Inflection{Form: form, Surface: surface})
	}
	return inflections, nil
}

// ConjugateAs inflects verb into form, treating it as a member of class
func ConjugateAs(verb string, class VerbClass, form Form) (string, error) {
	if verb == "" {
		return "", fmt.Errorf("%w: empty verb", ErrInvalidArgument)
	}

	switch class {
	case VerbClassIchidan:
		return conjugateIchidan(verb, form)
	case VerbClassGodan:
		return conjugateGodan(verb, form)
	case VerbClassSuru:
		return conjugateSuru(verb, form)
	case VerbClassKuru:
		return conjugateKuru(form)
	}
	return "", fmt.Errorf("%w: class %q with form %q", ErrUnsupportedIrregularCombination, class, form)
}

func conjugateIchidan(verb string, form Form) (string, error) {
	suffix, ok := ichidanSuffixes[form]
	if !ok {
		return "", fmt.Errorf("%w: %q for an ichidan verb", ErrUnsupportedForm, form)
	}
	return strings.TrimSuffix(verb, "る") + suffix, nil
}

func conjugateGodan(verb string, form Form) (string, error) {
	table, ok := godanTables[form]
	if !ok {
		return "", fmt.Errorf("%w: %q for a godan verb", ErrUnsupportedForm, form)
	}

	runes := []rune(verb)
	root := string(runes[:len(runes)-1])
	ending := runes[len(runes)-1]

	if isIku(verb) {
		if replacement, ok := ikuEndings[form]; ok {
			return root + replacement, nil
		}
	}

	// An ending outside the table contributes nothing
	return root + table[ending] + godanTrailers[form], nil
}

func conjugateSuru(verb string, form Form) (string, error) {
	suffix, ok := suruSuffixes[form]
	if !ok {
		return "", fmt.Errorf("%w: suru verb with form %q", ErrUnsupportedIrregularCombination, form)
	}
	return strings.TrimSuffix(verb, "する") + suruStem + suffix, nil
}

func conjugateKuru(form Form) (string, error) {
	surface, ok := kuruForms[form]
	if !ok {
		return "", fmt.Errorf("%w: kuru verb with form %q", ErrUnsupportedIrregularCombination, form)
	}
	return surface, nil
}
