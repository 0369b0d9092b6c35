// Package conjugation classifies Japanese verbs in dictionary form and derives
// their polite, negative, past and te forms.
package conjugation

import "fmt"

// VerbClass represents the conjugation class of a verb
type VerbClass string

const (
	VerbClassGodan   VerbClass = "godan"
	VerbClassIchidan VerbClass = "ichidan"
	VerbClassSuru    VerbClass = "suru"
	VerbClassKuru    VerbClass = "kuru"
)

// Form represents an inflected form. The values are the tags accepted from callers.
type Form string

const (
	FormPoliteNonPast Form = "masu"
	FormNegativePlain Form = "nai"
	FormPastPlain     Form = "ta"
	FormTe            Form = "te"
)

var allForms = []Form{FormPoliteNonPast, FormNegativePlain, FormPastPlain, FormTe}

// Forms returns every supported form in canonical order
func Forms() []Form {
	forms := make([]Form, len(allForms))
	copy(forms, allForms)
	return forms
}

// ParseForm converts an external tag into a Form
func ParseForm(tag string) (Form, error) {
	for _, form := range allForms {
		if tag == string(form) {
			return form, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", ErrUnsupportedForm, tag, allForms)
}

// Inflection is a single inflected surface form of a verb
type Inflection struct {
	Form    Form
	Surface string
}
