package conjugation

import "errors"

var (
	// ErrInvalidArgument is returned for an empty verb.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedForm is returned for a form tag or form without a rule.
	ErrUnsupportedForm = errors.New("unsupported form")
	// ErrUnsupportedIrregularCombination is returned when an irregular class has no rule for a form.
	ErrUnsupportedIrregularCombination = errors.New("unsupported irregular combination")
)
