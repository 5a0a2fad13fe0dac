package domain

import "errors"

var (
	// ErrInvalidInput is returned when the text to rank is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedLanguage is returned when no stemmer is registered for a language.
	ErrUnsupportedLanguage = errors.New("unsupported stemmer language")

	// ErrContractViolation is the panic value raised when ranking stages are
	// called with arguments no caller in this module produces.
	ErrContractViolation = errors.New("contract violation")
)
