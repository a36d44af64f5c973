package cardfolio

import "errors"

var (
	// ErrMissingName is reported when a card is submitted without a name.
	ErrMissingName = errors.New("card name is required")
	// ErrMissingExpansion is reported when a card is submitted without an expansion.
	ErrMissingExpansion = errors.New("card expansion is required")
	// ErrNotFound is reported when no entry matches an identifier.
	ErrNotFound = errors.New("entry not found")
)
