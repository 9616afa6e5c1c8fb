// models/errors.go
package models

import "errors"

// Error kinds shared between the recommendation engine and the HTTP
// boundary. Wrap these with fmt.Errorf("%w: ...") and match them at the
// handler layer with errors.Is to pick the response status.
var (
	// ErrValidation marks bad caller input (missing location, empty
	// interests, non-positive days or budget).
	ErrValidation = errors.New("validation error")

	// ErrSchema marks a dataset that is missing a required column.
	ErrSchema = errors.New("dataset schema error")

	// ErrNoMatch marks a request for which no activities survive
	// filtering, either by interests/demographic or by budget/time.
	ErrNoMatch = errors.New("no matching activities")
)
