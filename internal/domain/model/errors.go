package model

import "errors"

// Error kinds surfaced by the weather operations. Wrap with
// fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrMissingConfiguration means the provider API key is absent. Fatal for
	// the whole component, surfaced before any call attempt.
	ErrMissingConfiguration = errors.New("weather provider API key is not configured")

	// ErrInvalidParams means a required field is missing or the event date is
	// unparsable or in the past.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrInvalidLocation means geocoding returned zero candidates.
	ErrInvalidLocation = errors.New("location not found")

	// ErrUpstream means a network failure, a non-success provider response, or
	// a forecast response missing data for the requested date.
	ErrUpstream = errors.New("weather provider request failed")
)
