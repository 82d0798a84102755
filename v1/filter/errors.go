package filter

import "errors"

// Errors returned by filter construction. Callers should test for them with
// errors.Is, the returned errors carry the offending detail.
var (
	// ErrInvalidFilter is returned when a condition of a kind that is not
	// allowed at the top level is used to build or extend a Filter.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidConfiguration is returned when a condition is built with
	// out-of-range parameters, such as a negative MinCount.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNullArgument is returned when a required argument is nil or empty.
	ErrNullArgument = errors.New("null argument")
)
