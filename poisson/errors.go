package poisson

import "errors"

var (
	// ErrInvalidDomain is returned for domains with no usable area: empty
	// geometry, a degenerate bounding box, or a non-finite area.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidParameter is returned for a non-positive minimum distance
	// or candidate count.
	ErrInvalidParameter = errors.New("invalid parameter")
)
