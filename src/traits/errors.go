package traits

import "errors"

// Input-validation failures. All raised synchronously and never retried;
// the web layer translates them into HTTP status codes.
var (
	ErrUnsupportedFramework   = errors.New("unsupported framework")
	ErrMalformedResult        = errors.New("malformed framework result")
	ErrInsufficientData       = errors.New("insufficient data")
	ErrInsufficientCandidates = errors.New("insufficient candidates")
	ErrInvalidObjective       = errors.New("invalid objective")
)
