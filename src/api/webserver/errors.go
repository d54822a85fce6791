package webserver

import (
	"errors"
	"net/http"

	"github.com/strata-hq/teamforge/src/traits"
)

// statusFor maps core validation errors onto HTTP statuses. Everything
// else is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, traits.ErrUnsupportedFramework),
		errors.Is(err, traits.ErrMalformedResult),
		errors.Is(err, traits.ErrInvalidObjective):
		return http.StatusBadRequest
	case errors.Is(err, traits.ErrInsufficientData),
		errors.Is(err, traits.ErrInsufficientCandidates):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
