package normalizer

import (
	"fmt"

	"github.com/strata-hq/teamforge/src/traits"
)

// Mapper converts one framework's raw result fields into the canonical
// trait space. One implementation per supported framework.
type Mapper interface {
	Framework() traits.Framework
	Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error)
}

// registry is populated once at init and read-only afterwards.
var registry = map[traits.Framework]Mapper{}

func register(m Mapper) {
	registry[m.Framework()] = m
}

func init() {
	register(mbtiMapper{})
	register(bigFiveMapper{})
	register(enneagramMapper{})
	register(predictiveIndexMapper{})
	register(strengthsFinderMapper{})
	register(socialStylesMapper{})
}

// Normalize maps a raw framework result into the canonical trait space.
// Pure and deterministic; output dimensions are clamped to [0,1].
func Normalize(result traits.FrameworkResult) (traits.CanonicalTraitVector, error) {
	m, ok := registry[result.Framework]
	if !ok {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: %q", traits.ErrUnsupportedFramework, result.Framework)
	}
	v, err := m.Normalize(result.Raw)
	if err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	return v.Clamped(), nil
}

// Supported reports whether a mapping is registered for the framework.
func Supported(f traits.Framework) bool {
	_, ok := registry[f]
	return ok
}

// rawString extracts a required string field.
func rawString(raw map[string]interface{}, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", traits.ErrMalformedResult, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", traits.ErrMalformedResult, key)
	}
	return s, nil
}

// rawNumber extracts a required numeric field. JSON decoding hands us
// float64, but direct library callers may pass ints.
func rawNumber(raw map[string]interface{}, key string) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", traits.ErrMalformedResult, key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: field %q is not numeric", traits.ErrMalformedResult, key)
}

// rawScale extracts a numeric field on a 0-100 scale and returns it in [0,1].
func rawScale(raw map[string]interface{}, key string) (float64, error) {
	n, err := rawNumber(raw, key)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("%w: field %q out of range [0,100]", traits.ErrMalformedResult, key)
	}
	return n / 100, nil
}
