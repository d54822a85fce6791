package normalizer

import (
	"fmt"
	"math"

	"github.com/strata-hq/teamforge/src/traits"
)

// enneagramMapper normalizes an Enneagram core type. Raw fields:
//
//	type: integer 1-9
//	wing: optional integer, must be adjacent to type (9 wraps to 1)
//
// With a wing present the vector is a 75/25 blend of core and wing.
type enneagramMapper struct{}

var enneagramTypes = map[int]traits.CanonicalTraitVector{
	1: {Openness: 0.40, Conscientiousness: 0.90, Extraversion: 0.40, Agreeableness: 0.50, Neuroticism: 0.55, LeadershipPotential: 0.60, CollaborationIndex: 0.50},
	2: {Openness: 0.50, Conscientiousness: 0.60, Extraversion: 0.65, Agreeableness: 0.90, Neuroticism: 0.50, LeadershipPotential: 0.45, CollaborationIndex: 0.85},
	3: {Openness: 0.55, Conscientiousness: 0.80, Extraversion: 0.75, Agreeableness: 0.45, Neuroticism: 0.45, LeadershipPotential: 0.80, CollaborationIndex: 0.55},
	4: {Openness: 0.85, Conscientiousness: 0.45, Extraversion: 0.40, Agreeableness: 0.55, Neuroticism: 0.70, LeadershipPotential: 0.35, CollaborationIndex: 0.45},
	5: {Openness: 0.80, Conscientiousness: 0.60, Extraversion: 0.25, Agreeableness: 0.45, Neuroticism: 0.50, LeadershipPotential: 0.40, CollaborationIndex: 0.35},
	6: {Openness: 0.45, Conscientiousness: 0.70, Extraversion: 0.45, Agreeableness: 0.65, Neuroticism: 0.65, LeadershipPotential: 0.40, CollaborationIndex: 0.70},
	7: {Openness: 0.90, Conscientiousness: 0.40, Extraversion: 0.85, Agreeableness: 0.60, Neuroticism: 0.35, LeadershipPotential: 0.55, CollaborationIndex: 0.65},
	8: {Openness: 0.55, Conscientiousness: 0.65, Extraversion: 0.75, Agreeableness: 0.30, Neuroticism: 0.30, LeadershipPotential: 0.90, CollaborationIndex: 0.45},
	9: {Openness: 0.55, Conscientiousness: 0.50, Extraversion: 0.40, Agreeableness: 0.85, Neuroticism: 0.40, LeadershipPotential: 0.30, CollaborationIndex: 0.80},
}

func (enneagramMapper) Framework() traits.Framework { return traits.FrameworkEnneagram }

func (enneagramMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	n, err := rawNumber(raw, "type")
	if err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	core := int(n)
	if float64(core) != n || core < 1 || core > 9 {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: enneagram type must be an integer 1-9", traits.ErrMalformedResult)
	}

	v := enneagramTypes[core]

	if w, ok := raw["wing"]; ok && w != nil {
		wn, err := rawNumber(raw, "wing")
		if err != nil {
			return traits.CanonicalTraitVector{}, err
		}
		wing := int(wn)
		if float64(wing) != wn || !adjacentEnneagram(core, wing) {
			return traits.CanonicalTraitVector{}, fmt.Errorf("%w: wing %v is not adjacent to type %d", traits.ErrMalformedResult, w, core)
		}
		v = addVector(scaleVector(v, 0.75), scaleVector(enneagramTypes[wing], 0.25))
	}
	return v, nil
}

func adjacentEnneagram(core, wing int) bool {
	if wing < 1 || wing > 9 {
		return false
	}
	d := int(math.Abs(float64(core - wing)))
	return d == 1 || d == 8 // 9w1 / 1w9 wrap
}
