package normalizer

import "github.com/strata-hq/teamforge/src/traits"

// bigFiveMapper normalizes OCEAN percentile scores. Raw fields, each on
// a 0-100 scale:
//
//	openness, conscientiousness, extraversion, agreeableness, neuroticism
//
// The five factors carry straight over; the two derived dimensions are
// fixed linear blends of them.
type bigFiveMapper struct{}

func (bigFiveMapper) Framework() traits.Framework { return traits.FrameworkBigFive }

func (bigFiveMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	var v traits.CanonicalTraitVector
	var err error

	if v.Openness, err = rawScale(raw, "openness"); err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	if v.Conscientiousness, err = rawScale(raw, "conscientiousness"); err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	if v.Extraversion, err = rawScale(raw, "extraversion"); err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	if v.Agreeableness, err = rawScale(raw, "agreeableness"); err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	if v.Neuroticism, err = rawScale(raw, "neuroticism"); err != nil {
		return traits.CanonicalTraitVector{}, err
	}

	v.LeadershipPotential = 0.40*v.Extraversion + 0.35*v.Conscientiousness + 0.25*(1-v.Neuroticism)
	v.CollaborationIndex = 0.50*v.Agreeableness + 0.30*v.Extraversion + 0.20*(1-v.Neuroticism)
	return v, nil
}
