package normalizer

import (
	"fmt"
	"strings"

	"github.com/strata-hq/teamforge/src/traits"
)

// socialStylesMapper normalizes a TRACOM Social Styles result. Raw fields:
//
//	style:       one of driver, expressive, amiable, analytical
//	versatility: optional, 0-100; pulls collaboration toward its value
type socialStylesMapper struct{}

var socialStyles = map[string]traits.CanonicalTraitVector{
	"driver":     {Openness: 0.50, Conscientiousness: 0.70, Extraversion: 0.70, Agreeableness: 0.35, Neuroticism: 0.40, LeadershipPotential: 0.85, CollaborationIndex: 0.45},
	"expressive": {Openness: 0.80, Conscientiousness: 0.40, Extraversion: 0.90, Agreeableness: 0.60, Neuroticism: 0.50, LeadershipPotential: 0.65, CollaborationIndex: 0.65},
	"amiable":    {Openness: 0.50, Conscientiousness: 0.55, Extraversion: 0.40, Agreeableness: 0.90, Neuroticism: 0.45, LeadershipPotential: 0.35, CollaborationIndex: 0.90},
	"analytical": {Openness: 0.65, Conscientiousness: 0.85, Extraversion: 0.25, Agreeableness: 0.50, Neuroticism: 0.55, LeadershipPotential: 0.45, CollaborationIndex: 0.50},
}

func (socialStylesMapper) Framework() traits.Framework { return traits.FrameworkSocialStyles }

func (socialStylesMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	style, err := rawString(raw, "style")
	if err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	v, ok := socialStyles[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: unknown social style %q", traits.ErrMalformedResult, style)
	}

	if ver, present := raw["versatility"]; present && ver != nil {
		val, err := rawScale(raw, "versatility")
		if err != nil {
			return traits.CanonicalTraitVector{}, err
		}
		// Versatility measures how well someone flexes to other styles;
		// blend it into the collaboration dimension.
		v.CollaborationIndex = 0.6*v.CollaborationIndex + 0.4*val
	}
	return v, nil
}
