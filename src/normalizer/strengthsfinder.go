package normalizer

import (
	"fmt"
	"strings"

	"github.com/strata-hq/teamforge/src/traits"
)

// strengthsFinderMapper normalizes a CliftonStrengths top-themes report.
// Raw fields:
//
//	themes: 1-5 theme names (case-insensitive)
//
// Each theme belongs to one of the four Gallup domains; the vector is
// the neutral baseline shifted by the domain mix of the reported themes.
type strengthsFinderMapper struct{}

const (
	domainExecuting    = "executing"
	domainInfluencing  = "influencing"
	domainRelationship = "relationship_building"
	domainStrategic    = "strategic_thinking"
)

var strengthsThemeDomain = map[string]string{
	// Executing
	"achiever": domainExecuting, "arranger": domainExecuting, "belief": domainExecuting,
	"consistency": domainExecuting, "deliberative": domainExecuting, "discipline": domainExecuting,
	"focus": domainExecuting, "responsibility": domainExecuting, "restorative": domainExecuting,
	// Influencing
	"activator": domainInfluencing, "command": domainInfluencing, "communication": domainInfluencing,
	"competition": domainInfluencing, "maximizer": domainInfluencing, "self-assurance": domainInfluencing,
	"significance": domainInfluencing, "woo": domainInfluencing,
	// Relationship building
	"adaptability": domainRelationship, "connectedness": domainRelationship, "developer": domainRelationship,
	"empathy": domainRelationship, "harmony": domainRelationship, "includer": domainRelationship,
	"individualization": domainRelationship, "positivity": domainRelationship, "relator": domainRelationship,
	// Strategic thinking
	"analytical": domainStrategic, "context": domainStrategic, "futuristic": domainStrategic,
	"ideation": domainStrategic, "input": domainStrategic, "intellection": domainStrategic,
	"learner": domainStrategic, "strategic": domainStrategic,
}

// Full-strength shift applied when every reported theme sits in one domain.
var strengthsDomainEffects = map[string]traits.CanonicalTraitVector{
	domainExecuting:    {Conscientiousness: 0.35, Neuroticism: -0.10, LeadershipPotential: 0.10},
	domainInfluencing:  {Extraversion: 0.35, LeadershipPotential: 0.30, Agreeableness: -0.05},
	domainRelationship: {Agreeableness: 0.35, CollaborationIndex: 0.35, Extraversion: 0.10},
	domainStrategic:    {Openness: 0.35, Conscientiousness: 0.10, Extraversion: -0.05},
}

func (strengthsFinderMapper) Framework() traits.Framework { return traits.FrameworkStrengthsFinder }

func (strengthsFinderMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	v, ok := raw["themes"]
	if !ok {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: missing field %q", traits.ErrMalformedResult, "themes")
	}

	var themes []string
	switch list := v.(type) {
	case []string:
		themes = list
	case []interface{}:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return traits.CanonicalTraitVector{}, fmt.Errorf("%w: themes must be strings", traits.ErrMalformedResult)
			}
			themes = append(themes, s)
		}
	default:
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: themes must be a list", traits.ErrMalformedResult)
	}

	if len(themes) == 0 || len(themes) > 5 {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: expected 1-5 themes, got %d", traits.ErrMalformedResult, len(themes))
	}

	counts := map[string]int{}
	for _, t := range themes {
		domain, ok := strengthsThemeDomain[strings.ToLower(strings.TrimSpace(t))]
		if !ok {
			return traits.CanonicalTraitVector{}, fmt.Errorf("%w: unknown theme %q", traits.ErrMalformedResult, t)
		}
		counts[domain]++
	}

	vec := neutralVector()
	for domain, n := range counts {
		share := float64(n) / float64(len(themes))
		vec = addVector(vec, scaleVector(strengthsDomainEffects[domain], share))
	}
	return vec, nil
}
