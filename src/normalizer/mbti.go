package normalizer

import (
	"fmt"
	"strings"

	"github.com/strata-hq/teamforge/src/traits"
)

// mbtiMapper normalizes a four-letter MBTI type code. Raw fields:
//
//	type: one of the 16 codes, e.g. "INTJ" (case-insensitive)
type mbtiMapper struct{}

var validMBTI = map[string]bool{
	"ISTJ": true, "ISFJ": true, "INFJ": true, "INTJ": true,
	"ISTP": true, "ISFP": true, "INFP": true, "INTP": true,
	"ESTP": true, "ESFP": true, "ENFP": true, "ENTP": true,
	"ESTJ": true, "ESFJ": true, "ENFJ": true, "ENTJ": true,
}

// Per-letter contributions on top of a neutral 0.5 baseline. MBTI says
// nothing about emotional stability, so neuroticism stays at baseline.
var mbtiLetterEffects = map[byte]traits.CanonicalTraitVector{
	'E': {Extraversion: 0.35, CollaborationIndex: 0.12, LeadershipPotential: 0.10},
	'I': {Extraversion: -0.28, CollaborationIndex: -0.05},
	'N': {Openness: 0.30},
	'S': {Openness: -0.12, Conscientiousness: 0.10},
	'T': {Agreeableness: -0.15, LeadershipPotential: 0.15},
	'F': {Agreeableness: 0.28, CollaborationIndex: 0.12},
	'J': {Conscientiousness: 0.30, LeadershipPotential: 0.08},
	'P': {Conscientiousness: -0.15, Openness: 0.10},
}

func (mbtiMapper) Framework() traits.Framework { return traits.FrameworkMBTI }

func (mbtiMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	code, err := rawString(raw, "type")
	if err != nil {
		return traits.CanonicalTraitVector{}, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validMBTI[code] {
		return traits.CanonicalTraitVector{}, fmt.Errorf("%w: unknown MBTI type %q", traits.ErrMalformedResult, code)
	}

	v := neutralVector()
	for i := 0; i < len(code); i++ {
		v = addVector(v, mbtiLetterEffects[code[i]])
	}
	return v, nil
}

func neutralVector() traits.CanonicalTraitVector {
	return traits.CanonicalTraitVector{
		Openness:            0.5,
		Conscientiousness:   0.5,
		Extraversion:        0.5,
		Agreeableness:       0.5,
		Neuroticism:         0.5,
		LeadershipPotential: 0.5,
		CollaborationIndex:  0.5,
	}
}

func addVector(a, b traits.CanonicalTraitVector) traits.CanonicalTraitVector {
	return traits.CanonicalTraitVector{
		Openness:            a.Openness + b.Openness,
		Conscientiousness:   a.Conscientiousness + b.Conscientiousness,
		Extraversion:        a.Extraversion + b.Extraversion,
		Agreeableness:       a.Agreeableness + b.Agreeableness,
		Neuroticism:         a.Neuroticism + b.Neuroticism,
		LeadershipPotential: a.LeadershipPotential + b.LeadershipPotential,
		CollaborationIndex:  a.CollaborationIndex + b.CollaborationIndex,
	}
}

func scaleVector(a traits.CanonicalTraitVector, k float64) traits.CanonicalTraitVector {
	return traits.CanonicalTraitVector{
		Openness:            a.Openness * k,
		Conscientiousness:   a.Conscientiousness * k,
		Extraversion:        a.Extraversion * k,
		Agreeableness:       a.Agreeableness * k,
		Neuroticism:         a.Neuroticism * k,
		LeadershipPotential: a.LeadershipPotential * k,
		CollaborationIndex:  a.CollaborationIndex * k,
	}
}
