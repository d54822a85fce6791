package synthesis

import (
	"fmt"
	"math"
	"sort"

	"github.com/strata-hq/teamforge/src/normalizer"
	"github.com/strata-hq/teamforge/src/traits"
)

// Input is one normalized framework result feeding a synthesis.
type Input struct {
	Framework  traits.Framework
	Vector     traits.CanonicalTraitVector
	Confidence float64
}

// corroborationBonus returns the confidence uplift for n distinct
// frameworks: a geometric series adding 0.05 for the second framework,
// 0.025 for the third, and so on. n=1 yields zero.
func corroborationBonus(n int) float64 {
	if n <= 1 {
		return 0
	}
	return 0.05 * (1 - math.Pow(0.5, float64(n-1))) / 0.5
}

// Synthesize combines one or more normalized framework results for a
// single member into one profile. Per-framework weights are the
// framework confidences renormalized over the provided frameworks only;
// missing frameworks are simply absent from the denominator.
func Synthesize(memberID string, inputs []Input) (traits.SynthesizedProfile, error) {
	if len(inputs) == 0 {
		return traits.SynthesizedProfile{}, fmt.Errorf("%w: no framework results for member %s", traits.ErrInsufficientData, memberID)
	}

	total := 0.0
	for _, in := range inputs {
		if in.Confidence < 0 || in.Confidence > 1 {
			return traits.SynthesizedProfile{}, fmt.Errorf("%w: confidence %.3f out of range for %s", traits.ErrMalformedResult, in.Confidence, in.Framework)
		}
		total += in.Confidence
	}

	weights := make([]float64, len(inputs))
	if total == 0 {
		// All-zero confidences: fall back to an unweighted average.
		for i := range weights {
			weights[i] = 1 / float64(len(inputs))
		}
	} else {
		for i, in := range inputs {
			weights[i] = in.Confidence / total
		}
	}

	var vec traits.CanonicalTraitVector
	aggregate := 0.0
	perFramework := make(map[traits.Framework]float64, len(inputs))
	for i, in := range inputs {
		w := weights[i]
		vec.Openness += w * in.Vector.Openness
		vec.Conscientiousness += w * in.Vector.Conscientiousness
		vec.Extraversion += w * in.Vector.Extraversion
		vec.Agreeableness += w * in.Vector.Agreeableness
		vec.Neuroticism += w * in.Vector.Neuroticism
		vec.LeadershipPotential += w * in.Vector.LeadershipPotential
		vec.CollaborationIndex += w * in.Vector.CollaborationIndex
		aggregate += w * in.Confidence
		perFramework[in.Framework] += w
	}

	contributing := make([]traits.Framework, 0, len(perFramework))
	for f := range perFramework {
		contributing = append(contributing, f)
	}
	sort.Slice(contributing, func(i, j int) bool { return contributing[i] < contributing[j] })

	confidence := aggregate + corroborationBonus(len(contributing))
	if confidence > 1 {
		confidence = 1
	}

	return traits.SynthesizedProfile{
		MemberID:               memberID,
		Vector:                 vec.Clamped(),
		Confidence:             confidence,
		ContributingFrameworks: contributing,
		PerFrameworkWeight:     perFramework,
	}, nil
}

// NormalizeAndSynthesize is the entry point invoked after a new
// assessment submission is persisted: normalize every raw result, then
// synthesize them into one profile.
func NormalizeAndSynthesize(memberID string, results []traits.FrameworkResult) (traits.SynthesizedProfile, error) {
	if len(results) == 0 {
		return traits.SynthesizedProfile{}, fmt.Errorf("%w: no framework results for member %s", traits.ErrInsufficientData, memberID)
	}

	inputs := make([]Input, 0, len(results))
	for _, r := range results {
		vec, err := normalizer.Normalize(r)
		if err != nil {
			return traits.SynthesizedProfile{}, err
		}
		inputs = append(inputs, Input{Framework: r.Framework, Vector: vec, Confidence: r.Confidence})
	}
	return Synthesize(memberID, inputs)
}
