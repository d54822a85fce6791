package optimizer

import (
	"math"
	"sort"

	"github.com/strata-hq/teamforge/src/compat"
	"github.com/strata-hq/teamforge/src/traits"
)

// candidate is one feasible grouping with its scores. indices point into
// the evaluator's pool and stay sorted.
type candidate struct {
	indices  []int
	grouping traits.TeamGrouping
}

// evaluator scores subsets of one fixed pool against one requirements
// and weights set. Pairwise compatibility is precomputed once so both
// search strategies share the same scoring function.
type evaluator struct {
	pool     []traits.TeamMember
	required []string
	weights  map[string]float64
	pair     [][]float64
	demand   float64
}

// velocityDemand calibrates how much delivery capacity a project of a
// given complexity asks for before the velocity score saturates.
var velocityDemand = map[traits.Complexity]float64{
	traits.ComplexityLow:      1.5,
	traits.ComplexityMedium:   2.5,
	traits.ComplexityHigh:     3.5,
	traits.ComplexityCritical: 4.5,
}

func newEvaluator(pool []traits.TeamMember, req traits.ProjectRequirements, weights map[string]float64, scorer *compat.Scorer) *evaluator {
	pair := make([][]float64, len(pool))
	for i := range pool {
		pair[i] = make([]float64, len(pool))
	}
	for i := range pool {
		pair[i][i] = 1
		for j := i + 1; j < len(pool); j++ {
			s := scorer.ScorePair(pool[i], pool[j])
			pair[i][j] = s
			pair[j][i] = s
		}
	}

	demand, ok := velocityDemand[req.Complexity]
	if !ok {
		demand = velocityDemand[traits.ComplexityMedium]
	}

	return &evaluator{
		pool:     pool,
		required: req.RequiredSkills,
		weights:  weights,
		pair:     pair,
		demand:   demand,
	}
}

// score computes the four sub-scores and the weighted overall score for
// a subset of pool indices.
func (e *evaluator) score(indices []int) candidate {
	idxs := append([]int(nil), indices...)
	sort.Ints(idxs)

	coverage := e.skillCoverage(idxs)
	compatibility := e.meanCompatibility(idxs)
	diversity := e.traitDiversity(idxs)
	velocity := e.estimatedVelocity(idxs)

	overall := e.weights[traits.FeatureSkillMatch]*coverage +
		e.weights[traits.FeatureCompatibility]*compatibility +
		e.weights[traits.FeatureDiversity]*diversity +
		e.weights[traits.FeatureVelocity]*velocity

	ids := make([]string, len(idxs))
	for i, idx := range idxs {
		ids[i] = e.pool[idx].ID
	}
	sort.Strings(ids)

	return candidate{
		indices: idxs,
		grouping: traits.TeamGrouping{
			MemberIDs:          ids,
			OverallScore:       overall,
			CompatibilityScore: compatibility,
			SkillCoverage:      coverage,
			DiversityScore:     diversity,
			EstimatedVelocity:  velocity,
		},
	}
}

// skillCoverage is the fraction of required skills covered by the union
// of member skills. No required skills means full coverage.
func (e *evaluator) skillCoverage(idxs []int) float64 {
	if len(e.required) == 0 {
		return 1
	}
	covered := map[string]bool{}
	for _, idx := range idxs {
		for _, s := range e.pool[idx].Skills {
			covered[s] = true
		}
	}
	hit := 0
	for _, s := range e.required {
		if covered[s] {
			hit++
		}
	}
	return float64(hit) / float64(len(e.required))
}

// meanCompatibility averages the pairwise scores over all member pairs.
// A single-member team is trivially compatible.
func (e *evaluator) meanCompatibility(idxs []int) float64 {
	if len(idxs) < 2 {
		return 1
	}
	total, pairs := 0.0, 0
	for i := 0; i < len(idxs); i++ {
		for j := i + 1; j < len(idxs); j++ {
			total += e.pair[idxs[i]][idxs[j]]
			pairs++
		}
	}
	return total / float64(pairs)
}

// traitDiversity is the normalized variance of the canonical trait
// vectors across members. Variance of values in [0,1] is at most 0.25,
// which maps to a diversity of 1.
func (e *evaluator) traitDiversity(idxs []int) float64 {
	if len(idxs) < 2 {
		return 0
	}
	const dims = 7
	sums := [dims]float64{}
	sumsSq := [dims]float64{}
	for _, idx := range idxs {
		for d, v := range e.pool[idx].Profile.Vector.Dimensions() {
			sums[d] += v
			sumsSq[d] += v * v
		}
	}
	n := float64(len(idxs))
	total := 0.0
	for d := 0; d < dims; d++ {
		mean := sums[d] / n
		total += sumsSq[d]/n - mean*mean
	}
	return traits.Clamp01(total / dims / 0.25)
}

// estimatedVelocity saturates with total weighted capacity: experience
// (capped at 20 years per member) scaled by availability, measured
// against the complexity demand.
func (e *evaluator) estimatedVelocity(idxs []int) float64 {
	capacity := 0.0
	for _, idx := range idxs {
		m := e.pool[idx]
		exp := m.ExperienceYears
		if exp > 20 {
			exp = 20
		}
		capacity += traits.Clamp01(m.Availability) * exp / 20
	}
	return 1 - math.Exp(-2*capacity/e.demand)
}
