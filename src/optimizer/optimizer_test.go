package optimizer

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-hq/teamforge/src/traits"
)

func poolMember(id string, vec traits.CanonicalTraitVector, exp, avail float64, skills ...string) traits.TeamMember {
	return traits.TeamMember{
		ID:              id,
		Role:            traits.RoleDeveloper,
		Profile:         traits.SynthesizedProfile{MemberID: id, Vector: vec, Confidence: 0.8},
		Skills:          skills,
		ExperienceYears: exp,
		Availability:    avail,
	}
}

func flatVec(base float64) traits.CanonicalTraitVector {
	return traits.CanonicalTraitVector{
		Openness: base, Conscientiousness: base, Extraversion: base,
		Agreeableness: base, Neuroticism: base, LeadershipPotential: base,
		CollaborationIndex: base,
	}
}

func requirements(min, max int, skills ...string) traits.ProjectRequirements {
	return traits.ProjectRequirements{
		ProjectType:    "platform",
		DurationWeeks:  12,
		Complexity:     traits.ComplexityMedium,
		RequiredSkills: skills,
		TeamSizeMin:    min,
		TeamSizeMax:    max,
	}
}

func TestOptimizeInsufficientCandidates(t *testing.T) {
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.5), 5, 1),
		poolMember("b", flatVec(0.5), 5, 1),
	}
	_, err := o.Optimize(context.Background(), pool, requirements(3, 5), traits.OptimizationObjective{})
	assert.ErrorIs(t, err, traits.ErrInsufficientCandidates)
}

func TestOptimizeInvalidObjective(t *testing.T) {
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.5), 5, 1),
		poolMember("b", flatVec(0.5), 5, 1),
		poolMember("c", flatVec(0.5), 5, 1),
	}
	req := requirements(2, 3)

	cases := []map[string]float64{
		{traits.FeatureSkillMatch: 0.5},                                  // does not sum to 1
		{traits.FeatureSkillMatch: 0.5, "team_spirit": 0.5},              // unknown feature
		{traits.FeatureSkillMatch: 1.5, traits.FeatureDiversity: -0.5},   // negative weight
	}
	for i, weights := range cases {
		_, err := o.Optimize(context.Background(), pool, req, traits.OptimizationObjective{Weights: weights})
		assert.ErrorIs(t, err, traits.ErrInvalidObjective, "case %d", i)
	}
}

func TestOptimizePoolEqualsMinimum(t *testing.T) {
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.4), 4, 1, "go"),
		poolMember("b", flatVec(0.6), 6, 1, "react"),
		poolMember("c", flatVec(0.5), 5, 1, "sql"),
	}
	res, err := o.Optimize(context.Background(), pool, requirements(3, 3, "go", "react", "sql"), traits.OptimizationObjective{})
	require.NoError(t, err)

	require.Len(t, res.RecommendedTeams, 1, "only one feasible grouping exists")
	assert.Equal(t, []string{"a", "b", "c"}, res.RecommendedTeams[0].MemberIDs)
	assert.Equal(t, 1.0, res.RecommendedTeams[0].SkillCoverage)
	assert.Equal(t, "exhaustive", res.Metrics.AlgorithmUsed)
	assert.Equal(t, res.RecommendedTeams[0].OverallScore, res.OverallScore)
}

func TestOptimizeSizeWindowRespected(t *testing.T) {
	o := New(DefaultConfig())
	var pool []traits.TeamMember
	for i := 0; i < 8; i++ {
		pool = append(pool, poolMember(fmt.Sprintf("m%d", i), flatVec(0.3+0.05*float64(i)), float64(i), 1))
	}
	res, err := o.Optimize(context.Background(), pool, requirements(3, 5), traits.OptimizationObjective{})
	require.NoError(t, err)
	require.NotEmpty(t, res.RecommendedTeams)
	for _, team := range res.RecommendedTeams {
		assert.GreaterOrEqual(t, len(team.MemberIDs), 3)
		assert.LessOrEqual(t, len(team.MemberIDs), 5)
	}
}

func TestOptimizeDisjointSkillsFullCoverage(t *testing.T) {
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.5), 5, 1, "go"),
		poolMember("b", flatVec(0.5), 5, 1, "react"),
		poolMember("c", flatVec(0.5), 5, 1, "sql"),
		poolMember("d", flatVec(0.5), 5, 1, "terraform"),
	}
	obj := traits.OptimizationObjective{Weights: map[string]float64{
		traits.FeatureSkillMatch:    0.6,
		traits.FeatureCompatibility: 0.2,
		traits.FeatureDiversity:     0.1,
		traits.FeatureVelocity:      0.1,
	}}

	res, err := o.Optimize(context.Background(), pool, requirements(3, 3, "go", "react", "sql"), obj)
	require.NoError(t, err)
	top := res.RecommendedTeams[0]
	assert.Equal(t, 1.0, top.SkillCoverage)
	assert.Equal(t, []string{"a", "b", "c"}, top.MemberIDs)
}

func TestOptimizeSkillWeightIsolation(t *testing.T) {
	// With all weight on skill_match, ranking must follow coverage alone.
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.2), 1, 0.5, "go"),
		poolMember("b", flatVec(0.9), 10, 1, "react"),
		poolMember("c", flatVec(0.5), 5, 0.8, "sql"),
		poolMember("d", flatVec(0.7), 8, 0.2),
	}
	obj := traits.OptimizationObjective{Weights: map[string]float64{traits.FeatureSkillMatch: 1.0}}

	res, err := o.Optimize(context.Background(), pool, requirements(2, 2, "go", "react", "sql"), obj)
	require.NoError(t, err)

	coverages := make([]float64, len(res.RecommendedTeams))
	for i, team := range res.RecommendedTeams {
		assert.Equal(t, team.SkillCoverage, team.OverallScore, "only skill coverage contributes")
		coverages[i] = team.SkillCoverage
	}
	assert.True(t, sort.SliceIsSorted(coverages, func(i, j int) bool { return coverages[i] > coverages[j] }),
		"teams ordered by coverage: %v", coverages)
}

func TestOptimizeExhaustiveIsDeterministic(t *testing.T) {
	o := New(DefaultConfig())
	var pool []traits.TeamMember
	for i := 0; i < 7; i++ {
		pool = append(pool, poolMember(fmt.Sprintf("m%d", i), flatVec(0.2+0.1*float64(i%5)), float64(2*i), 0.9, fmt.Sprintf("skill%d", i%3)))
	}
	req := requirements(3, 4, "skill0", "skill1", "skill2")

	first, err := o.Optimize(context.Background(), pool, req, traits.OptimizationObjective{PrimaryGoal: traits.GoalMaximizePerformance})
	require.NoError(t, err)
	second, err := o.Optimize(context.Background(), pool, req, traits.OptimizationObjective{PrimaryGoal: traits.GoalMaximizePerformance})
	require.NoError(t, err)

	require.Equal(t, len(first.RecommendedTeams), len(second.RecommendedTeams))
	for i := range first.RecommendedTeams {
		assert.Equal(t, first.RecommendedTeams[i].MemberIDs, second.RecommendedTeams[i].MemberIDs, "rank %d", i)
	}
	assert.Equal(t, first.Metrics.CandidatesEvaluated, second.Metrics.CandidatesEvaluated)
}

func TestOptimizeLocalSearchPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExhaustiveLimit = 50 // force the heuristic path
	cfg.Seed = 42
	o := New(cfg)

	var pool []traits.TeamMember
	for i := 0; i < 25; i++ {
		pool = append(pool, poolMember(
			fmt.Sprintf("m%02d", i),
			flatVec(0.2+0.03*float64(i)),
			float64(i%12), 0.5+0.02*float64(i),
			fmt.Sprintf("skill%d", i%6),
		))
	}

	res, err := o.Optimize(context.Background(), pool, requirements(4, 6, "skill0", "skill1", "skill2", "skill3"), traits.OptimizationObjective{})
	require.NoError(t, err)

	assert.Equal(t, "local_search", res.Metrics.AlgorithmUsed)
	assert.Greater(t, res.Metrics.Iterations, 0)
	assert.LessOrEqual(t, res.Metrics.Iterations, cfg.MaxIterations)
	assert.Greater(t, res.Metrics.CandidatesEvaluated, 0)
	require.NotEmpty(t, res.RecommendedTeams)
	for _, team := range res.RecommendedTeams {
		assert.GreaterOrEqual(t, len(team.MemberIDs), 4)
		assert.LessOrEqual(t, len(team.MemberIDs), 6)
	}
}

func TestOptimizeRespectsContextBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExhaustiveLimit = 50
	cfg.Seed = 7
	cfg.TimeBudget = 50 * time.Millisecond
	o := New(cfg)

	var pool []traits.TeamMember
	for i := 0; i < 40; i++ {
		pool = append(pool, poolMember(fmt.Sprintf("m%02d", i), flatVec(0.5), 5, 1))
	}

	start := time.Now()
	_, err := o.Optimize(context.Background(), pool, requirements(5, 8), traits.OptimizationObjective{})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "hard budget cuts the search off")
}

func TestOptimizeWarnsOnSkillGap(t *testing.T) {
	o := New(DefaultConfig())
	pool := []traits.TeamMember{
		poolMember("a", flatVec(0.5), 5, 1, "go"),
		poolMember("b", flatVec(0.5), 5, 1, "go"),
		poolMember("c", flatVec(0.5), 5, 1, "go"),
	}
	res, err := o.Optimize(context.Background(), pool, requirements(3, 3, "go", "cobol"), traits.OptimizationObjective{})
	require.NoError(t, err)
	assert.Less(t, res.RecommendedTeams[0].SkillCoverage, 1.0)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "cobol")
}

func TestCandidateSpaceAndBinomial(t *testing.T) {
	assert.Equal(t, 1, binomial(3, 3))
	assert.Equal(t, 35, binomial(7, 3))
	assert.Equal(t, 0, binomial(3, 5))
	assert.Equal(t, 4+6, candidateSpace(4, 2, 3))
}
