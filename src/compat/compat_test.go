package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strata-hq/teamforge/src/traits"
)

func member(id string, vec traits.CanonicalTraitVector, skills ...string) traits.TeamMember {
	return traits.TeamMember{
		ID:      id,
		Role:    traits.RoleDeveloper,
		Profile: traits.SynthesizedProfile{MemberID: id, Vector: vec, Confidence: 0.8},
		Skills:  skills,
	}
}

func TestScorePairSelfIsOne(t *testing.T) {
	s := NewScorer(DefaultConfig())
	m := member("a", traits.CanonicalTraitVector{Conscientiousness: 0.3, Agreeableness: 0.9}, "go")
	assert.Equal(t, 1.0, s.ScorePair(m, m))
}

func TestScorePairSymmetric(t *testing.T) {
	s := NewScorer(DefaultConfig())
	pairs := []struct{ a, b traits.TeamMember }{
		{
			member("a", traits.CanonicalTraitVector{Conscientiousness: 0.9, Agreeableness: 0.8, LeadershipPotential: 0.9, Extraversion: 0.7}, "go", "sql"),
			member("b", traits.CanonicalTraitVector{Conscientiousness: 0.85, Agreeableness: 0.75, LeadershipPotential: 0.2, Extraversion: 0.3}, "react", "css"),
		},
		{
			member("c", traits.CanonicalTraitVector{}, "go"),
			member("d", traits.CanonicalTraitVector{Conscientiousness: 1, Agreeableness: 1, LeadershipPotential: 1, Extraversion: 1}, "go"),
		},
	}
	for _, p := range pairs {
		ab := s.ScorePair(p.a, p.b)
		ba := s.ScorePair(p.b, p.a)
		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestScorePairRewardsCloseWorkStyles(t *testing.T) {
	s := NewScorer(Config{SimilarityWeight: 1, ComplementarityWeight: 0})

	base := traits.CanonicalTraitVector{Conscientiousness: 0.8, Agreeableness: 0.7}
	near := member("b", traits.CanonicalTraitVector{Conscientiousness: 0.75, Agreeableness: 0.7})
	far := member("c", traits.CanonicalTraitVector{Conscientiousness: 0.1, Agreeableness: 0.2})

	a := member("a", base)
	assert.Greater(t, s.ScorePair(a, near), s.ScorePair(a, far))
	assert.InDelta(t, 0.975, s.ScorePair(a, near), 1e-9)
}

func TestScorePairRewardsComplementaryLeadership(t *testing.T) {
	s := NewScorer(Config{SimilarityWeight: 0, ComplementarityWeight: 1})

	lead := member("a", traits.CanonicalTraitVector{LeadershipPotential: 0.95, Extraversion: 0.9}, "go")
	support := member("b", traits.CanonicalTraitVector{LeadershipPotential: 0.2, Extraversion: 0.3}, "design")
	rival := member("c", traits.CanonicalTraitVector{LeadershipPotential: 0.95, Extraversion: 0.9}, "go")

	assert.Greater(t, s.ScorePair(lead, support), s.ScorePair(lead, rival),
		"two alphas competing for the same role score lower than a complementary pair")
}

func TestScorePairSkillOverlap(t *testing.T) {
	s := NewScorer(Config{SimilarityWeight: 0, ComplementarityWeight: 1})
	vec := traits.CanonicalTraitVector{LeadershipPotential: 0.5, Extraversion: 0.5}

	disjoint := s.ScorePair(member("a", vec, "go", "sql"), member("b", vec, "react", "css"))
	identical := s.ScorePair(member("a", vec, "go", "sql"), member("c", vec, "go", "sql"))
	assert.Greater(t, disjoint, identical)
}
