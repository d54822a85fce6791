package compat

import (
	"math"

	"github.com/strata-hq/teamforge/src/traits"
)

// Config carries the tunable scorer constants. The mix is deliberately
// fixed per scorer rather than derived from the optimization objective:
// pair scores must stay context-free so they can be reused across calls.
type Config struct {
	SimilarityWeight      float64
	ComplementarityWeight float64
}

// DefaultConfig is the production mix.
func DefaultConfig() Config {
	return Config{SimilarityWeight: 0.55, ComplementarityWeight: 0.45}
}

// Scorer computes pairwise working-compatibility between two members.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	if cfg.SimilarityWeight == 0 && cfg.ComplementarityWeight == 0 {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// ScorePair returns a score in [0,1], symmetric in its arguments.
// The same member scored against itself is 1.0 by definition.
//
// Similarity rewards close conscientiousness and agreeableness (less
// day-to-day friction); complementarity rewards differing leadership
// and extraversion (no contest for the same role) and non-overlapping
// skill sets.
func (s *Scorer) ScorePair(a, b traits.TeamMember) float64 {
	if a.ID == b.ID {
		return 1.0
	}

	va, vb := a.Profile.Vector, b.Profile.Vector

	similarity := 1 - (math.Abs(va.Conscientiousness-vb.Conscientiousness)+
		math.Abs(va.Agreeableness-vb.Agreeableness))/2

	traitComp := (math.Abs(va.LeadershipPotential-vb.LeadershipPotential) +
		math.Abs(va.Extraversion-vb.Extraversion)) / 2
	complementarity := 0.6*traitComp + 0.4*skillDisjointness(a.Skills, b.Skills)

	return traits.Clamp01(s.cfg.SimilarityWeight*similarity + s.cfg.ComplementarityWeight*complementarity)
}

// skillDisjointness is the Jaccard distance between two skill sets:
// 1 for fully disjoint sets, 0 for identical ones. Two members with no
// skills listed at all score neutral.
func skillDisjointness(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}
	set := make(map[string]int, len(a))
	for _, s := range a {
		set[s] |= 1
	}
	for _, s := range b {
		set[s] |= 2
	}
	union, shared := 0, 0
	for _, bits := range set {
		union++
		if bits == 3 {
			shared++
		}
	}
	return 1 - float64(shared)/float64(union)
}
