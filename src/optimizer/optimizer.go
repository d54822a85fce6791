package optimizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/strata-hq/teamforge/src/compat"
	"github.com/strata-hq/teamforge/src/insights"
	"github.com/strata-hq/teamforge/src/traits"
)

// Config carries the search and scoring constants.
type Config struct {
	// ExhaustiveLimit is the largest total candidate count for which
	// full enumeration is used; above it the local-search path runs.
	ExhaustiveLimit int
	MaxIterations   int
	NoImproveStop   int
	Restarts        int
	TimeBudget      time.Duration
	TopK            int
	WeightEpsilon   float64
	Seed            int64
	Compat          compat.Config
	Insights        insights.Config
}

func DefaultConfig() Config {
	return Config{
		ExhaustiveLimit: 20000,
		MaxIterations:   2000,
		NoImproveStop:   200,
		Restarts:        8,
		TimeBudget:      3 * time.Second,
		TopK:            5,
		WeightEpsilon:   1e-6,
		Compat:          compat.DefaultConfig(),
		Insights:        insights.DefaultConfig(),
	}
}

const (
	algorithmExhaustive  = "exhaustive"
	algorithmLocalSearch = "local_search"
)

// Optimizer searches feasible team groupings and ranks them against a
// weighted objective.
type Optimizer struct {
	cfg       Config
	scorer    *compat.Scorer
	explainer *insights.Explainer
}

func New(cfg Config) *Optimizer {
	def := DefaultConfig()
	if cfg.ExhaustiveLimit <= 0 {
		cfg.ExhaustiveLimit = def.ExhaustiveLimit
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.NoImproveStop <= 0 {
		cfg.NoImproveStop = def.NoImproveStop
	}
	if cfg.Restarts <= 0 {
		cfg.Restarts = def.Restarts
	}
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = def.TimeBudget
	}
	if cfg.TopK <= 0 {
		cfg.TopK = def.TopK
	}
	if cfg.WeightEpsilon <= 0 {
		cfg.WeightEpsilon = def.WeightEpsilon
	}
	return &Optimizer{
		cfg:       cfg,
		scorer:    compat.NewScorer(cfg.Compat),
		explainer: insights.NewExplainer(cfg.Insights),
	}
}

// Optimize enumerates or searches feasible subsets of pool and returns
// the top-K groupings best-first. CPU-bound and blocking; the heuristic
// path is cut off by the configured time budget and by ctx.
func (o *Optimizer) Optimize(ctx context.Context, pool []traits.TeamMember, req traits.ProjectRequirements, obj traits.OptimizationObjective) (*traits.OptimizationResult, error) {
	start := time.Now()

	weights, err := o.resolveWeights(obj)
	if err != nil {
		return nil, err
	}

	kMin, kMax := req.TeamSizeMin, req.TeamSizeMax
	if kMin < 1 {
		kMin = 1
	}
	if len(pool) < kMin {
		return nil, fmt.Errorf("%w: pool has %d members, need at least %d", traits.ErrInsufficientCandidates, len(pool), kMin)
	}
	if kMax > len(pool) {
		kMax = len(pool)
	}
	if kMax < kMin {
		return nil, fmt.Errorf("%w: team size window [%d,%d] admits no grouping", traits.ErrInsufficientCandidates, req.TeamSizeMin, req.TeamSizeMax)
	}

	eval := newEvaluator(pool, req, weights, o.scorer)

	var strat strategy
	if candidateSpace(len(pool), kMin, kMax) <= o.cfg.ExhaustiveLimit {
		strat = &exhaustiveSearch{}
	} else {
		strat = newLocalSearch(o.cfg)
	}

	deadline := start.Add(o.cfg.TimeBudget)
	candidates, stats := strat.search(ctx, eval, kMin, kMax, deadline)
	rankCandidates(candidates)
	candidates = dedupe(candidates, o.cfg.TopK)

	result := &traits.OptimizationResult{
		Metrics: traits.OptimizationMetrics{
			CandidatesEvaluated: stats.evaluated,
			Iterations:          stats.iterations,
			AlgorithmUsed:       stats.algorithm,
			ElapsedTime:         time.Since(start).Seconds(),
		},
	}
	if len(candidates) == 0 {
		// Only reachable if the deadline fired before the first
		// candidate was scored.
		return nil, fmt.Errorf("%w: search budget exhausted before any feasible grouping was scored", traits.ErrInsufficientCandidates)
	}

	byID := make(map[string]traits.TeamMember, len(pool))
	for _, m := range pool {
		byID[m.ID] = m
	}

	for i := range candidates {
		g := &candidates[i].grouping
		g.Strengths, g.Risks = o.explainer.Explain(*g, byID)
		result.RecommendedTeams = append(result.RecommendedTeams, *g)
	}

	top := result.RecommendedTeams[0]
	result.OverallScore = top.OverallScore
	result.Metrics.ConfidenceScore = meanConfidence(top.MemberIDs, byID)
	result.Insights, result.Warnings = o.explainer.ResultNotes(top, req, byID)
	return result, nil
}

func (o *Optimizer) resolveWeights(obj traits.OptimizationObjective) (map[string]float64, error) {
	if len(obj.Weights) == 0 {
		return traits.DefaultWeights(obj.PrimaryGoal), nil
	}

	known := map[string]bool{
		traits.FeatureSkillMatch:    true,
		traits.FeatureCompatibility: true,
		traits.FeatureDiversity:     true,
		traits.FeatureVelocity:      true,
	}
	sum := 0.0
	for name, w := range obj.Weights {
		if !known[name] {
			return nil, fmt.Errorf("%w: unknown feature %q", traits.ErrInvalidObjective, name)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight for %q", traits.ErrInvalidObjective, name)
		}
		sum += w
	}
	if math.Abs(sum-1) > o.cfg.WeightEpsilon {
		return nil, fmt.Errorf("%w: weights sum to %.6f, want 1.0", traits.ErrInvalidObjective, sum)
	}
	return obj.Weights, nil
}

// candidateSpace counts the feasible subsets across the size window,
// saturating at math.MaxInt to avoid overflow on large pools.
func candidateSpace(n, kMin, kMax int) int {
	total := 0
	for k := kMin; k <= kMax; k++ {
		c := binomial(n, k)
		if c == math.MaxInt || total > math.MaxInt-c {
			return math.MaxInt
		}
		total += c
	}
	return total
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		if result > math.MaxInt/(n-k+i) {
			return math.MaxInt
		}
		result = result * (n - k + i) / i
	}
	return result
}

// rankCandidates sorts best-first: overall score, then compatibility,
// then leaner teams, then member IDs for determinism.
func rankCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i].grouping, cands[j].grouping
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.CompatibilityScore != b.CompatibilityScore {
			return a.CompatibilityScore > b.CompatibilityScore
		}
		if len(a.MemberIDs) != len(b.MemberIDs) {
			return len(a.MemberIDs) < len(b.MemberIDs)
		}
		return strings.Join(a.MemberIDs, ",") < strings.Join(b.MemberIDs, ",")
	})
}

func dedupe(cands []candidate, limit int) []candidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		key := strings.Join(c.grouping.MemberIDs, ",")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

func meanConfidence(ids []string, byID map[string]traits.TeamMember) float64 {
	if len(ids) == 0 {
		return 0
	}
	total := 0.0
	for _, id := range ids {
		total += byID[id].Profile.Confidence
	}
	return total / float64(len(ids))
}
