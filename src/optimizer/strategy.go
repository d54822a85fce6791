package optimizer

import (
	"context"
	"math/rand"
	"sort"
	"time"
)

type searchStats struct {
	evaluated  int
	iterations int
	algorithm  string
}

// strategy generates and scores feasible groupings. Both implementations
// run against the same evaluator so they are comparable in tests.
type strategy interface {
	search(ctx context.Context, eval *evaluator, kMin, kMax int, deadline time.Time) ([]candidate, searchStats)
}

func expired(ctx context.Context, deadline time.Time) bool {
	return ctx.Err() != nil || time.Now().After(deadline)
}

// exhaustiveSearch enumerates every subset in the size window. Chosen
// only when the candidate space is small enough to stay tractable.
type exhaustiveSearch struct{}

func (exhaustiveSearch) search(ctx context.Context, eval *evaluator, kMin, kMax int, deadline time.Time) ([]candidate, searchStats) {
	stats := searchStats{algorithm: algorithmExhaustive}
	var found []candidate
	n := len(eval.pool)

	for k := kMin; k <= kMax; k++ {
		combinations(n, k, func(idxs []int) bool {
			if stats.evaluated%256 == 255 && expired(ctx, deadline) {
				return false
			}
			found = append(found, eval.score(idxs))
			stats.evaluated++
			stats.iterations++
			return true
		})
	}
	return found, stats
}

// combinations walks all k-subsets of [0,n) in lexicographic order,
// stopping early when fn returns false.
func combinations(n, k int, fn func(idxs []int) bool) {
	if k > n || k <= 0 {
		return
	}
	idxs := make([]int, k)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		if !fn(idxs) {
			return
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idxs[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < k; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}

// localSearch is the heuristic path for large pools: random restarts
// followed by iterative improvement over swap/grow/shrink moves, bounded
// by an iteration budget, a no-improvement stop, and the hard deadline.
type localSearch struct {
	cfg Config
}

func newLocalSearch(cfg Config) *localSearch {
	return &localSearch{cfg: cfg}
}

func (ls *localSearch) search(ctx context.Context, eval *evaluator, kMin, kMax int, deadline time.Time) ([]candidate, searchStats) {
	stats := searchStats{algorithm: algorithmLocalSearch}
	seed := ls.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	n := len(eval.pool)

	var found []candidate
	for r := 0; r < ls.cfg.Restarts; r++ {
		if stats.iterations >= ls.cfg.MaxIterations || expired(ctx, deadline) {
			break
		}

		k := kMin
		if kMax > kMin {
			k = kMin + rng.Intn(kMax-kMin+1)
		}
		best := eval.score(randomSubset(rng, n, k))
		stats.evaluated++
		found = append(found, best)

		noImprove := 0
		for stats.iterations < ls.cfg.MaxIterations && noImprove < ls.cfg.NoImproveStop {
			if expired(ctx, deadline) {
				break
			}
			stats.iterations++

			next, ok := mutate(rng, best.indices, n, kMin, kMax)
			if !ok {
				noImprove++
				continue
			}
			cand := eval.score(next)
			stats.evaluated++
			if cand.grouping.OverallScore > best.grouping.OverallScore {
				best = cand
				found = append(found, cand)
				noImprove = 0
			} else {
				noImprove++
			}
		}
	}
	return found, stats
}

func randomSubset(rng *rand.Rand, n, k int) []int {
	idxs := append([]int(nil), rng.Perm(n)[:k]...)
	sort.Ints(idxs)
	return idxs
}

// mutate proposes a neighboring subset: swap one member for an outsider,
// or grow/shrink within the size window.
func mutate(rng *rand.Rand, current []int, n, kMin, kMax int) ([]int, bool) {
	inSet := make(map[int]bool, len(current))
	for _, idx := range current {
		inSet[idx] = true
	}
	outside := make([]int, 0, n-len(current))
	for i := 0; i < n; i++ {
		if !inSet[i] {
			outside = append(outside, i)
		}
	}

	move := rng.Intn(3)
	switch {
	case move == 1 && len(current) < kMax && len(outside) > 0: // grow
		next := append(append([]int(nil), current...), outside[rng.Intn(len(outside))])
		sort.Ints(next)
		return next, true
	case move == 2 && len(current) > kMin: // shrink
		drop := rng.Intn(len(current))
		next := make([]int, 0, len(current)-1)
		for i, idx := range current {
			if i != drop {
				next = append(next, idx)
			}
		}
		return next, true
	case len(outside) > 0: // swap
		drop := rng.Intn(len(current))
		next := make([]int, 0, len(current))
		for i, idx := range current {
			if i != drop {
				next = append(next, idx)
			}
		}
		next = append(next, outside[rng.Intn(len(outside))])
		sort.Ints(next)
		return next, true
	}
	return nil, false
}
