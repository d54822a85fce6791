package data

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/strata-hq/teamforge/src/traits"
)

const (
	profilePrefix       = "profile:"
	streamOptimizations = "teamforge.optimizations"
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// CacheProfile stores a synthesized profile under profile:<memberID>.
func CacheProfile(ctx context.Context, rdb *redis.Client, p traits.SynthesizedProfile, ttl time.Duration) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, profilePrefix+p.MemberID, payload, ttl).Err()
}

// GetCachedProfile returns the cached profile, or ok=false on a miss.
func GetCachedProfile(ctx context.Context, rdb *redis.Client, memberID string) (traits.SynthesizedProfile, bool) {
	payload, err := rdb.Get(ctx, profilePrefix+memberID).Bytes()
	if err != nil {
		return traits.SynthesizedProfile{}, false
	}
	var p traits.SynthesizedProfile
	if err := json.Unmarshal(payload, &p); err != nil {
		return traits.SynthesizedProfile{}, false
	}
	return p, true
}

// InvalidateProfile drops the cached profile after a new submission.
func InvalidateProfile(ctx context.Context, rdb *redis.Client, memberID string) {
	_ = rdb.Del(ctx, profilePrefix+memberID).Err()
}

// PublishOptimization appends a run summary to the optimization stream
// for downstream consumers (dashboards, notification service).
func PublishOptimization(ctx context.Context, rdb *redis.Client, runID string, result *traits.OptimizationResult) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamOptimizations,
		Values: map[string]interface{}{
			"run_id":        runID,
			"overall_score": result.OverallScore,
			"algorithm":     result.Metrics.AlgorithmUsed,
			"evaluated":     result.Metrics.CandidatesEvaluated,
			"teams":         len(result.RecommendedTeams),
		},
	}).Result()
	return err
}
