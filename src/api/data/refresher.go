package data

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/strata-hq/teamforge/src/api/types"
	"github.com/strata-hq/teamforge/src/synthesis"
)

// RefreshService periodically re-synthesizes profiles for members whose
// assessments changed since the last pass and refreshes the cache.
// Runs until ctx is cancelled.
func RefreshService(ctx context.Context, db *gorm.DB, rdb *redis.Client, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastRun := time.Now().Add(-interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := lastRun
			lastRun = time.Now()
			if n, err := refreshChangedProfiles(ctx, db, rdb, cutoff, ttl); err != nil {
				log.Printf("profile refresh: %v", err)
			} else if n > 0 {
				log.Printf("profile refresh: updated %d profiles", n)
			}
		}
	}
}

func refreshChangedProfiles(ctx context.Context, db *gorm.DB, rdb *redis.Client, since time.Time, ttl time.Duration) (int, error) {
	var memberIDs []string
	err := db.Model(&types.AssessmentResult{}).
		Where("updated_at > ?", since).
		Distinct("member_id").
		Pluck("member_id", &memberIDs).Error
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range memberIDs {
		results, err := LoadAssessments(db, id)
		if err != nil {
			log.Printf("profile refresh %s: %v", id, err)
			continue
		}
		profile, err := synthesis.NormalizeAndSynthesize(id, results)
		if err != nil {
			log.Printf("profile refresh %s: %v", id, err)
			continue
		}
		if err := CacheProfile(ctx, rdb, profile, ttl); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
