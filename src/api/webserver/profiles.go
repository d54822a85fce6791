package webserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/strata-hq/teamforge/src/api/data"
	"github.com/strata-hq/teamforge/src/synthesis"
	"github.com/strata-hq/teamforge/src/traits"
)

type Profiles struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

func NewProfiles(db *gorm.DB, rdb *redis.Client, ttl time.Duration) Profiles {
	return Profiles{db: db, rdb: rdb, ttl: ttl}
}

// Synthesize normalizes and combines the submitted framework results
// into one profile. Invoked by the assessment flow right after it
// persists a submission.
func (p Profiles) Synthesize(c *gin.Context) {
	var req struct {
		MemberID string                   `json:"member_id" binding:"required,max=64"`
		Results  []traits.FrameworkResult `json:"results" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	profile, err := synthesis.NormalizeAndSynthesize(req.MemberID, req.Results)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"err": err.Error()})
		return
	}

	if p.rdb != nil {
		if err := data.CacheProfile(c, p.rdb, profile, p.ttl); err != nil {
			log.Printf("cache profile %s: %v", req.MemberID, err)
		}
	}
	c.JSON(http.StatusOK, profile)
}

// Get serves a member's synthesized profile, from cache when possible,
// otherwise rebuilt from stored assessment rows.
func (p Profiles) Get(c *gin.Context) {
	memberID := c.Param("id")

	if p.rdb != nil {
		if profile, ok := data.GetCachedProfile(c, p.rdb, memberID); ok {
			c.JSON(http.StatusOK, profile)
			return
		}
	}

	if p.db == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "profile not cached"})
		return
	}

	results, err := data.LoadAssessments(p.db, memberID)
	if err != nil {
		log.Printf("load assessments %s: %v", memberID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to load assessments"})
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"err": "no assessments for member"})
		return
	}

	profile, err := synthesis.NormalizeAndSynthesize(memberID, results)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"err": err.Error()})
		return
	}

	if p.rdb != nil {
		if err := data.CacheProfile(c, p.rdb, profile, p.ttl); err != nil {
			log.Printf("cache profile %s: %v", memberID, err)
		}
	}
	c.JSON(http.StatusOK, profile)
}
