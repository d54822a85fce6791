package webserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/strata-hq/teamforge/src/api/data"
	"github.com/strata-hq/teamforge/src/api/types"
	"github.com/strata-hq/teamforge/src/optimizer"
	"github.com/strata-hq/teamforge/src/traits"
)

type Optimize struct {
	db        *gorm.DB
	rdb       *redis.Client
	timeout   time.Duration
	opt       *optimizer.Optimizer
	sanitizer *bluemonday.Policy
}

func NewOptimize(db *gorm.DB, rdb *redis.Client, timeout time.Duration) Optimize {
	return Optimize{
		db:        db,
		rdb:       rdb,
		timeout:   timeout,
		opt:       optimizer.New(optimizer.DefaultConfig()),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Run executes one optimization request. The pool is the union of
// inline member records and members loaded from storage by ID. The
// search is CPU-bound and blocking; it runs under a request-scoped
// timeout on top of the optimizer's own budget.
func (o Optimize) Run(c *gin.Context) {
	var req struct {
		MemberIDs    []string                     `json:"member_ids" binding:"max=200"`
		Members      []traits.TeamMember          `json:"members" binding:"max=200"`
		Requirements traits.ProjectRequirements   `json:"requirements" binding:"required"`
		Objective    traits.OptimizationObjective `json:"objective"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	pool := make([]traits.TeamMember, 0, len(req.Members)+len(req.MemberIDs))
	for _, m := range req.Members {
		if m.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"err": "inline member without id"})
			return
		}
		// Caller-supplied free text ends up in insight strings; strip
		// any markup before it can reach a UI.
		m.Name = o.sanitizer.Sanitize(m.Name)
		for i, s := range m.Skills {
			m.Skills[i] = o.sanitizer.Sanitize(s)
		}
		pool = append(pool, m)
	}

	if len(req.MemberIDs) > 0 {
		if o.db == nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": "member_ids not supported without storage"})
			return
		}
		loaded, err := data.LoadMembers(o.db, req.MemberIDs)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"err": err.Error()})
			return
		}
		pool = append(pool, loaded...)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), o.timeout)
	defer cancel()

	result, err := o.opt.Optimize(ctx, pool, req.Requirements, req.Objective)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"err": err.Error()})
		return
	}

	runID := uuid.NewString()
	if o.db != nil {
		run := types.OptimizationRun{
			ID:           runID,
			ProjectType:  req.Requirements.ProjectType,
			PoolSize:     len(pool),
			TeamSizeMin:  req.Requirements.TeamSizeMin,
			TeamSizeMax:  req.Requirements.TeamSizeMax,
			Algorithm:    result.Metrics.AlgorithmUsed,
			OverallScore: result.OverallScore,
		}
		if err := o.db.Create(&run).Error; err != nil {
			log.Printf("record optimization run %s: %v", runID, err)
		}
	}
	if o.rdb != nil {
		if err := data.PublishOptimization(c, o.rdb, runID, result); err != nil {
			log.Printf("publish optimization run %s: %v", runID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"run_id": runID, "result": result})
}
