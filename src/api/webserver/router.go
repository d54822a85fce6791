package webserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/strata-hq/teamforge/src/api/config"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.teamforge.dev"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	profileH := NewProfiles(db, rdb, cfg.ProfileTTL)
	optimizeH := NewOptimize(db, rdb, cfg.OptimizeTimeout)

	v1 := r.Group("/v1")
	if cfg.JWTSecret != "" {
		v1.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
	}
	{
		v1.POST("/profiles/synthesize", profileH.Synthesize)
		v1.GET("/profiles/:id", profileH.Get)

		// Optimization is CPU-bound; rate limit it per caller.
		limiter := NewRateLimiter(cfg.OptimizeRate, time.Minute)
		v1.POST("/teams/optimize", RateLimitMiddleware(limiter), optimizeH.Run)
	}
}
