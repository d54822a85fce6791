package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MySQLDSN        string
	RedisURL        string
	JWTSecret       string
	Port            string
	ProfileTTL      time.Duration
	RefreshInterval time.Duration
	OptimizeTimeout time.Duration
	OptimizeRate    int // optimize requests per minute per caller
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getseconds(key string, def int) time.Duration {
	n, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil || n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func Load() Config {
	rate, _ := strconv.Atoi(getenv("OPTIMIZE_RATE", "10"))
	return Config{
		MySQLDSN:        getenv("MYSQL_DSN", "teamforge:teamforge@tcp(localhost:3306)/teamforge"),
		RedisURL:        getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:       os.Getenv("JWT_SECRET"), // optional; settings table may supply it
		Port:            getenv("PORT", "8080"),
		ProfileTTL:      getseconds("PROFILE_TTL", 3600),
		RefreshInterval: getseconds("REFRESH_INTERVAL", 300),
		OptimizeTimeout: getseconds("OPTIMIZE_TIMEOUT", 10),
		OptimizeRate:    rate,
	}
}
