package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig returns host, port, user, password, database name
func DatabaseConfig() (string, string, string, string, string) {
	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASS", "")
	databaseName := GetEnv("DB_NAME", "nextflix")
	return host, port, user, password, databaseName
}

// RedisConfig returns host, port, password
func RedisConfig() (string, string, string) {
	host := GetEnv("R_HOST", "redis")
	port := GetEnv("R_PORT", "6379")
	password := GetEnv("R_PASS", "")
	return host, port, password
}

// ServerConfig returns the listen port and the allowed CORS origins
func ServerConfig() (string, []string) {
	port := GetEnv("PORT", "8080")
	origins := strings.Split(GetEnv("CORS_ORIGINS", "https://nextflix.vercel.app"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return port, origins
}

// RateLimitConfig returns requests per second and burst for the per-client
// limiter. Bad values fall back to the defaults.
func RateLimitConfig() (float64, int) {
	rps, err := strconv.ParseFloat(GetEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		rps = 10
	}
	burst, err := strconv.Atoi(GetEnv("RATE_LIMIT_BURST", "20"))
	if err != nil || burst <= 0 {
		burst = 20
	}
	return rps, burst
}

// GetEnv retrieves values from environment files based on the key it matches,
// returns a string (value) if not empty
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
