package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"campus-events/pkg/database"
)

// devFallbackSecret keeps local setups working when JWT_SECRET is unset.
// Hardening this for production deployments is out of scope here.
const devFallbackSecret = "campus-events-secret-key-2024"

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	Database database.Config

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr      string
	RedisPassword  string
	ReportCacheTTL time.Duration

	MeiliHost   string
	MeiliAPIKey string

	SeedDemoData bool
}

func Load() *Config {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASS"),
			Name:     getEnv("DB_NAME", "campus_events"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		JWTSecret: getEnv("JWT_SECRET", devFallbackSecret),
		JWTTTL:    durationEnv("JWT_TTL", 24*time.Hour),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		ReportCacheTTL: durationEnv("REPORT_CACHE_TTL", 5*time.Minute),

		MeiliHost:   os.Getenv("MEILISEARCH_HOST"),
		MeiliAPIKey: os.Getenv("MEILI_MASTER_KEY"),

		SeedDemoData: boolEnv("SEED_DEMO_DATA", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
