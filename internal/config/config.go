package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port               string
	SearchDepth        int
	SearchParallelRoot int
	AllowedOrigins     []string
	FrontendURL        string
	RedisEnabled       bool
	RedisURL           string
	RedisPassword      string
	CacheTTL           time.Duration
	APIJWTSecret       string
	LogLevel           string
	LogFormat          string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Search
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 4)
	if searchDepth < 1 {
		log.Warn().Int("depth", searchDepth).Msg("[CONFIG] SEARCH_DEPTH must be positive, using 4")
		searchDepth = 4
	}
	searchParallelRoot := GetEnvAsInt("SEARCH_PARALLEL_ROOT", 0)

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Cache
	redisEnabled := GetEnvAsBool("REDIS_ENABLED", false)
	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	cacheTTL := GetEnvAsDuration("CACHE_TTL_SECONDS", time.Hour)

	// Security, empty disables token checks
	apiJWTSecret := GetEnv("API_JWT_SECRET", "")

	AppConfig = &Config{
		Port:               port,
		SearchDepth:        searchDepth,
		SearchParallelRoot: searchParallelRoot,
		AllowedOrigins:     allowedOrigins,
		FrontendURL:        frontendURL,
		RedisEnabled:       redisEnabled,
		RedisURL:           redisURL,
		RedisPassword:      redisPassword,
		CacheTTL:           cacheTTL,
		APIJWTSecret:       apiJWTSecret,
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogFormat:          GetEnv("LOG_FORMAT", "console"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a whole number of seconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	seconds := GetEnvAsInt(key, -1)
	if seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
