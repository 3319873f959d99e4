package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DefaultNumSimulations int
	MaxNumSimulations     int
	MaxOpportunities      int
	MaxOpportunityAmount  float64
	DefaultRevenueTargets []float64
	HistogramBuckets      int

	AllowedOrigins []string
	LogDir         string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first, then fall back to
	// the working directory (useful for development/go run).
	exePath, err := os.Executable()
	if err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	cfg := &AppConfig{
		Host:         getEnv("HTTP_HOST", "0.0.0.0"),
		Port:         getEnvInt("HTTP_PORT", 8000),
		ReadTimeout:  time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:  time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)) * time.Second,

		// 10,000 runs gives a stable distribution in tens of milliseconds.
		DefaultNumSimulations: getEnvInt("DEFAULT_NUM_SIMULATIONS", 10_000),
		MaxNumSimulations:     getEnvInt("MAX_NUM_SIMULATIONS", 100_000),
		MaxOpportunities:      getEnvInt("MAX_OPPORTUNITIES", 500),
		// A single deal above $10B is almost certainly a data entry error.
		MaxOpportunityAmount:  getEnvFloat("MAX_OPPORTUNITY_AMOUNT", 10_000_000_000),
		DefaultRevenueTargets: getEnvFloats("DEFAULT_REVENUE_TARGETS", []float64{1_000_000, 5_000_000, 10_000_000, 25_000_000, 50_000_000}),
		HistogramBuckets:      getEnvInt("HISTOGRAM_BUCKETS", 12),

		AllowedOrigins: getEnvStrings("ALLOWED_ORIGINS", []string{
			"https://*.salesforce.com",
			"https://*.force.com",
			"https://*.lightning.force.com",
			"http://localhost:3000",
			"http://localhost:8080",
		}),
		LogDir: getEnv("LOGS_FOLDER", "logs"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid integer in environment, using fallback")
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid float in environment, using fallback")
	}
	return fallback
}

// getEnvFloats parses a comma-separated list of floats, e.g.
// "1000000,5000000,10000000".
func getEnvFloats(key string, fallback []float64) []float64 {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	parsed := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			log.Warn().Str("key", key).Str("value", value).Msg("Invalid float list in environment, using fallback")
			return fallback
		}
		parsed = append(parsed, f)
	}
	return parsed
}

func getEnvStrings(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	parsed := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			parsed = append(parsed, s)
		}
	}
	return parsed
}
