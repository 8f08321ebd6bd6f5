package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	UpstreamBaseURL string        `validate:"required,url"`
	AllowedOrigins  []string      `validate:"required,dive,url"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFormat       string        `validate:"oneof=json console"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	Scoring         Scoring

	// Port for cmd/platformstub, the in-memory course platform used locally.
	PlatformStubPort int `validate:"min=1,max=65535"`
}

// Scoring holds the tunable constants of the ranking and quiz analysis
// pipelines.
type Scoring struct {
	RecommendationLimit   int     `validate:"min=1"`
	ContributionThreshold float64 `validate:"gte=0,lte=1"`
	RelevanceThreshold    float64 `validate:"gte=0,lte=1"`
	PassingScore          float64 `validate:"gte=0,lte=100"`
	CompletionThreshold   float64 `validate:"gte=0,lte=1"`
}

// Load configuration from env, reading a local .env file first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 5000),
		UpstreamBaseURL: strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Scoring: Scoring{
			RecommendationLimit:   getEnvInt("RECOMMENDATION_LIMIT", 3),
			ContributionThreshold: getEnvFloat("CONTRIBUTION_THRESHOLD", 0.3),
			RelevanceThreshold:    getEnvFloat("RELEVANCE_THRESHOLD", 0.1),
			PassingScore:          getEnvFloat("PASSING_SCORE", 70),
			CompletionThreshold:   getEnvFloat("COMPLETION_THRESHOLD", 0.3),
		},
		PlatformStubPort: getEnvInt("PLATFORM_STUB_PORT", 8080),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultScoring returns the scoring constants used when nothing is overridden.
func DefaultScoring() Scoring {
	return Scoring{
		RecommendationLimit:   3,
		ContributionThreshold: 0.3,
		RelevanceThreshold:    0.1,
		PassingScore:          70,
		CompletionThreshold:   0.3,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
