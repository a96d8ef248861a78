// Package cfg loads runtime configuration from the environment, with an
// optional .env file for local development.
package cfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	Postgres      PostgresConfig
	Redis         RedisConfig
	Observability ObservabilityConfig
	Auth          AuthConfig
	Matching      MatchingConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// DSN returns the lib/pq connection URL.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

type RedisConfig struct {
	Host string
	Port string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type ObservabilityConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MatchingConfig struct {
	WeightSkill        float64
	WeightAvailability float64
	WeightLocation     float64
	WeightReputation   float64
	MaxCandidates      int
	Workers            int
	ParallelThreshold  int
	Timeout            time.Duration
	ProfileCacheTTL    time.Duration
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),
		Postgres: PostgresConfig{
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			DBName:   getEnv("POSTGRES_DB", "skillswap"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Observability: ObservabilityConfig{
			Enabled:     getEnvBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "skillswap"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Matching: MatchingConfig{
			WeightSkill:        getEnvFloat("MATCH_WEIGHT_SKILL", 0.40),
			WeightAvailability: getEnvFloat("MATCH_WEIGHT_AVAILABILITY", 0.30),
			WeightLocation:     getEnvFloat("MATCH_WEIGHT_LOCATION", 0.20),
			WeightReputation:   getEnvFloat("MATCH_WEIGHT_REPUTATION", 0.10),
			MaxCandidates:      getEnvInt("MATCH_MAX_CANDIDATES", 5000),
			Workers:            getEnvInt("MATCH_WORKERS", 4),
			ParallelThreshold:  getEnvInt("MATCH_PARALLEL_THRESHOLD", 64),
			Timeout:            getEnvDuration("MATCH_TIMEOUT", 5*time.Second),
			ProfileCacheTTL:    getEnvDuration("PROFILE_CACHE_TTL", 5*time.Minute),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}

	m := c.Matching
	for name, w := range map[string]float64{
		"MATCH_WEIGHT_SKILL":        m.WeightSkill,
		"MATCH_WEIGHT_AVAILABILITY": m.WeightAvailability,
		"MATCH_WEIGHT_LOCATION":     m.WeightLocation,
		"MATCH_WEIGHT_REPUTATION":   m.WeightReputation,
	} {
		if w < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative, got %v", name, w))
		}
	}
	if m.MaxCandidates < 0 {
		errs = append(errs, fmt.Errorf("MATCH_MAX_CANDIDATES must be non-negative, got %d", m.MaxCandidates))
	}
	if m.Workers < 1 {
		errs = append(errs, fmt.Errorf("MATCH_WORKERS must be at least 1, got %d", m.Workers))
	}
	if m.Timeout < 0 {
		errs = append(errs, fmt.Errorf("MATCH_TIMEOUT must be non-negative, got %s", m.Timeout))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings such as "750ms" or "5m".
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
