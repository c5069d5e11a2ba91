package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/playershyan/iSafe-sub001/pkg/logger"
)

type Config struct {
	HTTPPort string
	Env      string
	CORS     CORSConfig
	Matching MatchingConfig
	Search   SearchConfig
	DB       DBConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

// MatchingConfig tunes the candidate finder. Weights are relative shares of
// the composite score and are normalized at use, so they need not sum to 1.
type MatchingConfig struct {
	NameWeight      float64
	AgeWeight       float64
	GenderWeight    float64
	AgeToleranceYrs int
	AgeDecayYrs     int
	MinScore        float64
	MaxCandidates   int
}

type SearchConfig struct {
	NameResultLimit int
	NICResultLimit  int
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173")},
		},
		Matching: MatchingConfig{
			NameWeight:      getEnvFloat("MATCH_NAME_WEIGHT", 0.60),
			AgeWeight:       getEnvFloat("MATCH_AGE_WEIGHT", 0.25),
			GenderWeight:    getEnvFloat("MATCH_GENDER_WEIGHT", 0.15),
			AgeToleranceYrs: getEnvInt("MATCH_AGE_TOLERANCE_YEARS", 2),
			AgeDecayYrs:     getEnvInt("MATCH_AGE_DECAY_YEARS", 12),
			MinScore:        getEnvFloat("MATCH_MIN_SCORE", 0.45),
			MaxCandidates:   getEnvInt("MATCH_MAX_CANDIDATES", 10),
		},
		Search: SearchConfig{
			NameResultLimit: getEnvInt("SEARCH_NAME_RESULT_LIMIT", 20),
			NICResultLimit:  getEnvInt("SEARCH_NIC_RESULT_LIMIT", 10),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "isafe"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
