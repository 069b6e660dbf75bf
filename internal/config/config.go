package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration, loaded from environment variables.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Store  StoreConfig
	Ingest IngestConfig
}

type ServerConfig struct {
	HTTPPort string
}

type LoggerConfig struct {
	Mode string
}

type StoreConfig struct {
	// SpannerDB is the full database path:
	// projects/<project>/instances/<instance>/databases/<database>
	SpannerDB string

	// RedisAddr enables the reference-data cache when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

type IngestConfig struct {
	Workers int
}

// Load reads configuration from the environment. A .env file is honored when
// present but is never required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			HTTPPort: getEnv("HTTP_PORT", "8080"),
		},
		Logger: LoggerConfig{
			Mode: getEnv("LOG_MODE", "dev"),
		},
		Store: StoreConfig{
			SpannerDB:     getEnv("SPANNER_DB", "projects/test-project/instances/dev-instance/databases/catalog-db"),
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Ingest: IngestConfig{
			Workers: getEnvInt("INGEST_WORKERS", 8),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
