package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	// Server
	Port         string        `env:"PORT" envDefault:"3000"`
	Environment  string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	RateLimitRPS float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateBurst    int           `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Storage backend for the state blob: memory, file, redis, postgres
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StorageDir     string `env:"STORAGE_DIR" envDefault:"./data"`
	StorageKey     string `env:"STORAGE_KEY" envDefault:"geo_attend_v1_storage"`

	// Postgres
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"geo_attend"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Redis is optional unless it is the storage backend. When set it also
	// backs idempotency keys and the office lookup cache.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka is optional; without a broker attendance events are dropped.
	KafkaBroker     string `env:"KAFKA_BROKER"`
	AttendanceTopic string `env:"KAFKA_ATTENDANCE_TOPIC" envDefault:"geoattend.attendance.recorded.v1"`

	// Assistant
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	LookupModel      string        `env:"GEMINI_LOOKUP_MODEL" envDefault:"gemini-2.5-flash"`
	AnalysisModel    string        `env:"GEMINI_ANALYSIS_MODEL" envDefault:"gemini-3-pro-preview"`
	AssistantTimeout time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"30s"`
	LookupCacheTTL   time.Duration `env:"ASSISTANT_LOOKUP_CACHE_TTL" envDefault:"24h"`

	// Attendance
	DefaultRadius float64 `env:"DEFAULT_RADIUS_METERS" envDefault:"200"`

	ConnectRetries int `env:"CONNECT_RETRIES" envDefault:"5"`
}

// Load reads .env when present and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory, StorageFile, StoragePostgres:
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis storage backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.DefaultRadius <= 0 {
		return fmt.Errorf("DEFAULT_RADIUS_METERS must be positive")
	}
	if c.StorageKey == "" {
		return fmt.Errorf("STORAGE_KEY must not be empty")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
