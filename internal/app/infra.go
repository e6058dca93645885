package app

import (
	"context"
	"fmt"

	"geo-attend/internal/config"
	"geo-attend/internal/shared/connection"
	"geo-attend/internal/state"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the connections opened for the configured backends.
type Infra struct {
	Backend state.Backend
	Redis   *redis.Client // nil unless REDIS_ADDR is set
	DB      *gorm.DB      // nil unless the postgres backend is selected

	closers []func() error
}

// OpenInfra connects what cfg asks for and picks the state backend.
func OpenInfra(cfg config.Config) (*Infra, error) {
	ctx := context.Background()
	infra := &Infra{}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.ConnectRetries)
		if err != nil {
			return nil, err
		}
		infra.Redis = rdb
		infra.closers = append(infra.closers, rdb.Close)
	}

	switch cfg.StorageBackend {
	case config.StorageMemory:
		infra.Backend = state.NewMemoryBackend()
	case config.StorageFile:
		infra.Backend = state.NewFileBackend(cfg.StorageDir)
	case config.StorageRedis:
		if infra.Redis == nil {
			infra.Close()
			return nil, fmt.Errorf("redis storage backend needs REDIS_ADDR")
		}
		infra.Backend = state.NewRedisBackend(infra.Redis)
	case config.StoragePostgres:
		db, err := connection.ConnectGORMWithRetry(ctx, connection.PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		}, cfg.ConnectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.closers = append(infra.closers, sqlDB.Close)

		if err := db.AutoMigrate(&state.Snapshot{}); err != nil {
			infra.Close()
			return nil, fmt.Errorf("migrate app_states: %w", err)
		}
		infra.DB = db
		infra.Backend = state.NewGormBackend(db)
	default:
		infra.Close()
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	zap.L().Info("state backend ready", zap.String("backend", cfg.StorageBackend))
	return infra, nil
}

// Store wraps the backend in the state store under the configured key.
func (i *Infra) Store(cfg config.Config) *state.Store {
	return state.NewStore(i.Backend, cfg.StorageKey, zap.L().Named("state"))
}

// Ping checks the network connections that are open.
func (i *Infra) Ping(ctx context.Context) error {
	if i.Redis != nil {
		if err := i.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	if i.DB != nil {
		sqlDB, err := i.DB.DB()
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	return nil
}

func (i *Infra) addCloser(fn func() error) {
	i.closers = append(i.closers, fn)
}

// Close releases connections in reverse order of opening.
func (i *Infra) Close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](); err != nil {
			zap.L().Warn("close connection failed", zap.Error(err))
		}
	}
	i.closers = nil
}
