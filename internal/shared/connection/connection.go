package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	retryDelay  = 5 * time.Second
	pingTimeout = 3 * time.Second
)

// Retry runs attempt until it succeeds, maxRetries attempts fail, or ctx is
// done. It waits delay between attempts, never after the last one.
func Retry(
	ctx context.Context,
	log *zap.Logger,
	maxRetries int,
	delay time.Duration,
	attempt func(ctx context.Context) error,
) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = attempt(ctx); lastErr == nil {
			return nil
		}
		log.Warn("connect attempt failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(lastErr))
		if i == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// PostgresConfig holds the libpq keyword/value DSN parts.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode,
	)
}

func ConnectGORMWithRetry(ctx context.Context, cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	log := zap.L().Named("connection.postgres")

	var db *gorm.DB
	err := Retry(ctx, log, maxRetries, retryDelay, func(ctx context.Context) error {
		opened, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := opened.DB()
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		// One state row per installation.
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(time.Hour)
		db = opened
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("dbname", cfg.DBName))
	return db, nil
}

func ConnectRedisWithRetry(ctx context.Context, opts *redis.Options, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	rdb := redis.NewClient(opts)

	err := Retry(ctx, log, maxRetries, retryDelay, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}

	log.Info("connected to redis", zap.String("addr", opts.Addr))
	return rdb, nil
}

// ConnectKafkaWithRetry dials the broker until it answers and returns a
// writer for it. Topics are set per message.
func ConnectKafkaWithRetry(ctx context.Context, broker string, maxRetries int) (*kafkago.Writer, error) {
	log := zap.L().Named("connection.kafka")

	err := Retry(ctx, log, maxRetries, retryDelay, func(ctx context.Context) error {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("connect kafka %s: %w", broker, err)
	}

	log.Info("connected to kafka", zap.String("broker", broker))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}, nil
}
