package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "geo_attend_v1_storage", cfg.StorageKey)
	assert.Equal(t, 200.0, cfg.DefaultRadius)
	assert.False(t, cfg.IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	base := Config{StorageBackend: StorageFile, DefaultRadius: 200, StorageKey: "k"}

	t.Run("redis backend needs address", func(t *testing.T) {
		cfg := base
		cfg.StorageBackend = StorageRedis
		assert.Error(t, cfg.Validate())

		cfg.RedisAddr = "localhost:6379"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := base
		cfg.StorageBackend = "sqlite"
		assert.Error(t, cfg.Validate())
	})

	t.Run("radius must be positive", func(t *testing.T) {
		cfg := base
		cfg.DefaultRadius = 0
		assert.Error(t, cfg.Validate())
	})
}
