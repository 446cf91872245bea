package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "R$", cfg.Currency.Symbol)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "BOLT")
	t.Setenv("BOLT_PATH", "/tmp/test.bolt")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_DEMO_DATA", "1")
	t.Setenv("SEED_RANDOM_COUNT", "12")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StoreDriverBolt, cfg.Store.Driver)
	assert.Equal(t, "/tmp/test.bolt", cfg.Store.BoltPath)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 90*time.Minute, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Seed.DemoData)
	assert.Equal(t, 12, cfg.Seed.RandomCount)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("METRICS_ENABLED", "maybe")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}
