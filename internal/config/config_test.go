package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CACHE_TTL_SECONDS", "")
	t.Setenv("STRICT_SLOT_INDEX", "")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.StrictSlotIndex)
	assert.Equal(t, "America/Sao_Paulo", cfg.ShopTimezone)
	assert.False(t, cfg.UploadsEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("STRICT_SLOT_INDEX", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("CORS_ORIGINS", "https://cutcorp.app, ,https://admin.cutcorp.app")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.StrictSlotIndex)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.UploadsEnabled())
	assert.Equal(t, []string{"https://cutcorp.app", "https://admin.cutcorp.app"}, cfg.CORSOrigins)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	t.Setenv("STRICT_SLOT_INDEX", "maybe")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.StrictSlotIndex)
}
