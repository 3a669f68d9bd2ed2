package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_hotels/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := shared.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL())
	assert.ErrorIs(t, cfg.ValidateAPI(), shared.ErrMissingJWTSecret)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CACHE_TTL_SECONDS", "-5")
	t.Setenv("INGEST_HOTEL_IDS", "10,20,30")
	t.Setenv("MYSQL_CONN_MAX_LIFETIME", "2m")

	cfg, err := shared.Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.ValidateAPI())
	assert.Equal(t, time.Duration(0), cfg.CacheTTL())
	assert.Equal(t, []int64{10, 20, 30}, cfg.IngestIDs)
	assert.Equal(t, 2*time.Minute, cfg.MySQLConnMaxLife)
}

func TestLoad_CacheOptIn(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "120")
	cfg, err := shared.Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := shared.Load()
	assert.Error(t, err)
}
