package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"study-portal/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.Name = filepath.Join(t.TempDir(), "portal.db")
	cfg.DB.MaxOpenConns = 1
	cfg.DB.AutoMigrate = true
	cfg.App.HTTPPort = "8080"
	cfg.App.ShutdownTimeoutSeconds = 1
	cfg.Redis.PoolSize = 1
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.BurstCapacity = 20
	cfg.Logger.Level = "silent"
	cfg.Logger.Format = "console"
	cfg.Logger.ServiceName = "study-portal"
	return cfg
}

func TestNewContainer_SQLite(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.NotNil(t, c.DB)
	assert.Nil(t, c.RedisClient)
	assert.NotNil(t, c.PortalUC)
	assert.NotNil(t, c.PortalHandler)
	assert.NotNil(t, c.HealthHandler)
	assert.NotNil(t, c.Templates.Lookup("index.html"))

	resp, err := c.PortalUC.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Todos)

	assert.NoError(t, c.Close())
}

func TestNewContainer_WithRateLimiting(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.RateLimit.Enabled = true
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = mr.Port()

	c, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, c.RedisClient)
	assert.NoError(t, c.Close())
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "mysql"

	_, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}
