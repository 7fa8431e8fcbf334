package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidegate/charcore/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 45.0, cfg.Simulation.BaseTurnRate)
	assert.Equal(t, 100.0, cfg.Simulation.Defaults.Health.Maximum)
	assert.Equal(t, 100.0, cfg.Simulation.Defaults.Health.Current)
	assert.Equal(t, 2.0, cfg.Simulation.Defaults.Mana.Regen)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HEALTH_MAX", "250")
	t.Setenv("HEALTH_START", "200")
	t.Setenv("BASE_TURN_RATE", "90")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Simulation.Defaults.Health.Maximum)
	assert.Equal(t, 200.0, cfg.Simulation.Defaults.Health.Current)
	assert.Equal(t, 90.0, cfg.Simulation.BaseTurnRate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("HEALTH_MAX", "plenty")
	t.Setenv("REDIS_DB", "first")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Simulation.Defaults.Health.Maximum)
	assert.Equal(t, 0, cfg.Redis.DB)
}
