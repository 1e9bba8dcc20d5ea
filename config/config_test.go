package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "martians.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `
[enemies]
initialCount = 10
bombInterval = "3s"

[edge]
laser = "bounce"

[grid]
width = 80
height = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Enemies.InitialCount)
	assert.Equal(t, 3*time.Second, cfg.Enemies.BombInterval)
	assert.Equal(t, components.EdgeBounce, cfg.EdgeStrategy(components.KindLaser))
	assert.Equal(t, 80, cfg.Grid.Width)
	assert.Equal(t, 30, cfg.Grid.Height)
	// Untouched keys keep their defaults
	assert.Equal(t, constants.TankHealth, cfg.Tank.Health)
	assert.Equal(t, components.EdgeDisappear, cfg.EdgeStrategy(components.KindBomb))
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, constants.TickInterval, cfg.Loop.Tick)
	assert.Equal(t, constants.EndBannerWait, cfg.Loop.EndBannerWait)
	assert.Equal(t, constants.EnemiesInitialCount, cfg.Enemies.InitialCount)
	assert.Equal(t, constants.LaserReload, cfg.Tank.LaserReload)
	assert.Equal(t, constants.LaserDamage, cfg.DamageFor(components.KindLaser))
	assert.Equal(t, constants.RocketDamage, cfg.DamageFor(components.KindRocket))
	assert.Equal(t, constants.BombDamage, cfg.DamageFor(components.KindBomb))
	assert.Equal(t, components.EdgeDisappear, cfg.EdgeStrategy(components.KindLaser))
	assert.Equal(t, components.EdgeBounce, cfg.EdgeStrategy(components.KindMartian))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/path/martians.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("MARTIANS_ENEMIES_INITIALCOUNT", "3")
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Enemies.InitialCount)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"Damage ordering", "[damage]\nlaser = 30\n", "laser < rocket < bomb"},
		{"Unknown edge", "[edge]\nrocket = \"teleport\"\n", "edge.rocket"},
		{"Zero enemies", "[enemies]\ninitialCount = 0\n", "enemies.initialCount"},
		{"Too many enemies", "[enemies]\ninitialCount = 100\nmax = 10\n", "exceeds enemies.max"},
		{"Zero tick", "[loop]\ntick = \"0s\"\n", "loop.tick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestResolveGrid(t *testing.T) {
	cfg := Default()

	g, err := cfg.ResolveGrid(100, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, g.Width)
	assert.Equal(t, 40-constants.HUDRows, g.Height)

	_, err = cfg.ResolveGrid(20, 10)
	require.Error(t, err)

	cfg.Grid.Width, cfg.Grid.Height = 60, 25
	g, err = cfg.ResolveGrid(200, 80)
	require.NoError(t, err)
	assert.Equal(t, 60, g.Width)
	assert.Equal(t, 25, g.Height)
}
