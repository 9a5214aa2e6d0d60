package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Game.Seed = 42
	cfg.Game.CatalogFile = "events.json"
	cfg.Server.Port = "9090"
	cfg.Console.WrapWidth = 60
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"port": "7000"}}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "events.yaml", cfg.Game.CatalogFile)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "decode config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CULTIVATION_SEED", "7")
	t.Setenv("CULTIVATION_PORT", "3000")
	t.Setenv("CULTIVATION_DATA_DIR", "/srv/data")
	t.Setenv("CULTIVATION_WRAP_WIDTH", "100")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "/srv/data", cfg.Game.DataDir)
	assert.Equal(t, 100, cfg.Console.WrapWidth)
	assert.Equal(t, 500, cfg.Game.AutoPilotMaxTurns)
}

func TestEnvInvalidValue(t *testing.T) {
	t.Setenv("CULTIVATION_SEED", "not-a-number")

	cfg := DefaultConfig()
	assert.ErrorContains(t, ApplyEnv(&cfg), "parse env")
}
