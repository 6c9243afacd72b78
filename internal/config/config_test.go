package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := decode(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.False(t, cfg.Development.Debug)
	assert.Equal(t, "info", cfg.Development.LogLevel)
	assert.Equal(t, 0, cfg.Analysis.Workers)
	assert.Equal(t, 3, cfg.Analysis.DefaultDepth)
	assert.Equal(t, 1000, cfg.Games.MaxActive)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CHESSRULES_SERVER_PORT", "9090")
	t.Setenv("CHESSRULES_DEVELOPMENT_DEBUG", "true")
	t.Setenv("CHESSRULES_ANALYSIS_WORKERS", "2")

	cfg, err := decode(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Development.Debug)
	assert.Equal(t, 2, cfg.Analysis.Workers)
}

func TestYAMLFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
server:
  host: 0.0.0.0
  port: 8181
development:
  log_level: debug
analysis:
  default_depth: 4
games:
  max_active: 5
`)))

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8181", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Development.LogLevel)
	assert.Equal(t, 4, cfg.Analysis.DefaultDepth)
	assert.Equal(t, 5, cfg.Games.MaxActive)
}

func TestNegativeDepthRejected(t *testing.T) {
	t.Setenv("CHESSRULES_ANALYSIS_DEFAULT_DEPTH", "-1")

	_, err := decode(viper.New())
	assert.Error(t, err)
}
