package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/pursuit/internal/config"
	"github.com/trknhr/pursuit/internal/eval"
)

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pursuit.yaml")
	body := `
data:
  words: data/words.txt
learning:
  tau: 0.5
evaluation:
  legacy_precision: true
simulation:
  seed: 42
  parallel: 4
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/words.txt", cfg.Data.Words)
	assert.Equal(t, "frank.all_meanings.txt", cfg.Data.Meanings)
	assert.Equal(t, 0.5, cfg.Learning.Tau)
	assert.Equal(t, 0.01, cfg.Learning.Gamma)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Parallel)
	assert.Equal(t, eval.PrecisionLegacy, cfg.PrecisionMode())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, eval.PrecisionCorrected, cfg.PrecisionMode())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("learning: [1, 2"), 0644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Learning.Gamma = 1
	cfg.Learning.Tau = 0
	cfg.Simulation.Parallel = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning.gamma")
	assert.Contains(t, err.Error(), "learning.tau")
	assert.Contains(t, err.Error(), "simulation.parallel")
}
