package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	amount := 5000.0
	percent := 10.0
	cfg := Default("Test Bank")
	cfg.Compare.ThresholdAmount = &amount
	cfg.Compare.ThresholdPercent = &percent

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.InDelta(t, cfg.Evaluation.Tolerance, got.Evaluation.Tolerance, 0.0001)
	require.NotNil(t, got.Compare.ThresholdAmount)
	assert.InDelta(t, amount, *got.Compare.ThresholdAmount, 0.001)
	require.NotNil(t, got.Compare.ThresholdPercent)
	assert.InDelta(t, percent, *got.Compare.ThresholdPercent, 0.001)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Bank")

	assert.Equal(t, "My Bank", cfg.Business.Name)
	assert.InDelta(t, 0.01, cfg.Evaluation.Tolerance, 0.0001)
	assert.Nil(t, cfg.Compare.ThresholdAmount)
	assert.Nil(t, cfg.Compare.ThresholdPercent)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Bank")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "tolerance: 0.01")
	assert.NotContains(t, contents, "threshold_amount")
}
