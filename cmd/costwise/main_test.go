package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/model"
)

func TestInitConfigExplicitFileMissing(t *testing.T) {
	prev := cfgFile
	t.Cleanup(func() { cfgFile = prev })

	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	err := initConfig(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestSessionConfigDefaults(t *testing.T) {
	viper.Set("project.units", "")
	viper.Set("project.currency", "")
	viper.Set("project.language", "")

	cfg, err := sessionConfig()
	require.NoError(t, err)
	assert.Equal(t, model.UnitImperial, cfg.Units)
	assert.Equal(t, "USD", cfg.Currency.Code)
}

func TestSessionConfigRejectsUnknownUnits(t *testing.T) {
	viper.Set("project.units", "furlongs")
	t.Cleanup(func() { viper.Set("project.units", "") })

	_, err := sessionConfig()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
