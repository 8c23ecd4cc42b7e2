package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetforge/dnd5e/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, 72, cfg.Sheet.Width)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHEET_WIDTH", "100")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, 100, cfg.Sheet.Width)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_SheetWidthTooNarrow(t *testing.T) {
	t.Setenv("SHEET_WIDTH", "10")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("SHEET_WIDTH", "wide")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.Sheet.Width)
}
