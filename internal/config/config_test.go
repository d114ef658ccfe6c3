package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, TimeConfig{Start: 0, End: 100, Step: 1}, cfg.Time)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_EmptyDocumentYieldsDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
time:
  end: 20
  step: 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Time.Start)
	assert.Equal(t, 20.0, cfg.Time.End)
	assert.Equal(t, 0.5, cfg.Time.Step)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(`
time:
  start: 10
  end: 30
  step: 5
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, TimeConfig{Start: 10, End: 30, Step: 5}, cfg.Time)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
time:
  stpe: 2
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.False(t, IsValidationError(err))
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero step", "time: {step: 0}"},
		{"negative step", "time: {step: -1}"},
		{"end before start", "time: {start: 50, end: 10}"},
		{"unknown level", "log: {level: verbose}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("time: {start: 1, end: 3, step: 1}\nlog: {level: warn}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TimeConfig{Start: 1, End: 3, Step: 1}, cfg.Time)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{}.SlogLevel())
}
