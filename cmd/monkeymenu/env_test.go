package main

import (
	"testing"
	"time"

	"github.com/faideww/monkey-menu/internal/monkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SPECIES_SOURCE", "SPECIES_FILE", "SPECIES_URL", "LOG_LEVEL", "LOG_FILE", "PAUSE_DELAY_MS", "ROLL_DELAY_MS", "SEED"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "builtin", cfg.SpeciesSource)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.PauseDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.RollDelay)
	assert.Zero(t, cfg.Seed)
	assert.IsType(t, monkey.BuiltinSource{}, speciesSource(cfg))
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPECIES_SOURCE", "File")
	t.Setenv("SPECIES_FILE", "/tmp/monkeys.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PAUSE_DELAY_MS", "0")
	t.Setenv("ROLL_DELAY_MS", "10")
	t.Setenv("SEED", "99")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.SpeciesSource)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Zero(t, cfg.PauseDelay)
	assert.Equal(t, 10*time.Millisecond, cfg.RollDelay)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, monkey.FileSource{Path: "/tmp/monkeys.yaml"}, speciesSource(cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "file without path", env: map[string]string{"SPECIES_SOURCE": "file"}},
		{name: "unknown source", env: map[string]string{"SPECIES_SOURCE": "zoo"}},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad int", env: map[string]string{"ROLL_DELAY_MS": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSpeciesSource_Remote(t *testing.T) {
	src := speciesSource(&Config{SpeciesSource: "remote", SpeciesURL: "https://example.invalid"})
	assert.Equal(t, monkey.RemoteSource{URL: "https://example.invalid"}, src)
}
