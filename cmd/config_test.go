package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "meshtrace", configBaseName)
	assert.Equal(t, "meshtrace.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "MESHTRACE", envPrefix)
	assert.Equal(t, "run.parallel", parallelConfigKey)
	assert.Equal(t, "signals.clock", signalsClockKey)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultDump, viper.GetString(dumpConfigKey))
	assert.Equal(t, defaultOutput, viper.GetString(outputConfigKey))
	assert.Equal(t, defaultEdge, viper.GetString(edgeConfigKey))
	assert.Equal(t, domain.DefaultSignalPaths(), signalPaths())
}

func TestConfig_EnvOverridesSignal(t *testing.T) {
	t.Setenv("MESHTRACE_SIGNALS_CLOCK", "core_clk")

	assert.Equal(t, "core_clk", signalPaths().Clock)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_Verbose(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "debug.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
