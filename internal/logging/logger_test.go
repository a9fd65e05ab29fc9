package logging

import (
	"testing"

	"citydensity/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default warn", config.LoggingConfig{Level: "warn", Encoding: "console"}, false, zapcore.WarnLevel},
		{"empty is info", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"json error", config.LoggingConfig{Level: "error", Encoding: "json"}, false, zapcore.ErrorLevel},
		{"verbose forces debug", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			t.Cleanup(func() { _ = logger.Sync() })

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "shout"}, false)
	assert.Error(t, err)
}

func TestFor_NamesLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	For(base, CategoryParse).Debug("parsed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "parse", entries[0].LoggerName)
	assert.Equal(t, "parsed", entries[0].Message)
}

func TestFor_NilBase(t *testing.T) {
	assert.NotPanics(t, func() {
		For(nil, CategoryRender).Info("dropped")
	})
}
