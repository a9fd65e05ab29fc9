package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("CITYDENSITY_INPUT sets input", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CITYDENSITY_INPUT", "/data/cities.csv")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/data/cities.csv", cfg.Input)
	})

	t.Run("CITYDENSITY_FORMAT is lowercased", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CITYDENSITY_FORMAT", "YAML")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("empty variables change nothing", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Input: "keep.csv", Logging: LoggingConfig{Level: "error"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "keep.csv", cfg.Input)
		assert.Equal(t, "error", cfg.Logging.Level)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CITYDENSITY_LOG_LEVEL", "DEBUG")

		path := filepath.Join(t.TempDir(), "citydensity.yaml")
		cfg := DefaultConfig()
		cfg.Logging.Level = "error"
		require.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", loaded.Logging.Level)
	})

	t.Run("applied without a config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CITYDENSITY_FORMAT", "json")

		loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "json", loaded.Output.Format)
	})
}

func TestLoggingConfig_Validate(t *testing.T) {
	valid := []LoggingConfig{
		{},
		{Level: "debug", Encoding: "json"},
		{Level: "error", Encoding: "console"},
	}
	for _, c := range valid {
		assert.NoError(t, c.Validate(), "%+v", c)
	}

	assert.Error(t, (&LoggingConfig{Level: "loud"}).Validate())
	assert.Error(t, (&LoggingConfig{Level: "info", Encoding: "xml"}).Validate())
}
