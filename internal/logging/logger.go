// Package logging builds the zap logger used by citydensity.
// Logs go to stderr so stdout carries only the report.
package logging

import (
	"fmt"

	"citydensity/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a pipeline stage. Loggers for a stage are named after it.
type Category string

const (
	CategoryBoot     Category = "boot"     // Config and startup
	CategoryInput    Category = "input"    // Input resolution
	CategoryParse    Category = "parse"    // CSV -> records
	CategoryAnnotate Category = "annotate" // Max density and percentages
	CategoryRender   Category = "render"   // Table / JSON / YAML output
)

// New builds a production zap logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the stage logger derived from base.
func For(base *zap.Logger, category Category) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(string(category))
}
