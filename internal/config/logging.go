package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging. Logs always go to stderr.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// Validate rejects unknown levels and encodings.
func (c *LoggingConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Level, err)
	}
	switch c.Encoding {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid logging.encoding %q (want console or json)", c.Encoding)
	}
}
