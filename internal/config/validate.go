// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"
	"strings"

	"hellokube/internal/logger"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
// Port 0 is allowed and asks the kernel for a free port.
func (s *ServerConfig) Validate() error {
	port := s.ListenPort()
	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", port)
	}
	return nil
}

// Validate checks log configuration values.
func (l *LogConfig) Validate() error {
	if _, err := logger.ParseLevel(l.Level); err != nil {
		return err
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", l.Format)
	}
	return nil
}
