// If you are AI: This file defines the configuration structure for hellokube.
// Values come from built-in defaults, an optional YAML file, then the environment.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvPort       = "PORT"
	EnvConfigFile = "HELLOKUBE_CONFIG"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"
)

// DefaultPort is used when neither PORT nor the config file sets one.
const DefaultPort = 3000

// Config holds the complete server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig defines HTTP listener settings.
type ServerConfig struct {
	// Port is a pointer so an explicit 0 (any free port) survives defaulting.
	Port *int `yaml:"port"`
}

// LogConfig defines diagnostic output settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `yaml:"format"` // text, json
}

// Load builds the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds the configuration using lookup as the environment source.
// The YAML file named by HELLOKUBE_CONFIG, if any, is applied before the
// individual environment overrides.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	var cfg Config

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	return &cfg, nil
}

// loadFile decodes a YAML file into c, rejecting unknown fields.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// An empty file decodes to io.EOF and leaves the defaults in place.
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// applyEnv overrides file values with environment values.
// An empty PORT is treated as unset.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if raw, ok := lookup(EnvPort); ok && strings.TrimSpace(raw) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("parse %s %q: %w", EnvPort, raw, err)
		}
		c.Server.Port = &port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.Port == nil {
		port := DefaultPort
		c.Server.Port = &port
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ListenPort returns the configured TCP port.
func (s *ServerConfig) ListenPort() int {
	if s.Port == nil {
		return DefaultPort
	}
	return *s.Port
}

// Addr returns the listen address on all interfaces.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.ListenPort())
}
