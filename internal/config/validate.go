package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 || c.Server.ReadTimeoutSeconds < 0 ||
		c.Server.WriteTimeoutSeconds < 0 || c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server timeouts must not be negative")
	}
	return nil
}

func (c *Config) validateCaptions() error {
	switch c.Captions.Backend {
	case BackendYouTube, BackendYtDlp:
	default:
		return fmt.Errorf("captions.backend must be %q or %q, got %q", BackendYouTube, BackendYtDlp, c.Captions.Backend)
	}
	if c.Captions.HTTPTimeoutSeconds <= 0 {
		return errors.New("captions.http_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
