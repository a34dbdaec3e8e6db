package main

import (
	"log/slog"
	"os"

	"legenda/internal/config"
	"legenda/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	config       *config.Config
	configPath   string
	configExists bool
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verbose: verbose}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	c.configPath = resolved
	c.configExists = exists
	return cfg, nil
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if c.verbose != nil && *c.verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: os.Stderr,
	})
}
