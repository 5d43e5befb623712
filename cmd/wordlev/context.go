package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"wordlev/internal/config"
	"wordlev/internal/history"
	"wordlev/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configValue returns the loaded config, or defaults when loading was skipped
// or failed.
func (c *commandContext) configValue() *config.Config {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		fallback := config.Default()
		return &fallback
	}
	return cfg
}

// logger builds a stderr logger from the [logging] section.
func (c *commandContext) logger(stderr io.Writer) *slog.Logger {
	logger, err := logging.NewFromConfig(c.configValue(), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "warn: logging disabled: %v\n", err)
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) openHistory(ctx context.Context) (*history.Store, error) {
	cfg := c.configValue()
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func (c *commandContext) withHistory(ctx context.Context, fn func(*history.Store) error) error {
	store, err := c.openHistory(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
