package main

import (
	"github.com/charmbracelet/log"

	"github.com/lox/randcompat/internal/config"
)

// Globals are flags shared by every command. Non-empty flags override the
// config file.
type Globals struct {
	Config    string `help:"HCL config file" default:"randcompat.hcl" type:"path"`
	LogLevel  string `help:"Log level (debug|info|warn|error)"`
	LogFormat string `help:"Log format (text|logfmt|json)"`
}

// load resolves the effective configuration and builds the logger.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.LogFormat = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("configuration loaded", "file", g.Config, "generator", cfg.Generator, "seed", cfg.Seed)
	return cfg, logger, nil
}
