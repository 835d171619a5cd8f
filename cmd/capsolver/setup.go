package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spetersoncode/capsolver/config"
	"github.com/spetersoncode/capsolver/solver"
	"github.com/spetersoncode/capsolver/tool"
	"github.com/spf13/cobra"
)

// logOutput is where CLI logs go. Stdout carries results and MCP traffic.
var logOutput io.Writer = os.Stderr

// newLogger creates a JSON logger for CLI use.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: level,
	}))
}

// env bundles what every command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// setup loads the configuration named by the global flags.
func setup(cmd *cobra.Command) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := newLogger(cfg.Level())
	if cfg.APIKey == "" {
		logger.Warn("no API key configured", "env", config.EnvAPIKey)
	}
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) solver() *solver.Client {
	return e.cfg.NewSolver(e.logger)
}

func (e *env) registry() *tool.Registry {
	return tool.NewRegistry().Add(tool.CaptchaTools(e.solver())...)
}
