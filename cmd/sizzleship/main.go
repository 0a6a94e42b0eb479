// Package main is the entry point for the Sizzleship demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sizzleship/internal/config"
	"github.com/Faultbox/sizzleship/internal/game"
	"github.com/Faultbox/sizzleship/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Sizzleship ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		return 1
	}

	runErr := g.Run()
	if err := g.Close(); err != nil {
		logger.Warn("error during shutdown", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("demo error", zap.Error(runErr))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}
