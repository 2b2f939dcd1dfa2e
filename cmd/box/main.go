// Package main runs the spinning box demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/s3/internal/app"
	"github.com/Faultbox/s3/internal/config"
	"github.com/Faultbox/s3/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== s3 box ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
