// Package main is the entry point for the MeshView viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/app"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	log := logger.Named("main")
	log.Info("=== MeshView ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		log.Error("failed to start viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := a.Run()
	a.Close()
	if runErr != nil {
		log.Error("viewer error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	log.Info("viewer closed normally")
}
