// File: cmd/hireme/main.go
package main

import (
	"log" // Standard log for critical startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"

	"github.com/sithum-sy/hireme-client/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	sdk, err := initializeApp(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize client SDK: %v", err)
	}
	defer sdk.Close()

	if err := sdk.Start(); err != nil {
		log.Fatalf("FATAL: Failed to start background jobs: %v", err)
	}
	sdk.Logger.Info("HireMe client SDK running; draft sweeper active")

	// The SDK is driven by an embedding UI; standalone it only hosts the
	// draft sweeper until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sdk.Logger.Info("Shutdown signal received")
}
