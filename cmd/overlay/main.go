// cmd/overlay/main.go
package main

import (
	"context"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bethropolis/overlay/internal/app"
	"github.com/bethropolis/overlay/internal/config"
	"github.com/bethropolis/overlay/internal/logger"
)

const version = "0.1.0"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v (using defaults)", err)
	}

	// --- Logger Initialization ---
	logFile, err := openLogFile(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	if logFile != os.Stderr {
		defer logFile.Close()
	}
	logger.SetDebugFilter(*flags.DebugLog)
	logger.Init(cfg.Logger, logFile)

	logger.Infof("Starting %s %s", config.AppName, version)
	cfg.LogSummary()
	logger.Debugf("Canvas config: %+v", cfg.Canvas)

	// --- Create and Run App ---
	overlayApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Fatalf("Error initializing application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := overlayApp.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// openLogFile opens path for appending. "-" means stderr; empty means the
// default log file under the user cache directory.
func openLogFile(path string) (*os.File, error) {
	if path == "-" {
		return os.Stderr, nil
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		dir = filepath.Join(dir, config.ConfigDirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, config.DefaultLogFileName)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
