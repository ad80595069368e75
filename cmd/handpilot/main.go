package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/handpilot/handpilot/internal/app"
	"github.com/handpilot/handpilot/internal/arduino"
	"github.com/handpilot/handpilot/internal/config"
	"github.com/handpilot/handpilot/internal/detector"
	"github.com/handpilot/handpilot/internal/logging"
	"github.com/handpilot/handpilot/internal/store"
)

func main() {
	configPath := flag.String("config", "", "configuration file path (default ~/.handpilot/config.yaml)")
	port := flag.String("port", "", "serial port (overrides config)")
	camera := flag.Int("camera", -1, "camera index (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	dataDir, err := ensureDataDir()
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	path := *configPath
	if path == "" {
		path = filepath.Join(dataDir, "config.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// CLI overrides are persisted so the next run picks them up.
	overridden := false
	if *port != "" {
		cfg.SerialPort = *port
		overridden = true
	}
	if *camera >= 0 {
		cfg.CameraIndex = *camera
		overridden = true
	}
	if *debug {
		cfg.DebugMode = true
		overridden = true
	}
	if overridden {
		if err := cfg.Save(path); err != nil {
			log.Printf("Failed to persist overrides: %v", err)
		}
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var history *store.Store
	if st, err := store.New(filepath.Join(dataDir, "handpilot.db")); err != nil {
		logger.Warnw("gesture history disabled", "error", err)
	} else {
		history = st
		defer st.Close()
	}

	a := app.New(app.Config{
		CameraIndex: cfg.CameraIndex,
		WindowName:  cfg.WindowName,
		Detector: detector.Config{
			MaxHands:        2,
			MinConfidence:   cfg.MinDetectionConfidence,
			MinTrackingConf: cfg.MinTrackingConfidence,
		},
		Arduino: arduino.Config{
			Port:     cfg.SerialPort,
			BaudRate: cfg.BaudRate,
			Timeout:  time.Duration(cfg.SerialTimeout) * time.Second,
		},
		History: history,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Hand gesture controller - press ESC to exit")
	if err := a.Run(ctx); err != nil {
		logger.Errorw("run aborted", "error", err)
		os.Exit(1)
	}
}

// ensureDataDir creates ~/.handpilot if needed and returns its path.
func ensureDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".handpilot")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
