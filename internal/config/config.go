// Package config loads and persists the controller configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the flat key-value configuration surface of the controller.
// SerialTimeout is in whole seconds, matching the on-disk representation.
type Config struct {
	SerialPort             string  `yaml:"serial_port"`
	BaudRate               int     `yaml:"baud_rate"`
	CameraIndex            int     `yaml:"camera_index"`
	WindowName             string  `yaml:"window_name"`
	MinDetectionConfidence float64 `yaml:"min_detection_confidence"`
	MinTrackingConfidence  float64 `yaml:"min_tracking_confidence"`
	SerialTimeout          int     `yaml:"serial_timeout"`
	DebugMode              bool    `yaml:"debug_mode"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		SerialPort:             "/dev/ttyUSB0",
		BaudRate:               9600,
		CameraIndex:            0,
		WindowName:             "Hand Gesture Controller",
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
		SerialTimeout:          2,
		DebugMode:              false,
	}
}

// Load reads the configuration file at path, filling unset keys with
// defaults. A missing file is not an error: the defaults are written out to
// path so the operator has a file to edit on the next run.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path in YAML form.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
