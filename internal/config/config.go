package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the host settings. Scene geometry is fixed in code.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
	Capture  CaptureConfig  `yaml:"capture"`
	Headless HeadlessConfig `yaml:"headless"`
}

// DisplayConfig controls the window.
type DisplayConfig struct {
	WindowTitle string `yaml:"window_title"`
	Scale       int    `yaml:"scale"` // window pixels per canvas pixel
	TPS         int    `yaml:"tps"`
	Resizable   bool   `yaml:"resizable"`
}

// InputConfig tunes how keys and mouse map onto the look axis.
type InputConfig struct {
	MouseLook        bool    `yaml:"mouse_look"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // look axis per pixel of horizontal motion
	KeyLookRate      float64 `yaml:"key_look_rate"`     // look axis while an arrow key is held
}

// LoggingConfig sets the log level and how often frame rate is reported.
type LoggingConfig struct {
	Level       string        `yaml:"level"`
	FPSInterval time.Duration `yaml:"fps_interval"`
}

// CaptureConfig controls F12 screenshots.
type CaptureConfig struct {
	Dir   string `yaml:"dir"`
	Scale int    `yaml:"scale"`
}

// HeadlessConfig drives a run without a window.
type HeadlessConfig struct {
	Hz       int        `yaml:"hz"` // 0 renders as fast as possible
	Frames   int        `yaml:"frames"`
	DT       float64    `yaml:"dt"` // simulated seconds per frame
	Snapshot string     `yaml:"snapshot"`
	Axes     AxesConfig `yaml:"axes"`
}

// AxesConfig is the scripted input replayed every headless frame.
type AxesConfig struct {
	X    float64 `yaml:"x"`
	Z    float64 `yaml:"z"`
	Look float64 `yaml:"look"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			WindowTitle: "persp",
			Scale:       2,
			TPS:         60,
		},
		Input: InputConfig{
			MouseLook:        true,
			MouseSensitivity: 1,
			KeyLookRate:      0.5,
		},
		Logging: LoggingConfig{
			Level:       "info",
			FPSInterval: time.Second,
		},
		Capture: CaptureConfig{
			Dir:   "screenshots",
			Scale: 2,
		},
		Headless: HeadlessConfig{
			Hz:     60,
			Frames: 120,
			DT:     1.0 / 60,
		},
	}
}

// LoadConfig reads filename on top of the defaults and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Validate reports the first setting the host cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Display.Scale < 1:
		return fmt.Errorf("%w: display.scale must be at least 1, got %d", ErrInvalidConfig, c.Display.Scale)
	case c.Display.TPS < 1:
		return fmt.Errorf("%w: display.tps must be positive, got %d", ErrInvalidConfig, c.Display.TPS)
	case c.Input.MouseSensitivity < 0 || c.Input.KeyLookRate < 0:
		return fmt.Errorf("%w: input rates must not be negative", ErrInvalidConfig)
	case c.Logging.FPSInterval < 0:
		return fmt.Errorf("%w: logging.fps_interval must not be negative", ErrInvalidConfig)
	case c.Capture.Scale < 1:
		return fmt.Errorf("%w: capture.scale must be at least 1, got %d", ErrInvalidConfig, c.Capture.Scale)
	case c.Headless.Hz < 0:
		return fmt.Errorf("%w: headless.hz must not be negative, got %d", ErrInvalidConfig, c.Headless.Hz)
	case c.Headless.Frames < 0:
		return fmt.Errorf("%w: headless.frames must not be negative, got %d", ErrInvalidConfig, c.Headless.Frames)
	case c.Headless.DT < 0:
		return fmt.Errorf("%w: headless.dt must not be negative", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel maps logging.level onto a slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
}

// WindowSize is the window size for a canvas of the given logical size.
func (c *Config) WindowSize(canvasW, canvasH int) (int, int) {
	return canvasW * c.Display.Scale, canvasH * c.Display.Scale
}
