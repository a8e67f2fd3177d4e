// Package config loads and validates the JSON tuning file for the
// sketch pipeline and drawer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for the recognized options. The pipeline defaults are
// deliberately conservative: a 0.5 cutoff on the thinned magnitude and
// a 0.01 simplification tolerance in normalized units.
const (
	DefaultThreshold    = 0.5
	DefaultEpsilon      = 0.01
	DefaultMinLength    = 0.0
	DefaultGestureDelay = 30 * time.Millisecond
)

// CanvasRect is the normalized sub-rectangle of the target window that
// receives strokes. All four values are fractions of the window size.
type CanvasRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultCanvas covers the drawable area of the stock game window.
func DefaultCanvas() CanvasRect {
	return CanvasRect{X: 0.184, Y: 0.063, Width: 0.634, Height: 0.575}
}

// TuningConfig is the root tuning schema. Fields are pointers so a
// partial JSON file only overrides what it names; omitted fields keep
// their defaults via the Get* accessors.
type TuningConfig struct {
	// Pipeline params
	Threshold     *float64 `json:"threshold,omitempty"`
	AutoThreshold *bool    `json:"auto_threshold,omitempty"`
	Epsilon       *float64 `json:"epsilon,omitempty"`
	MinimumLength *float64 `json:"minimum_length,omitempty"`
	BlurDisable   *bool    `json:"blur_disable,omitempty"`

	// Drawer params
	GestureDelay *string     `json:"gesture_delay,omitempty"` // duration string like "30ms"
	WindowClass  *string     `json:"window_class,omitempty"`
	Canvas       *CanvasRect `json:"canvas,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields unset.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The path
// must carry a .json extension and stay under the max file size.
// Omitted fields retain their defaults, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configured values are usable. Negative
// epsilon is rejected here, before the pipeline ever runs.
func (c *TuningConfig) Validate() error {
	if c.Threshold != nil && *c.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %f", *c.Threshold)
	}

	if c.Epsilon != nil && *c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative, got %f", *c.Epsilon)
	}

	if c.MinimumLength != nil && *c.MinimumLength < 0 {
		return fmt.Errorf("minimum_length must be non-negative, got %f", *c.MinimumLength)
	}

	if c.GestureDelay != nil && *c.GestureDelay != "" {
		if _, err := time.ParseDuration(*c.GestureDelay); err != nil {
			return fmt.Errorf("invalid gesture_delay '%s': %w", *c.GestureDelay, err)
		}
	}

	if c.Canvas != nil {
		cv := *c.Canvas
		if cv.Width <= 0 || cv.Height <= 0 {
			return fmt.Errorf("canvas width and height must be positive, got %fx%f", cv.Width, cv.Height)
		}
	}

	return nil
}

// GetThreshold returns the threshold value or the default.
func (c *TuningConfig) GetThreshold() float64 {
	if c.Threshold == nil {
		return DefaultThreshold
	}
	return *c.Threshold
}

// GetAutoThreshold returns the auto_threshold value or the default.
func (c *TuningConfig) GetAutoThreshold() bool {
	if c.AutoThreshold == nil {
		return false
	}
	return *c.AutoThreshold
}

// GetEpsilon returns the epsilon value or the default.
func (c *TuningConfig) GetEpsilon() float64 {
	if c.Epsilon == nil {
		return DefaultEpsilon
	}
	return *c.Epsilon
}

// GetMinimumLength returns the minimum_length value or the default.
func (c *TuningConfig) GetMinimumLength() float64 {
	if c.MinimumLength == nil {
		return DefaultMinLength
	}
	return *c.MinimumLength
}

// GetBlurDisable returns the blur_disable value or the default.
func (c *TuningConfig) GetBlurDisable() bool {
	if c.BlurDisable == nil {
		return false
	}
	return *c.BlurDisable
}

// GetGestureDelay parses and returns the gesture delay.
func (c *TuningConfig) GetGestureDelay() time.Duration {
	if c.GestureDelay == nil || *c.GestureDelay == "" {
		return DefaultGestureDelay
	}
	d, err := time.ParseDuration(*c.GestureDelay)
	if err != nil {
		return DefaultGestureDelay
	}
	return d
}

// GetWindowClass returns the window_class value or the default.
func (c *TuningConfig) GetWindowClass() string {
	if c.WindowClass == nil || *c.WindowClass == "" {
		return "Transformice"
	}
	return *c.WindowClass
}

// GetCanvas returns the canvas rect or the default.
func (c *TuningConfig) GetCanvas() CanvasRect {
	if c.Canvas == nil {
		return DefaultCanvas()
	}
	return *c.Canvas
}
