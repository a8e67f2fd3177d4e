package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := EmptyTuningConfig()

	assert.Equal(t, DefaultThreshold, cfg.GetThreshold())
	assert.False(t, cfg.GetAutoThreshold())
	assert.Equal(t, DefaultEpsilon, cfg.GetEpsilon())
	assert.Equal(t, DefaultMinLength, cfg.GetMinimumLength())
	assert.False(t, cfg.GetBlurDisable())
	assert.Equal(t, DefaultGestureDelay, cfg.GetGestureDelay())
	assert.Equal(t, "Transformice", cfg.GetWindowClass())
	assert.Equal(t, DefaultCanvas(), cfg.GetCanvas())
}

func TestLoadTuningConfig(t *testing.T) {
	path := writeConfig(t, "tuning.json", `{
		"threshold": 0.3,
		"auto_threshold": true,
		"epsilon": 0.02,
		"minimum_length": 0.05,
		"blur_disable": true,
		"gesture_delay": "45ms",
		"window_class": "Krita",
		"canvas": {"x": 0.1, "y": 0.1, "width": 0.8, "height": 0.8}
	}`)

	cfg, err := LoadTuningConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.GetThreshold())
	assert.True(t, cfg.GetAutoThreshold())
	assert.Equal(t, 0.02, cfg.GetEpsilon())
	assert.Equal(t, 0.05, cfg.GetMinimumLength())
	assert.True(t, cfg.GetBlurDisable())
	assert.Equal(t, 45*time.Millisecond, cfg.GetGestureDelay())
	assert.Equal(t, "Krita", cfg.GetWindowClass())
	assert.Equal(t, CanvasRect{X: 0.1, Y: 0.1, Width: 0.8, Height: 0.8}, cfg.GetCanvas())
}

// A partial file only overrides what it names.
func TestLoadTuningConfigPartial(t *testing.T) {
	path := writeConfig(t, "tuning.json", `{"epsilon": 0.05}`)

	cfg, err := LoadTuningConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.GetEpsilon())
	assert.Equal(t, DefaultThreshold, cfg.GetThreshold())
	assert.Equal(t, "Transformice", cfg.GetWindowClass())
}

func TestLoadTuningConfigRequiresJSONExtension(t *testing.T) {
	path := writeConfig(t, "tuning.yaml", `{}`)

	_, err := LoadTuningConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")
}

func TestLoadTuningConfigMissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadTuningConfigBadJSON(t *testing.T) {
	path := writeConfig(t, "tuning.json", `{"threshold": `)

	_, err := LoadTuningConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	neg := -0.1
	badDelay := "soon"
	flatCanvas := CanvasRect{X: 0, Y: 0, Width: 0, Height: 0.5}

	cases := []struct {
		name string
		cfg  TuningConfig
	}{
		{"negative threshold", TuningConfig{Threshold: &neg}},
		{"negative epsilon", TuningConfig{Epsilon: &neg}},
		{"negative minimum_length", TuningConfig{MinimumLength: &neg}},
		{"unparseable gesture_delay", TuningConfig{GestureDelay: &badDelay}},
		{"degenerate canvas", TuningConfig{Canvas: &flatCanvas}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}

	assert.NoError(t, EmptyTuningConfig().Validate())
}
