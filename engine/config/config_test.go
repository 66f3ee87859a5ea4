package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	kind, err := cfg.InitialKind()
	require.NoError(t, err)
	assert.Equal(t, controller.KindDebug, kind)

	for _, k := range controller.Kinds() {
		assert.Equal(t, controller.DefaultSettings(k), cfg.Settings(k))
	}
	assert.Equal(t, controller.Settings{}, cfg.Settings(controller.Kind(99)))
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
[window]
title = "Studio"
width = 800

[engine]
profiling = true
frame_limit = 60
initial_controller = "top-down"

[controllers.top-down]
radius = 25
keyboard_panning_sensibility = 100
target = [1.0, 0.0, -2.0]
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Studio", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep their defaults")
	assert.True(t, cfg.Engine.Profiling)
	assert.Equal(t, 60, cfg.Engine.FrameLimit)

	kind, err := cfg.InitialKind()
	require.NoError(t, err)
	assert.Equal(t, controller.KindTopDown, kind)

	top := cfg.Settings(controller.KindTopDown)
	assert.Equal(t, float32(25), top.Radius)
	assert.Equal(t, float32(100), top.KeyboardPanningSensibility)
	assert.Equal(t, [3]float32{1, 0, -2}, top.Target)
	assert.Equal(t, float32(25), top.ZoomingSensibility)
	assert.Equal(t, controller.DefaultSettings(controller.KindDebug), cfg.Settings(controller.KindDebug))
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[window]\ncolour = \"red\"\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsMalformedToml(t *testing.T) {
	_, err := Decode(strings.NewReader("[window\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"negative frame limit", func(c *Config) { c.Engine.FrameLimit = -5 }},
		{"unknown initial controller", func(c *Config) { c.Engine.InitialController = "orbit" }},
		{"non-positive sensibility", func(c *Config) { c.Controllers.TwoD.ZoomingSensibility = 0 }},
		{"inverted limits", func(c *Config) {
			c.Controllers.Debug.RadiusLower, c.Controllers.Debug.RadiusUpper = 50, 10
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("[engine]\ndebug = true\n"), 0o644))
	assert.NoError(t, CheckFile(path))

	assert.NoError(t, CheckFile(filepath.Join(dir, "missing.toml")), "a missing file falls back to defaults")

	require.NoError(t, os.WriteFile(path, []byte("[engine]\nframe_limit = -1\n"), 0o644))
	assert.ErrorIs(t, CheckFile(path), ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("[engine]\nframelimit = 30\n"), 0o644))
	assert.ErrorIs(t, CheckFile(path), ErrInvalid)
}
