// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all demo settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Scene   SceneConfig   `yaml:"scene"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds display surface and window settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`   // Render surface width in pixels
	Height     int  `yaml:"height"`  // Render surface height in pixels
	Scale      int  `yaml:"scale"`   // Initial window size multiplier
	Buffers    int  `yaml:"buffers"` // Color surfaces in the swap ring
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	OverrideDir string   `yaml:"override_dir"` // Searched before the embedded ROM
	Textures    []string `yaml:"textures"`     // Logical texture paths, in texture slot order
}

// SceneConfig holds the initial scene parameters.
type SceneConfig struct {
	InitialAnimation int     `yaml:"initial_animation"`
	CameraDistance   float32 `yaml:"camera_distance"`
	SphereRings      int     `yaml:"sphere_rings"`
	SphereSegments   int     `yaml:"sphere_segments"`
	LightsEnabled    bool    `yaml:"lights_enabled"`
}

// InputConfig holds analog stick tuning.
type InputConfig struct {
	Deadzone  float32 `yaml:"deadzone"`   // Squared stick magnitude that must be exceeded
	ZoomSpeed float32 `yaml:"zoom_speed"` // Camera distance change per frame at full deflection
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// TextureCount is the number of texture slots the scene binds.
const TextureCount = 6

// MaxBuffers is the largest color surface ring the renderer allocates.
const MaxBuffers = 4

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      320,
			Height:     240,
			Scale:      3,
			Buffers:    3,
			Fullscreen: false,
			VSync:      true,
		},
		Assets: AssetsConfig{
			OverrideDir: "",
			Textures: []string{
				"rom:/water.tga",
				"rom:/clouds.tga",
				"rom:/pentagon0.tga",
				"rom:/triangle0.tga",
				"rom:/starb.tga",
				"rom:/star.tga",
			},
		},
		Scene: SceneConfig{
			InitialAnimation: 3283,
			CameraDistance:   -6,
			SphereRings:      8,
			SphereSegments:   8,
			LightsEnabled:    false,
		},
		Input: InputConfig{
			Deadzone:  0.01,
			ZoomSpeed: 0.2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the configuration can drive the renderer.
func (c *Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.Buffers < 1 || c.Display.Buffers > MaxBuffers {
		errs = append(errs, fmt.Errorf("display buffers must be in [1, %d], got %d", MaxBuffers, c.Display.Buffers))
	}
	if len(c.Assets.Textures) != TextureCount {
		errs = append(errs, fmt.Errorf("expected %d textures, got %d", TextureCount, len(c.Assets.Textures)))
	}
	if c.Input.Deadzone < 0 {
		errs = append(errs, fmt.Errorf("input deadzone must not be negative, got %f", c.Input.Deadzone))
	}

	return errors.Join(errs...)
}

// AspectRatio returns the display width divided by its height.
func (d DisplayConfig) AspectRatio() float32 {
	return float32(d.Width) / float32(d.Height)
}
