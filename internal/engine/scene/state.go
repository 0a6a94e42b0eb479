// Package scene holds the demo's mutable per-frame state and the rules that
// advance it from controller input.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sizzleship/internal/config"
	"github.com/Faultbox/sizzleship/internal/engine/camera"
	"github.com/Faultbox/sizzleship/internal/engine/input"
	"github.com/Faultbox/sizzleship/internal/engine/lighting"
	"github.com/Faultbox/sizzleship/internal/logger"
)

// Shading selects the fixed-function shade model.
type Shading uint8

const (
	ShadingSmooth Shading = iota
	ShadingFlat
)

// Toggle returns the other shade model.
func (s Shading) Toggle() Shading {
	if s == ShadingSmooth {
		return ShadingFlat
	}
	return ShadingSmooth
}

func (s Shading) String() string {
	if s == ShadingFlat {
		return "flat"
	}
	return "smooth"
}

// Tuning controls how the analog stick drives the camera.
type Tuning struct {
	Deadzone  float32
	ZoomSpeed float32
}

// TuningFrom converts the input config section.
func TuningFrom(cfg config.InputConfig) Tuning {
	return Tuning{Deadzone: cfg.Deadzone, ZoomSpeed: cfg.ZoomSpeed}
}

// FrameState is everything that changes between frames.
type FrameState struct {
	Animation int
	Camera    camera.Camera
	Shading   Shading
	Fog       bool
}

// NewFrameState returns the state the demo starts in: smooth shading with fog off.
func NewFrameState(cfg config.SceneConfig) FrameState {
	return FrameState{
		Animation: cfg.InitialAnimation,
		Camera:    camera.New(cfg.CameraDistance),
		Shading:   ShadingSmooth,
		Fog:       false,
	}
}

// Update applies one frame of controller input.
// Buttons act on their press edge only; the stick zooms every frame it is outside the deadzone.
func (s *FrameState) Update(f input.Frame, t Tuning) {
	if f.WasPressed(input.ButtonA) {
		s.Animation++
	}
	if f.WasPressed(input.ButtonB) {
		s.Animation--
	}
	if f.WasPressed(input.ButtonStart) {
		logger.Named("scene").Debug("animation counter", zap.Int("animation", s.Animation))
	}
	if f.WasPressed(input.ButtonR) {
		s.Shading = s.Shading.Toggle()
	}
	if f.WasPressed(input.ButtonL) {
		s.Fog = !s.Fog
	}

	s.Camera.Zoom(f.StickX, f.StickY, t.Deadzone, t.ZoomSpeed)
}

// Rotation is the parameter animated objects spin by.
func (s FrameState) Rotation() float32 {
	return lighting.SceneRotation(s.Animation)
}

// LightAngle is the rotation of the light rig about +Y in degrees.
func (s FrameState) LightAngle() float32 {
	return lighting.Angle(s.Animation)
}
