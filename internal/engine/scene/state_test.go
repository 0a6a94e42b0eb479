package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/sizzleship/internal/config"
	"github.com/Faultbox/sizzleship/internal/engine/input"
	"github.com/Faultbox/sizzleship/internal/logger"
)

var tuning = Tuning{Deadzone: 0.01, ZoomSpeed: 0.2}

func newState(animation int) FrameState {
	cfg := config.Default().Scene
	cfg.InitialAnimation = animation
	return NewFrameState(cfg)
}

func TestNewFrameStateDefaults(t *testing.T) {
	s := NewFrameState(config.Default().Scene)
	assert.Equal(t, 3283, s.Animation)
	assert.Equal(t, float32(-6), s.Camera.Distance)
	assert.Equal(t, ShadingSmooth, s.Shading)
	assert.False(t, s.Fog)
}

func TestFogStaysOffUntilPressed(t *testing.T) {
	s := NewFrameState(config.Default().Scene)
	var tr input.Tracker

	for range 5 {
		s.Update(tr.Next(input.Sample{}), tuning)
	}
	assert.False(t, s.Fog)

	s.Update(tr.Next(input.Sample{Buttons: input.ButtonL}), tuning)
	assert.True(t, s.Fog)
}

func TestCounterIncrementsOncePerPress(t *testing.T) {
	s := newState(0)
	var tr input.Tracker

	// held for ten frames, released, pressed again
	for range 10 {
		s.Update(tr.Next(input.Sample{Buttons: input.ButtonA}), tuning)
	}
	assert.Equal(t, 1, s.Animation)

	s.Update(tr.Next(input.Sample{}), tuning)
	s.Update(tr.Next(input.Sample{Buttons: input.ButtonA}), tuning)
	assert.Equal(t, 2, s.Animation)
}

func TestCounterDecrementsBelowZero(t *testing.T) {
	s := newState(0)
	var tr input.Tracker
	s.Update(tr.Next(input.Sample{Buttons: input.ButtonB}), tuning)
	assert.Equal(t, -1, s.Animation)
}

func TestPressAffectsSameFrame(t *testing.T) {
	s := newState(0)
	assert.Equal(t, float32(0), s.LightAngle())

	var tr input.Tracker
	s.Update(tr.Next(input.Sample{Buttons: input.ButtonA}), tuning)
	assert.Equal(t, 1, s.Animation)
	assert.InDelta(t, 2.715, s.LightAngle(), 1e-5)
	assert.Equal(t, float32(0.5), s.Rotation())
}

func TestTogglesRestoreAfterTwoPresses(t *testing.T) {
	s := newState(0)
	var tr input.Tracker

	press := func(b input.Button) {
		s.Update(tr.Next(input.Sample{Buttons: b}), tuning)
		s.Update(tr.Next(input.Sample{}), tuning)
	}

	press(input.ButtonL)
	assert.True(t, s.Fog)
	press(input.ButtonL)
	assert.False(t, s.Fog)

	press(input.ButtonR)
	assert.Equal(t, ShadingFlat, s.Shading)
	press(input.ButtonR)
	assert.Equal(t, ShadingSmooth, s.Shading)
}

func TestStickZoom(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float32
		change float32
	}{
		{"centered", 0, 0, 0},
		{"inside deadzone", 0.05, 0.05, 0},
		{"full up", 0, 1, 0.2},
		{"half down", 0, -0.5, -0.1},
		{"sideways only", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(0)
			before := s.Camera.Distance
			s.Update(input.Frame{StickX: tt.x, StickY: tt.y}, tuning)
			assert.InDelta(t, tt.change, s.Camera.Distance-before, 1e-6)
		})
	}
}

func TestStartLogsCounter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	s := newState(42)
	var tr input.Tracker
	s.Update(tr.Next(input.Sample{Buttons: input.ButtonStart}), tuning)
	s.Update(tr.Next(input.Sample{Buttons: input.ButtonStart}), tuning)

	entries := logs.FilterMessage("animation counter").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "scene", entries[0].LoggerName)
	assert.Equal(t, int64(42), entries[0].ContextMap()["animation"])
	assert.Equal(t, 42, s.Animation)
}

func TestShadingString(t *testing.T) {
	assert.Equal(t, "smooth", ShadingSmooth.String())
	assert.Equal(t, "flat", ShadingFlat.String())
}
