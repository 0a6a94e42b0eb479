package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sizzleship/internal/config"
	"github.com/Faultbox/sizzleship/internal/engine/renderer"
)

func TestRendererConfigDefaults(t *testing.T) {
	cfg := config.Default()
	rc := rendererConfig(cfg)

	assert.Equal(t, 320, rc.Width)
	assert.Equal(t, 240, rc.Height)
	assert.Equal(t, cfg.Display.AspectRatio(), rc.Aspect)
	assert.Equal(t, 3, rc.Buffers)
	assert.Equal(t, 8, rc.SphereRings)
	assert.Equal(t, 8, rc.SphereSegments)
	assert.False(t, rc.LightsEnabled)
	assert.Len(t, rc.Textures, int(renderer.TextureCount))
}

func TestRendererConfigAspectFollowsDisplay(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Width = 640
	cfg.Display.Height = 360

	rc := rendererConfig(cfg)
	assert.InDelta(t, 16.0/9.0, rc.Aspect, 1e-6)

	left, right, _, _, _, _ := renderer.Frustum(rc.Aspect)
	assert.InDelta(t, -16.0/9.0, left, 1e-6)
	assert.InDelta(t, 16.0/9.0, right, 1e-6)
}
