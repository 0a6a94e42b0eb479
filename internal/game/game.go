// Package game wires the window, input, scene state and renderer into the demo loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/sizzleship/internal/assets"
	"github.com/Faultbox/sizzleship/internal/config"
	"github.com/Faultbox/sizzleship/internal/engine/input"
	"github.com/Faultbox/sizzleship/internal/engine/renderer"
	"github.com/Faultbox/sizzleship/internal/engine/scene"
	"github.com/Faultbox/sizzleship/internal/engine/window"
	"github.com/Faultbox/sizzleship/internal/logger"
)

// Title is the window title.
const Title = "Sizzleship"

// Game is the running demo.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	assets   *assets.Manager
	renderer *renderer.Renderer
	input    *input.Input
	state    scene.FrameState
	tuning   scene.Tuning
}

// New opens the window and loads every resource. Any failure is fatal.
func New(cfg *config.Config) (*Game, error) {
	d := cfg.Display
	logger.Info("initializing demo",
		zap.Int("width", d.Width),
		zap.Int("height", d.Height),
		zap.Int("scale", d.Scale),
		zap.Int("buffers", d.Buffers),
	)

	g := &Game{
		config: cfg,
		state:  scene.NewFrameState(cfg.Scene),
		tuning: scene.TuningFrom(cfg.Input),
	}

	var err error
	g.assets, err = assets.NewDefaultManager(cfg.Assets.OverrideDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open assets: %w", err)
	}

	// Window (this also creates the OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      d.Width * d.Scale,
		Height:     d.Height * d.Scale,
		Fullscreen: d.Fullscreen,
		VSync:      d.VSync,
	})
	if err != nil {
		g.assets.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the context
	g.renderer, err = renderer.New(rendererConfig(cfg), g.assets)
	if err != nil {
		err = multierr.Append(fmt.Errorf("failed to create renderer: %w", err), g.window.Close())
		g.assets.Close()
		return nil, err
	}

	g.input = input.New()

	logger.Info("demo initialized", zap.Int("animation", g.state.Animation))
	return g, nil
}

// rendererConfig derives the renderer settings from the demo config.
func rendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{
		Width:          cfg.Display.Width,
		Height:         cfg.Display.Height,
		Aspect:         cfg.Display.AspectRatio(),
		Buffers:        cfg.Display.Buffers,
		SphereRings:    cfg.Scene.SphereRings,
		SphereSegments: cfg.Scene.SphereSegments,
		LightsEnabled:  cfg.Scene.LightsEnabled,
		Textures:       cfg.Assets.Textures,
	}
}

// Run polls, updates and renders until the window is closed or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting demo loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Poll
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				logger.Debug("window resized",
					zap.Int("width", event.Width),
					zap.Int("height", event.Height),
				)
			}
		}

		// 2. Update
		g.state.Update(g.input.Frame(), g.tuning)
		g.renderer.ApplyToggles(&g.state)

		// 3. Render and present
		w, h := g.window.DrawableSize()
		if err := g.renderer.Frame(&g.state, w, h); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases resources in reverse order of creation.
func (g *Game) Close() error {
	logger.Info("closing demo", zap.Int("animation", g.state.Animation))

	var err error
	if g.input != nil {
		g.input.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		err = multierr.Append(err, g.window.Close())
	}
	if g.assets != nil {
		hits, misses := g.assets.Stats()
		logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		g.assets.Close()
	}
	return err
}
